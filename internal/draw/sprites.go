package draw

import (
	"math"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

// fadeCutoff hides explosion particles once they are mostly faded; the
// terminal has no alpha.
const fadeCutoff = 0.25

// rotate returns the world points of shape rotated by angle and moved to (x, y).
func rotate(shape []Point, x, y, angle, scale float64) []Point {
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(shape))
	for i, p := range shape {
		px, py := p.X*scale, p.Y*scale
		out[i] = Point{X: x + px*cos - py*sin, Y: y + px*sin + py*cos}
	}
	return out
}

var (
	aircraftShape = []Point{{0, 18}, {-16, -8}, {-4, -4}, {0, -12}, {4, -4}, {16, -8}}
	tankShape     = []Point{{-15, 10}, {15, 10}, {15, -10}, {-15, -10}}
	diamondShape  = []Point{{0, 8}, {8, 0}, {0, -8}, {-8, 0}}
	bombShape     = []Point{{0, 8}, {4, 0}, {4, -8}, {-4, -8}, {-4, 0}}
	treeShape     = []Point{{0, 40}, {18, 10}, {-18, 10}}
	patchShape    = []Point{{-30, 8}, {30, 8}, {30, -8}, {-30, -8}}
)

// DrawPlayer draws the aircraft, banked by its rotation.
func DrawPlayer(c *Canvas, p world.Pose) {
	if !p.Visible {
		return
	}
	c.DrawPolygon(rotate(aircraftShape, p.X, p.Y, p.Rotation, 1), object.ColorPlayer, true)
}

// DrawSprite draws one entity according to its handle.
func DrawSprite(c *Canvas, s world.Sprite) {
	h := s.Handle
	switch h.Kind {
	case object.KindBullet:
		c.FillCircle(s.X, s.Y, s.Scale, h.Color)
	case object.KindBomb:
		c.DrawPolygon(rotate(bombShape, s.X, s.Y, 0, 1), h.Color, true)
	case object.KindEnemyShot:
		c.FillCircle(s.X, s.Y, 3, h.Color)
	case object.KindEnemy:
		c.FillCircle(s.X, s.Y, 15*s.Scale, h.Color)
	case object.KindTank:
		c.DrawPolygon(rotate(tankShape, s.X, s.Y, 0, 1), h.Color, true)
		c.DrawLine(Point{s.X, s.Y}, Point{s.X, s.Y - 22}, object.ColorBomb)
	case object.KindGround:
		drawGround(c, s)
	case object.KindItem:
		if h.Variant == string(object.ItemHeart) {
			c.FillCircle(s.X, s.Y, 8*s.Scale, h.Color)
			return
		}
		c.DrawPolygon(rotate(diamondShape, s.X, s.Y, s.Rotation, s.Scale), h.Color, true)
	case object.KindExplosion:
		if s.Opacity < fadeCutoff {
			return
		}
		for _, p := range s.Particles {
			c.FillCircle(s.X+p.X, s.Y+p.Y, p.Size*s.Scale, p.Color)
		}
	}
}

func drawGround(c *Canvas, s world.Sprite) {
	switch object.GroundType(s.Handle.Variant) {
	case object.GroundTree:
		c.DrawLine(Point{s.X, s.Y}, Point{s.X, s.Y + 12}, object.ColorGround)
		c.DrawPolygon(rotate(treeShape, s.X, s.Y, 0, 1), s.Handle.Color, true)
	default:
		c.DrawPolygon(rotate(patchShape, s.X, s.Y, 0, 1), s.Handle.Color, true)
	}
}
