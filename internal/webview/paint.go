package webview

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/webview/display"
	"github.com/tomz197/skyraid/internal/world"
)

const (
	glyphWidth  = 7
	lineHeight  = 16
	hudMargin   = 10
	strokeWidth = 2
)

var (
	skyColor    = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	shadeColor  = color.RGBA{A: 0xB0}
	textColor   = color.White
	playerColor = display.RGBA(object.ColorPlayer, 1)
)

// aircraft outline, nose up, in world units.
var aircraft = [][2]float64{{0, 18}, {-16, -8}, {-4, -4}, {0, -12}, {4, -4}, {16, -8}}

func paint(screen *ebiten.Image, v display.View, vp object.Viewport) {
	screen.Fill(skyColor)
	if v.Title {
		paintLines(screen, vp, []string{
			"S K Y R A I D",
			"",
			"Click or press ENTER to start",
			"",
			"Arrows/WASD move, SPACE fires, B drops a bomb",
		})
		return
	}

	for _, s := range v.Frame.Sprites {
		paintSprite(screen, vp, s)
	}
	paintPlayer(screen, vp, v.Frame.Player)

	text.Draw(screen, fmt.Sprintf("Score: %d", v.Score), basicfont.Face7x13, hudMargin, hudMargin+lineHeight, textColor)
	text.Draw(screen, "Health: "+strings.Repeat("<3 ", max(v.Hearts, 0)), basicfont.Face7x13, hudMargin, hudMargin+2*lineHeight, textColor)

	if v.Over {
		vector.DrawFilledRect(screen, 0, 0, float32(vp.Width), float32(vp.Height), shadeColor, false)
		paintLines(screen, vp, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final score: %d", v.Final),
			"",
			"Click or press ENTER to play again",
		})
	}
}

func paintLines(screen *ebiten.Image, vp object.Viewport, lines []string) {
	top := int(vp.HalfHeight()) - len(lines)*lineHeight/2
	for i, line := range lines {
		x := int(vp.HalfWidth()) - len(line)*glyphWidth/2
		text.Draw(screen, line, basicfont.Face7x13, x, top+i*lineHeight, textColor)
	}
}

func paintPlayer(screen *ebiten.Image, vp object.Viewport, p world.Pose) {
	if !p.Visible {
		return
	}
	sin, cos := math.Sincos(p.Rotation)
	n := len(aircraft)
	for i := range aircraft {
		a, b := aircraft[i], aircraft[(i+1)%n]
		x0, y0 := display.ToScreen(vp, p.X+a[0]*cos-a[1]*sin, p.Y+a[0]*sin+a[1]*cos)
		x1, y1 := display.ToScreen(vp, p.X+b[0]*cos-b[1]*sin, p.Y+b[0]*sin+b[1]*cos)
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, playerColor, true)
	}
}

func paintSprite(screen *ebiten.Image, vp object.Viewport, s world.Sprite) {
	h := s.Handle
	x, y := display.ToScreen(vp, s.X, s.Y)
	clr := display.RGBA(h.Color, 1)

	switch h.Kind {
	case object.KindBullet:
		vector.DrawFilledCircle(screen, x, y, float32(s.Scale), clr, true)
	case object.KindBomb:
		vector.DrawFilledRect(screen, x-4, y-8, 8, 16, clr, false)
	case object.KindEnemyShot:
		vector.DrawFilledCircle(screen, x, y, 3, clr, true)
	case object.KindEnemy:
		vector.DrawFilledCircle(screen, x, y, float32(15*s.Scale), clr, true)
	case object.KindTank:
		vector.DrawFilledRect(screen, x-15, y-10, 30, 20, clr, false)
		vector.StrokeLine(screen, x, y, x, y+22, 4, display.RGBA(object.ColorBomb, 1), false)
	case object.KindGround:
		paintGround(screen, x, y, s)
	case object.KindItem:
		size := float32(8 * s.Scale)
		if h.Variant == string(object.ItemHeart) {
			vector.DrawFilledCircle(screen, x, y, size, clr, true)
			return
		}
		paintDiamond(screen, x, y, size, s.Rotation, clr)
	case object.KindExplosion:
		for _, p := range s.Particles {
			px, py := display.ToScreen(vp, s.X+p.X, s.Y+p.Y)
			vector.DrawFilledCircle(screen, px, py, float32(p.Size*s.Scale), display.RGBA(p.Color, s.Opacity), true)
		}
	}
}

func paintGround(screen *ebiten.Image, x, y float32, s world.Sprite) {
	clr := display.RGBA(s.Handle.Color, 1)
	switch object.GroundType(s.Handle.Variant) {
	case object.GroundTree:
		vector.StrokeLine(screen, x, y, x, y-12, 4, display.RGBA(object.ColorGround, 1), false)
		vector.DrawFilledCircle(screen, x, y-24, 16, clr, true)
	default:
		vector.DrawFilledRect(screen, x-30, y-8, 60, 16, clr, false)
	}
}

// paintDiamond draws a rotated square as four edges.
func paintDiamond(screen *ebiten.Image, x, y, size float32, rotation float64, clr color.Color) {
	var pts [4][2]float32
	for i := range pts {
		angle := rotation + float64(i)*math.Pi/2
		sin, cos := math.Sincos(angle)
		// Screen y points down.
		pts[i] = [2]float32{x + size*float32(cos), y - size*float32(sin)}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], strokeWidth, clr, true)
	}
}
