// Package display keeps the presentation state for retained-mode painters.
// The simulation pushes node and overlay updates into a Display during a tick;
// the painter reads the latest View when it draws.
package display

import (
	"image/color"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

// View is everything a painter needs for one frame.
type View struct {
	Title  bool // Start screen; Frame is empty
	Frame  world.Frame
	Score  int
	Hearts int
	Over   bool
	Final  int
}

// Display implements world.Scene and world.Overlay and remembers the last
// frame it was asked to render.
type Display struct {
	nodes  map[object.ID]object.Handle
	score  int
	hearts int
	over   bool
	final  int
	title  bool
	frame  world.Frame
	frames int
}

// New creates an empty display.
func New() *Display {
	return &Display{nodes: make(map[object.ID]object.Handle)}
}

// Add registers a node.
func (d *Display) Add(h object.Handle) { d.nodes[h.ID] = h }

// Remove drops a node. Unknown handles are ignored.
func (d *Display) Remove(h object.Handle) { delete(d.nodes, h.ID) }

// Len returns the number of registered nodes.
func (d *Display) Len() int { return len(d.nodes) }

func (d *Display) SetScoreText(score int) { d.score = score }
func (d *Display) SetHeartCount(n int)    { d.hearts = n }

// ShowGameOver switches on the game over banner.
func (d *Display) ShowGameOver(score int) {
	d.over = true
	d.final = score
}

// Reset forgets all nodes and overlay state before a new game.
func (d *Display) Reset() {
	clear(d.nodes)
	d.score, d.hearts, d.final = 0, 0, 0
	d.over = false
	d.frame = world.Frame{}
}

// RenderTitle selects the start screen.
func (d *Display) RenderTitle() error {
	d.title = true
	d.frame = world.Frame{}
	return nil
}

// RenderFrame keeps f for the painter. Sprites without a registered node are
// dropped.
func (d *Display) RenderFrame(f world.Frame) error {
	sprites := make([]world.Sprite, 0, len(f.Sprites))
	for _, s := range f.Sprites {
		if _, ok := d.nodes[s.Handle.ID]; ok {
			sprites = append(sprites, s)
		}
	}
	f.Sprites = sprites

	d.title = false
	d.frame = f
	d.frames++
	return nil
}

// Frames returns how many frames were rendered.
func (d *Display) Frames() int { return d.frames }

// View returns the state to paint.
func (d *Display) View() View {
	return View{
		Title:  d.title,
		Frame:  d.frame,
		Score:  d.score,
		Hearts: d.hearts,
		Over:   d.over,
		Final:  d.final,
	}
}

// ToScreen maps a centre-origin, y-up world position to screen pixels with
// the origin top-left.
func ToScreen(vp object.Viewport, x, y float64) (float32, float32) {
	return float32(vp.HalfWidth() + x), float32(vp.HalfHeight() - y)
}

// RGBA converts a palette colour, scaling alpha by opacity in [0, 1].
func RGBA(c object.Color, opacity float64) color.RGBA {
	a := min(max(opacity, 0), 1)
	r, g, b := c.RGB()
	// Premultiplied alpha.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}
