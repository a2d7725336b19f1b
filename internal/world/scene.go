package world

import "github.com/tomz197/skyraid/internal/object"

// Scene is the presentation layer. It mirrors the registry: every entity is
// added when it enters a collection and removed when it leaves.
type Scene interface {
	Add(h object.Handle)
	Remove(h object.Handle)
	RenderFrame(f Frame) error
}

// Overlay is the score and health display.
type Overlay interface {
	SetScoreText(score int)
	SetHeartCount(n int)
	ShowGameOver(score int)
}

// Pose is the player's drawable state.
type Pose struct {
	X, Y     float64
	Rotation float64
	Visible  bool
}

// Sprite is one entity's drawable state for a frame.
type Sprite struct {
	Handle    object.Handle
	X, Y      float64
	Rotation  float64
	Opacity   float64
	Scale     float64
	Particles []object.Particle // Explosions only; offsets from X, Y
}

// Frame is a read-only snapshot of the world handed to the scene.
type Frame struct {
	Viewport  object.Viewport
	Player    Pose
	Score     int
	Health    int
	MaxHealth int
	Over      bool
	Sprites   []Sprite
}

// NopScene discards everything.
type NopScene struct{}

func (NopScene) Add(object.Handle)       {}
func (NopScene) Remove(object.Handle)    {}
func (NopScene) RenderFrame(Frame) error { return nil }

// NopOverlay discards everything.
type NopOverlay struct{}

func (NopOverlay) SetScoreText(int)  {}
func (NopOverlay) SetHeartCount(int) {}
func (NopOverlay) ShowGameOver(int)  {}
