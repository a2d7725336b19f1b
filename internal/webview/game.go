// Package webview runs the game in a window or a browser tab on ebiten.
package webview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/webview/display"
	"github.com/tomz197/skyraid/internal/world"
)

// Key bindings. Fire and movement are held; Enter is edge-triggered.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysFire  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyF}
	keysBomb  = []ebiten.Key{ebiten.KeyB, ebiten.KeyX}
)

// Game implements ebiten.Game around a loop.Session.
type Game struct {
	session *loop.Session
	display *display.Display
	logger  *log.Logger
	vp      object.Viewport
}

// NewGame creates a game on its title screen.
func NewGame(cfg world.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		display: display.New(),
		logger:  logger,
	}
	g.session = loop.NewSession(loop.SessionOptions{
		Config:    cfg,
		Clock:     clock.System{},
		Presenter: g.display,
		Viewport:  g.viewport,
		Logger:    logger,
	})
	return g
}

func (g *Game) viewport() (object.Viewport, error) { return g.vp, nil }

// Update advances one tick. Escape ends the game.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	if err := g.session.Step(in); err != nil {
		g.logger.Error("frame failed", "err", err)
		return fmt.Errorf("step: %w", err)
	}
	return nil
}

// Draw paints the latest view.
func (g *Game) Draw(screen *ebiten.Image) {
	paint(screen, g.display.View(), g.vp)
}

// Layout uses the outside size as the world area, so resizing the window or
// tab changes the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp = object.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func readInput() input.Input {
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return input.Input{
		Left:  anyPressed(keysLeft),
		Right: anyPressed(keysRight),
		Up:    anyPressed(keysUp),
		Down:  anyPressed(keysDown),
		Fire:  anyPressed(keysFire),
		Bomb:  anyPressed(keysBomb),
		Enter: enter,
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
