package draw

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

// Scene is the terminal presentation layer. It keeps the set of live nodes
// the world has handed it, draws them on a Canvas, and owns the score and
// heart display.
type Scene struct {
	cw       *ChunkWriter
	canvas   *Canvas
	sizeFunc TermSizeFunc
	nodes    map[object.ID]object.Handle

	score    int
	hearts   int
	gameOver bool
	final    int
}

// Ensure Scene satisfies both world collaborators.
var (
	_ world.Scene   = (*Scene)(nil)
	_ world.Overlay = (*Scene)(nil)
)

// NewScene creates a Scene drawing to w. A nil sizeFunc uses os.Stdout.
func NewScene(w io.Writer, sizeFunc TermSizeFunc) *Scene {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Scene{
		cw:       NewChunkWriter(w),
		canvas:   NewCanvas(1, 1, config.DefaultViewportWidth, config.DefaultViewportHeight),
		sizeFunc: sizeFunc,
		nodes:    make(map[object.ID]object.Handle),
	}
}

// Viewport polls the terminal size, resizes the canvas, and returns the world
// area to show. The width is fixed; the height follows the terminal's shape
// so pixels stay square.
func (s *Scene) Viewport() (object.Viewport, error) {
	cols, rows, err := s.sizeFunc()
	if err != nil {
		return object.Viewport{}, fmt.Errorf("terminal size: %w", err)
	}
	if cols <= 0 || rows <= 0 {
		return object.Viewport{}, fmt.Errorf("terminal size: invalid %dx%d", cols, rows)
	}
	s.canvas.Resize(cols, rows)

	width := float64(config.DefaultViewportWidth)
	vp := object.Viewport{Width: width, Height: width * float64(rows*2) / float64(cols)}
	s.canvas.SetView(vp)
	return vp, nil
}

// Add registers a node.
func (s *Scene) Add(h object.Handle) {
	s.nodes[h.ID] = h
}

// Remove drops a node. Unknown handles are ignored.
func (s *Scene) Remove(h object.Handle) {
	delete(s.nodes, h.ID)
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// SetScoreText updates the score display.
func (s *Scene) SetScoreText(score int) { s.score = score }

// SetHeartCount updates the heart display.
func (s *Scene) SetHeartCount(n int) { s.hearts = n }

// ShowGameOver shows the game over banner with the final score.
func (s *Scene) ShowGameOver(score int) {
	s.gameOver = true
	s.final = score
}

// Reset drops every node and hides the game over banner.
func (s *Scene) Reset() {
	clear(s.nodes)
	s.score = 0
	s.hearts = 0
	s.gameOver = false
	s.final = 0
}

// RenderFrame draws f: every sprite whose node is live, the player, then the HUD.
func (s *Scene) RenderFrame(f world.Frame) error {
	s.canvas.SetView(f.Viewport)
	s.canvas.Clear()

	for _, sp := range f.Sprites {
		if _, ok := s.nodes[sp.Handle.ID]; !ok {
			continue
		}
		DrawSprite(s.canvas, sp)
	}
	DrawPlayer(s.canvas, f.Player)

	ClearScreen(s.cw)
	if err := s.canvas.Render(s.cw); err != nil {
		return err
	}
	s.drawHUD()
	if s.gameOver {
		s.drawCentered([]string{
			"G A M E   O V E R",
			"",
			fmt.Sprintf("Final score: %d", s.final),
			"",
			"Press ENTER to play again, Q to quit",
		})
	}
	return s.flush()
}

// RenderTitle draws the start screen.
func (s *Scene) RenderTitle() error {
	ClearScreen(s.cw)
	s.drawCentered([]string{
		"S K Y R A I D",
		"",
		"Press ENTER or SPACE to start",
		"",
		"Arrows/WASD move, SPACE fires, B drops a bomb, Q quits",
	})
	return s.flush()
}

func (s *Scene) drawHUD() {
	s.cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", s.score))
	hearts := strings.Repeat(string(Heart), max(s.hearts, 0))
	s.cw.WriteAt(2, 2, Fg(object.ColorShotBlast)+hearts+ColorReset)
}

func (s *Scene) drawCentered(lines []string) {
	centerX := s.canvas.TerminalWidth() / 2
	top := s.canvas.TerminalHeight()/2 - len(lines)/2
	for i, line := range lines {
		n := len([]rune(line))
		s.cw.WriteAt(max(centerX-n/2, 1), max(top+i, 1), line)
	}
}

func (s *Scene) flush() error {
	if err := s.cw.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
