package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

func TestCanvasMapsWorldCenter(t *testing.T) {
	c := NewCanvas(80, 20, 800, 400) // 80x40 pixels, 10 world units per pixel
	c.Plot(0, 0, object.ColorBullet)

	if col, ok := c.At(40, 20); !ok || col != object.ColorBullet {
		t.Fatalf("center pixel = %06x, %v; want bullet color set", col, ok)
	}
	c.Plot(-400, 200, object.ColorBomb)
	if _, ok := c.At(0, 0); !ok {
		t.Fatal("top-left world corner should land on pixel (0, 0)")
	}
	c.Plot(500, 0, object.ColorBomb)
	c.Clear()
	if _, ok := c.At(40, 20); ok {
		t.Fatal("Clear left pixels set")
	}
}

func TestCanvasYUp(t *testing.T) {
	c := NewCanvas(10, 10, 100, 200) // 10 units per pixel
	c.Plot(0, 50, object.ColorBullet)
	if _, ok := c.At(5, 5); !ok {
		t.Fatal("positive y should be above the center")
	}
}

func TestFillCircleAlwaysVisible(t *testing.T) {
	c := NewCanvas(10, 10, 1000, 2000)
	c.FillCircle(0, 0, 0.1, object.ColorEnemyShot)
	if _, ok := c.At(5, 10); !ok {
		t.Fatal("tiny circle should still set its center pixel")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2) // one world unit per pixel
	c.setPixel(0, 0, object.ColorBullet)
	c.setPixel(1, 1, object.ColorBomb)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[1;1H"+Fg(object.ColorBullet)+string(BlockUpperHalf)) {
		t.Fatalf("missing upper half block in %q", out)
	}
	if !strings.Contains(out, "\033[1;2H"+Fg(object.ColorBomb)+string(BlockLowerHalf)) {
		t.Fatalf("missing lower half block in %q", out)
	}
}

func TestFgSequence(t *testing.T) {
	if got := Fg(0x0A0B0C); got != "\033[38;2;10;11;12m" {
		t.Fatalf("Fg = %q", got)
	}
	if got := Bg(0xFF0000); got != "\033[48;2;255;0;0m" {
		t.Fatalf("Bg = %q", got)
	}
}

func TestChunkWriterFlushes(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteAt(3, 2, big)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[2;3H"+big {
		t.Fatal("flushed output differs from buffered input")
	}
	if cw.Len() != 0 {
		t.Fatal("buffer not reset after flush")
	}
}

func fixedSize(cols, rows int) TermSizeFunc {
	return func() (int, int, error) { return cols, rows, nil }
}

func TestSceneViewportSquarePixels(t *testing.T) {
	s := NewScene(&bytes.Buffer{}, fixedSize(100, 25))
	vp, err := s.Viewport()
	if err != nil {
		t.Fatal(err)
	}
	if vp.Width != 800 || vp.Height != 400 {
		t.Fatalf("viewport = %+v, want 800x400", vp)
	}
}

func TestSceneViewportError(t *testing.T) {
	boom := errors.New("no tty")
	s := NewScene(&bytes.Buffer{}, func() (int, int, error) { return 0, 0, boom })
	if _, err := s.Viewport(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestSceneNodesAndOverlay(t *testing.T) {
	var buf bytes.Buffer
	s := NewScene(&buf, fixedSize(80, 24))
	vp, _ := s.Viewport()

	enemy := object.Handle{ID: 1, Kind: object.KindEnemy, Color: 0xFF6B6B, Scale: 1}
	ghost := object.Handle{ID: 2, Kind: object.KindEnemy, Color: 0x00FF00, Scale: 1}
	s.Add(enemy)
	s.Add(ghost)
	s.Remove(ghost)
	s.Remove(ghost)
	if s.Len() != 1 {
		t.Fatalf("nodes = %d, want 1", s.Len())
	}

	s.SetScoreText(450)
	s.SetHeartCount(3)
	f := world.Frame{
		Viewport: vp,
		Player:   world.Pose{Y: -100, Visible: true},
		Sprites: []world.Sprite{
			{Handle: enemy, X: 0, Y: 100, Opacity: 1, Scale: 1},
			{Handle: ghost, X: 0, Y: 0, Opacity: 1, Scale: 1},
		},
	}
	if err := s.RenderFrame(f); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Score: 450") {
		t.Fatal("score missing from HUD")
	}
	if !strings.Contains(out, strings.Repeat(string(Heart), 3)) {
		t.Fatal("hearts missing from HUD")
	}
	if !strings.Contains(out, Fg(enemy.Color)) {
		t.Fatal("live enemy not drawn")
	}
	if strings.Contains(out, Fg(ghost.Color)) {
		t.Fatal("removed node was drawn")
	}
	if strings.Contains(out, "G A M E") {
		t.Fatal("game over shown too early")
	}

	buf.Reset()
	s.ShowGameOver(450)
	if err := s.RenderFrame(f); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Final score: 450") {
		t.Fatal("game over banner missing")
	}

	s.Reset()
	if s.Len() != 0 || s.gameOver {
		t.Fatal("Reset kept state")
	}
}

func TestRenderTitle(t *testing.T) {
	var buf bytes.Buffer
	s := NewScene(&buf, fixedSize(80, 24))
	if _, err := s.Viewport(); err != nil {
		t.Fatal(err)
	}
	if err := s.RenderTitle(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "S K Y R A I D") {
		t.Fatal("title missing")
	}
}

func TestDrawSpriteFadedExplosion(t *testing.T) {
	c := NewCanvas(20, 10, 200, 200)
	sp := world.Sprite{
		Handle:    object.Handle{ID: 1, Kind: object.KindExplosion},
		Opacity:   0.1,
		Scale:     0.1,
		Particles: []object.Particle{{Size: 3, Color: object.ColorFlash}},
	}
	DrawSprite(c, sp)
	for _, p := range c.pixels {
		if p != 0 {
			t.Fatal("faded explosion should not draw")
		}
	}
}
