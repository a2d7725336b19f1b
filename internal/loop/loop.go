// Package loop drives a game: it reads input, steps the session and paces frames.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/world"
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to os.Stdout's size
	Logger       *log.Logger       // Defaults to a discarding logger
	FPS          int               // Defaults to config.DefaultFPS
	Config       *world.Config     // Defaults to world.DefaultConfig()
	Clock        clock.Clock       // Defaults to the system clock
	IdleTimeout  time.Duration     // Zero disables the idle check
}

// ErrIdle is returned by Run when no key was pressed within the idle timeout.
var ErrIdle = errors.New("session idle")

// Run plays on a terminal until the player quits, the input closes, ctx is
// cancelled, or a frame fails to render. Each frame is Input → Step → sleep.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	frameTime := time.Second / time.Duration(fps)
	cfg := world.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	scene := draw.NewScene(w, opts.TermSizeFunc)
	session := NewSession(SessionOptions{
		Config:    cfg,
		Clock:     clk,
		Presenter: scene,
		Viewport:  scene.Viewport,
		Logger:    logger,
	})
	stream := input.StartStream(bufio.NewReader(r))

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	logger.Debug("loop started", "fps", fps)
	lastInput := clk.Now()
	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", "games", session.Games())
			return nil
		default:
		}

		in := input.ReadInput(stream, clk.Now())
		if in.Quit {
			logger.Debug("player quit", "games", session.Games())
			return nil
		}
		if in != (input.Input{}) {
			lastInput = clk.Now()
		} else if opts.IdleTimeout > 0 && clock.HasElapsed(lastInput, opts.IdleTimeout, clk.Now()) {
			logger.Info("disconnecting idle player", "idle", opts.IdleTimeout, "games", session.Games())
			return ErrIdle
		}

		if err := session.Step(in); err != nil {
			logger.Error("frame failed", "err", err)
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			select {
			case <-ctx.Done():
			case <-time.After(frameTime - elapsed):
			}
		}
	}
}
