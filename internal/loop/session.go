package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

// Phase is the session's screen.
type Phase int

const (
	PhaseStart   Phase = iota // Title screen
	PhasePlaying              // Active gameplay
	PhaseOver                 // Game over banner, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Presenter is a presentation layer that can also draw the title screen.
type Presenter interface {
	world.Scene
	world.Overlay
	RenderTitle() error
	Reset()
}

// ViewportFunc reports the current world area to simulate.
type ViewportFunc func() (object.Viewport, error)

// SessionOptions configures a Session.
type SessionOptions struct {
	Config    world.Config
	Clock     clock.Clock  // Defaults to the system clock
	Presenter Presenter    // Required
	Viewport  ViewportFunc // Defaults to the world's default viewport
	Rand      world.Rand   // Defaults to a time-seeded generator
	Logger    *log.Logger  // Defaults to a discarding logger
}

// Session is the loop driver for one player: it owns the current World and
// moves between the title, play and game over screens. A restart discards the
// World and builds a fresh one.
type Session struct {
	cfg      world.Config
	clock    clock.Clock
	screen   Presenter
	viewport ViewportFunc
	rng      world.Rand
	logger   *log.Logger

	world *world.World
	phase Phase
	games int
}

// NewSession creates a session on the title screen.
func NewSession(opts SessionOptions) *Session {
	s := &Session{
		cfg:      opts.Config,
		clock:    opts.Clock,
		screen:   opts.Presenter,
		viewport: opts.Viewport,
		rng:      opts.Rand,
		logger:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = clock.System{}
	}
	if s.viewport == nil {
		s.viewport = func() (object.Viewport, error) { return object.Viewport{}, nil }
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Phase returns the current screen.
func (s *Session) Phase() Phase { return s.phase }

// World returns the current game, or nil before the first one starts.
func (s *Session) World() *world.World { return s.world }

// Games returns how many games have been started.
func (s *Session) Games() int { return s.games }

// Step runs one frame: handle screen transitions, tick the world while
// playing, then hand the frame to the presenter.
func (s *Session) Step(in input.Input) error {
	vp, err := s.viewport()
	if err != nil {
		return fmt.Errorf("read viewport: %w", err)
	}

	switch s.phase {
	case PhaseStart:
		if !in.Enter && !in.Fire {
			return s.render(s.screen.RenderTitle())
		}
		s.start(vp)
	case PhasePlaying:
		s.world.SetViewport(vp)
		s.world.Tick(s.clock.Now(), in)
		if s.world.Over() {
			s.phase = PhaseOver
			s.logger.Info("game over", "game", s.games, "score", s.world.Score())
		}
	case PhaseOver:
		if in.Enter {
			s.logger.Debug("restarting", "previous_score", s.world.Score())
			s.start(vp)
		}
	}

	return s.render(s.screen.RenderFrame(s.world.Frame()))
}

// start discards any previous game and opens a new one.
func (s *Session) start(vp object.Viewport) {
	if s.world != nil {
		s.world.Clear()
	}
	s.screen.Reset()

	s.world = world.New(s.cfg, world.Options{
		Scene:    s.screen,
		Overlay:  s.screen,
		Rand:     s.rng,
		Viewport: vp,
	})
	s.world.Open()
	s.phase = PhasePlaying
	s.games++
	s.logger.Info("game started", "game", s.games, "viewport", fmt.Sprintf("%.0fx%.0f", vp.Width, vp.Height))
}

func (s *Session) render(err error) error {
	if err != nil {
		return fmt.Errorf("render %s frame: %w", s.phase, err)
	}
	return nil
}
