package world

import (
	"fmt"
	"testing"
	"time"

	"github.com/tomz197/skyraid/internal/object"
)

// seqRand replays scripted values, then falls back to 0.5 and 0.
type seqRand struct {
	floats []float64
	ints   []int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// recordingScene mirrors the registry and remembers protocol violations.
type recordingScene struct {
	nodes   map[object.ID]object.Handle
	added   int
	removed int
	frames  int
	errs    []string
}

func newRecordingScene() *recordingScene {
	return &recordingScene{nodes: make(map[object.ID]object.Handle)}
}

func (s *recordingScene) Add(h object.Handle) {
	if _, ok := s.nodes[h.ID]; ok {
		s.errs = append(s.errs, fmt.Sprintf("add of existing %s %d", h.Kind, h.ID))
	}
	s.nodes[h.ID] = h
	s.added++
}

func (s *recordingScene) Remove(h object.Handle) {
	if _, ok := s.nodes[h.ID]; !ok {
		s.errs = append(s.errs, fmt.Sprintf("remove of unknown %s %d", h.Kind, h.ID))
	}
	delete(s.nodes, h.ID)
	s.removed++
}

func (s *recordingScene) RenderFrame(Frame) error {
	s.frames++
	return nil
}

func (s *recordingScene) count(k object.Kind) int {
	n := 0
	for _, h := range s.nodes {
		if h.Kind == k {
			n++
		}
	}
	return n
}

type recordingOverlay struct {
	score     int
	hearts    int
	gameOvers int
	final     int
}

func (o *recordingOverlay) SetScoreText(score int) { o.score = score }
func (o *recordingOverlay) SetHeartCount(n int)    { o.hearts = n }
func (o *recordingOverlay) ShowGameOver(score int) {
	o.gameOvers++
	o.final = score
}

var epoch = time.Unix(1_700_000_000, 0)

// quietConfig never spawns on its own within a test's time span.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.EnemyInterval = time.Hour
	cfg.GroundInterval = time.Hour
	cfg.TankInterval = time.Hour
	cfg.ItemInterval = time.Hour
	return cfg
}

func newTestWorld(t *testing.T, cfg Config) (*World, *recordingScene, *recordingOverlay) {
	t.Helper()
	sc := newRecordingScene()
	ov := &recordingOverlay{}
	w := New(cfg, Options{
		Scene:    sc,
		Overlay:  ov,
		Rand:     &seqRand{},
		Viewport: object.Viewport{Width: 800, Height: 600},
	})
	w.spawns = spawnTimers{enemy: epoch, ground: epoch, tank: epoch, item: epoch}
	return w, sc, ov
}

// checkMirror fails if the scene and the registry disagree.
func checkMirror(t *testing.T, w *World, sc *recordingScene) {
	t.Helper()
	if len(sc.errs) > 0 {
		t.Fatalf("scene protocol errors: %v", sc.errs)
	}
	ids := make(map[object.ID]bool)
	collect := func(e object.Entity) {
		if e.Base().IsDestroyed() {
			t.Fatalf("destroyed %s %d still registered", e.Handle().Kind, e.Base().ID)
		}
		ids[e.Base().ID] = true
	}
	each(&w.reg.Bullets, collect)
	each(&w.reg.Bombs, collect)
	each(&w.reg.Enemies, collect)
	each(&w.reg.Tanks, collect)
	each(&w.reg.EnemyShots, collect)
	each(&w.reg.Ground, collect)
	each(&w.reg.Items, collect)
	each(&w.reg.Explosions, collect)

	if len(ids) != len(sc.nodes) {
		t.Fatalf("registry has %d entities, scene has %d nodes", len(ids), len(sc.nodes))
	}
	for id := range sc.nodes {
		if !ids[id] {
			t.Fatalf("scene node %d has no registry entry", id)
		}
	}
}

func each[T object.Entity](c *Collection[T], fn func(object.Entity)) {
	for i := 0; i < c.Len(); i++ {
		fn(c.At(i))
	}
}
