package object

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

// fixedRand returns the same values on every call.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewEnemyStats(t *testing.T) {
	tests := []struct {
		typ    EnemyType
		speed  float64
		health int
		score  int
		size   float64
	}{
		{EnemyBasic, 3, 1, 100, 1.0},
		{EnemyFast, 5, 1, 150, 0.8},
		{EnemyTank, 2, 3, 300, 1.3},
		{EnemyBomber, 2.5, 2, 200, 1.1},
		{EnemySnake, 2, 1, 100, 1.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			e := NewEnemy(1, tt.typ, 0, 0)
			if e.Speed != tt.speed || e.Health != tt.health || e.ScoreValue != tt.score || e.Size != tt.size {
				t.Fatalf("got speed=%v health=%d score=%d size=%v", e.Speed, e.Health, e.ScoreValue, e.Size)
			}
			if h := e.Handle(); h.Kind != KindEnemy || h.Variant != string(tt.typ) || h.ID != 1 {
				t.Fatalf("unexpected handle %+v", h)
			}
		})
	}
}

func TestSnakeNotSpawnable(t *testing.T) {
	for _, typ := range SpawnableEnemies {
		if typ == EnemySnake {
			t.Fatal("snake must not be in the default spawn table")
		}
	}
}

func TestEnemyHitThreshold(t *testing.T) {
	e := NewEnemy(1, EnemyTank, 0, 0)
	for i := 1; i < 3; i++ {
		if e.Hit() {
			t.Fatalf("killed on hit %d, want hit 3", i)
		}
	}
	if !e.Hit() {
		t.Fatal("expected kill on third hit")
	}
}

func TestEnemyAdvanceDescends(t *testing.T) {
	e := NewEnemy(1, EnemyFast, 0, 300)
	e.Advance(0)
	if e.Y != 295 {
		t.Fatalf("Y = %v, want 295", e.Y)
	}
}

func TestSnakePhaseIsPerTick(t *testing.T) {
	e := NewEnemy(1, EnemySnake, 0, 300)
	e.Advance(1000)
	e.Advance(1000)
	if !approx(e.MovementPhase, 0.2) {
		t.Fatalf("phase = %v, want 0.2", e.MovementPhase)
	}
	want := math.Sin(0.1)*5 + math.Sin(0.2)*5
	if !approx(e.X, want) {
		t.Fatalf("X = %v, want %v", e.X, want)
	}
}

func TestTankTryShoot(t *testing.T) {
	start := time.Unix(100, 0)
	tank := NewTank(1, 0, 0, 2*time.Second)

	if !tank.TryShoot(start) {
		t.Fatal("a fresh tank should fire at once")
	}
	if tank.TryShoot(start.Add(1999 * time.Millisecond)) {
		t.Fatal("shot before cooldown")
	}
	now := start.Add(2 * time.Second)
	if !tank.TryShoot(now) {
		t.Fatal("expected shot at cooldown")
	}
	if !tank.LastShot.Equal(now) {
		t.Fatalf("LastShot = %v, want %v", tank.LastShot, now)
	}
	if tank.TryShoot(now.Add(time.Millisecond)) {
		t.Fatal("cooldown was not restarted")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	start := time.Unix(100, 0)
	e := NewExplosion(7, 10, 20, ColorFlash, 0.5, start, 1500*time.Millisecond, fixedRand{f: 0.5, n: 0})

	if len(e.Particles) != config.ExplosionParticles {
		t.Fatalf("particles = %d, want %d", len(e.Particles), config.ExplosionParticles)
	}
	first := e.Particles[0]
	if !approx(first.VX, 3) || !approx(first.VY, 0) {
		t.Fatalf("first velocity = (%v, %v), want (3, 0)", first.VX, first.VY)
	}
	if !approx(first.Size, 1.25) || first.Color != ColorFlash {
		t.Fatalf("first particle = %+v", first)
	}
	quarter := e.Particles[config.ExplosionParticles/4]
	if !approx(quarter.VX, 0) || !approx(quarter.VY, 3) {
		t.Fatalf("quarter velocity = (%v, %v), want (0, 3)", quarter.VX, quarter.VY)
	}

	if e.Update(start.Add(750 * time.Millisecond)) {
		t.Fatal("expired too early")
	}
	if !approx(e.Progress, 0.5) || !approx(e.Opacity(), 0.5) || !approx(e.ParticleScale(), 0.5) {
		t.Fatalf("progress = %v", e.Progress)
	}
	if !approx(e.Particles[0].X, 3) {
		t.Fatalf("particle did not move: %+v", e.Particles[0])
	}
	if e.Update(start.Add(1500 * time.Millisecond)) {
		t.Fatal("expired at exactly its lifetime")
	}
	if !e.Update(start.Add(1501 * time.Millisecond)) {
		t.Fatal("expected expiry after lifetime")
	}
}

func TestPlayerSteer(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	p := NewPlayer(5, 20)

	p.Steer(Input{Left: true}, vp, 0)
	if p.X != -5 || p.TargetRotation != -0.3 || !approx(p.Rotation, -0.03) {
		t.Fatalf("after left: X=%v target=%v rot=%v", p.X, p.TargetRotation, p.Rotation)
	}

	p.Steer(Input{}, vp, 0)
	if p.TargetRotation != 0 || !approx(p.Rotation, -0.027) {
		t.Fatalf("after release: target=%v rot=%v", p.TargetRotation, p.Rotation)
	}

	p.X = -380
	p.Steer(Input{Left: true}, vp, 0)
	if p.X != -380 {
		t.Fatalf("moved past the left margin: X=%v", p.X)
	}

	p.Y = 279
	p.Steer(Input{Up: true}, vp, 0)
	if p.Y != 284 {
		t.Fatalf("Y = %v, want 284", p.Y)
	}
	p.Steer(Input{Up: true}, vp, 0)
	if p.Y != 284 {
		t.Fatalf("moved past the top margin: Y=%v", p.Y)
	}
}

func TestPlayerWobbleOnlyWhileMoving(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	p := NewPlayer(5, 20)
	ms := math.Pi / 2 / 0.01 // sin(ms*0.01) == 1

	p.Steer(Input{}, vp, ms)
	if p.X != 0 {
		t.Fatalf("wobbled while idle: X=%v", p.X)
	}
	p.Steer(Input{Down: true}, vp, ms)
	if !approx(p.X, 0.2) {
		t.Fatalf("X = %v, want 0.2", p.X)
	}
}

func TestGunOffsets(t *testing.T) {
	tests := []struct {
		count int
		want  []float64
	}{
		{1, []float64{0}},
		{2, []float64{-10, 10}},
		{3, []float64{-15, 0, 15}},
	}
	for _, tt := range tests {
		got := GunOffsets(tt.count)
		if len(got) != len(tt.want) {
			t.Fatalf("GunOffsets(%d) = %v, want %v", tt.count, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("GunOffsets(%d) = %v, want %v", tt.count, got, tt.want)
			}
		}
	}
}

func TestViewportSpawnX(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	if got := vp.SpawnX(0, 50); got != -350 {
		t.Fatalf("SpawnX(0) = %v, want -350", got)
	}
	if got := vp.SpawnX(1, 50); got != 350 {
		t.Fatalf("SpawnX(1) = %v, want 350", got)
	}
	if vp.Top() != 300 || vp.Bottom() != -300 {
		t.Fatalf("Top/Bottom = %v/%v", vp.Top(), vp.Bottom())
	}
}

func TestBodyDestroyIdempotent(t *testing.T) {
	b := NewBomb(3, 0, 0)
	b.MarkDestroyed()
	b.MarkDestroyed()
	if !b.IsDestroyed() {
		t.Fatal("bomb should be destroyed")
	}
	var e Entity = b
	if e.Base() != &b.Body {
		t.Fatal("Base should return the embedded body")
	}
}
