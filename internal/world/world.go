// Package world is the simulation: the entity registry, the spawner, the
// per-category update policies, collision resolution and the player's damage
// state machine. A World is single-threaded; one Tick runs to completion
// before the next.
package world

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
)

// Rand is the uniform random source used for spawning and explosions.
type Rand = object.Rand

// Options are the collaborators of a World. Nil fields get no-op or default
// implementations.
type Options struct {
	Scene    Scene
	Overlay  Overlay
	Rand     Rand
	Viewport object.Viewport
}

// spawnTimers holds the last spawn time per category.
type spawnTimers struct {
	enemy  time.Time
	ground time.Time
	tank   time.Time
	item   time.Time
}

// World is one game's complete state.
type World struct {
	cfg     Config
	scene   Scene
	overlay Overlay
	rng     Rand
	vp      object.Viewport

	reg     Registry
	player  object.Player
	vitals  Vitals
	arsenal Arsenal
	score   int
	spawns  spawnTimers
	nextID  object.ID
}

// New creates a world. Call Open before the first Tick.
func New(cfg Config, opts Options) *World {
	w := &World{
		cfg:     cfg,
		scene:   opts.Scene,
		overlay: opts.Overlay,
		rng:     opts.Rand,
		vp:      opts.Viewport,
		player:  object.NewPlayer(cfg.PlayerSpeed, cfg.PlayerMargin),
		vitals:  NewVitals(cfg.InitialHealth, cfg.MaxHealth, cfg.InvulnerabilityDuration, cfg.BlinkInterval),
		arsenal: cfg.Arsenal,
	}
	if w.scene == nil {
		w.scene = NopScene{}
	}
	if w.overlay == nil {
		w.overlay = NopOverlay{}
	}
	if w.rng == nil {
		seed := uint64(time.Now().UnixNano())
		w.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if w.vp.Width <= 0 || w.vp.Height <= 0 {
		w.vp = object.Viewport{Width: config.DefaultViewportWidth, Height: config.DefaultViewportHeight}
	}
	return w
}

// Open places the opening scene (one random enemy and a tree at the origin)
// and publishes the initial score and health.
func (w *World) Open() {
	admit(w, &w.reg.Enemies, w.newEnemy())
	admit(w, &w.reg.Ground, object.NewGround(w.newID(), object.GroundTree, 0, 0))
	w.overlay.SetScoreText(w.score)
	w.overlay.SetHeartCount(w.vitals.Health)
}

// SetViewport changes the bounds used for spawning, culling and movement.
func (w *World) SetViewport(vp object.Viewport) {
	if vp.Width > 0 && vp.Height > 0 {
		w.vp = vp
	}
}

// Viewport returns the current bounds.
func (w *World) Viewport() object.Viewport { return w.vp }

// Tick advances the simulation by one frame at wall-clock time now.
// A finished game does not tick.
func (w *World) Tick(now time.Time, in input.Input) {
	if w.vitals.Dead() {
		return
	}
	w.vitals.Update(now)
	ms := clock.Millis(now)

	w.updatePlayer(now, in, ms)
	w.updateExplosions(now)
	w.updateGround()
	w.updateTanks(now)
	w.updateBombs()
	w.updateItems()
	w.updateBullets()
	w.spawn(now)
	w.updateEnemies(now, ms)
}

// Over reports whether the game has ended.
func (w *World) Over() bool { return w.vitals.Dead() }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Health returns the current health.
func (w *World) Health() int { return w.vitals.Health }

// Vitals returns a copy of the damage state.
func (w *World) Vitals() Vitals { return w.vitals }

// Arsenal returns a copy of the weapon state.
func (w *World) Arsenal() Arsenal { return w.arsenal }

// Player returns a copy of the player.
func (w *World) Player() object.Player { return w.player }

// Entities returns the number of live entities.
func (w *World) Entities() int { return w.reg.Len() }

// Clear removes every entity from the registry and the scene.
func (w *World) Clear() {
	clearAll(w, &w.reg.Bullets)
	clearAll(w, &w.reg.Bombs)
	clearAll(w, &w.reg.Enemies)
	clearAll(w, &w.reg.Tanks)
	clearAll(w, &w.reg.EnemyShots)
	clearAll(w, &w.reg.Ground)
	clearAll(w, &w.reg.Items)
	clearAll(w, &w.reg.Explosions)
}

// Frame snapshots the world for rendering, back to front: terrain, ground
// units, pickups, enemies, shots, then explosions.
func (w *World) Frame() Frame {
	f := Frame{
		Viewport:  w.vp,
		Score:     w.score,
		Health:    w.vitals.Health,
		MaxHealth: w.vitals.Max,
		Over:      w.vitals.Dead(),
		Player: Pose{
			X:        w.player.X,
			Y:        w.player.Y,
			Rotation: w.player.Rotation,
			Visible:  w.vitals.Visible,
		},
		Sprites: make([]Sprite, 0, w.reg.Len()),
	}
	add := func(e object.Entity, rotation float64) {
		b := e.Base()
		h := e.Handle()
		f.Sprites = append(f.Sprites, Sprite{Handle: h, X: b.X, Y: b.Y, Rotation: rotation, Opacity: 1, Scale: h.Scale})
	}

	w.reg.Ground.ForEachAlive(func(g *object.Ground) { add(g, 0) })
	w.reg.Tanks.ForEachAlive(func(t *object.Tank) { add(t, 0) })
	w.reg.Items.ForEachAlive(func(i *object.Item) { add(i, i.Rotation) })
	w.reg.Enemies.ForEachAlive(func(e *object.Enemy) { add(e, 0) })
	w.reg.EnemyShots.ForEachAlive(func(s *object.EnemyShot) { add(s, 0) })
	w.reg.Bombs.ForEachAlive(func(b *object.Bomb) { add(b, 0) })
	w.reg.Bullets.ForEachAlive(func(b *object.Bullet) { add(b, 0) })
	w.reg.Explosions.ForEachAlive(func(e *object.Explosion) {
		f.Sprites = append(f.Sprites, Sprite{
			Handle:    e.Handle(),
			X:         e.X,
			Y:         e.Y,
			Opacity:   e.Opacity(),
			Scale:     e.ParticleScale(),
			Particles: e.Particles,
		})
	})
	return f
}

func (w *World) newID() object.ID {
	w.nextID++
	return w.nextID
}
