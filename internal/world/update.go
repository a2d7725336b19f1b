package world

import (
	"time"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// Explosion scales.
const (
	fullBlast  = 1.0
	smallBlast = 0.5
)

func collides(a, b object.Entity) bool {
	ab, bb := a.Base(), b.Base()
	return physics.Collides(ab.X, ab.Y, bb.X, bb.Y)
}

func hitsPlayer(e object.Entity, p *object.Player) bool {
	b := e.Base()
	return physics.Collides(b.X, b.Y, p.X, p.Y)
}

// updatePlayer moves the player and fires whatever is off cooldown.
func (w *World) updatePlayer(now time.Time, in input.Input, ms float64) {
	p := &w.player
	p.Steer(in, w.vp, ms)

	if in.Fire && clock.HasElapsed(p.LastShot, w.cfg.ShootCooldown, now) {
		for _, off := range object.GunOffsets(w.arsenal.BulletCount) {
			b := object.NewBullet(w.newID(), p.X+off, p.Y+w.cfg.MuzzleOffsetY, w.arsenal.BulletSize)
			admit(w, &w.reg.Bullets, b)
		}
		p.LastShot = now
	}
	if in.Bomb && clock.HasElapsed(p.LastBomb, w.cfg.BombCooldown, now) {
		admit(w, &w.reg.Bombs, object.NewBomb(w.newID(), p.X, p.Y+w.cfg.MuzzleOffsetY))
		p.LastBomb = now
	}
}

// damage applies one hit to the player and publishes the result.
func (w *World) damage(now time.Time) {
	if !w.vitals.Hit(now) {
		return
	}
	w.overlay.SetHeartCount(w.vitals.Health)
	if w.vitals.Dead() {
		w.overlay.ShowGameOver(w.score)
	}
}

func (w *World) addScore(points int) {
	w.score += points
	w.overlay.SetScoreText(w.score)
}

func (w *World) updateExplosions(now time.Time) {
	c := &w.reg.Explosions
	for i := c.Len() - 1; i >= 0; i-- {
		if c.At(i).Update(now) {
			retireAt(w, c, i)
		}
	}
}

func (w *World) updateGround() {
	c := &w.reg.Ground
	for i := c.Len() - 1; i >= 0; i-- {
		g := c.At(i)
		g.Y -= w.cfg.ScrollSpeed
		if g.Y < w.vp.Bottom()-w.cfg.GroundCullMargin {
			retireAt(w, c, i)
		}
	}
}

// updateTanks scrolls and fires every tank, resolves bomb hits, then moves
// the tank shells.
func (w *World) updateTanks(now time.Time) {
	tanks := &w.reg.Tanks
	bombs := &w.reg.Bombs

	for i := tanks.Len() - 1; i >= 0; i-- {
		t := tanks.At(i)
		t.Y -= w.cfg.ScrollSpeed

		if t.TryShoot(now) {
			admit(w, &w.reg.EnemyShots, object.NewEnemyShot(w.newID(), t.X, t.Y-w.cfg.TankShotOffsetY))
		}

		bombed := false
		for j := bombs.Len() - 1; j >= 0; j-- {
			if collides(bombs.At(j), t) {
				w.explode(t.X, t.Y, object.ColorTankBlast, fullBlast, now)
				retireAt(w, tanks, i)
				retireAt(w, bombs, j)
				w.addScore(w.cfg.TankScore)
				bombed = true
				break
			}
		}
		if bombed {
			continue
		}

		if t.Y < w.vp.Bottom()-w.cfg.GroundCullMargin {
			retireAt(w, tanks, i)
		}
	}

	shots := &w.reg.EnemyShots
	for i := shots.Len() - 1; i >= 0; i-- {
		s := shots.At(i)
		s.Y -= w.cfg.TankShotSpeed

		if hitsPlayer(s, &w.player) {
			w.damage(now)
			w.explode(s.X, s.Y, object.ColorShotBlast, smallBlast, now)
			retireAt(w, shots, i)
			continue
		}
		if s.Y < w.vp.Bottom() {
			retireAt(w, shots, i)
		}
	}
}

func (w *World) updateBombs() {
	c := &w.reg.Bombs
	for i := c.Len() - 1; i >= 0; i-- {
		b := c.At(i)
		b.Y += w.cfg.BombSpeed
		if b.Y > w.vp.Top() {
			retireAt(w, c, i)
		}
	}
}

func (w *World) updateItems() {
	c := &w.reg.Items
	for i := c.Len() - 1; i >= 0; i-- {
		it := c.At(i)
		it.Y -= w.cfg.ScrollSpeed
		it.Rotation += w.cfg.ItemSpin

		if hitsPlayer(it, &w.player) {
			if it.Type == object.ItemHeart {
				if w.vitals.Heal() {
					w.overlay.SetHeartCount(w.vitals.Health)
				}
			} else {
				w.arsenal.Apply(it.Type)
			}
			retireAt(w, c, i)
			continue
		}
		if it.Y < w.vp.Bottom() {
			retireAt(w, c, i)
		}
	}
}

func (w *World) updateBullets() {
	c := &w.reg.Bullets
	step := w.cfg.BulletSpeed * w.arsenal.SpeedMultiplier
	for i := c.Len() - 1; i >= 0; i-- {
		b := c.At(i)
		b.Y += step
		if b.Y > w.vp.Top() {
			retireAt(w, c, i)
		}
	}
}

// updateEnemies moves every enemy and resolves its collisions with the
// player and with bullets. An enemy removed by one rule is not seen by the
// rules after it.
func (w *World) updateEnemies(now time.Time, ms float64) {
	enemies := &w.reg.Enemies
	bullets := &w.reg.Bullets

	for i := enemies.Len() - 1; i >= 0; i-- {
		e := enemies.At(i)
		e.Advance(ms)

		if hitsPlayer(e, &w.player) {
			w.damage(now)
			w.explode(e.X, e.Y, e.Color(), fullBlast, now)
			retireAt(w, enemies, i)
			continue
		}

		killed := false
		for j := bullets.Len() - 1; j >= 0; j-- {
			b := bullets.At(j)
			if !collides(e, b) {
				continue
			}
			retireAt(w, bullets, j)
			w.explode(b.X, b.Y, object.ColorFlash, smallBlast, now)
			if e.Hit() {
				w.explode(e.X, e.Y, e.Color(), fullBlast, now)
				retireAt(w, enemies, i)
				w.addScore(e.ScoreValue)
				killed = true
				break
			}
		}
		if killed {
			continue
		}

		if e.Y < w.vp.Bottom() {
			retireAt(w, enemies, i)
		}
	}
}
