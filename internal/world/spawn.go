package world

import (
	"time"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/object"
)

// spawn runs every category's interval-gated factory.
func (w *World) spawn(now time.Time) {
	if clock.HasElapsed(w.spawns.ground, w.cfg.GroundInterval, now) {
		admit(w, &w.reg.Ground, object.NewGround(w.newID(), object.GroundPatch, w.spawnX(), w.vp.Top()))
		w.spawns.ground = now
	}
	if clock.HasElapsed(w.spawns.tank, w.cfg.TankInterval, now) {
		admit(w, &w.reg.Tanks, object.NewTank(w.newID(), w.spawnX(), w.vp.Top(), w.cfg.TankShootCooldown))
		w.spawns.tank = now
	}
	if clock.HasElapsed(w.spawns.item, w.cfg.ItemInterval, now) {
		x := w.spawnX()
		t := object.ItemTypes[w.rng.IntN(len(object.ItemTypes))]
		admit(w, &w.reg.Items, object.NewItem(w.newID(), t, x, w.vp.Top()))
		w.spawns.item = now
	}
	if clock.HasElapsed(w.spawns.enemy, w.cfg.EnemyInterval, now) {
		admit(w, &w.reg.Enemies, w.newEnemy())
		w.spawns.enemy = now
	}
}

// newEnemy builds an enemy of a random type at the top edge.
func (w *World) newEnemy() *object.Enemy {
	types := w.cfg.enemyTypes()
	t := types[w.rng.IntN(len(types))]
	return object.NewEnemy(w.newID(), t, w.spawnX(), w.vp.Top())
}

func (w *World) spawnX() float64 {
	return w.vp.SpawnX(w.rng.Float64(), w.cfg.SpawnMargin)
}

// explode adds an explosion at (x, y).
func (w *World) explode(x, y float64, color object.Color, scale float64, now time.Time) {
	e := object.NewExplosion(w.newID(), x, y, color, scale, now, w.cfg.ExplosionLifetime, w.rng)
	admit(w, &w.reg.Explosions, e)
}
