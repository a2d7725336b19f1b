package object

import (
	"time"

	"github.com/tomz197/skyraid/internal/clock"
)

// Tank is a ground vehicle that scrolls with the terrain and shells the player.
type Tank struct {
	Body
	LastShot         time.Time
	ShootingCooldown time.Duration
}

// NewTank creates a tank at (x, y). It has never fired, so it shoots on its
// first update.
func NewTank(id ID, x, y float64, cooldown time.Duration) *Tank {
	return &Tank{
		Body:             Body{ID: id, X: x, Y: y},
		ShootingCooldown: cooldown,
	}
}

// Handle returns the tank's presentation handle.
func (t *Tank) Handle() Handle {
	return Handle{ID: t.ID, Kind: KindTank, Color: ColorTank, Scale: 1}
}

// TryShoot reports whether the tank's cooldown has elapsed at now and, if so,
// restarts it.
func (t *Tank) TryShoot(now time.Time) bool {
	if !clock.HasElapsed(t.LastShot, t.ShootingCooldown, now) {
		return false
	}
	t.LastShot = now
	return true
}
