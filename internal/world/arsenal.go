package world

import "github.com/tomz197/skyraid/internal/object"

// Arsenal is the player's weapon state, raised by power-ups up to fixed caps.
type Arsenal struct {
	BulletSize      int
	BulletCount     int
	SpeedMultiplier float64

	MaxBulletSize      int
	MaxBulletCount     int
	MaxSpeedMultiplier float64
	SpeedStep          float64
}

// Apply raises the attribute named by t, saturating at its cap.
// Hearts are not weapon power-ups and are ignored here.
func (a *Arsenal) Apply(t object.ItemType) {
	switch t {
	case object.ItemSize:
		a.BulletSize = min(a.BulletSize+1, a.MaxBulletSize)
	case object.ItemCount:
		a.BulletCount = min(a.BulletCount+1, a.MaxBulletCount)
	case object.ItemSpeed:
		a.SpeedMultiplier = min(a.SpeedMultiplier+a.SpeedStep, a.MaxSpeedMultiplier)
	}
}
