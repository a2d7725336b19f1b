package object

import (
	"math"
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

// Player is the user-controlled aircraft.
type Player struct {
	X, Y           float64
	Rotation       float64 // Current bank, radians
	TargetRotation float64 // Bank the rotation eases toward

	Speed  float64 // Units per tick
	Margin float64 // Distance kept from the viewport edges

	LastShot time.Time
	LastBomb time.Time
}

// NewPlayer creates the player at its start position.
func NewPlayer(speed, margin float64) Player {
	return Player{
		X:      config.PlayerStartX,
		Y:      config.PlayerStartY,
		Speed:  speed,
		Margin: margin,
	}
}

// Steer applies one tick of input: bounded movement, banking toward a target
// roll, and a small wobble while moving. ms is the wall clock in milliseconds.
func (p *Player) Steer(in Input, vp Viewport, ms float64) {
	moving := false
	hw, hh := vp.HalfWidth(), vp.HalfHeight()

	if in.Left && p.X > -hw+p.Margin {
		p.X -= p.Speed
		p.TargetRotation = -config.PlayerBank
		moving = true
	}
	if in.Right && p.X < hw-p.Margin {
		p.X += p.Speed
		p.TargetRotation = config.PlayerBank
		moving = true
	}
	if in.Up && p.Y < hh-p.Margin {
		p.Y += p.Speed
		moving = true
	}
	if in.Down && p.Y > -hh+p.Margin {
		p.Y -= p.Speed
		moving = true
	}

	if !in.Left && !in.Right {
		p.TargetRotation = 0
	}
	p.Rotation += (p.TargetRotation - p.Rotation) * config.PlayerBankSmoothing

	if moving {
		p.X += math.Sin(ms*config.PlayerWobbleFreq) * config.PlayerWobble
	}
}

// GunOffsets returns the lateral offsets of the bullets fired in one volley.
func GunOffsets(count int) []float64 {
	switch {
	case count <= 1:
		return []float64{0}
	case count == 2:
		return []float64{-10, 10}
	default:
		return []float64{-15, 0, 15}
	}
}
