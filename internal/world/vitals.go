package world

import (
	"time"

	"github.com/tomz197/skyraid/internal/clock"
)

// Phase is the player's damage state.
type Phase uint8

// Damage states.
const (
	PhaseNormal Phase = iota
	PhaseInvulnerable
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseInvulnerable:
		return "invulnerable"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Vitals is the player's health and damage state machine. Invulnerability
// and blinking are deadlines polled every tick, never callbacks, so dropping
// a Vitals cancels everything pending.
type Vitals struct {
	Health  int
	Max     int
	Phase   Phase
	LastHit time.Time
	Visible bool

	duration  time.Duration
	blink     time.Duration
	lastBlink time.Time
}

// NewVitals returns Normal vitals at initial health.
func NewVitals(initial, max int, invulnerability, blink time.Duration) Vitals {
	return Vitals{
		Health:   min(initial, max),
		Max:      max,
		Visible:  true,
		duration: invulnerability,
		blink:    blink,
	}
}

// Update expires a finished invulnerability window and toggles the blink.
func (v *Vitals) Update(now time.Time) {
	if v.Phase != PhaseInvulnerable {
		return
	}
	if clock.HasElapsed(v.LastHit, v.duration, now) {
		v.Phase = PhaseNormal
		v.Visible = true
		return
	}
	if clock.HasElapsed(v.lastBlink, v.blink, now) {
		v.Visible = !v.Visible
		v.lastBlink = now
	}
}

// Hit applies one point of damage at now. Hits while invulnerable or after
// game over are discarded. It reports whether health changed.
func (v *Vitals) Hit(now time.Time) bool {
	v.Update(now)
	if v.Phase != PhaseNormal {
		return false
	}

	v.Health--
	if v.Health <= 0 {
		v.Health = 0
		v.Phase = PhaseGameOver
		v.Visible = true
		return true
	}

	v.Phase = PhaseInvulnerable
	v.LastHit = now
	v.lastBlink = now
	return true
}

// Heal restores one point of health up to Max. It reports whether health
// changed.
func (v *Vitals) Heal() bool {
	if v.Phase == PhaseGameOver || v.Health >= v.Max {
		return false
	}
	v.Health++
	return true
}

// Invulnerable reports whether hits are currently ignored.
func (v Vitals) Invulnerable() bool { return v.Phase == PhaseInvulnerable }

// Dead reports whether the game is over.
func (v Vitals) Dead() bool { return v.Phase == PhaseGameOver }
