package object

import (
	"math"
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

// Particle is one fragment of an explosion. Its position is relative to the
// explosion's center.
type Particle struct {
	X, Y   float64 // Offset from the explosion center
	VX, VY float64 // Velocity per tick
	Size   float64
	Color  Color
}

// Explosion is a short-lived radial burst of particles.
type Explosion struct {
	Body
	CreatedAt time.Time
	Lifetime  time.Duration
	Color     Color
	Scale     float64
	Particles []Particle
	Progress  float64 // Age over lifetime, 0..1
}

// NewExplosion creates an explosion at (x, y). Particles leave at evenly
// spaced angles with a random speed, size and one of three colors.
func NewExplosion(id ID, x, y float64, color Color, scale float64, created time.Time, lifetime time.Duration, rng Rand) *Explosion {
	palette := [...]Color{color, ColorSpark, ColorEmber}
	particles := make([]Particle, config.ExplosionParticles)
	for i := range particles {
		angle := 2 * math.Pi / config.ExplosionParticles * float64(i)
		speed := rng.Float64()*config.ParticleSpeedRange + config.ParticleMinSpeed
		particles[i] = Particle{
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  (rng.Float64()*config.ParticleMaxSize + 1) * scale,
			Color: palette[rng.IntN(len(palette))],
		}
	}
	return &Explosion{
		Body:      Body{ID: id, X: x, Y: y},
		CreatedAt: created,
		Lifetime:  lifetime,
		Color:     color,
		Scale:     scale,
		Particles: particles,
	}
}

// Handle returns the explosion's presentation handle.
func (e *Explosion) Handle() Handle {
	return Handle{ID: e.ID, Kind: KindExplosion, Color: e.Color, Scale: e.Scale}
}

// Update advances every particle by one tick and fades the burst.
// It reports expired once the explosion is older than its lifetime, in which
// case nothing moves.
func (e *Explosion) Update(now time.Time) (expired bool) {
	age := now.Sub(e.CreatedAt)
	if age > e.Lifetime {
		return true
	}
	if e.Lifetime > 0 {
		e.Progress = float64(age) / float64(e.Lifetime)
	}
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX
		p.Y += p.VY
	}
	return false
}

// Opacity is the current particle opacity.
func (e *Explosion) Opacity() float64 { return 1 - e.Progress }

// ParticleScale is the current particle scale factor.
func (e *Explosion) ParticleScale() float64 { return 1 - e.Progress }
