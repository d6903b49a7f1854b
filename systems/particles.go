package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/trichrome/components"
)

// ParticleKind identifies the type of effect particle.
type ParticleKind uint8

const (
	ParticleCollision ParticleKind = iota // spark at a battle contact point
	ParticleSplit                         // burst where a winner spawns its clone
)

// LifeStep is the per-tick particle life decrement. Particle lifetimes
// assume 60 ticks per second regardless of the actual frame rate.
const LifeStep = 1.0 / 60.0

// EffectParticle is a short-lived, purely visual spark. It never feeds
// back into agent state.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       float32 // remaining lifetime, seconds
	MaxLife    float32 // initial lifetime, for fade alpha
	Kind       ParticleKind
	Color      components.Color
	Size       float32
	Core       bool // brighter inner spark
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles []EffectParticle

	maxParticles int
	gravity      float32
	damping      float32
}

// NewParticleSystem creates a particle system with the given physics
// parameters.
func NewParticleSystem(maxParticles int, gravity, damping float32) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, maxParticles),
		maxParticles: maxParticles,
		gravity:      gravity,
		damping:      damping,
	}
}

// Update advances all particles one tick and discards the expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life -= LifeStep
		if p.Life <= 0 {
			continue
		}

		p.X += p.VelX
		p.Y += p.VelY
		p.VelY += s.gravity
		p.VelX *= s.damping
		p.VelY *= s.damping

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitCollision emits a spark burst at a battle contact midpoint,
// alternating the two colliding colors, with a brighter inner core.
func (s *ParticleSystem) EmitCollision(rng *rand.Rand, x, y float32, a, b components.Color, count int) {
	for i := 0; i < count; i++ {
		color := a
		if i%2 == 1 {
			color = b
		}
		s.emitRadial(rng, x, y, color, ParticleCollision, i < count/3)
	}
}

// EmitSplit emits a burst where a battle winner spawned its clone.
func (s *ParticleSystem) EmitSplit(rng *rand.Rand, x, y float32, color components.Color, count int) {
	for i := 0; i < count; i++ {
		s.emitRadial(rng, x, y, color, ParticleSplit, false)
	}
}

func (s *ParticleSystem) emitRadial(rng *rand.Rand, x, y float32, color components.Color, kind ParticleKind, core bool) {
	if len(s.Particles) >= s.maxParticles {
		return
	}

	angle := rng.Float64() * 2 * math.Pi
	var speed, life, size float32
	switch kind {
	case ParticleCollision:
		speed = 0.8 + rng.Float32()*1.2
		life = 0.25 + rng.Float32()*0.3
		size = 1.5 + rng.Float32()
	case ParticleSplit:
		speed = 0.5 + rng.Float32()*0.8
		life = 0.4 + rng.Float32()*0.4
		size = 2 + rng.Float32()*1.5
	default:
		panic("systems: unknown particle kind")
	}
	if core {
		size += 1
	}

	s.Particles = append(s.Particles, EffectParticle{
		X:       x + (rng.Float32()-0.5)*4,
		Y:       y + (rng.Float32()-0.5)*4,
		VelX:    float32(math.Cos(angle)) * speed,
		VelY:    float32(math.Sin(angle)) * speed,
		Life:    life,
		MaxLife: life,
		Kind:    kind,
		Color:   color,
		Size:    size,
		Core:    core,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Clear drops all particles.
func (s *ParticleSystem) Clear() {
	s.Particles = s.Particles[:0]
}
