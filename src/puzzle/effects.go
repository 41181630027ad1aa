package puzzle

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Placement feedback: one Effect per lock, a fixed burst of particles plus
// an expanding ring. Effects only hold state and age here; drawing is the
// renderer's business so aging stays testable without a graphics context.
const (
	EffectDuration = 1200 * time.Millisecond
	ParticleCount  = 25

	// initial radial speed range, canvas px/sec, per axis
	particleMinSpeed = 30.0
	particleMaxSpeed = 150.0

	// life 1 -> 0 over ~0.9s, slightly inside the effect window
	particleLifeDecay = 1.1
)

var particlePalette = []color.RGBA{
	{0xff, 0xd5, 0x4f, 0xff},
	{0xff, 0x8a, 0x5b, 0xff},
	{0x6e, 0xd3, 0xcf, 0xff},
	{0xf7, 0xf7, 0xf7, 0xff},
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // [0, 1], 0 means no longer drawn
	Radius float64
	Color  color.RGBA
}

type Effect struct {
	X, Y      float64 // spawn center, canvas space
	Particles [ParticleCount]Particle

	born time.Time
	last time.Time
}

func NewEffect(x, y float64, now time.Time, rng *rand.Rand) *Effect {
	e := &Effect{X: x, Y: y, born: now, last: now}
	for i := range e.Particles {
		speed := func() float64 {
			s := particleMinSpeed + rng.Float64()*(particleMaxSpeed-particleMinSpeed)
			if rng.Intn(2) == 0 {
				return -s
			}
			return s
		}
		e.Particles[i] = Particle{
			X:      x,
			Y:      y,
			VX:     speed(),
			VY:     speed(),
			Life:   1,
			Radius: 1.5 + rng.Float64()*2.5,
			Color:  particlePalette[rng.Intn(len(particlePalette))],
		}
	}
	return e
}

// Age of the effect at the given instant.
func (e *Effect) Age(now time.Time) time.Duration {
	return now.Sub(e.born)
}

// Progress maps the effect age onto [0, 1] over the effect window.
func (e *Effect) Progress(now time.Time) float64 {
	p := float64(e.Age(now)) / float64(EffectDuration)
	return math.Min(math.Max(p, 0), 1)
}

// Expired effects are removed regardless of individual particle life.
func (e *Effect) Expired(now time.Time) bool {
	return e.Age(now) > EffectDuration
}

// Update advances particle positions and decays life since the last call.
// Dead particles keep their position; they are just skipped when drawing.
func (e *Effect) Update(now time.Time) {
	dt := now.Sub(e.last).Seconds()
	if dt <= 0 {
		return
	}
	e.last = now
	for i := range e.Particles {
		p := &e.Particles[i]
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= particleLifeDecay * dt
		if p.Life < 0 {
			p.Life = 0
		}
	}
}
