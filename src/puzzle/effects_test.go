package puzzle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectParticleBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Now()
	e := NewEffect(100, 100, now, rng)

	for _, p := range e.Particles {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 100.0, p.Y)
		assert.Equal(t, 1.0, p.Life)
		assert.GreaterOrEqual(t, abs(p.VX), particleMinSpeed)
		assert.LessOrEqual(t, abs(p.VX), particleMaxSpeed)
		assert.GreaterOrEqual(t, abs(p.VY), particleMinSpeed)
		assert.LessOrEqual(t, abs(p.VY), particleMaxSpeed)
	}
}

func TestEffectLifeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Now()
	e := NewEffect(0, 0, now, rng)

	prev := make([]float64, ParticleCount)
	for i := range prev {
		prev[i] = e.Particles[i].Life
	}
	for frame := 0; frame < 90; frame++ {
		now = now.Add(time.Second / 60)
		e.Update(now)
		for i, p := range e.Particles {
			assert.LessOrEqual(t, p.Life, prev[i])
			assert.GreaterOrEqual(t, p.Life, 0.0)
			prev[i] = p.Life
		}
	}
	// after 1.5s every particle has burnt out
	for _, p := range e.Particles {
		assert.Equal(t, 0.0, p.Life)
	}
}

func TestEffectExpiry(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Now()
	e := NewEffect(0, 0, now, rng)

	assert.False(t, e.Expired(now))
	assert.False(t, e.Expired(now.Add(EffectDuration)))
	assert.True(t, e.Expired(now.Add(EffectDuration+time.Millisecond)))

	assert.Equal(t, 0.0, e.Progress(now))
	assert.InDelta(t, 0.5, e.Progress(now.Add(EffectDuration/2)), 1e-9)
	assert.Equal(t, 1.0, e.Progress(now.Add(2*EffectDuration)))
}

func TestBoardPrunesExpiredEffects(t *testing.T) {
	b, clk := newTestBoard(3)
	dragToTarget(b, 0, 0, 0)
	require.Len(t, b.Effects(), 1)

	clk.advance(EffectDuration / 2)
	b.Update()
	assert.Len(t, b.Effects(), 1)

	clk.advance(EffectDuration)
	b.Update()
	assert.Empty(t, b.Effects(), "expired effects are removed, never resurrected")

	b.Update()
	assert.Empty(t, b.Effects())
}

func TestUpdateIdempotentWithoutTimeOrInput(t *testing.T) {
	b, _ := newTestBoard(4)
	before := make([]Piece, b.Len())
	for i := range before {
		before[i] = b.PieceByIndex(i)
	}
	// frozen clock, no input: repeated update phases change nothing
	for i := 0; i < 10; i++ {
		b.Update()
	}
	for i := range before {
		assert.Equal(t, before[i], b.PieceByIndex(i))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
