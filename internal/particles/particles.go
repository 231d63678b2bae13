// Package particles implements the short-lived debris bursts emitted when
// blocks are destroyed.
package particles

import "github.com/vovakirdan/tui-breakout/internal/physics"

const (
	// DefaultBurstCount is the number of particles in a burst when the
	// caller does not ask for a specific count.
	DefaultBurstCount = 5

	// InitialLife is the life every particle starts with.
	InitialLife = 2.0

	// Damping is applied to each velocity component once per tick.
	Damping = 0.99

	jitter    = 4.0 // Spawn offset and velocity range: ±jitter/2 per axis
	minDecay  = 0.01
	decaySpan = 0.05
	minSize   = 1.0
	sizeSpan  = 2.0
)

// Source supplies uniformly distributed values in [0, 1).
// core.SimpleRNG and *rand.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Particle is one fading piece of debris.
type Particle struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Life     float64
	Decay    float64 // Life lost per tick, always > 0
	Size     float64
	Color    string
}

// Alive reports whether the particle still has life left.
func (p Particle) Alive() bool {
	return p.Life > 0
}

// Fraction returns remaining life as a fraction of InitialLife, clamped to [0, 1].
func (p Particle) Fraction() float64 {
	f := p.Life / InitialLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SpawnBurst creates count particles jittered around pos. It does not touch
// any existing collection; callers append the result. A non-positive count
// falls back to DefaultBurstCount.
func SpawnBurst(src Source, pos physics.Vector2D, color string, count int) []Particle {
	if count <= 0 {
		count = DefaultBurstCount
	}

	burst := make([]Particle, count)
	for i := range burst {
		burst[i] = Particle{
			Position: physics.Vector2D{
				X: pos.X + (src.Float64()-0.5)*jitter,
				Y: pos.Y + (src.Float64()-0.5)*jitter,
			},
			Velocity: physics.Vector2D{
				X: (src.Float64() - 0.5) * jitter,
				Y: (src.Float64() - 0.5) * jitter,
			},
			Life:  InitialLife,
			Decay: src.Float64()*decaySpan + minDecay,
			Size:  src.Float64()*sizeSpan + minSize,
			Color: color,
		}
	}
	return burst
}

// Advance moves every particle one tick and drops those whose life reached
// zero. Survivors are compacted in place; the returned slice shares the
// backing array of ps.
func Advance(ps []Particle) []Particle {
	alive := ps[:0]
	for i := range ps {
		p := ps[i]
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Life -= p.Decay
		p.Velocity.X *= Damping
		p.Velocity.Y *= Damping
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}
