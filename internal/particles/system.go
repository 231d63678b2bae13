package particles

import "github.com/vovakirdan/tui-breakout/internal/physics"

// System owns the active particle collection for a game.
type System struct {
	src       Source
	particles []Particle
	max       int // 0 = unbounded
}

// NewSystem creates a particle system drawing randomness from src.
// When maxParticles > 0, spawning past the cap drops the oldest particles.
func NewSystem(src Source, maxParticles int) *System {
	capacity := maxParticles
	if capacity <= 0 {
		capacity = 64
	}
	return &System{
		src:       src,
		particles: make([]Particle, 0, capacity),
		max:       maxParticles,
	}
}

// Spawn emits a burst at pos and returns the number of particles added.
func (s *System) Spawn(pos physics.Vector2D, color string, count int) int {
	burst := SpawnBurst(s.src, pos, color, count)
	s.particles = append(s.particles, burst...)

	if s.max > 0 && len(s.particles) > s.max {
		over := len(s.particles) - s.max
		n := copy(s.particles, s.particles[over:])
		s.particles = s.particles[:n]
	}
	return len(burst)
}

// Update advances all particles by one tick and culls dead ones.
func (s *System) Update() {
	s.particles = Advance(s.particles)
}

// Particles returns the active particles. The slice is only valid until the
// next Spawn or Update call and must not be modified.
func (s *System) Particles() []Particle {
	return s.particles
}

// Len returns the number of active particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Restore replaces the active particles with a copy of ps.
func (s *System) Restore(ps []Particle) {
	s.particles = append(s.particles[:0], ps...)
}
