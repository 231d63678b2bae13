package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/particles"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// particleFields is the number of floats stored per particle.
const particleFields = 7

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
// Decorative state (stars, nebulae, the HUD counter) is not included.
type Snapshot struct {
	Tick         uint64
	Mode         int // 0=Campaign, 1=Endless
	State        string
	Score        int
	Lives        int
	LevelIndex   int
	EndlessCycle int
	ServeDelay   int

	PaddleX     float64
	PaddleWidth float64

	// Ball as 6 floats: X, Y, VX, VY, AX, AY
	BallData [6]float64

	// One entry per block in layout order
	BlockAlive []bool

	// Each particle is 7 floats: X, Y, VX, VY, Life, Decay, Size
	ParticleData   []float64
	ParticleColors []string

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alive := make([]bool, len(g.blocks))
	for i, blk := range g.blocks {
		alive[i] = blk.Alive
	}

	ps := g.particles.Particles()
	particleData := make([]float64, 0, len(ps)*particleFields)
	particleColors := make([]string, 0, len(ps))
	for _, p := range ps {
		particleData = append(particleData,
			p.Position.X, p.Position.Y,
			p.Velocity.X, p.Velocity.Y,
			p.Life, p.Decay, p.Size,
		)
		particleColors = append(particleColors, p.Color)
	}

	b := g.ball
	return Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Mode:         int(g.mode),
		State:        g.state,
		Score:        g.score,
		Lives:        g.lives,
		LevelIndex:   g.levelIndex,
		EndlessCycle: g.endlessCycle,
		ServeDelay:   g.serveDelay,

		PaddleX:     g.paddle.X,
		PaddleWidth: g.paddle.Width,

		BallData: [6]float64{
			b.Position.X, b.Position.Y,
			b.Velocity.X, b.Velocity.Y,
			b.Acceleration.X, b.Acceleration.Y,
		},

		BlockAlive:     alive,
		ParticleData:   particleData,
		ParticleColors: particleColors,

		RNGState: g.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot taken on a game with
// the same configuration and screen size.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.mode = GameMode(snap.Mode)
	g.state = snap.State
	g.score = snap.Score
	g.lives = snap.Lives
	g.endlessCycle = snap.EndlessCycle
	g.serveDelay = snap.ServeDelay
	g.hudScore.reset(snap.Score)

	g.paddle.X = snap.PaddleX
	g.paddle.Width = snap.PaddleWidth

	g.ball.Position = physics.Vec(snap.BallData[0], snap.BallData[1])
	g.ball.Velocity = physics.Vec(snap.BallData[2], snap.BallData[3])
	g.ball.Acceleration = physics.Vec(snap.BallData[4], snap.BallData[5])

	// Restore block states
	g.levelIndex = snap.LevelIndex
	g.loadLevel(g.levelIndex)
	if len(snap.BlockAlive) == len(g.blocks) {
		for i := range g.blocks {
			g.blocks[i].Alive = snap.BlockAlive[i]
		}
	}

	// Restore particles
	n := min(len(snap.ParticleData)/particleFields, len(snap.ParticleColors))
	ps := make([]particles.Particle, n)
	for i := range ps {
		d := snap.ParticleData[i*particleFields:]
		ps[i] = particles.Particle{
			Position: physics.Vec(d[0], d[1]),
			Velocity: physics.Vec(d[2], d[3]),
			Life:     d[4],
			Decay:    d[5],
			Size:     d[6],
			Color:    snap.ParticleColors[i],
		}
	}
	g.particles.Restore(ps)

	g.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay)   //#nosec G115 -- hash computation
	h = hashString(h, snap.State)

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, alive := range snap.BlockAlive {
		if alive {
			h = h*31 + 1
		} else {
			h *= 31
		}
	}

	for _, v := range snap.ParticleData {
		h = h*31 + math.Float64bits(v)
	}

	for _, c := range snap.ParticleColors {
		h = hashString(h, c)
	}

	h = h*31 + snap.RNGState

	return h
}

func hashString(h uint64, s string) uint64 {
	for i := range len(s) {
		h = h*31 + uint64(s[i])
	}
	return h
}
