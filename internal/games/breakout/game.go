package breakout

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/particles"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// GameState constants
const (
	StateServe    = "serve"    // Ball waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels until game over
)

// Minimum terminal size the playfield needs.
const (
	MinScreenW = 30
	MinScreenH = 15
)

const (
	starCount   = 40
	nebulaCount = 3
)

// Game owns every entity of one Breakout session and advances them one tick
// per Step call. It is not safe for concurrent use; the platform serializes
// ticks.
type Game struct {
	mode       GameMode
	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	logger     *log.Logger
	difficulty *config.DifficultyManager
	rng        *core.SimpleRNG

	layout    Layout
	ball      physics.Ball
	paddle    Paddle
	blocks    []physics.Block
	particles *particles.System
	stars     []physics.Star
	nebulae   []physics.NebulaCloud
	hudScore  scoreCounter

	state          string
	score          int
	lives          int
	levelIndex     int
	startLevel     int
	tickCount      int
	serveDelay     int
	endlessCycle   int
	screenTooSmall bool
}

// New creates a game with the given configuration. A nil logger discards
// all output.
func New(cfg config.GameConfig, mode GameMode, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ball := physics.Ball{Size: cfg.Ball.Size, Restitution: cfg.Ball.Restitution}
	if err := ball.Validate(); err != nil {
		logger.Warn("ball settings out of range", "err", err)
	}
	return &Game{
		mode:   mode,
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game for the given screen and seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.layout = NewLayout(g.cfg, runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startLevel
	g.tickCount = 0
	g.serveDelay = 0
	g.endlessCycle = 0
	g.hudScore.reset(0)

	g.particles = particles.NewSystem(g.rng, g.cfg.Gameplay.MaxParticles)
	g.stars = NewStarfield(g.rng, g.layout, starCount)
	g.nebulae = NewNebulae(g.rng, g.layout, nebulaCount)

	g.paddle = Paddle{
		X:      (g.layout.Width - g.cfg.Paddle.Width) / 2,
		Y:      g.layout.PaddleY,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
	}

	g.loadLevel(g.levelIndex)
	g.serve()

	g.logger.Debug("game reset",
		"mode", g.ID(),
		"world", [2]float64{g.layout.Width, g.layout.Height},
		"blocks", len(g.blocks),
		"seed", runtime.Seed,
	)
}

// SetStartLevel makes the next Reset begin at the given 0-based level.
// Out of range indexes are clamped.
func (g *Game) SetStartLevel(index int) {
	g.startLevel = max(0, min(index, LevelCount()-1))
}

func (g *Game) loadLevel(index int) {
	g.blocks = BuildBlocks(g.cfg, g.layout, PatternAt(index))
	if len(g.blocks) == 0 {
		// Cleared on the first playing tick.
		g.logger.Warn("no room for blocks", "level", index+1,
			"world", [2]float64{g.layout.Width, g.layout.Height})
	}
}

// serve puts a fresh ball at its starting position and waits for launch.
func (g *Game) serve() {
	g.ball = physics.Ball{
		Acceleration: g.cfg.Ball.Acceleration.Vector2D(),
		Size:         g.cfg.Ball.Size,
		Restitution:  g.cfg.Ball.Restitution,
	}
	g.placeServedBall()
	g.state = StateServe
}

func (g *Game) placeServedBall() {
	if start := g.cfg.Ball.InitialPosition; start.X != 0 || start.Y != 0 {
		g.ball.Position = start.Vector2D()
		return
	}
	g.ball.Position = physics.Vec(g.paddle.CenterX(), g.paddle.Y-g.ball.Size)
}

// launch releases the ball with the configured initial velocity, scaled by
// the current difficulty and mirrored horizontally at random.
func (g *Game) launch() {
	v := g.cfg.Ball.InitialVelocity.Vector2D().Scale(g.speedFactor())
	if g.rng.Intn(2) == 0 {
		v.X = -v.X
	}
	g.ball.Velocity = v
	g.state = StatePlaying
}

func (g *Game) speedFactor() float64 {
	return g.difficulty.SpeedFactor(g.score, g.tickCount)
}

// launchSpeed is the ball speed a paddle hit restores.
func (g *Game) launchSpeed() float64 {
	v := g.cfg.Ball.InitialVelocity
	return math.Hypot(v.X, v.Y) * g.speedFactor()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.updatePaddle(in)
	UpdateStars(g.stars)
	UpdateNebulae(g.nebulae, g.layout)

	var result core.StepResult
	switch {
	case g.serveDelay > 0:
		g.serveDelay--
		g.placeServedBall()
	case g.state == StateServe:
		g.placeServedBall()
		if in.Has(core.ActionLaunch) {
			g.launch()
		}
	default:
		result = g.updateBall()
	}

	g.particles.Update()
	g.hudScore.set(g.score)
	g.hudScore.update()

	result.State = g.State()
	return result
}

func (g *Game) updatePaddle(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed
	if in.Has(core.ActionLeft) {
		g.paddle.Move(-speed, g.layout)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(speed, g.layout)
	}
}

// updateBall runs one tick of ball physics: integrate, walls, paddle, blocks.
// A level with no blocks left is cleared even when nothing was hit this tick.
func (g *Game) updateBall() core.StepResult {
	var result core.StepResult
	b := &g.ball

	physics.Integrate(b)

	bx := physics.CheckBoundary(b.Position.X, b.Size, g.layout.Left, g.layout.Right)
	physics.ResolveBoundary(&b.Position.X, &b.Velocity.X, bx, b.Restitution)

	by := physics.CheckBoundary(b.Position.Y, b.Size, g.layout.Top, g.layout.Floor)
	if by.HitMax {
		g.handleMiss()
		result.BallLost = true
		return result
	}
	physics.ResolveBoundary(&b.Position.Y, &b.Velocity.Y, by, b.Restitution)

	if c := physics.CheckCircleRect(b.Position, b.Size, g.paddle.Rect()); c.IsColliding {
		// Landing on the top face steers the ball; grazing a side just reflects.
		if physics.ReflectAxis(c) == physics.AxisY && c.DistanceY <= 0 && b.Velocity.Y > 0 {
			g.paddle.deflect(b, g.launchSpeed())
		} else {
			physics.Bounce(b, c)
		}
	}

	for i := range g.blocks {
		blk := &g.blocks[i]
		if !blk.Alive {
			continue
		}
		c := physics.CheckBallBlock(*b, *blk)
		if !c.IsColliding {
			continue
		}

		physics.Bounce(b, c)
		g.destroyBlock(i)
		result.BlocksHit++
		break // One block per tick keeps reflections unambiguous
	}

	if countAlive(g.blocks) == 0 {
		g.handleLevelClear()
		result.LevelCleared = true
	}
	return result
}

// destroyBlock removes a block from play, scores it and bursts particles at
// its position in its colour.
func (g *Game) destroyBlock(i int) {
	blk := &g.blocks[i]
	blk.Alive = false

	points := g.cfg.Gameplay.BlockPoints
	count := g.cfg.Gameplay.BurstCount
	if blk.IsSpecial {
		points *= max(g.cfg.Gameplay.SpecialMultiplier, 1)
		count = g.cfg.Gameplay.SpecialBurstCount
	}
	g.score += points
	g.particles.Spawn(blk.Position, blk.Color, count)

	g.logger.Debug("block destroyed",
		"index", i,
		"special", blk.IsSpecial,
		"score", g.score,
		"particles", g.particles.Len(),
	)
}

func (g *Game) handleMiss() {
	g.lives--
	g.logger.Info("ball lost", "lives", g.lives, "score", g.score)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.logger.Info("game over", "score", g.score, "level", g.levelIndex+1)
		return
	}

	g.serve()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

func (g *Game) handleLevelClear() {
	g.logger.Info("level cleared", "level", g.levelIndex+1, "score", g.score)
	g.levelIndex++

	if g.levelIndex >= LevelCount() {
		if g.mode == ModeCampaign {
			g.state = StateWin
			g.logger.Info("campaign complete", "score", g.score)
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
	}

	g.loadLevel(g.levelIndex)
	g.serve()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the internal state name (serve, playing, paused, gameover, win).
func (g *Game) Phase() string {
	return g.state
}

// Ball returns a copy of the ball.
func (g *Game) Ball() physics.Ball {
	return g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Blocks returns the block collection, destroyed blocks included.
// Callers must not modify it.
func (g *Game) Blocks() []physics.Block {
	return g.blocks
}

// Particles returns the active particles. Callers must not modify them.
func (g *Game) Particles() []particles.Particle {
	return g.particles.Particles()
}

// Layout returns the world layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Level returns the 1-based level number, counting endless cycles.
func (g *Game) Level() int {
	return g.endlessCycle*LevelCount() + g.levelIndex + 1
}
