package physics

import "errors"

// Ball is the single moving circle of the simulation.
type Ball struct {
	Position     Vector2D // Center
	Velocity     Vector2D // Units per tick
	Acceleration Vector2D // Units per tick squared
	Size         float64  // Radius
	Restitution  float64  // Fraction of speed kept on a wall bounce, in (0, 1]
}

var (
	errBallSize        = errors.New("physics: ball size must be positive")
	errBallRestitution = errors.New("physics: ball restitution must be in (0, 1]")
)

// Validate reports whether the ball satisfies its invariants.
func (b Ball) Validate() error {
	if b.Size <= 0 {
		return errBallSize
	}
	if b.Restitution <= 0 || b.Restitution > 1 {
		return errBallRestitution
	}
	return nil
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Position      Vector2D
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Position.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Position.Y + r.Height
}

// Block is a destructible brick. Destroyed blocks keep their slot with
// Alive=false and are skipped by collision checks and rendering.
type Block struct {
	Position  Vector2D // Top-left corner
	Width     float64
	Height    float64
	Color     string // Hex colour, e.g. "#ff5555"
	IsSpecial bool
	Alive     bool
}

// Rect returns the block's collision rectangle.
func (b Block) Rect() Rect {
	return Rect{Position: b.Position, Width: b.Width, Height: b.Height}
}

// Star is a decorative background point. It takes no part in collisions.
type Star struct {
	Position     Vector2D
	Size         float64
	Brightness   float64 // Base brightness in [0, 1]
	TwinkleSpeed float64 // Phase advance per tick, radians
	TwinklePhase float64
	Color        string
}

// NebulaCloud is a decorative background blob that drifts slowly.
type NebulaCloud struct {
	Position Vector2D
	Size     float64
	Opacity  float64
	Drift    Vector2D
	Color    string
}
