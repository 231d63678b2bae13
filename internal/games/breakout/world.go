package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Layout maps the terminal onto the world coordinate system and holds the
// playfield limits the collision checks run against.
type Layout struct {
	CellW, CellH  float64 // World units per terminal cell
	Width, Height float64 // World size
	Left, Right   float64 // Horizontal walls
	Top           float64 // Ceiling
	Floor         float64 // Ball is lost when it reaches this line
	PaddleY       float64 // Top edge of the paddle
}

// NewLayout computes the world layout for a screen of screenW x screenH cells.
func NewLayout(cfg config.GameConfig, screenW, screenH int) Layout {
	cw, ch := cfg.Canvas.CellWidth, cfg.Canvas.CellHeight
	w := float64(screenW) * cw
	h := float64(screenH) * ch

	return Layout{
		CellW:   cw,
		CellH:   ch,
		Width:   w,
		Height:  h,
		Left:    cfg.Canvas.MarginHorizontal,
		Right:   w - cfg.Canvas.MarginHorizontal,
		Top:     cfg.Canvas.MarginVertical,
		Floor:   h,
		PaddleY: h - cfg.Paddle.BottomOffset - cfg.Paddle.Height,
	}
}

// ToCell converts a world position to a screen cell.
func (l Layout) ToCell(p physics.Vector2D) (x, y int) {
	return int(math.Floor(p.X / l.CellW)), int(math.Floor(p.Y / l.CellH))
}

// SpanCells returns the first and one-past-last cell columns covered by
// [x, x+w) in world units. Every non-empty span covers at least one cell.
func (l Layout) SpanCells(x, w float64) (from, to int) {
	from = int(math.Floor(x / l.CellW))
	to = int(math.Ceil((x + w) / l.CellW))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Paddle is the player's rectangle at the bottom of the playfield.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Rect returns the paddle's collision rectangle.
func (p *Paddle) Rect() physics.Rect {
	return physics.Rect{Position: physics.Vec(p.X, p.Y), Width: p.Width, Height: p.Height}
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Move shifts the paddle by dx, keeping it between the walls.
func (p *Paddle) Move(dx float64, l Layout) {
	p.X = core.ClampF(p.X+dx, l.Left, l.Right-p.Width)
}

// maxDeflect bounds the horizontal share of the ball's speed after a paddle
// hit, so the ball never leaves the paddle flat.
const maxDeflect = 0.8

// deflect sends the ball back up at speed, angled by where it struck the
// paddle: the center returns it straight up, the edges at the widest angle.
func (p *Paddle) deflect(b *physics.Ball, speed float64) {
	offset := 0.0
	if p.Width > 0 {
		offset = core.ClampF((b.Position.X-p.CenterX())/(p.Width/2), -1, 1)
	}

	vx := offset * maxDeflect * speed
	b.Velocity.X = vx
	b.Velocity.Y = -math.Sqrt(speed*speed - vx*vx)
	b.Position.Y = p.Y - b.Size
}

// rowSpan is SpanCells for the vertical axis.
func (l Layout) rowSpan(y, h float64) (from, to int) {
	from = int(math.Floor(y / l.CellH))
	to = int(math.Ceil((y + h) / l.CellH))
	if to <= from {
		to = from + 1
	}
	return from, to
}
