package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the invariants the simulation relies on and reports every
// violation at once.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalidf(format, args...))
		}
	}

	check(c.Ball.Size > 0, "ball.size must be positive, got %v", c.Ball.Size)
	check(c.Ball.Restitution > 0 && c.Ball.Restitution <= 1,
		"ball.restitution must be in (0, 1], got %v", c.Ball.Restitution)
	check(c.Ball.InitialVelocity != Vec{}, "ball.initial_velocity must not be zero")

	check(c.Paddle.Width > 0, "paddle.width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.Speed >= 0, "paddle.speed must not be negative, got %v", c.Paddle.Speed)

	check(c.Block.Width > 0, "block.width must be positive, got %v", c.Block.Width)
	check(c.Block.Height > 0, "block.height must be positive, got %v", c.Block.Height)
	check(c.Block.Padding >= 0, "block.padding must not be negative, got %v", c.Block.Padding)
	check(c.Block.Rows > 0, "block.rows must be positive, got %d", c.Block.Rows)
	check(c.Block.Cols > 0, "block.cols must be positive, got %d", c.Block.Cols)
	check(len(c.Block.Colors) > 0, "block.colors must not be empty")
	for i, hex := range c.Block.Colors {
		_, err := colorful.Hex(hex)
		check(err == nil, "block.colors[%d] %q is not a #rrggbb colour", i, hex)
	}
	if c.Block.SpecialColor != "" {
		_, err := colorful.Hex(c.Block.SpecialColor)
		check(err == nil, "block.special_color %q is not a #rrggbb colour", c.Block.SpecialColor)
	}

	check(c.Canvas.CellWidth > 0, "canvas.cell_width must be positive, got %v", c.Canvas.CellWidth)
	check(c.Canvas.CellHeight > 0, "canvas.cell_height must be positive, got %v", c.Canvas.CellHeight)
	check(c.Canvas.MarginHorizontal >= 0, "canvas.margin_horizontal must not be negative")
	check(c.Canvas.MarginVertical >= 0, "canvas.margin_vertical must not be negative")

	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.ServeDelay >= 0, "gameplay.serve_delay must not be negative")
	check(c.Gameplay.MaxParticles >= 0, "gameplay.max_particles must not be negative")

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		check(false, "difficulty.progression.type %q must be score, time or none", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
