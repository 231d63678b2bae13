// Package config provides YAML-based game configuration loading, validation
// and difficulty management for breakout.
package config

import "github.com/vovakirdan/tui-breakout/internal/physics"

// GameConfig is the canonical configuration schema. It seeds the initial
// ball, paddle and block state; the physics core itself only ever sees the
// resolved numbers.
type GameConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Block      BlockConfig      `yaml:"block"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector2D converts to the physics vector type.
func (v Vec) Vector2D() physics.Vector2D {
	return physics.Vector2D{X: v.X, Y: v.Y}
}

// BallConfig defines the ball's size and initial kinematics.
type BallConfig struct {
	Size            float64 `yaml:"size"`
	Restitution     float64 `yaml:"restitution"`
	InitialVelocity Vec     `yaml:"initial_velocity"`
	InitialPosition Vec     `yaml:"initial_position"` // Zero means "on the paddle"
	Acceleration    Vec     `yaml:"acceleration"`
}

// PaddleConfig defines the paddle rectangle and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom of the canvas to the paddle's bottom edge
	Speed        float64 `yaml:"speed"`         // Units per tick while a move key is held
}

// BlockConfig defines the block grid.
type BlockConfig struct {
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	Padding      float64  `yaml:"padding"` // Gap between neighbouring blocks, both axes
	Rows         int      `yaml:"rows"`
	Cols         int      `yaml:"cols"`
	RowOffset    float64  `yaml:"row_offset"` // Gap between the top margin and the first row
	Colors       []string `yaml:"colors"`     // Per-row colours, cycled
	SpecialColor string   `yaml:"special_color"`
}

// CanvasConfig defines the playfield margins and the world-to-cell scale.
type CanvasConfig struct {
	MarginHorizontal float64 `yaml:"margin_horizontal"`
	MarginVertical   float64 `yaml:"margin_vertical"`
	CellWidth        float64 `yaml:"cell_width"`
	CellHeight       float64 `yaml:"cell_height"`
}

// GameplayConfig defines scoring, lives and effect sizes.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	BlockPoints       int `yaml:"block_points"`
	SpecialMultiplier int `yaml:"special_multiplier"`
	BurstCount        int `yaml:"burst_count"`
	SpecialBurstCount int `yaml:"special_burst_count"`
	MaxParticles      int `yaml:"max_particles"`
	ServeDelay        int `yaml:"serve_delay"` // Ticks before the ball can be served again after a miss
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. The empty string is valid and
// means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", invalidf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
