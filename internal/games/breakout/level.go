// Package breakout implements the Breakout game loop on top of the physics
// core: it owns the ball, paddle, blocks and particles and calls the
// integrator, collision checks and particle system once per tick.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Pattern is an ASCII block layout. It is tiled over the configured grid,
// so it does not need to match the grid size.
//
//	'#' = normal block
//	'S' = special block (bigger burst, bonus points)
//	'.' = empty
type Pattern struct {
	ID   string
	Name string
	Rows []string
}

// at returns the pattern character for grid cell (row, col).
func (p Pattern) at(row, col int) byte {
	if len(p.Rows) == 0 {
		return '.'
	}
	line := p.Rows[row%len(p.Rows)]
	if len(line) == 0 {
		return '.'
	}
	return line[col%len(line)]
}

var builtinPatterns = []Pattern{
	{ID: "classic", Name: "Classic", Rows: []string{
		"##########",
		"####SS####",
		"##########",
	}},
	{ID: "pyramid", Name: "Pyramid", Rows: []string{
		"....SS....",
		"...####...",
		"..######..",
		".########.",
		"##########",
	}},
	{ID: "checker", Name: "Checkerboard", Rows: []string{
		"#.#.#S#.#.",
		".#.#.#.#.#",
	}},
	{ID: "diamond", Name: "Diamond", Rows: []string{
		"....##....",
		"...####...",
		"..##SS##..",
		"...####...",
		"....##....",
	}},
	{ID: "striped", Name: "Striped", Rows: []string{
		"S########S",
		"..........",
	}},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(builtinPatterns)
}

// LevelNames returns the display names of the built-in levels in order.
func LevelNames() []string {
	names := make([]string, len(builtinPatterns))
	for i, p := range builtinPatterns {
		names[i] = p.Name
	}
	return names
}

// PatternAt returns the built-in pattern for a level index, wrapping around.
func PatternAt(index int) Pattern {
	n := len(builtinPatterns)
	return builtinPatterns[((index%n)+n)%n]
}

// width returns the length of the pattern's longest row.
func (p Pattern) width() int {
	w := 0
	for _, line := range p.Rows {
		w = max(w, len(line))
	}
	return w
}

// BuildBlocks lays the pattern out as a grid of blocks using the configured
// block size, padding and row offset. The grid is centered between the walls
// and shrunk to whole rows and columns when the screen is too small for the
// configured counts. A shrunk grid samples the middle of the pattern, and a
// grid the pattern leaves empty is filled with normal blocks so every level
// can be cleared.
func BuildBlocks(cfg config.GameConfig, l Layout, p Pattern) []physics.Block {
	bc := cfg.Block
	stepX := bc.Width + bc.Padding
	stepY := bc.Height + bc.Padding

	playW := l.Right - l.Left
	cols := min(bc.Cols, int(math.Floor((playW+bc.Padding)/stepX)))

	// Blocks may fill at most 60% of the space above the paddle.
	top := l.Top + bc.RowOffset
	rows := min(bc.Rows, int(math.Floor((l.PaddleY-top)*0.6/stepY)))

	if cols <= 0 || rows <= 0 {
		return nil
	}

	rowOff := max(len(p.Rows)-rows, 0) / 2
	colOff := max(p.width()-cols, 0) / 2

	gridW := float64(cols)*stepX - bc.Padding
	left := l.Left + (playW-gridW)/2

	build := func(cell func(row, col int) byte) []physics.Block {
		blocks := make([]physics.Block, 0, rows*cols)
		for row := range rows {
			color := bc.Colors[row%len(bc.Colors)]
			for col := range cols {
				ch := cell(row, col)
				if ch != '#' && ch != 'S' {
					continue
				}

				blk := physics.Block{
					Position: physics.Vec(left+float64(col)*stepX, top+float64(row)*stepY),
					Width:    bc.Width,
					Height:   bc.Height,
					Color:    color,
					Alive:    true,
				}
				if ch == 'S' {
					blk.IsSpecial = true
					if bc.SpecialColor != "" {
						blk.Color = bc.SpecialColor
					}
				}
				blocks = append(blocks, blk)
			}
		}
		return blocks
	}

	blocks := build(func(row, col int) byte { return p.at(row+rowOff, col+colOff) })
	if len(blocks) == 0 {
		blocks = build(func(int, int) byte { return '#' })
	}
	return blocks
}

// countAlive returns the number of blocks still in play.
func countAlive(blocks []physics.Block) int {
	n := 0
	for i := range blocks {
		if blocks[i].Alive {
			n++
		}
	}
	return n
}
