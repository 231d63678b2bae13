package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

var starColors = []string{"#ffffff", "#cfd8ff", "#ffe9c4", "#c4f0ff"}

var nebulaColors = []string{"#2b1b4a", "#1b2f4a", "#3a1b3a"}

// NewStarfield scatters count stars over the playfield, below the ceiling and
// above the paddle.
func NewStarfield(rng *core.SimpleRNG, l Layout, count int) []physics.Star {
	h := l.PaddleY - l.Top
	w := l.Right - l.Left
	if w <= 0 || h <= 0 {
		return nil
	}

	stars := make([]physics.Star, count)
	for i := range stars {
		stars[i] = physics.Star{
			Position:     physics.Vec(l.Left+rng.Float64()*w, l.Top+rng.Float64()*h),
			Size:         rng.Float64()*1.5 + 0.5,
			Brightness:   rng.Float64()*0.6 + 0.2,
			TwinkleSpeed: rng.Float64()*0.05 + 0.01,
			TwinklePhase: rng.Float64() * 2 * math.Pi,
			Color:        starColors[rng.Intn(len(starColors))],
		}
	}
	return stars
}

// UpdateStars advances every star's twinkle phase by one tick.
func UpdateStars(stars []physics.Star) {
	for i := range stars {
		s := &stars[i]
		s.TwinklePhase = math.Mod(s.TwinklePhase+s.TwinkleSpeed, 2*math.Pi)
	}
}

// NewNebulae places a few large, faint clouds that drift across the
// background.
func NewNebulae(rng *core.SimpleRNG, l Layout, count int) []physics.NebulaCloud {
	w := l.Right - l.Left
	h := l.PaddleY - l.Top
	if w <= 0 || h <= 0 {
		return nil
	}

	clouds := make([]physics.NebulaCloud, count)
	for i := range clouds {
		clouds[i] = physics.NebulaCloud{
			Position: physics.Vec(l.Left+rng.Float64()*w, l.Top+rng.Float64()*h),
			Size:     rng.Float64()*40 + 30,
			Opacity:  rng.Float64()*0.3 + 0.2,
			Drift:    physics.Vec((rng.Float64()-0.5)*0.2, (rng.Float64()-0.5)*0.1),
			Color:    nebulaColors[rng.Intn(len(nebulaColors))],
		}
	}
	return clouds
}

// UpdateNebulae drifts each cloud and wraps it around the playfield.
func UpdateNebulae(clouds []physics.NebulaCloud, l Layout) {
	w := l.Right - l.Left
	h := l.PaddleY - l.Top
	for i := range clouds {
		c := &clouds[i]
		c.Position = c.Position.Add(c.Drift)
		c.Position.X = l.Left + wrap(c.Position.X-l.Left, w)
		c.Position.Y = l.Top + wrap(c.Position.Y-l.Top, h)
	}
}

func wrap(v, span float64) float64 {
	if span <= 0 {
		return 0
	}
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}
