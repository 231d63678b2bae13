package breakout

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scoreRollTicks is how long the HUD takes to count up to a new score.
const scoreRollTicks = 20

// scoreCounter animates the displayed score toward the real one.
type scoreCounter struct {
	tween  *gween.Tween
	shown  float32
	target int
}

// set starts rolling toward score from whatever is shown now.
func (s *scoreCounter) set(score int) {
	if score == s.target {
		return
	}
	s.target = score
	s.tween = gween.New(s.shown, float32(score), scoreRollTicks, ease.OutQuad)
}

// reset jumps straight to score without animating.
func (s *scoreCounter) reset(score int) {
	s.tween = nil
	s.shown = float32(score)
	s.target = score
}

// update advances the roll by one tick.
func (s *scoreCounter) update() {
	if s.tween == nil {
		return
	}
	val, done := s.tween.Update(1)
	s.shown = val
	if done {
		s.shown = float32(s.target)
		s.tween = nil
	}
}

// value returns the score to display.
func (s *scoreCounter) value() int {
	if s.tween == nil {
		return s.target
	}
	return int(s.shown + 0.5)
}
