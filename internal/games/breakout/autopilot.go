package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Autopilot returns the input a simple bot would press this tick: launch
// when serving, otherwise keep the paddle under the ball.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	if g.state == StateServe && g.serveDelay == 0 {
		in.Set(core.ActionLaunch)
		return in
	}
	if g.state != StatePlaying {
		return in
	}

	// Aim slightly off center so the ball keeps an angle.
	target := g.ball.Position.X + g.paddle.Width/6
	if g.ball.Velocity.X < 0 {
		target = g.ball.Position.X - g.paddle.Width/6
	}

	deadzone := g.cfg.Paddle.Speed / 2
	switch dx := target - g.paddle.CenterX(); {
	case dx > deadzone:
		in.Set(core.ActionRight)
	case dx < -deadzone:
		in.Set(core.ActionLeft)
	}
	return in
}
