package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

func TestAutopilot(t *testing.T) {
	g := newTestGame(ModeCampaign, 1)

	if in := Autopilot(g); !in.Has(core.ActionLaunch) {
		t.Error("autopilot should launch when serving")
	}

	g.state = StatePlaying
	g.ball.Position = physics.Vec(g.layout.Right-20, 150)
	g.ball.Velocity = physics.Vec(1, 1)
	if in := Autopilot(g); !in.Has(core.ActionRight) {
		t.Error("autopilot should chase the ball to the right")
	}

	g.ball.Position = physics.Vec(g.layout.Left+20, 150)
	g.ball.Velocity = physics.Vec(-1, 1)
	if in := Autopilot(g); !in.Has(core.ActionLeft) {
		t.Error("autopilot should chase the ball to the left")
	}

	g.state = StateGameOver
	if in := Autopilot(g); len(in.Actions) != 0 {
		t.Error("autopilot should idle after game over")
	}
}
