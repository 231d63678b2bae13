package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("full help lists %d bindings, expected 7", n)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawColorText(0, 1, "red", "#ff0000")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "plain") || !strings.Contains(lines[1], "red") {
		t.Errorf("text missing from output: %q", out)
	}

	// Styles are cached per colour.
	a := styleFor("#ff0000")
	b := styleFor("#ff0000")
	if a.GetForeground() != b.GetForeground() {
		t.Error("cached style mismatch")
	}
}

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets   int
	inputs   []core.InputFrame
	state    core.GameState
	lastSize [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastSize = [2]int{cfg.ScreenW, cfg.ScreenH}
	g.state = core.GameState{Lives: 3}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, log.New(io.Discard))
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelFeedsInputToStep(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if g.resets != 1 || g.lastSize != [2]int{20, 5} {
		t.Fatalf("Init should reset with the footer row removed, resets=%d size=%v", g.resets, g.lastSize)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("Step calls = %d, expected 1", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionLaunch) {
		t.Errorf("frame missing actions: %+v", g.inputs[0].Actions)
	}

	// Input is cleared after each tick.
	update(t, m, TickMsg(time.Now()))
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input should not carry over to the next tick")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('r'))
	update(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("restart should reset the game, resets=%d", g.resets)
	}
}

func TestModelResizeAndQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if g.lastSize != [2]int{40, 11} {
		t.Errorf("resize should reset at the new size, got %v", g.lastSize)
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should contain the rendered game")
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModeModel(t *testing.T) {
	levels := []string{"One", "Two", "Three"}

	t.Run("endless", func(t *testing.T) {
		var m tea.Model = NewModeModel(levels, 40, 20)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		sel := m.(ModeModel).Selected()
		if sel == nil || sel.Mode != ModeEndless {
			t.Errorf("expected endless selection, got %+v", sel)
		}
	})

	t.Run("level select", func(t *testing.T) {
		var m tea.Model = NewModeModel(levels, 40, 20)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !strings.Contains(m.View(), "Three") {
			t.Errorf("level list should show level names:\n%s", m.View())
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		sel := m.(ModeModel).Selected()
		if sel == nil || sel.Mode != ModeCampaign || sel.Level != 1 {
			t.Errorf("expected campaign from level 2, got %+v", sel)
		}
	})

	t.Run("quit", func(t *testing.T) {
		var m tea.Model = NewModeModel(levels, 40, 20)
		m, _ = m.Update(runeKey('q'))
		if m.(ModeModel).Selected() != nil {
			t.Error("quitting should yield no selection")
		}
	})
}
