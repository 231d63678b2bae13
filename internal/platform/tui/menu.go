package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode is the game mode picked in the menu.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeEndless
)

// Selection holds the player's choice from the mode menu.
type Selection struct {
	Mode  Mode
	Level int // 0-based starting level
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87d7ff"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf5f"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5f5f87"))
)

const menuHint = "Enter: Select  |  Esc: Back  |  Q: Quit"

// ModeModel lets the player choose the game mode and starting level.
type ModeModel struct {
	levels        []string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     Selection
	choosing      bool
	quitting      bool
}

// NewModeModel creates a mode menu listing the given level names.
func NewModeModel(levels []string, width, height int) ModeModel {
	return ModeModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(DefaultKeyMap()),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleModeSelect(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeModel) modes() []string {
	return []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Endless Mode",
		"Select Level...",
	}
}

func (m ModeModel) handleModeSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes())-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection = Selection{Mode: ModeCampaign}
		case 1:
			m.selection = Selection{Mode: ModeEndless}
		default:
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = Selection{Mode: ModeCampaign, Level: m.levelCursor}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode or level list.
func (m ModeModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	title, items, cursor := "B R E A K O U T", m.modes(), m.cursor
	if m.inLevelSelect {
		title, items, cursor = "SELECT LEVEL", m.levelLines(), m.levelCursor
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, title, m.width))
	b.WriteString("\n\n")

	for i, item := range items {
		line := "  " + item
		if i == cursor {
			line = cursorStyle.Render("> " + item)
		}
		b.WriteString(centerStyled(lipgloss.NewStyle(), line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(hintStyle, menuHint, m.width))
	return b.String()
}

func (m ModeModel) levelLines() []string {
	lines := make([]string, len(m.levels))
	for i, name := range m.levels {
		lines[i] = fmt.Sprintf("%2d. %s", i+1, name)
	}
	return lines
}

// centerStyled renders text with style and pads it to the middle of width.
func centerStyled(style lipgloss.Style, text string, width int) string {
	s := style.Render(text)
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Selected returns the selection, or nil if the player quit.
func (m ModeModel) Selected() *Selection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

// RunModeSelector shows the mode menu and returns the player's choice, or
// nil if they quit.
func RunModeSelector(levels []string, width, height int) (*Selection, error) {
	p := tea.NewProgram(NewModeModel(levels, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("mode menu: %w", err)
	}

	m, ok := final.(ModeModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
