package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/core"
)

type fakeGame struct {
	resets  int
	steps   int
	lastCfg core.RuntimeConfig
	seen    []core.Action
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	for a := range in.Actions {
		if in.Has(a) {
			g.seen = append(g.seen, a)
		}
	}
	return core.StepResult{State: core.GameState{Score: g.steps}}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return core.GameState{} }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestModelForwardsInputOnTick(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	assert.True(t, m.inputFrame.Has(core.ActionLeft))

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, game.steps)
	assert.Equal(t, []core.Action{core.ActionLeft}, game.seen)
	assert.False(t, m.inputFrame.Has(core.ActionLeft), "input is cleared after a tick")
	assert.Equal(t, 1, m.gameState.Score)
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, core.DefaultConfig())

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.Init()
	require.Equal(t, 1, game.resets)
	assert.Equal(t, 23, game.lastCfg.ScreenH, "one row is kept for the help line")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 5, TickRate: 60})

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "fake game")
	assert.Contains(t, lines[4], "quit")
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "xyz", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "cd")
	assert.Contains(t, lines[1], "xyz")
}
