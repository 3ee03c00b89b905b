package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func newTestAppModel(t *testing.T) appModel {
	t.Helper()
	return newAppModel(testApp(t), timeline.ZoomWeek)
}

func TestNewAppModelStartsAtGantt(t *testing.T) {
	m := newTestAppModel(t)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewGantt, m.activeView().ID())
	assert.Equal(t, timeline.ZoomWeek, m.state.Zoom)
	assert.Equal(t, 10, m.state.CellPx)
}

func TestAppModel_PushAndWizardComplete(t *testing.T) {
	m := newTestAppModel(t)
	form := newStubView(ViewForm, "Reschedule", "form")

	model, cmd := m.Update(pushViewMsg{view: form})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, form, m.activeView())

	next := func() tea.Msg { return statusMsg{text: "done"} }
	model, cmd = m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg{text: "done"}, cmd())
}

func TestAppModel_WizardCompleteKeepsRootView(t *testing.T) {
	m := newTestAppModel(t)

	model, _ := m.Update(wizardCompleteMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewGantt, m.activeView().ID())
}

func TestAppModel_RefreshBroadcastsToEveryView(t *testing.T) {
	m := newTestAppModel(t)
	bottom := newStubView(ViewGantt, "Gantt", "gantt")
	top := newStubView(ViewForm, "Form", "form")
	m.viewStack = []View{bottom, top}

	_, _ = m.Update(refreshViewMsg{})
	require.Len(t, bottom.updateSeen, 1)
	require.Len(t, top.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, bottom.updateSeen[0])
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newTestAppModel(t)
	v := newStubView(ViewGantt, "Gantt", "gantt")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 26, m.state.ContentHeight())
	require.Len(t, v.updateSeen, 1)
	assert.IsType(t, tea.WindowSizeMsg{}, v.updateSeen[0])
}

func TestAppModel_MouseIsRelativeToContent(t *testing.T) {
	m := newTestAppModel(t)
	v := newStubView(ViewGantt, "Gantt", "gantt")
	m.viewStack = []View{v}

	_, _ = m.Update(tea.MouseMsg{X: 40, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Len(t, v.updateSeen, 1)
	got := v.updateSeen[0].(tea.MouseMsg)
	assert.Equal(t, 40, got.X)
	assert.Equal(t, 9-headerLines, got.Y)
}

func TestAppModel_KeyHandling(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newTestAppModel(t)
		m.viewStack = []View{newStubView(ViewGantt, "Gantt", "gantt")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("form receives q and does not quit", func(t *testing.T) {
		m := newTestAppModel(t)
		v := newStubView(ViewForm, "Form", "form")
		m.viewStack = []View{v}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newTestAppModel(t)
		m.viewStack = []View{newStubView(ViewForm, "Form", "form")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})

	t.Run("other keys reach the view", func(t *testing.T) {
		m := newTestAppModel(t)
		v := newStubView(ViewGantt, "Gantt", "gantt")
		m.viewStack = []View{v}

		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
		require.Len(t, v.updateSeen, 1)
	})
}

func TestAppModel_HeaderAndStatusBar(t *testing.T) {
	m := newTestAppModel(t)
	v := newStubView(ViewGantt, "Gantt", "chart body")
	v.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "zoom in"))}
	m.viewStack = []View{v}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = model.(appModel)

	view := m.View()
	assert.Contains(t, view, "roadmap")
	assert.Contains(t, view, "Gantt")
	assert.Contains(t, view, "week")
	assert.Contains(t, view, "chart body")
	assert.Contains(t, view, "+: zoom in")
	assert.Contains(t, view, "q: quit")
	assert.Equal(t, 20, strings.Count(view, "\n")+1)
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewGantt, "Gantt", "")))
}

func TestAppModel_OutputViewportScroll(t *testing.T) {
	m := newTestAppModel(t)
	m.viewStack = []View{newStubView(ViewGantt, "Gantt", "gantt")}

	// Height 10 leaves 6 content lines.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = model.(appModel)

	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	model, _ = m.Update(cmdOutputMsg{output: strings.Join(lines, "\n")})
	m = model.(appModel)
	assert.True(t, m.outputActive)
	view := m.View()
	assert.Contains(t, view, "line 1")
	assert.Contains(t, view, "[TOP]")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(appModel)
	assert.True(t, m.outputActive)

	// Any other key dismisses the output and is consumed.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	assert.False(t, m.outputActive)
	assert.False(t, m.quitting)
	assert.Empty(t, m.lastOutput)
}

func TestAppModel_OutputShortContentNoScroll(t *testing.T) {
	m := newTestAppModel(t)
	m.viewStack = []View{newStubView(ViewGantt, "Gantt", "gantt")}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(appModel)

	model, _ = m.Update(cmdOutputMsg{output: "short output"})
	m = model.(appModel)

	view := m.View()
	assert.Contains(t, view, "short output")
	assert.NotContains(t, view, "pgup/pgdn")
	assert.Contains(t, view, "any key: dismiss")
}

func TestIsOutputScrollKey(t *testing.T) {
	scrollKeys := []tea.KeyType{
		tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD,
	}
	for _, k := range scrollKeys {
		assert.True(t, isOutputScrollKey(tea.KeyMsg{Type: k}), "expected scroll key: %v", k)
	}

	nonScrollKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
	}
	for _, k := range nonScrollKeys {
		assert.False(t, isOutputScrollKey(k), "expected non-scroll key: %v", k)
	}
}
