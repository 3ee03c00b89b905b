package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/testutil"
	"github.com/alexanderramin/roadmap/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDriver(t *testing.T) (*TestDriver, *App) {
	t.Helper()
	app := testApp(t)
	seedRoadmap(t, app)
	return NewTestDriver(t, app), app
}

// barCols returns the first and last chart column of itemID's bar.
func (d *TestDriver) barCols(itemID string) (int, int) {
	d.T.Helper()
	v := d.gantt()
	b, ok := v.chart.Bar(itemID)
	require.True(d.T, ok, "bar %s not visible", itemID)
	opts := v.ganttOptions()
	return opts.ColumnOf(b.Left), opts.ColumnOf(b.Right() - 1)
}

func TestGanttView_LoadsSnapshot(t *testing.T) {
	d, _ := seededDriver(t)

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	view := d.View()
	for _, want := range []string{"Discovery", "Research", "Launch post", "Unphased", "Milestones", "Beta"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 0, d.PhaseRowIndex("p1"))
	assert.Equal(t, 4, d.RowIndex("post"))
}

func TestGanttView_EmptySnapshot(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	assert.Contains(t, d.View(), "No items yet")
}

func TestGanttView_DragMovesItem(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("post")
	mid := (first + last) / 2
	y := d.RowY(d.RowIndex("post"))

	// Four columns are 40px, two days at week zoom.
	d.Drag(d.CellX(mid), d.CellX(mid+4), y)

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 20), testutil.Date(2026, 3, 22))
	assert.False(t, d.Dragging())
	assert.Equal(t, "post", app.Schedule.SelectedItemID())
}

func TestGanttView_DragMovesImpliedEndItem(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("brief")
	mid := (first + last) / 2

	d.Drag(d.CellX(mid), d.CellX(mid+4), d.RowY(d.RowIndex("brief")))

	it := getItem(t, app, "brief")
	assert.True(t, it.TargetDate.Equal(testutil.Date(2026, 3, 11)))
	assert.Nil(t, it.EndDate, "implied end stays implied")
}

func TestGanttView_DragBackwards(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("post")
	mid := (first + last) / 2

	d.Drag(d.CellX(mid), d.CellX(mid-6), d.RowY(d.RowIndex("post")))

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 15), testutil.Date(2026, 3, 17))
}

func TestGanttView_ResizeEnd(t *testing.T) {
	d, app := seededDriver(t)
	_, last := d.barCols("post")

	d.Drag(d.CellX(last), d.CellX(last+4), d.RowY(d.RowIndex("post")))

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 18), testutil.Date(2026, 3, 22))
}

func TestGanttView_ResizeStart(t *testing.T) {
	d, app := seededDriver(t)
	first, _ := d.barCols("post")

	d.Drag(d.CellX(first), d.CellX(first-4), d.RowY(d.RowIndex("post")))

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 16), testutil.Date(2026, 3, 20))
}

func TestGanttView_ResizeEndClampsToOneDay(t *testing.T) {
	d, app := seededDriver(t)
	_, last := d.barCols("post")

	d.Drag(d.CellX(last), d.CellX(last-20), d.RowY(d.RowIndex("post")))

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 18), testutil.Date(2026, 3, 19))
}

func TestGanttView_BlurCancelsDrag(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("post")
	mid := (first + last) / 2
	y := d.RowY(d.RowIndex("post"))

	d.MouseDown(d.CellX(mid), y)
	d.MouseMove(d.CellX(mid+1), y)
	d.MouseMove(d.CellX(mid+2), y)
	require.True(t, d.Dragging())

	d.Blur()
	assert.False(t, d.Dragging())
	assert.Equal(t, "Drag cancelled.", d.Status())

	// Moves after the cancel are ignored; the applied day stays.
	d.MouseMove(d.CellX(mid+8), y)
	d.MouseUp(d.CellX(mid+8), y)
	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 19), testutil.Date(2026, 3, 21))
}

func TestGanttView_EscCancelsDrag(t *testing.T) {
	d, _ := seededDriver(t)
	first, last := d.barCols("post")
	y := d.RowY(d.RowIndex("post"))

	d.MouseDown(d.CellX((first+last)/2), y)
	require.True(t, d.Dragging())
	d.PressEsc()
	assert.False(t, d.Dragging())
	assert.False(t, d.IsQuitting())
}

func TestGanttView_LockedItemRefusesDrag(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("research")
	mid := (first + last) / 2

	d.Drag(d.CellX(mid), d.CellX(mid+4), d.RowY(d.RowIndex("research")))

	assertDates(t, getItem(t, app, "research"), testutil.Date(2026, 3, 2), testutil.Date(2026, 3, 6))
	assert.Contains(t, d.Status(), "cannot be rescheduled")
}

func TestGanttView_ClickPhaseTogglesCollapse(t *testing.T) {
	d, _ := seededDriver(t)
	y := d.RowY(d.PhaseRowIndex("p1"))

	d.Click(2, y)
	assert.Equal(t, -1, d.RowIndex("research"))
	assert.Equal(t, -1, d.RowIndex("brief"))
	assert.Equal(t, 2, d.RowIndex("post"), "rows below shift up")
	assert.NotContains(t, d.View(), "Research")

	d.Click(2, y)
	assert.Equal(t, 1, d.RowIndex("research"))
}

func TestGanttView_ClickMilestoneShowsProgress(t *testing.T) {
	d, _ := seededDriver(t)
	v := d.gantt()
	col := v.ganttOptions().ColumnOf(v.chart.Milestones[0].X)

	d.Click(d.CellX(col), d.MilestoneY())
	assert.Contains(t, d.Status(), "Beta")
	assert.Contains(t, d.Status(), "1/2")
}

func TestGanttView_ClickLabelSelects(t *testing.T) {
	d, app := seededDriver(t)

	d.Click(3, d.RowY(d.RowIndex("loose")))
	assert.Equal(t, "loose", app.Schedule.SelectedItemID())
	assert.False(t, d.Dragging())
}

func TestGanttView_KeyboardSelectionAndShift(t *testing.T) {
	d, app := seededDriver(t)

	d.PressKey('j')
	assert.Equal(t, "research", app.Schedule.SelectedItemID())
	d.PressKey('j')
	assert.Equal(t, "brief", app.Schedule.SelectedItemID())
	d.PressKey('k')
	d.PressKey('j')
	assert.Equal(t, "brief", app.Schedule.SelectedItemID())

	d.PressKey(']')
	assert.True(t, getItem(t, app, "brief").TargetDate.Equal(testutil.Date(2026, 3, 10)))
	d.PressKey('[')
	d.PressKey('[')
	assert.True(t, getItem(t, app, "brief").TargetDate.Equal(testutil.Date(2026, 3, 8)))
}

func TestGanttView_EnterCollapsesSelectedPhase(t *testing.T) {
	d, _ := seededDriver(t)

	d.PressEnter()
	assert.Contains(t, d.Status(), "Select an item")

	d.PressKey('j')
	d.PressEnter()
	assert.Equal(t, -1, d.RowIndex("research"))
	d.PressEnter()
	assert.Equal(t, 1, d.RowIndex("research"))
}

func TestGanttView_Zoom(t *testing.T) {
	d, _ := seededDriver(t)

	d.PressKey('+')
	assert.Equal(t, timeline.ZoomDay, d.State().Zoom)
	assert.Equal(t, 40.0, d.gantt().chart.Zoom.DayWidthPx)
	d.PressKey('+')
	assert.Equal(t, timeline.ZoomDay, d.State().Zoom, "finest level stays")

	d.PressKey('-')
	d.PressKey('-')
	assert.Equal(t, timeline.ZoomMonth, d.State().Zoom)
	assert.Contains(t, d.View(), "month")
}

func TestGanttView_HorizontalScrollClamps(t *testing.T) {
	d, _ := seededDriver(t)
	v := d.gantt()

	d.PressKey('h')
	assert.Equal(t, 0, v.scrollX)

	for range 20 {
		d.PressKey('l')
	}
	opts := v.ganttOptions()
	visible := opts.Columns(v.chart)
	assert.Equal(t, formatter.TotalColumns(v.chart, 10)-visible, v.scrollX)
}

func TestGanttView_RescheduleForm(t *testing.T) {
	d, _ := seededDriver(t)

	d.PressKey('d')
	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Contains(t, d.Status(), "Select an item first")

	d.PressKey('j')
	d.PressKey('d')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "Start date")

	// q goes to the form, not the quit handler.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.Status())
}

func TestGanttView_ItemListOutput(t *testing.T) {
	d, _ := seededDriver(t)

	d.PressKey('i')
	assert.Contains(t, d.LastOutput(), "Launch post")

	d.PressKey('x')
	assert.Empty(t, d.LastOutput())
}

func TestGanttView_HelpToggle(t *testing.T) {
	d, _ := seededDriver(t)

	assert.NotContains(t, d.View(), "1 day earlier")
	d.PressKey('?')
	assert.Contains(t, d.View(), "1 day earlier")
}

func TestGanttView_QueueKeepsNewestRequestPerItem(t *testing.T) {
	v := newGanttView(&SharedState{App: testApp(t)})
	end := testutil.Date(2026, 3, 21)
	req := timeline.RescheduleRequest{ItemID: "post", NewDate: testutil.Date(2026, 3, 19), NewEnd: &end}

	v.queue(req)
	same := req
	sameEnd := end.Add(0)
	same.NewEnd = &sameEnd
	v.queue(same)
	require.Len(t, v.queued, 1)

	next := req
	next.NewDate = next.NewDate.Add(24 * time.Hour)
	v.queue(next)
	require.Len(t, v.queued, 1)
	assert.True(t, v.queued[0].NewDate.Equal(next.NewDate))

	v.queue(timeline.RescheduleRequest{ItemID: "brief", NewDate: testutil.Date(2026, 3, 10)})
	require.Len(t, v.queued, 2)
	assert.Equal(t, "post", v.queued[0].ItemID)

	implied := req
	implied.NewEnd = nil
	v.queue(implied)
	require.Len(t, v.queued, 2)
	assert.Nil(t, v.queued[0].NewEnd)
}

func TestGanttView_DragWritesLandInPointerOrder(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("post")
	mid := (first + last) / 2
	y := d.RowY(d.RowIndex("post"))

	d.MouseDown(d.CellX(mid), y)
	motion := func(x int) tea.Cmd {
		model, cmd := d.Model.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		d.Model = model
		return cmd
	}
	oneDay := motion(d.CellX(mid + 2))
	twoDays := motion(d.CellX(mid + 4))
	require.NotNil(t, oneDay)
	assert.Nil(t, twoDays, "second write waits for the first reply")

	// The runtime may finish Cmds in any order; run the later one first.
	for _, cmd := range []tea.Cmd{twoDays, oneDay} {
		if cmd != nil {
			d.Send(cmd())
		}
	}
	d.MouseUp(d.CellX(mid+4), y)

	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 20), testutil.Date(2026, 3, 22))
	assert.False(t, d.gantt().flushing)
	assert.Empty(t, d.gantt().queued)
}

func TestGanttView_HoverEmphasizesBar(t *testing.T) {
	d, _ := seededDriver(t)
	first, last := d.barCols("post")

	d.Hover(d.CellX((first+last)/2), d.RowY(d.RowIndex("post")))
	v := d.gantt()
	assert.Equal(t, "post", v.hoverID)
	assert.False(t, d.Dragging())
	b, ok := v.chart.Bar("post")
	require.True(t, ok)
	assert.True(t, b.Hovered)
	require.NotEmpty(t, v.chart.Connectors)
	for _, c := range v.chart.Connectors {
		touches := c.FromID == "post" || c.ToID == "post"
		assert.Equal(t, touches, c.Emphasized, "%s -> %s", c.FromID, c.ToID)
	}

	d.Hover(2, d.RowY(d.PhaseRowIndex("p1")))
	assert.Empty(t, d.gantt().hoverID)
	b, _ = d.gantt().chart.Bar("post")
	assert.False(t, b.Hovered)
}

func TestGanttView_HoverMilestoneShowsLabel(t *testing.T) {
	d, _ := seededDriver(t)
	v := d.gantt()
	col := v.ganttOptions().ColumnOf(v.chart.Milestones[0].X)

	d.Hover(d.CellX(col), d.MilestoneY())
	assert.Contains(t, d.Status(), "Beta")
	assert.Empty(t, d.gantt().hoverID)
}

func TestGanttView_ArrowKeysMoveSelection(t *testing.T) {
	d, app := seededDriver(t)

	d.PressDown()
	assert.Equal(t, "research", app.Schedule.SelectedItemID())
	d.PressDown()
	assert.Equal(t, "brief", app.Schedule.SelectedItemID())
	d.PressUp()
	assert.Equal(t, "research", app.Schedule.SelectedItemID())
}

func TestGanttView_DragAfterFocusReturns(t *testing.T) {
	d, app := seededDriver(t)
	first, last := d.barCols("post")
	mid := (first + last) / 2
	y := d.RowY(d.RowIndex("post"))

	d.MouseDown(d.CellX(mid), y)
	d.Blur()
	d.Focus()
	assert.False(t, d.Dragging())
	assert.Equal(t, "Drag cancelled.", d.Status())

	d.Drag(d.CellX(mid), d.CellX(mid+4), y)
	assertDates(t, getItem(t, app, "post"), testutil.Date(2026, 3, 20), testutil.Date(2026, 3, 22))
}

func TestGanttView_CtrlCQuitsMidDrag(t *testing.T) {
	d, _ := seededDriver(t)
	first, last := d.barCols("post")

	d.MouseDown(d.CellX((first+last)/2), d.RowY(d.RowIndex("post")))
	require.True(t, d.Dragging())
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}
