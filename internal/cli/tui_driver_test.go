package cli

import (
	"testing"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/teatest"
	"github.com/alexanderramin/roadmap/internal/timeline"
)

// TestDriver wraps teatest.Driver with roadmap-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// the Gantt view) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App at week zoom on a
// 120x40 terminal and drains Init(), which loads the snapshot
// synchronously via in-memory SQLite.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, timeline.ZoomWeek)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── Chart coordinates ────────────────────────────────────────────────────────

// CellX returns the terminal column of chart column col.
func (d *TestDriver) CellX(col int) int {
	return d.gantt().ganttOptions().ChartOffset() + col
}

// RowY returns the terminal line of chart row i.
func (d *TestDriver) RowY(i int) int {
	return headerLines + formatter.GanttHeaderLines + i
}

// MilestoneY returns the terminal line of the milestone strip.
func (d *TestDriver) MilestoneY() int {
	return headerLines + formatter.GanttHeaderLines - 1
}

// RowIndex returns the chart row showing itemID, or -1.
func (d *TestDriver) RowIndex(itemID string) int {
	for i, row := range d.gantt().chart.Rows {
		if row.Kind == timeline.RowItem && row.ItemID == itemID {
			return i
		}
	}
	return -1
}

// PhaseRowIndex returns the chart row of phaseID, or -1.
func (d *TestDriver) PhaseRowIndex(phaseID string) int {
	for i, row := range d.gantt().chart.Rows {
		if row.Kind == timeline.RowPhase && row.PhaseID == phaseID {
			return i
		}
	}
	return -1
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// gantt returns the Gantt view at the bottom of the stack.
func (d *TestDriver) gantt() *ganttView {
	d.T.Helper()
	v, ok := d.appModel().viewStack[0].(*ganttView)
	if !ok {
		d.T.Fatalf("bottom view is %T, not *ganttView", d.appModel().viewStack[0])
	}
	return v
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the output pane content, if shown.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Status returns the Gantt view's footer notice.
func (d *TestDriver) Status() string {
	return d.gantt().status
}

// Dragging reports whether a drag session is active.
func (d *TestDriver) Dragging() bool {
	return d.gantt().drag.Active()
}
