package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	scrollStepCols = 8
	wheelStepRows  = 3
)

// ganttLoadedMsg carries a freshly loaded snapshot.
type ganttLoadedMsg struct {
	snap *domain.Snapshot
	err  error
}

// rescheduledMsg reports a store call made for a drag, a shift or the date
// form. drag marks replies to flush.
type rescheduledMsg struct {
	item *domain.ScheduleItem
	err  error
	drag bool
}

// mouseCapture records whether the Gantt view owns the pointer. While held,
// motion reaches the drag session wherever the pointer is.
type mouseCapture struct {
	held bool
}

func (c *mouseCapture) Capture() { c.held = true }
func (c *mouseCapture) Release() { c.held = false }

// ganttView is the interactive chart. It rebuilds the layout from the
// latest snapshot on every change and never edits the snapshot itself.
type ganttView struct {
	state *SharedState
	keys  ganttKeyMap
	help  help.Model

	snap  *domain.Snapshot
	chart *timeline.Chart
	err   error

	collapsed timeline.CollapsedPhases
	hoverID   string
	scrollX   int
	header    []string
	rows      viewport.Model
	status    string

	drag     *timeline.DragController
	capture  mouseCapture
	queued   []timeline.RescheduleRequest
	lastSent *timeline.RescheduleRequest
	flushing bool

	scrolledToToday bool
	shownSelection  string
}

func newGanttView(state *SharedState) *ganttView {
	v := &ganttView{
		state: state,
		keys:  newGanttKeyMap(),
		help:  help.New(),
		rows:  viewport.New(0, 0),
	}
	v.help.Styles.FullKey = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	v.help.Styles.FullDesc = formatter.StyleDim
	v.help.Styles.FullSeparator = formatter.StyleDim
	v.rows.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	v.drag = timeline.NewDragController(v.queue, &v.capture)
	return v
}

func (v *ganttView) ID() ViewID    { return ViewGantt }
func (v *ganttView) Title() string { return "Gantt" }

func (v *ganttView) ShortHelp() []key.Binding {
	return v.keys.ShortHelp()
}

func (v *ganttView) Init() tea.Cmd {
	return v.load()
}

// ── data ─────────────────────────────────────────────────────────────────────

func (v *ganttView) load() tea.Cmd {
	svc := v.state.App.Schedule
	return func() tea.Msg {
		snap, err := svc.Snapshot(context.Background())
		return ganttLoadedMsg{snap: snap, err: err}
	}
}

func (v *ganttView) selectCmd(id string) tea.Cmd {
	svc := v.state.App.Schedule
	return func() tea.Msg {
		ctx := context.Background()
		if err := svc.Select(ctx, id); err != nil {
			return ganttLoadedMsg{err: err}
		}
		snap, err := svc.Snapshot(ctx)
		return ganttLoadedMsg{snap: snap, err: err}
	}
}

func (v *ganttView) shiftCmd(id string, days int) tea.Cmd {
	svc := v.state.App.Schedule
	return func() tea.Msg {
		item, err := svc.Shift(context.Background(), id, days)
		return rescheduledMsg{item: item, err: err}
	}
}

// queue is the drag controller's reschedule callback. Consecutive
// identical requests (pointer moves within the same day) are dropped. A
// request replaces any unsent one for the same item: every request is
// computed from the drag origin, so the newest one is the only one that
// matters.
func (v *ganttView) queue(req timeline.RescheduleRequest) {
	if v.lastSent != nil && sameRequest(*v.lastSent, req) {
		return
	}
	r := req
	v.lastSent = &r
	for i := range v.queued {
		if v.queued[i].ItemID == req.ItemID {
			v.queued[i] = req
			return
		}
	}
	v.queued = append(v.queued, req)
}

// flush sends the oldest queued request to the store. Only one write is in
// flight at a time; the reply sends the next one, so writes land in the
// order they were queued. The store may clamp or refuse a request; the
// reload that follows shows what it kept.
func (v *ganttView) flush() tea.Cmd {
	if v.flushing || len(v.queued) == 0 {
		return nil
	}
	req := v.queued[0]
	v.queued = v.queued[1:]
	v.flushing = true
	svc := v.state.App.Schedule
	return func() tea.Msg {
		item, err := svc.Reschedule(context.Background(), req.ItemID, req.NewDate, req.NewEnd)
		return rescheduledMsg{item: item, err: err, drag: true}
	}
}

func sameRequest(a, b timeline.RescheduleRequest) bool {
	if a.ItemID != b.ItemID || !a.NewDate.Equal(b.NewDate) {
		return false
	}
	if a.NewEnd == nil || b.NewEnd == nil {
		return a.NewEnd == nil && b.NewEnd == nil
	}
	return a.NewEnd.Equal(*b.NewEnd)
}

// ── layout ───────────────────────────────────────────────────────────────────

func (v *ganttView) ganttOptions() formatter.GanttOptions {
	return formatter.GanttOptions{
		CellPx:  v.state.CellPx,
		Width:   v.state.Width,
		ScrollX: v.scrollX,
	}
}

// rebuild lays out the current snapshot and re-renders the text rows.
func (v *ganttView) rebuild() {
	if v.snap == nil {
		return
	}
	v.chart = timeline.Build(*v.snap, timeline.Options{
		Zoom:        timeline.ZoomFor(v.state.Zoom),
		Now:         v.state.App.now(),
		Collapsed:   v.collapsed,
		HoverItemID: v.hoverID,
	})
	v.clampScroll()

	text := formatter.RenderGantt(v.chart, v.ganttOptions())
	v.header = text.Header
	v.rows.Width = v.state.Width
	v.rows.Height = max(1, v.state.ContentHeight()-formatter.GanttHeaderLines-lipgloss.Height(v.footer()))
	v.rows.SetContent(strings.Join(text.Rows, "\n"))

	if sel := v.snap.SelectedItemID; sel != v.shownSelection {
		v.shownSelection = sel
		v.ensureVisible(sel)
	}
}

func (v *ganttView) clampScroll() {
	opts := v.ganttOptions()
	opts.ScrollX = 0
	visible := opts.Columns(v.chart)
	total := formatter.TotalColumns(v.chart, v.state.CellPx)

	if !v.scrolledToToday && v.chart.Today.Visible {
		v.scrolledToToday = true
		if col := opts.ColumnOf(v.chart.Today.X); v.state.Width > 0 && col >= visible {
			v.scrollX = col - visible/4
		}
	}
	v.scrollX = min(max(v.scrollX, 0), max(0, total-visible))
}

// ensureVisible scrolls the row viewport to the row of itemID.
func (v *ganttView) ensureVisible(itemID string) {
	for i, row := range v.chart.Rows {
		if row.Kind != timeline.RowItem || row.ItemID != itemID {
			continue
		}
		switch {
		case i < v.rows.YOffset:
			v.rows.SetYOffset(i)
		case i >= v.rows.YOffset+v.rows.Height:
			v.rows.SetYOffset(i - v.rows.Height + 1)
		}
		return
	}
}

func (v *ganttView) pixelX(x int) float64 {
	opts := v.ganttOptions()
	return opts.PixelX(x - opts.ChartOffset())
}

// rowAt maps a content line to a chart row.
func (v *ganttView) rowAt(y int) (timeline.Row, bool) {
	line := y - formatter.GanttHeaderLines
	i := line + v.rows.YOffset
	if line < 0 || line >= v.rows.Height || i >= len(v.chart.Rows) {
		return timeline.Row{}, false
	}
	return v.chart.Rows[i], true
}

// hitAt maps a content cell to what the chart has at the matching pixel:
// the horizontal center of the column and the vertical middle of the row.
func (v *ganttView) hitAt(x, y int) timeline.Hit {
	px := v.pixelX(x)
	if y == formatter.GanttHeaderLines-1 {
		return v.chart.HitTest(px, v.chart.MilestoneRowTop+timeline.MilestoneRowHeightPx/2)
	}
	row, ok := v.rowAt(y)
	if !ok {
		return timeline.Hit{}
	}
	return v.chart.HitTest(px, row.Top+row.Height/2)
}

func (v *ganttView) selectedItem() (domain.ScheduleItem, bool) {
	if v.snap == nil {
		return domain.ScheduleItem{}, false
	}
	return v.snap.Item(v.snap.SelectedItemID)
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *ganttView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ganttLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrItemNotFound) {
				v.status = msg.err.Error()
				return v, nil
			}
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.snap = msg.snap
		v.rebuild()
		return v, nil

	case rescheduledMsg:
		switch {
		case errors.Is(msg.err, service.ErrItemLocked):
			v.status = "Complete items cannot be rescheduled."
		case msg.err != nil:
			v.status = "Reschedule failed: " + msg.err.Error()
		case msg.item != nil:
			v.status = fmt.Sprintf("%s: %s", msg.item.Title, formatter.DateSpan(*msg.item))
		}
		if msg.drag {
			v.flushing = false
			if next := v.flush(); next != nil {
				return v, next
			}
		}
		return v, v.load()

	case statusMsg:
		v.status = msg.text
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.rebuild()
		return v, nil

	case tea.BlurMsg:
		if v.drag.Active() {
			v.endDrag(true)
			v.status = "Drag cancelled."
		}
		return v, nil

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *ganttView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if v.chart == nil {
		return v, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.rows.SetYOffset(v.rows.YOffset - wheelStepRows)
		return v, nil
	case tea.MouseButtonWheelDown:
		v.rows.SetYOffset(v.rows.YOffset + wheelStepRows)
		return v, nil
	case tea.MouseButtonWheelLeft:
		return v.scrollBy(-scrollStepCols)
	case tea.MouseButtonWheelRight:
		return v.scrollBy(scrollStepCols)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		return v.press(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if v.capture.held {
			v.drag.Update(v.pixelX(msg.X))
			return v, v.flush()
		}
		if msg.Button == tea.MouseButtonNone {
			v.hover(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if v.drag.Active() {
			v.endDrag(false)
		}
	}
	return v, nil
}

func (v *ganttView) press(x, y int) (tea.Model, tea.Cmd) {
	hit := v.hitAt(x, y)
	switch hit.Kind {
	case timeline.HitBar:
		it, ok := v.snap.Item(hit.ItemID)
		if !ok {
			return v, nil
		}
		v.lastSent = nil
		v.drag.Begin(it, hit.Mode, v.pixelX(x), v.chart.Zoom.DayWidthPx)
		v.hoverID = it.ID
		v.status = fmt.Sprintf("Dragging %s (%s)", it.Title, hit.Mode)
		v.rebuild()
		return v, v.selectCmd(it.ID)

	case timeline.HitPhase:
		v.collapsed.Toggle(hit.PhaseID)
		v.rebuild()
		return v, nil

	case timeline.HitMilestone:
		v.status = v.milestoneLabel(hit.MilestoneID)
		return v, nil
	}

	// A click on an item's label selects it without dragging.
	if row, ok := v.rowAt(y); ok && row.Kind == timeline.RowItem && x < v.ganttOptions().ChartOffset() {
		return v, v.selectCmd(row.ItemID)
	}
	return v, nil
}

// hover emphasizes the bar under an unpressed pointer along with its
// connectors. Over a milestone the footer shows its label.
func (v *ganttView) hover(x, y int) {
	hit := v.hitAt(x, y)
	id := ""
	switch hit.Kind {
	case timeline.HitBar:
		id = hit.ItemID
	case timeline.HitMilestone:
		v.status = v.milestoneLabel(hit.MilestoneID)
	}
	if id != v.hoverID {
		v.hoverID = id
		v.rebuild()
	}
}

func (v *ganttView) milestoneLabel(id string) string {
	for _, mk := range v.chart.Milestones {
		if mk.ID == id {
			return fmt.Sprintf("◆ %s %s · %d/%d linked items complete",
				mk.Title, formatter.FormatDate(mk.Date), mk.Completed, mk.Linked)
		}
	}
	return ""
}

// endDrag closes the session. cancel distinguishes focus loss or Esc from a
// normal release; requests already sent stay applied either way.
func (v *ganttView) endDrag(cancel bool) {
	if cancel {
		v.drag.Cancel()
	} else {
		v.drag.End()
	}
	v.hoverID = ""
	v.lastSent = nil
	v.rebuild()
}

func (v *ganttView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Cancel):
		if v.drag.Active() {
			v.endDrag(true)
			v.status = "Drag cancelled."
		}
		return v, nil

	case key.Matches(msg, v.keys.ZoomIn):
		v.setZoom(v.state.Zoom.Finer())
		return v, nil

	case key.Matches(msg, v.keys.ZoomOut):
		v.setZoom(v.state.Zoom.Coarser())
		return v, nil

	case key.Matches(msg, v.keys.Left):
		return v.scrollBy(-scrollStepCols)

	case key.Matches(msg, v.keys.Right):
		return v.scrollBy(scrollStepCols)

	case key.Matches(msg, v.keys.Down):
		return v, v.moveSelection(1)

	case key.Matches(msg, v.keys.Up):
		return v, v.moveSelection(-1)

	case key.Matches(msg, v.keys.Toggle):
		it, ok := v.selectedItem()
		if !ok {
			v.status = "Select an item, or click a phase row to collapse it."
			return v, nil
		}
		phaseID := it.PhaseID
		if !v.hasPhase(phaseID) {
			phaseID = timeline.UnphasedID
		}
		v.collapsed.Toggle(phaseID)
		v.rebuild()
		return v, nil

	case key.Matches(msg, v.keys.Earlier), key.Matches(msg, v.keys.Later):
		it, ok := v.selectedItem()
		if !ok {
			v.status = "Select an item first."
			return v, nil
		}
		days := 1
		if key.Matches(msg, v.keys.Earlier) {
			days = -1
		}
		return v, v.shiftCmd(it.ID, days)

	case key.Matches(msg, v.keys.Reschedule):
		return v, v.openWizard()

	case key.Matches(msg, v.keys.List):
		if v.snap == nil {
			return v, nil
		}
		return v, showOutput(formatter.FormatItemList(*v.snap, v.state.App.now()))

	case key.Matches(msg, v.keys.Refresh):
		return v, v.load()

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		v.rebuild()
		return v, nil
	}

	var cmd tea.Cmd
	v.rows, cmd = v.rows.Update(msg)
	return v, cmd
}

func (v *ganttView) setZoom(level timeline.ZoomLevel) {
	if level == v.state.Zoom {
		return
	}
	oldDW := timeline.ZoomFor(v.state.Zoom).DayWidthPx
	newDW := timeline.ZoomFor(level).DayWidthPx
	v.state.Zoom = level
	v.scrollX = int(float64(v.scrollX) * newDW / oldDW)
	v.rebuild()
}

func (v *ganttView) scrollBy(cols int) (tea.Model, tea.Cmd) {
	v.scrollX += cols
	v.rebuild()
	return v, nil
}

// moveSelection selects the visible bar delta rows away from the current
// selection, or the first bar when nothing is selected.
func (v *ganttView) moveSelection(delta int) tea.Cmd {
	if v.chart == nil || len(v.chart.Bars) == 0 {
		return nil
	}
	next := 0
	for i, b := range v.chart.Bars {
		if b.ItemID == v.chart.SelectedItemID {
			next = min(max(i+delta, 0), len(v.chart.Bars)-1)
			break
		}
	}
	return v.selectCmd(v.chart.Bars[next].ItemID)
}

func (v *ganttView) hasPhase(id string) bool {
	for _, p := range v.snap.Phases {
		if p.ID == id {
			return true
		}
	}
	return false
}

// openWizard pushes the date form for the selected item.
func (v *ganttView) openWizard() tea.Cmd {
	it, ok := v.selectedItem()
	if !ok {
		v.status = "Select an item first (j/k or click a bar)."
		return nil
	}

	var start, end string
	form := wizardReschedule(it, &start, &end)
	svc := v.state.App.Schedule
	return startWizardCmd(v.state, "Reschedule", form, func() tea.Cmd {
		return func() tea.Msg {
			newStart, newEnd, err := parseRescheduleInput(start, end)
			if err != nil {
				return rescheduledMsg{err: err}
			}
			item, err := svc.Reschedule(context.Background(), it.ID, newStart, newEnd)
			return rescheduledMsg{item: item, err: err}
		}
	})
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *ganttView) View() string {
	switch {
	case v.err != nil:
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	case v.chart == nil:
		return formatter.Dim("Loading schedule…")
	case len(v.chart.Rows) == 0:
		return strings.Join(v.header, "\n") + "\n\n" +
			formatter.Dim("No items yet. Run `roadmap import <file>` to load a roadmap.")
	}
	return strings.Join(v.header, "\n") + "\n" + v.rows.View() + "\n" + v.footer()
}

func (v *ganttView) footer() string {
	status := v.status
	if status == "" {
		status = formatter.Dim("drag a bar to reschedule · drag its ends to resize · click a phase to collapse")
	}
	if v.help.ShowAll {
		return status + "\n" + v.help.View(v.keys)
	}
	return status
}
