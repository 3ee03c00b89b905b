package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// GanttHeaderLines is the number of lines above the first chart row:
// months, day labels and the milestone row.
const GanttHeaderLines = 3

const (
	DefaultCellPx     = 10
	DefaultLabelWidth = 28

	barTextColor = "#282828"
)

// GanttOptions maps chart pixels onto terminal cells. Column c of the chart
// area covers pixels [(c+ScrollX)*CellPx, (c+ScrollX+1)*CellPx).
type GanttOptions struct {
	CellPx     int
	LabelWidth int
	// Width is the total line width including labels. Zero renders the
	// whole chart.
	Width   int
	ScrollX int
}

func (o GanttOptions) withDefaults() GanttOptions {
	if o.CellPx <= 0 {
		o.CellPx = DefaultCellPx
	}
	if o.LabelWidth <= 0 {
		o.LabelWidth = DefaultLabelWidth
	}
	if o.ScrollX < 0 {
		o.ScrollX = 0
	}
	return o
}

// ChartOffset is the terminal column where the chart area starts.
func (o GanttOptions) ChartOffset() int {
	return o.withDefaults().LabelWidth + 1
}

// Columns is the number of chart columns rendered for c.
func (o GanttOptions) Columns(c *timeline.Chart) int {
	o = o.withDefaults()
	if o.Width > 0 {
		return max(0, o.Width-o.ChartOffset())
	}
	return max(0, TotalColumns(c, o.CellPx)-o.ScrollX)
}

// TotalColumns is the chart width in terminal cells.
func TotalColumns(c *timeline.Chart, cellPx int) int {
	if cellPx <= 0 {
		cellPx = DefaultCellPx
	}
	return int(math.Ceil(c.Width / float64(cellPx)))
}

// PixelX returns the chart pixel at the center of chart column col.
func (o GanttOptions) PixelX(col int) float64 {
	o = o.withDefaults()
	return float64((col+o.ScrollX)*o.CellPx) + float64(o.CellPx)/2
}

// ColumnOf returns the chart column containing pixel x. It may be
// negative or past the right edge.
func (o GanttOptions) ColumnOf(x float64) int {
	o = o.withDefaults()
	return int(math.Floor(x/float64(o.CellPx))) - o.ScrollX
}

// GanttText is a rendered chart split into the fixed header and one line
// per chart row so callers can scroll rows independently.
type GanttText struct {
	Header []string
	Rows   []string
}

func (g GanttText) String() string {
	return strings.Join(append(append([]string{}, g.Header...), g.Rows...), "\n")
}

// RenderGantt draws c as a colored terminal strip.
func RenderGantt(c *timeline.Chart, opts GanttOptions) GanttText {
	o := opts.withDefaults()
	g := gantt{chart: c, opts: o, cols: o.Columns(c), offset: o.ChartOffset()}

	out := GanttText{Header: []string{g.monthLine(), g.dayLine(), g.milestoneLine()}}
	for _, row := range c.Rows {
		out.Rows = append(out.Rows, g.rowLine(row))
	}
	return out
}

type gantt struct {
	chart  *timeline.Chart
	opts   GanttOptions
	cols   int
	offset int
}

func (g gantt) newLine() canvas {
	cv := newCanvas(g.offset + g.cols)
	cv.set(g.opts.LabelWidth, '│', cellStyle{fg: string(ColorDim)})
	return cv
}

// chartCol converts a pixel to a canvas index, reporting whether it is
// inside the visible chart area.
func (g gantt) chartCol(x float64) (int, bool) {
	col := g.opts.ColumnOf(x)
	return g.offset + col, col >= 0 && col < g.cols
}

func (g gantt) monthLine() string {
	cv := g.newLine()
	cv.text(0, Truncate(fmt.Sprintf("%s zoom", g.chart.Zoom.Level), g.opts.LabelWidth), cellStyle{fg: string(ColorDim)})
	for _, seg := range g.chart.Months {
		start := g.opts.ColumnOf(seg.X)
		end := g.opts.ColumnOf(seg.X + seg.Width)
		if end <= 0 || start >= g.cols {
			continue
		}
		start = max(start, 0)
		st := cellStyle{fg: string(ColorFg)}
		if seg.IsCurrentMonth {
			st = cellStyle{fg: string(ColorHeader), bold: true}
		}
		label := Truncate(seg.Label, end-start-1)
		cv.set(g.offset+start, '┊', cellStyle{fg: string(ColorDim)})
		cv.text(g.offset+start+1, label, st)
	}
	return cv.render()
}

func (g gantt) dayLine() string {
	cv := g.newLine()
	for _, gl := range g.chart.Gridlines {
		col, ok := g.chartCol(gl.X)
		if !ok || gl.Label == "" {
			continue
		}
		cv.text(col, gl.Label, cellStyle{fg: string(ColorDim)})
	}
	if t := g.chart.Today; t.Visible {
		if col, ok := g.chartCol(t.X); ok {
			cv.set(col, '▼', cellStyle{fg: string(ColorRed), bold: true})
		}
	}
	return cv.render()
}

func (g gantt) milestoneLine() string {
	cv := g.newLine()
	cv.text(0, "Milestones", cellStyle{fg: string(ColorPurple)})
	for _, mk := range g.chart.Milestones {
		if col, ok := g.chartCol(mk.X); ok {
			label := fmt.Sprintf("%s %d/%d", mk.Title, mk.Completed, mk.Linked)
			cv.text(col+2, Truncate(label, max(0, g.offset+g.cols-col-2)), cellStyle{fg: mk.Color})
		}
	}
	// Markers go last so a neighbour's title never hides one.
	for _, mk := range g.chart.Milestones {
		if col, ok := g.chartCol(mk.X); ok {
			cv.set(col, '◆', cellStyle{fg: mk.Color, bold: true})
		}
	}
	return cv.render()
}

func (g gantt) rowLine(row timeline.Row) string {
	cv := g.newLine()
	g.background(cv)

	if row.Kind == timeline.RowPhase {
		g.phaseRow(cv, row)
	} else {
		g.itemRow(cv, row)
	}
	return cv.render()
}

// background draws gridlines and the today line.
func (g gantt) background(cv canvas) {
	for _, gl := range g.chart.Gridlines {
		if !gl.WeekStart {
			continue
		}
		if col, ok := g.chartCol(gl.X); ok {
			cv.set(col, '┆', cellStyle{fg: string(ColorDim)})
		}
	}
	if t := g.chart.Today; t.Visible {
		if col, ok := g.chartCol(t.X); ok {
			cv.set(col, '│', cellStyle{fg: string(ColorRed)})
		}
	}
}

func (g gantt) phaseRow(cv canvas, row timeline.Row) {
	caret := "▾"
	if row.Collapsed {
		caret = "▸"
	}
	label := fmt.Sprintf("%s %s %s (%d/%d)", caret, row.Icon, row.Label, row.Completed, row.ItemCount)
	cv.text(0, Truncate(label, g.opts.LabelWidth), cellStyle{fg: row.Color, bold: true})

	if row.Span == nil {
		return
	}
	g.fill(cv, row.Span.Left, row.Span.Left+row.Span.Width, '━', cellStyle{fg: row.Color})
}

func (g gantt) itemRow(cv canvas, row timeline.Row) {
	b := g.chart.Bars[row.BarIndex]

	label := "  " + row.Label
	st := cellStyle{fg: string(ColorFg)}
	if b.Selected {
		label = "▸ " + row.Label
		st.bold = true
	}
	cv.text(0, Truncate(label, g.opts.LabelWidth), st)

	for _, cn := range g.chart.Connectors {
		if cn.ToID != b.ItemID {
			continue
		}
		arrow := cellStyle{fg: string(ColorDim)}
		if cn.Emphasized {
			arrow = cellStyle{fg: string(ColorPurple), bold: true}
		}
		if col, ok := g.chartCol(b.Left - 1); ok {
			cv.set(col, '▶', arrow)
		}
	}

	bg := b.Style.FillColor
	if b.Selected || b.Hovered {
		bg = b.Style.BorderColor
	}
	fill := cellStyle{fg: barTextColor, bg: bg, bold: b.Selected}
	first, last := g.fill(cv, b.Left, b.Right(), ' ', fill)
	if first > last {
		return
	}

	cv.set(first, []rune(StatusGlyph(b.Status))[0], cellStyle{fg: b.Style.IndicatorColor, bg: bg, bold: true})
	if last-first >= 3 {
		cv.text(first+2, Truncate(b.Title, last-first-3), fill)
	}
	if last > first {
		cv.set(last, '•', cellStyle{fg: b.Style.PriorityColor, bg: bg, bold: true})
	}
	if b.Dependents > 0 {
		cv.text(last+2, fmt.Sprintf("+%d", b.Dependents), cellStyle{fg: string(ColorPurple)})
	}
}

// fill paints the visible columns covering pixels [from, to) and returns
// the first and last painted canvas index. first > last when nothing is
// visible.
func (g gantt) fill(cv canvas, from, to float64, r rune, st cellStyle) (first, last int) {
	start := g.opts.ColumnOf(from)
	end := max(start, g.opts.ColumnOf(to-1))
	start = max(start, 0)
	end = min(end, g.cols-1)
	for col := start; col <= end; col++ {
		cv.set(g.offset+col, r, st)
	}
	return g.offset + start, g.offset + end
}

// cellStyle is comparable so runs of equal cells render as one span.
type cellStyle struct {
	fg   string
	bg   string
	bold bool
}

func (s cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.bold)
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	return st
}

type cell struct {
	r  rune
	st cellStyle
}

// canvas is one line of single-width cells.
type canvas []cell

func newCanvas(width int) canvas {
	cv := make(canvas, width)
	for i := range cv {
		cv[i].r = ' '
	}
	return cv
}

func (cv canvas) set(i int, r rune, st cellStyle) {
	if i < 0 || i >= len(cv) {
		return
	}
	cv[i] = cell{r: r, st: st}
}

func (cv canvas) text(i int, s string, st cellStyle) {
	for _, r := range s {
		cv.set(i, r, st)
		i++
	}
}

func (cv canvas) render() string {
	var b strings.Builder
	for i := 0; i < len(cv); {
		j := i
		var run strings.Builder
		for j < len(cv) && cv[j].st == cv[i].st {
			run.WriteRune(cv[j].r)
			j++
		}
		if cv[i].st == (cellStyle{}) {
			b.WriteString(run.String())
		} else {
			b.WriteString(cv[i].st.style().Render(run.String()))
		}
		i = j
	}
	return strings.TrimRight(b.String(), " ")
}
