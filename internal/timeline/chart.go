package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// Vertical metrics in pixels.
const (
	HeaderHeightPx       = 44
	MilestoneRowHeightPx = 32
	PhaseRowHeightPx     = 32
	ItemRowHeightPx      = 36
	BarHeightPx          = 24
	PhaseBarHeightPx     = 8
	HandleWidthPx        = 8
	MilestoneHitPx       = 8
)

type RowKind int

const (
	RowPhase RowKind = iota
	RowItem
)

// Row is one horizontal band below the milestone row.
type Row struct {
	Kind   RowKind
	Top    float64
	Height float64

	PhaseID string
	ItemID  string // RowItem only
	Label   string
	Icon    string
	Color   string

	// RowPhase only.
	ItemCount int
	Completed int
	Collapsed bool
	Span      *PhaseSpan // nil for the synthetic unphased group

	BarIndex int // index into Chart.Bars for RowItem, -1 otherwise
}

// Options are the transient UI inputs to Build.
type Options struct {
	Zoom        ZoomConfig
	Now         time.Time
	Collapsed   CollapsedPhases
	HoverItemID string
}

// Chart is the complete geometry of one render pass.
type Chart struct {
	Range  Range
	Zoom   ZoomConfig
	Mapper Mapper
	Now    time.Time
	Width  float64
	Height float64

	Months    []MonthSegment
	Gridlines []Gridline
	Today     TodayMarker

	MilestoneRowTop float64
	Milestones      []MilestoneMarker

	Rows       []Row
	Bars       []Bar // visible bars only, in row order
	Connectors []Connector

	SelectedItemID string
	HoverItemID    string
}

// Build lays out s. It does not modify s.
func Build(s domain.Snapshot, opts Options) *Chart {
	zoom := opts.Zoom
	if zoom.DayWidthPx <= 0 {
		zoom = ZoomFor(ZoomWeek)
	}
	r := ComputeRange(s, opts.Now)
	m := NewMapper(r, zoom)

	c := &Chart{
		Range:           r,
		Zoom:            zoom,
		Mapper:          m,
		Now:             opts.Now,
		Width:           m.Width(),
		Months:          MonthSegments(m, opts.Now),
		Gridlines:       Gridlines(m),
		Today:           Today(m, opts.Now),
		MilestoneRowTop: HeaderHeightPx,
		Milestones:      LayoutMilestones(s, m),
		SelectedItemID:  s.SelectedItemID,
		HoverItemID:     opts.HoverItemID,
	}

	y := float64(HeaderHeightPx + MilestoneRowHeightPx)
	for _, g := range GroupByPhase(s) {
		collapsed := opts.Collapsed.IsCollapsed(g.Phase.ID)
		row := Row{
			Kind:      RowPhase,
			Top:       y,
			Height:    PhaseRowHeightPx,
			PhaseID:   g.Phase.ID,
			Label:     g.Phase.Name,
			Icon:      g.Phase.Type.Icon(),
			Color:     g.Phase.Color,
			ItemCount: len(g.Items),
			Completed: g.Completed,
			Collapsed: collapsed,
			BarIndex:  -1,
		}
		if !g.Synthetic {
			span := layoutPhaseSpan(g.Phase, m)
			row.Span = &span
		}
		c.Rows = append(c.Rows, row)
		y += PhaseRowHeightPx

		if collapsed {
			continue
		}
		for _, it := range g.Items {
			b := LayoutItem(it, m)
			b.Top = y + (ItemRowHeightPx-BarHeightPx)/2
			b.Height = BarHeightPx
			b.Selected = it.ID == s.SelectedItemID
			b.Hovered = it.ID == opts.HoverItemID
			b.Dependents = s.DependentsCount(it.ID)
			b.Style = styleFor(it, g.Phase.Color, b.Selected)

			c.Rows = append(c.Rows, Row{
				Kind:     RowItem,
				Top:      y,
				Height:   ItemRowHeightPx,
				PhaseID:  g.Phase.ID,
				ItemID:   it.ID,
				Label:    it.Title,
				Color:    b.Style.AccentColor,
				BarIndex: len(c.Bars),
			})
			c.Bars = append(c.Bars, b)
			y += ItemRowHeightPx
		}
	}
	c.Height = y

	deps := make(map[string][]string, len(s.Items))
	for _, it := range s.Items {
		if len(it.DependsOn) > 0 {
			deps[it.ID] = it.DependsOn
		}
	}
	c.Connectors = RouteDependencies(c.Bars, deps, opts.HoverItemID, s.SelectedItemID)
	return c
}

// Bar returns the visible bar of an item.
func (c *Chart) Bar(itemID string) (Bar, bool) {
	for _, b := range c.Bars {
		if b.ItemID == itemID {
			return b, true
		}
	}
	return Bar{}, false
}

type HitKind int

const (
	HitNone HitKind = iota
	HitBar
	HitPhase
	HitMilestone
)

// Hit describes what lies under a chart-space point.
type Hit struct {
	Kind        HitKind
	ItemID      string
	PhaseID     string
	MilestoneID string
	Mode        DragMode // HitBar only
}

// HitTest resolves a point in chart pixels. Bars have an HandleWidthPx grab
// zone on each edge for resizing; the rest of the bar moves it.
func (c *Chart) HitTest(x, y float64) Hit {
	if y >= c.MilestoneRowTop && y < c.MilestoneRowTop+MilestoneRowHeightPx {
		for _, mk := range c.Milestones {
			if math.Abs(x-mk.X) <= MilestoneHitPx {
				return Hit{Kind: HitMilestone, MilestoneID: mk.ID}
			}
		}
		return Hit{}
	}
	for _, row := range c.Rows {
		if y < row.Top || y >= row.Top+row.Height {
			continue
		}
		if row.Kind == RowPhase {
			return Hit{Kind: HitPhase, PhaseID: row.PhaseID}
		}
		b := c.Bars[row.BarIndex]
		if x < b.Left || x > b.Right() {
			return Hit{}
		}
		mode := DragMove
		switch {
		case x < b.Left+HandleWidthPx:
			mode = DragResizeStart
		case x > b.Right()-HandleWidthPx:
			mode = DragResizeEnd
		}
		return Hit{Kind: HitBar, ItemID: b.ItemID, PhaseID: b.PhaseID, Mode: mode}
	}
	return Hit{}
}
