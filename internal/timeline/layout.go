package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// MinBarWidthPx keeps bar labels legible at any zoom.
const MinBarWidthPx = 80

// Bar is the horizontal geometry and presentation of one item.
type Bar struct {
	ItemID       string
	Title        string
	PhaseID      string
	Start        time.Time
	End          time.Time // effective end; never written back to the item
	DurationDays int
	Left         float64
	Width        float64
	Style        StyleDescriptor
	Status       domain.ItemStatus
	AssigneeID   string
	Dependents   int
	Selected     bool
	Hovered      bool

	// Vertical placement, filled in by Build. Zero for a standalone layout.
	Top    float64
	Height float64
}

// Right is the x offset of the bar's trailing edge.
func (b Bar) Right() float64 { return b.Left + b.Width }

// CenterY is the vertical middle of the bar.
func (b Bar) CenterY() float64 { return b.Top + b.Height/2 }

// LayoutItem computes the bar geometry of it.
func LayoutItem(it domain.ScheduleItem, m Mapper) Bar {
	duration := it.DurationDays()
	width := math.Max(float64(duration)*m.Zoom.DayWidthPx, MinBarWidthPx)
	return Bar{
		ItemID:       it.ID,
		Title:        it.Title,
		PhaseID:      it.PhaseID,
		Start:        it.TargetDate,
		End:          it.EffectiveEnd(),
		DurationDays: duration,
		Left:         m.PositionForDate(it.TargetDate),
		Width:        width,
		Status:       it.Status,
		AssigneeID:   it.AssigneeID,
	}
}

// PhaseSpan is the horizontal extent of a phase's intended window.
type PhaseSpan struct {
	Left  float64
	Width float64
}

func layoutPhaseSpan(p domain.Phase, m Mapper) PhaseSpan {
	left := m.PositionForDate(p.StartDate)
	width := m.PositionForDate(p.EndDate) - left + m.Zoom.DayWidthPx
	if width < m.Zoom.DayWidthPx {
		width = m.Zoom.DayWidthPx
	}
	return PhaseSpan{Left: left, Width: width}
}
