package timeline

import (
	"strconv"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// MonthSegment is one header label spanning the part of a calendar month
// that intersects the range.
type MonthSegment struct {
	Label          string
	Month          time.Time // first day of the month
	X              float64
	Width          float64
	IsCurrentMonth bool
}

// Gridline is a vertical guide at the left edge of Date.
type Gridline struct {
	Date      time.Time
	X         float64
	WeekStart bool
	Label     string // day of month; empty when no label is drawn
}

// TodayMarker is the single vertical "now" line shared by every row.
type TodayMarker struct {
	Date    time.Time
	X       float64
	Visible bool
}

// MonthSegments returns one segment per calendar month intersecting the range.
func MonthSegments(m Mapper, now time.Time) []MonthSegment {
	rangeEnd := domain.AddDays(m.Range.Max, 1)
	y, mon, _ := m.Range.Min.Date()
	month := time.Date(y, mon, 1, 0, 0, 0, 0, time.UTC)
	ny, nm, _ := now.Date()

	var segs []MonthSegment
	for month.Before(rangeEnd) {
		next := month.AddDate(0, 1, 0)
		start := month
		if start.Before(m.Range.Min) {
			start = m.Range.Min
		}
		end := next
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		segs = append(segs, MonthSegment{
			Label:          month.Format("Jan 2006"),
			Month:          month,
			X:              m.PositionForDate(start),
			Width:          float64(domain.DaysBetween(start, end)) * m.Zoom.DayWidthPx,
			IsCurrentMonth: month.Year() == ny && month.Month() == nm,
		})
		month = next
	}
	return segs
}

// Gridlines returns one line per day at daily resolution, otherwise one per
// ISO week starting Monday. Week starts carry a day-of-month label except at
// the coarsest zoom.
func Gridlines(m Mapper) []Gridline {
	labelled := !m.Zoom.IsCoarsest()
	days := m.Range.Days()

	var lines []Gridline
	for i := 0; i < days; i++ {
		d := domain.AddDays(m.Range.Min, i)
		weekStart := d.Weekday() == time.Monday
		if m.Zoom.Grid == GridWeekly && !weekStart {
			continue
		}
		g := Gridline{Date: d, X: m.PositionForDate(d), WeekStart: weekStart}
		if weekStart && labelled {
			g.Label = strconv.Itoa(d.Day())
		}
		lines = append(lines, g)
	}
	return lines
}

// Today computes the today marker once for a render pass.
func Today(m Mapper, now time.Time) TodayMarker {
	d := domain.StartOfDay(now)
	return TodayMarker{
		Date:    d,
		X:       m.PositionForDate(d),
		Visible: m.Range.Contains(d),
	}
}
