package timeline

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// Padding applied around the union of all schedule dates.
const (
	PadDaysBefore = 14
	PadDaysAfter  = 30
)

// Range is the padded, inclusive span of calendar days shown on the timeline.
type Range struct {
	Min time.Time
	Max time.Time
}

// ComputeRange derives the visible range from every date in the snapshot
// plus now. Including now guarantees a non-empty range for an empty snapshot.
func ComputeRange(s domain.Snapshot, now time.Time) Range {
	dates := []time.Time{domain.StartOfDay(now)}
	for _, it := range s.Items {
		dates = append(dates, domain.StartOfDay(it.TargetDate), domain.StartOfDay(it.EffectiveEnd()))
	}
	for _, p := range s.Phases {
		dates = append(dates, domain.StartOfDay(p.StartDate), domain.StartOfDay(p.EndDate))
	}
	for _, m := range s.Milestones {
		dates = append(dates, domain.StartOfDay(m.Date))
	}

	min, _ := domain.MinTime(dates...)
	max, _ := domain.MaxTime(dates...)
	return Range{
		Min: domain.AddDays(min, -PadDaysBefore),
		Max: domain.AddDays(max, PadDaysAfter),
	}
}

// Days is the number of calendar days in the range, both ends included.
func (r Range) Days() int {
	return domain.DaysBetween(r.Min, r.Max) + 1
}

// Contains reports whether t falls on a day inside the range.
func (r Range) Contains(t time.Time) bool {
	d := domain.DaysBetween(r.Min, t)
	return d >= 0 && d < r.Days()
}
