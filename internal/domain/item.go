package domain

import (
	"math"
	"slices"
	"time"
)

// ImpliedDurationDays is the layout-only duration of an item without an
// explicit end date.
const ImpliedDurationDays = 7

type ScheduleItem struct {
	ID         string
	Title      string
	PhaseID    string
	Status     ItemStatus
	Priority   Priority
	TargetDate time.Time
	EndDate    *time.Time
	DependsOn  []string
	AssigneeID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveEnd returns EndDate, or TargetDate plus ImpliedDurationDays when
// no end date is set. The item is never modified.
func (i ScheduleItem) EffectiveEnd() time.Time {
	if i.EndDate != nil {
		return *i.EndDate
	}
	return AddDays(i.TargetDate, ImpliedDurationDays)
}

// DurationDays is the whole-day length of the item, at least 1.
func (i ScheduleItem) DurationDays() int {
	days := int(math.Ceil(i.EffectiveEnd().Sub(i.TargetDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// IsComplete reports whether the item has reached its terminal status.
func (i ScheduleItem) IsComplete() bool {
	return i.Status == StatusComplete
}

// DependsOnID reports whether id is one of the item's predecessors.
func (i ScheduleItem) DependsOnID(id string) bool {
	return slices.Contains(i.DependsOn, id)
}
