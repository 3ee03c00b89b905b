package timeline

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

// exampleSnapshot is a single item on 2024-03-01 without an end date.
func exampleSnapshot() domain.Snapshot {
	return domain.Snapshot{Items: []domain.ScheduleItem{{
		ID:         "launch-post",
		Title:      "Launch post",
		PhaseID:    "p1",
		Status:     domain.StatusPlanned,
		Priority:   domain.PriorityHigh,
		TargetDate: date(2024, 3, 1),
	}}}
}
