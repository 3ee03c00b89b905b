package timeline

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// MilestoneMarker is a diamond on the milestone row.
type MilestoneMarker struct {
	ID        string
	Title     string
	Icon      string
	Color     string
	Date      time.Time
	X         float64
	Linked    int // linked items present in the snapshot
	Completed int // of those, how many are complete
}

// LayoutMilestones positions every milestone with the same mapper used for
// bars, so markers and bars for one date share an x offset.
func LayoutMilestones(s domain.Snapshot, m Mapper) []MilestoneMarker {
	idx := s.ItemIndex()
	out := make([]MilestoneMarker, 0, len(s.Milestones))
	for _, ms := range s.Milestones {
		mk := MilestoneMarker{
			ID:    ms.ID,
			Title: ms.Title,
			Icon:  ms.Icon,
			Color: ms.Color,
			Date:  ms.Date,
			X:     m.PositionForDate(ms.Date),
		}
		if mk.Color == "" {
			mk.Color = "#d3869b"
		}
		for _, id := range ms.LinkedItemIDs {
			i, ok := idx[id]
			if !ok {
				continue
			}
			mk.Linked++
			if s.Items[i].IsComplete() {
				mk.Completed++
			}
		}
		out = append(out, mk)
	}
	return out
}
