package domain

// Snapshot is the read-only view of the schedule handed to the timeline on
// every render. Consumers must not modify the slices or their elements.
type Snapshot struct {
	Items          []ScheduleItem
	Phases         []Phase
	Milestones     []Milestone
	SelectedItemID string
}

// ItemIndex maps item IDs to their position in Items.
func (s Snapshot) ItemIndex() map[string]int {
	idx := make(map[string]int, len(s.Items))
	for i, it := range s.Items {
		idx[it.ID] = i
	}
	return idx
}

// Item returns the item with the given ID.
func (s Snapshot) Item(id string) (ScheduleItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ScheduleItem{}, false
}

// DependentsCount returns how many items list id as a predecessor.
func (s Snapshot) DependentsCount(id string) int {
	n := 0
	for _, it := range s.Items {
		if it.DependsOnID(id) {
			n++
		}
	}
	return n
}
