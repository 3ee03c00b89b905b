package timeline

import (
	"slices"
	"sort"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// UnphasedID is the synthetic group for items whose phase is not in the snapshot.
const UnphasedID = "__unphased__"

// CollapsedPhases is the set of phase IDs whose item rows are hidden.
// The zero value is an empty, usable set.
type CollapsedPhases struct {
	ids map[string]struct{}
}

// NewCollapsedPhases returns a set holding ids.
func NewCollapsedPhases(ids ...string) CollapsedPhases {
	var c CollapsedPhases
	for _, id := range ids {
		c.Collapse(id)
	}
	return c
}

func (c *CollapsedPhases) Collapse(id string) {
	if c.ids == nil {
		c.ids = make(map[string]struct{})
	}
	c.ids[id] = struct{}{}
}

func (c *CollapsedPhases) Expand(id string) {
	delete(c.ids, id)
}

// Toggle flips id and reports whether it is now collapsed.
func (c *CollapsedPhases) Toggle(id string) bool {
	if c.IsCollapsed(id) {
		c.Expand(id)
		return false
	}
	c.Collapse(id)
	return true
}

func (c CollapsedPhases) IsCollapsed(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// IDs returns the collapsed IDs in sorted order.
func (c CollapsedPhases) IDs() []string {
	out := make([]string, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// PhaseGroup is a phase together with its items in display order.
type PhaseGroup struct {
	Phase     domain.Phase
	Items     []domain.ScheduleItem
	Completed int
	Synthetic bool
}

// GroupByPhase orders phases by Order (then ID) and items within each phase
// by TargetDate (then ID). Items referencing an unknown phase are collected
// into a trailing synthetic group.
func GroupByPhase(s domain.Snapshot) []PhaseGroup {
	phases := slices.Clone(s.Phases)
	sort.SliceStable(phases, func(i, j int) bool {
		if phases[i].Order != phases[j].Order {
			return phases[i].Order < phases[j].Order
		}
		return phases[i].ID < phases[j].ID
	})

	groups := make([]PhaseGroup, len(phases))
	byID := make(map[string]int, len(phases))
	for i, p := range phases {
		groups[i] = PhaseGroup{Phase: p}
		byID[p.ID] = i
	}

	orphans := PhaseGroup{
		Phase:     domain.Phase{ID: UnphasedID, Name: "Unphased", Type: domain.PhaseGeneric, Color: ColorMuted},
		Synthetic: true,
	}
	for _, it := range s.Items {
		g := &orphans
		if i, ok := byID[it.PhaseID]; ok {
			g = &groups[i]
		}
		g.Items = append(g.Items, it)
		if it.IsComplete() {
			g.Completed++
		}
	}
	if len(orphans.Items) > 0 {
		groups = append(groups, orphans)
	}

	for i := range groups {
		items := groups[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			if !items[a].TargetDate.Equal(items[b].TargetDate) {
				return items[a].TargetDate.Before(items[b].TargetDate)
			}
			return items[a].ID < items[b].ID
		})
	}
	return groups
}
