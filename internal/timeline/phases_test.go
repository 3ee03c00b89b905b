package timeline

import (
	"testing"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phasedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Phases: []domain.Phase{
			{ID: "launch", Name: "Launch", Order: 2, Type: domain.PhaseLaunch, StartDate: date(2024, 4, 1), EndDate: date(2024, 4, 14)},
			{ID: "create", Name: "Create", Order: 1, Type: domain.PhaseCreation, Color: "#b8bb26", StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31)},
		},
		Items: []domain.ScheduleItem{
			{ID: "i3", PhaseID: "launch", TargetDate: date(2024, 4, 2)},
			{ID: "i2", PhaseID: "create", TargetDate: date(2024, 3, 10), Status: domain.StatusComplete},
			{ID: "i1", PhaseID: "create", TargetDate: date(2024, 3, 2), DependsOn: nil},
			{ID: "i4", PhaseID: "gone", TargetDate: date(2024, 3, 5)},
		},
	}
}

func TestGroupByPhase_Ordering(t *testing.T) {
	groups := GroupByPhase(phasedSnapshot())

	require.Len(t, groups, 3)
	assert.Equal(t, "create", groups[0].Phase.ID)
	assert.Equal(t, "launch", groups[1].Phase.ID)
	assert.Equal(t, UnphasedID, groups[2].Phase.ID)
	assert.True(t, groups[2].Synthetic)

	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "i1", groups[0].Items[0].ID)
	assert.Equal(t, "i2", groups[0].Items[1].ID)
	assert.Equal(t, 1, groups[0].Completed)
	assert.Equal(t, "i4", groups[2].Items[0].ID)
}

func TestGroupByPhase_DoesNotReorderSnapshot(t *testing.T) {
	s := phasedSnapshot()
	GroupByPhase(s)
	assert.Equal(t, "launch", s.Phases[0].ID)
	assert.Equal(t, "i3", s.Items[0].ID)
}

func TestCollapsedPhases(t *testing.T) {
	var c CollapsedPhases
	assert.False(t, c.IsCollapsed("a"))

	assert.True(t, c.Toggle("a"))
	assert.True(t, c.IsCollapsed("a"))
	c.Collapse("b")
	assert.Equal(t, []string{"a", "b"}, c.IDs())

	assert.False(t, c.Toggle("a"))
	assert.False(t, c.IsCollapsed("a"))
	assert.Equal(t, []string{"b"}, c.IDs())

	n := NewCollapsedPhases("x", "y")
	assert.True(t, n.IsCollapsed("y"))
}
