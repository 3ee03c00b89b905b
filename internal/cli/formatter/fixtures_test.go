package formatter

import (
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/testutil"
	"github.com/alexanderramin/roadmap/internal/timeline"
)

var sampleNow = testutil.Date(2026, 3, 10)

// sampleSnapshot has two phases, a dependency chain across them, an
// unphased item and one milestone.
func sampleSnapshot() domain.Snapshot {
	discovery := testutil.NewTestPhase("Discovery", testutil.Date(2026, 3, 2), testutil.Date(2026, 3, 15),
		testutil.WithPhaseID("p1"), testutil.WithPhaseType(domain.PhaseDiscovery), testutil.WithOrder(1), testutil.WithColor("#83a598"))
	launch := testutil.NewTestPhase("Launch", testutil.Date(2026, 3, 16), testutil.Date(2026, 3, 31),
		testutil.WithPhaseID("p2"), testutil.WithPhaseType(domain.PhaseLaunch), testutil.WithOrder(2), testutil.WithColor("#fe8019"))

	research := testutil.NewTestItem("Research", testutil.Date(2026, 3, 2),
		testutil.WithItemID("research"), testutil.WithPhase("p1"),
		testutil.WithEndDate(testutil.Date(2026, 3, 6)), testutil.WithStatus(domain.StatusComplete))
	brief := testutil.NewTestItem("Brief", testutil.Date(2026, 3, 9),
		testutil.WithItemID("brief"), testutil.WithPhase("p1"),
		testutil.WithStatus(domain.StatusInProgress), testutil.WithDependsOn("research"))
	post := testutil.NewTestItem("Launch post", testutil.Date(2026, 3, 18),
		testutil.WithItemID("post"), testutil.WithPhase("p2"),
		testutil.WithEndDate(testutil.Date(2026, 3, 20)), testutil.WithPriority(domain.PriorityCritical),
		testutil.WithDependsOn("brief"))
	loose := testutil.NewTestItem("Loose end", testutil.Date(2026, 3, 10), testutil.WithItemID("loose"))

	beta := testutil.NewTestMilestone("Beta", testutil.Date(2026, 3, 13),
		testutil.WithMilestoneID("beta"), testutil.WithLinkedItems("research", "brief"))

	return domain.Snapshot{
		Items:      []domain.ScheduleItem{*research, *brief, *post, *loose},
		Phases:     []domain.Phase{*launch, *discovery},
		Milestones: []domain.Milestone{*beta},
	}
}

func sampleChart(snap domain.Snapshot, opts ...func(*timeline.Options)) *timeline.Chart {
	o := timeline.Options{Zoom: timeline.ZoomFor(timeline.ZoomWeek), Now: sampleNow}
	for _, fn := range opts {
		fn(&o)
	}
	return timeline.Build(snap, o)
}

func collapsed(ids ...string) func(*timeline.Options) {
	return func(o *timeline.Options) { o.Collapsed = timeline.NewCollapsedPhases(ids...) }
}
