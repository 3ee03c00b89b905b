package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/timeline"
)

const titleWidth = 36

// FormatItemList renders items as a table grouped the way the timeline
// orders them: phases by order, items by start date.
func FormatItemList(snap domain.Snapshot, now time.Time) string {
	if len(snap.Items) == 0 {
		return RenderBox("Items", Dim("No items. Import a roadmap with `roadmap import <file>`."))
	}

	headers := []string{"ID", "TITLE", "PHASE", "STATUS", "PRIORITY", "DATES", "DEPS", "DUE"}
	var rows [][]string
	for _, g := range timeline.GroupByPhase(snap) {
		phase := HexStyle(g.Phase.Color).Render(g.Phase.Name)
		for _, it := range g.Items {
			title := Truncate(it.Title, titleWidth)
			if it.ID == snap.SelectedItemID {
				title = Bold("▸ " + title)
			}
			deps := Dim("--")
			if n := len(it.DependsOn); n > 0 {
				deps = strconv.Itoa(n)
			}
			if n := snap.DependentsCount(it.ID); n > 0 {
				deps += StylePurple.Render(fmt.Sprintf(" +%d", n))
			}
			rows = append(rows, []string{
				TruncID(it.ID),
				title,
				phase,
				StatusPill(it.Status),
				PriorityBadge(it.Priority),
				DateSpan(it),
				deps,
				RelativeDateStyled(it.TargetDate, now),
			})
		}
	}
	return RenderBox("Items", RenderTable(headers, rows))
}

// FormatPhaseList renders phases in timeline order with item progress.
func FormatPhaseList(snap domain.Snapshot) string {
	if len(snap.Phases) == 0 {
		return RenderBox("Phases", Dim("No phases."))
	}

	headers := []string{"", "NAME", "TYPE", "START", "END", "ITEMS"}
	var rows [][]string
	for _, g := range timeline.GroupByPhase(snap) {
		if g.Synthetic {
			continue
		}
		style := HexStyle(g.Phase.Color)
		rows = append(rows, []string{
			style.Render(g.Phase.Type.Icon()),
			style.Bold(true).Render(g.Phase.Name),
			Dim(string(g.Phase.Type)),
			FormatDate(g.Phase.StartDate),
			FormatDate(g.Phase.EndDate),
			progress(g.Completed, len(g.Items)),
		})
	}
	return RenderBox("Phases", RenderTable(headers, rows))
}

// FormatMilestoneList renders milestones by date with linked-item progress.
func FormatMilestoneList(snap domain.Snapshot, now time.Time) string {
	if len(snap.Milestones) == 0 {
		return RenderBox("Milestones", Dim("No milestones."))
	}

	m := timeline.NewMapper(timeline.ComputeRange(snap, now), timeline.ZoomFor(timeline.ZoomDay))
	headers := []string{"", "DATE", "TITLE", "PROGRESS", "WHEN"}
	var rows [][]string
	for _, mk := range timeline.LayoutMilestones(snap, m) {
		icon := mk.Icon
		if icon == "" {
			icon = "◆"
		}
		rows = append(rows, []string{
			HexStyle(mk.Color).Render(icon),
			FormatDate(mk.Date),
			Bold(mk.Title),
			progress(mk.Completed, mk.Linked),
			RelativeDateStyled(mk.Date, now),
		})
	}
	return RenderBox("Milestones", RenderTable(headers, rows))
}

// FormatRange summarises a built chart's visible range and geometry.
func FormatRange(c *timeline.Chart) string {
	today := Dim("outside range")
	if c.Today.Visible {
		today = fmt.Sprintf("%s at %gpx", FormatDate(c.Today.Date), c.Today.X)
	}
	lines := []string{
		fmt.Sprintf("%s  %s → %s", Bold("Range"), FormatDate(c.Range.Min), FormatDate(c.Range.Max)),
		fmt.Sprintf("%s   %d days", Bold("Days"), c.Range.Days()),
		fmt.Sprintf("%s   %s (%gpx/day)", Bold("Zoom"), c.Zoom.Level, c.Zoom.DayWidthPx),
		fmt.Sprintf("%s  %gpx × %gpx", Bold("Chart"), c.Width, c.Height),
		fmt.Sprintf("%s  %s", Bold("Today"), today),
	}
	return strings.Join(lines, "\n")
}

// FormatRescheduled reports the outcome of a reschedule.
func FormatRescheduled(before, after domain.ScheduleItem) string {
	if before.TargetDate.Equal(after.TargetDate) && sameDay(before.EndDate, after.EndDate) {
		return fmt.Sprintf("%s %s unchanged (%s)", StyleDim.Render("="), Bold(after.Title), DateSpan(after))
	}
	return fmt.Sprintf("%s Moved %s\n  %s\n  %s",
		StyleGreen.Render("✔"), Bold(after.Title),
		Dim("from ")+DateSpan(before),
		Dim("to   ")+DateSpan(after))
}

func progress(done, total int) string {
	return RenderCompletion(done, total, 8)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return domain.SameDay(*a, *b)
}
