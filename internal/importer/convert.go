package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/google/uuid"
)

// Roadmap is a converted import file ready for persistence. Items carry
// their DependsOn edges; the store writes them after all items exist.
type Roadmap struct {
	Phases     []*domain.Phase
	Items      []*domain.ScheduleItem
	Milestones []*domain.Milestone
}

// DependencyCount returns the number of dependency edges across all items.
func (r *Roadmap) DependencyCount() int {
	n := 0
	for _, it := range r.Items {
		n += len(it.DependsOn)
	}
	return n
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Roadmap, error) {
	now := time.Now().UTC().Truncate(time.Second)
	defaults := schema.Defaults
	if defaults == nil {
		defaults = &DefaultsImport{}
	}

	out := &Roadmap{
		Phases:     make([]*domain.Phase, 0, len(schema.Phases)),
		Items:      make([]*domain.ScheduleItem, 0, len(schema.Items)),
		Milestones: make([]*domain.Milestone, 0, len(schema.Milestones)),
	}

	for i, p := range schema.Phases {
		start, err := domain.ParseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("phase %q: %w", p.ID, err)
		}
		end, err := domain.ParseDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("phase %q: %w", p.ID, err)
		}
		order := i
		if p.Order != nil {
			order = *p.Order
		}
		out.Phases = append(out.Phases, &domain.Phase{
			ID:        p.ID,
			Name:      p.Name,
			Type:      domain.PhaseType(domain.CoalesceStr(p.Type, defaults.PhaseType, string(domain.PhaseGeneric))),
			Order:     order,
			Color:     p.Color,
			StartDate: start,
			EndDate:   end,
		})
	}

	for _, it := range schema.Items {
		target, err := domain.ParseDate(it.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Title, err)
		}
		priority, err := domain.ParsePriority(domain.CoalesceStr(it.Priority, defaults.Priority))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Title, err)
		}
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		out.Items = append(out.Items, &domain.ScheduleItem{
			ID:         id,
			Title:      it.Title,
			PhaseID:    it.Phase,
			Status:     domain.ItemStatus(domain.CoalesceStr(it.Status, defaults.Status, string(domain.StatusPlanned))),
			Priority:   priority,
			TargetDate: target,
			EndDate:    parseOptionalDate(it.EndDate),
			DependsOn:  append([]string(nil), it.DependsOn...),
			AssigneeID: it.Assignee,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	for _, m := range schema.Milestones {
		date, err := domain.ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("milestone %q: %w", m.Title, err)
		}
		id := m.ID
		if id == "" {
			id = uuid.New().String()
		}
		out.Milestones = append(out.Milestones, &domain.Milestone{
			ID:            id,
			Title:         m.Title,
			Date:          date,
			Icon:          domain.CoalesceStr(m.Icon, defaults.MilestoneIcon),
			Color:         m.Color,
			LinkedItemIDs: append([]string(nil), m.Items...),
		})
	}

	return out, nil
}
