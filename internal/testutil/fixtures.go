package testutil

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/google/uuid"
)

// Date returns midnight UTC of the given calendar day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Item options
type ItemOption func(*domain.ScheduleItem)

func WithItemID(id string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.ID = id
	}
}

func WithPhase(phaseID string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.PhaseID = phaseID
	}
}

func WithEndDate(d time.Time) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.EndDate = &d
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.Status = s
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.Priority = p
	}
}

func WithDependsOn(ids ...string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.DependsOn = append(i.DependsOn, ids...)
	}
}

func WithAssignee(id string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.AssigneeID = id
	}
}

func NewTestItem(title string, target time.Time, opts ...ItemOption) *domain.ScheduleItem {
	now := time.Now().UTC().Truncate(time.Second)
	it := &domain.ScheduleItem{
		ID:         uuid.New().String(),
		Title:      title,
		Status:     domain.StatusPlanned,
		Priority:   domain.PriorityMedium,
		TargetDate: target,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseID(id string) PhaseOption {
	return func(p *domain.Phase) {
		p.ID = id
	}
}

func WithPhaseType(t domain.PhaseType) PhaseOption {
	return func(p *domain.Phase) {
		p.Type = t
	}
}

func WithOrder(o int) PhaseOption {
	return func(p *domain.Phase) {
		p.Order = o
	}
}

func WithColor(c string) PhaseOption {
	return func(p *domain.Phase) {
		p.Color = c
	}
}

func NewTestPhase(name string, start, end time.Time, opts ...PhaseOption) *domain.Phase {
	p := &domain.Phase{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.PhaseGeneric,
		StartDate: start,
		EndDate:   end,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithMilestoneID(id string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.ID = id
	}
}

func WithLinkedItems(ids ...string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.LinkedItemIDs = append(m.LinkedItemIDs, ids...)
	}
}

func WithIcon(icon string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Icon = icon
	}
}

func NewTestMilestone(title string, date time.Time, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ID:    uuid.New().String(),
		Title: title,
		Date:  date,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
