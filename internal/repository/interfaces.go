package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, it *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	List(ctx context.Context) ([]domain.ScheduleItem, error)
	ListByPhase(ctx context.Context, phaseID string) ([]domain.ScheduleItem, error)
	Update(ctx context.Context, it *domain.ScheduleItem) error
	// UpdateSchedule rewrites only the item's dates.
	UpdateSchedule(ctx context.Context, id string, target time.Time, end *time.Time, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, predecessorID, successorID string) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	ListPredecessors(ctx context.Context, itemID string) ([]string, error)
	ListSuccessors(ctx context.Context, itemID string) ([]string, error)
	// ListAll maps each successor ID to its predecessor IDs.
	ListAll(ctx context.Context) (map[string][]string, error)
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	List(ctx context.Context) ([]domain.Phase, error)
	Update(ctx context.Context, p *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	List(ctx context.Context) ([]domain.Milestone, error)
	LinkItem(ctx context.Context, milestoneID, itemID string) error
	Delete(ctx context.Context, id string) error
}
