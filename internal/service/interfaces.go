package service

import (
	"context"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/importer"
)

type ScheduleService interface {
	// Snapshot loads the whole schedule with the current selection.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	// Reschedule moves an item to newDate with the given explicit end.
	// A nil newEnd keeps the end implied.
	Reschedule(ctx context.Context, id string, newDate time.Time, newEnd *time.Time) (*domain.ScheduleItem, error)
	// Shift moves an item and its explicit end by days.
	Shift(ctx context.Context, id string, days int) (*domain.ScheduleItem, error)
	GetItem(ctx context.Context, id string) (*domain.ScheduleItem, error)
	ListItems(ctx context.Context) ([]domain.ScheduleItem, error)
	ListPhases(ctx context.Context) ([]domain.Phase, error)
	ListMilestones(ctx context.Context) ([]domain.Milestone, error)
	// Select sets the selected item. An empty id clears the selection.
	Select(ctx context.Context, id string) error
	SelectedItemID() string
}

type ImportService interface {
	ImportRoadmap(ctx context.Context, filePath string) (*ImportResult, error)
	ImportRoadmapFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ImportResult struct {
	PhaseCount      int
	ItemCount       int
	DependencyCount int
	MilestoneCount  int
}
