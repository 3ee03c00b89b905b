package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/roadmap/internal/db"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/repository"
)

type scheduleService struct {
	items      repository.ItemRepo
	phases     repository.PhaseRepo
	milestones repository.MilestoneRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
	now        func() time.Time

	mu       sync.Mutex
	selected string
}

func NewScheduleService(
	items repository.ItemRepo,
	phases repository.PhaseRepo,
	milestones repository.MilestoneRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		items:      items,
		phases:     phases,
		milestones: milestones,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) Snapshot(ctx context.Context) (snap *domain.Snapshot, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "snapshot", time.Now(), fields, &err)

	snap = &domain.Snapshot{}
	if snap.Items, err = s.items.List(ctx); err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	if snap.Phases, err = s.phases.List(ctx); err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}
	if snap.Milestones, err = s.milestones.List(ctx); err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}

	// A selection whose item was deleted is dropped.
	selected := s.SelectedItemID()
	if _, ok := snap.Item(selected); ok {
		snap.SelectedItemID = selected
	}

	fields["item_count"] = len(snap.Items)
	fields["phase_count"] = len(snap.Phases)
	fields["milestone_count"] = len(snap.Milestones)
	return snap, nil
}

func (s *scheduleService) Reschedule(ctx context.Context, id string, newDate time.Time, newEnd *time.Time) (item *domain.ScheduleItem, err error) {
	fields := map[string]any{"item_id": id}
	defer observe(ctx, s.observer, "reschedule", time.Now(), fields, &err)

	if newDate.IsZero() {
		return nil, fmt.Errorf("item %q: missing target date: %w", id, ErrInvalidRange)
	}
	start := domain.StartOfDay(newDate)
	end, clamped := clampEnd(start, newEnd)

	fields["new_date"] = start.Format(domain.DateLayout)
	if end != nil {
		fields["new_end"] = end.Format(domain.DateLayout)
	}
	if clamped {
		fields["clamped"] = true
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)

		current, err := loadItem(ctx, txItems, id)
		if err != nil {
			return err
		}
		if current.IsComplete() {
			return fmt.Errorf("item %q: %w", id, ErrItemLocked)
		}

		if current.TargetDate.Equal(start) && sameEnd(current.EndDate, end) {
			item = current
			fields["unchanged"] = true
			return nil
		}

		now := s.now()
		if err := txItems.UpdateSchedule(ctx, id, start, end, now); err != nil {
			return err
		}
		current.TargetDate = start
		current.EndDate = end
		current.UpdatedAt = now
		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *scheduleService) Shift(ctx context.Context, id string, days int) (*domain.ScheduleItem, error) {
	it, err := loadItem(ctx, s.items, id)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if it.EndDate != nil {
		e := domain.AddDays(*it.EndDate, days)
		end = &e
	}
	return s.Reschedule(ctx, id, domain.AddDays(it.TargetDate, days), end)
}

func (s *scheduleService) GetItem(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	return loadItem(ctx, s.items, id)
}

func (s *scheduleService) ListItems(ctx context.Context) ([]domain.ScheduleItem, error) {
	return s.items.List(ctx)
}

func (s *scheduleService) ListPhases(ctx context.Context) ([]domain.Phase, error) {
	return s.phases.List(ctx)
}

func (s *scheduleService) ListMilestones(ctx context.Context) ([]domain.Milestone, error) {
	return s.milestones.List(ctx)
}

func (s *scheduleService) Select(ctx context.Context, id string) error {
	if id != "" {
		if _, err := loadItem(ctx, s.items, id); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

func (s *scheduleService) SelectedItemID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func loadItem(ctx context.Context, items repository.ItemRepo, id string) (*domain.ScheduleItem, error) {
	it, err := items.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("item %q: %w", id, ErrItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading item %q: %w", id, err)
	}
	return it, nil
}

// clampEnd normalizes end to a calendar date at least one day after start.
func clampEnd(start time.Time, end *time.Time) (*time.Time, bool) {
	if end == nil {
		return nil, false
	}
	e := domain.StartOfDay(*end)
	if !e.After(start) {
		e = domain.AddDays(start, 1)
		return &e, true
	}
	return &e, false
}

func sameEnd(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
