package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/repository"
	"github.com/alexanderramin/roadmap/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	items      *repository.SQLiteItemRepo
	deps       *repository.SQLiteDependencyRepo
	phases     *repository.SQLitePhaseRepo
	milestones *repository.SQLiteMilestoneRepo
}

func setupRepos(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:         database,
		items:      repository.NewSQLiteItemRepo(database),
		deps:       repository.NewSQLiteDependencyRepo(database),
		phases:     repository.NewSQLitePhaseRepo(database),
		milestones: repository.NewSQLiteMilestoneRepo(database),
	}
}

func (e *testEnv) scheduleService(observers ...UseCaseObserver) *scheduleService {
	svc := NewScheduleService(e.items, e.phases, e.milestones, testutil.NewTestUoW(e.db), observers...)
	return svc.(*scheduleService)
}

func (e *testEnv) createItem(t *testing.T, it *domain.ScheduleItem) *domain.ScheduleItem {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.items.Create(ctx, it))
	for _, pred := range it.DependsOn {
		require.NoError(t, e.deps.Create(ctx, pred, it.ID))
	}
	return it
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
