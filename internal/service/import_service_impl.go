package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/roadmap/internal/db"
	"github.com/alexanderramin/roadmap/internal/importer"
	"github.com/alexanderramin/roadmap/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportRoadmap(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportRoadmapFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-roadmap", time.Now(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	rm, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	// Items go in before any dependency or milestone link references them.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		phases := repository.NewSQLitePhaseRepo(tx)
		items := repository.NewSQLiteItemRepo(tx)
		deps := repository.NewSQLiteDependencyRepo(tx)
		milestones := repository.NewSQLiteMilestoneRepo(tx)

		for _, p := range rm.Phases {
			if err := phases.Create(ctx, p); err != nil {
				return fmt.Errorf("creating phase %q: %w", p.Name, err)
			}
		}
		for _, it := range rm.Items {
			if err := items.Create(ctx, it); err != nil {
				return fmt.Errorf("creating item %q: %w", it.Title, err)
			}
		}
		for _, it := range rm.Items {
			for _, pred := range it.DependsOn {
				if err := deps.Create(ctx, pred, it.ID); err != nil {
					return fmt.Errorf("creating dependency %s -> %s: %w", pred, it.ID, err)
				}
			}
		}
		for _, m := range rm.Milestones {
			if err := milestones.Create(ctx, m); err != nil {
				return fmt.Errorf("creating milestone %q: %w", m.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{
		PhaseCount:      len(rm.Phases),
		ItemCount:       len(rm.Items),
		DependencyCount: rm.DependencyCount(),
		MilestoneCount:  len(rm.Milestones),
	}
	fields["phase_count"] = result.PhaseCount
	fields["item_count"] = result.ItemCount
	fields["dependency_count"] = result.DependencyCount
	fields["milestone_count"] = result.MilestoneCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
