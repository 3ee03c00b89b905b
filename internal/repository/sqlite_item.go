package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/roadmap/internal/db"
	"github.com/alexanderramin/roadmap/internal/domain"
)

// SQLiteItemRepo stores items. DependsOn is read from item_dependencies
// but written through DependencyRepo.
type SQLiteItemRepo struct {
	db db.DBTX
}

func NewSQLiteItemRepo(d db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: d}
}

const itemColumns = `id, title, phase_id, status, priority, target_date, end_date,
	assignee_id, created_at, updated_at`

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.ScheduleItem) error {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID, it.Title, it.PhaseID, string(it.Status), int(it.Priority),
		it.TargetDate.Format(dateLayout),
		nullableTimeToString(it.EndDate, dateLayout),
		it.AssigneeID,
		timestamp(it.CreatedAt), timestamp(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	preds, err := NewSQLiteDependencyRepo(r.db).ListPredecessors(ctx, id)
	if err != nil {
		return nil, err
	}
	it.DependsOn = preds
	return it, nil
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY target_date, id`
	return r.listWithDeps(ctx, query)
}

func (r *SQLiteItemRepo) ListByPhase(ctx context.Context, phaseID string) ([]domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE phase_id = ? ORDER BY target_date, id`
	return r.listWithDeps(ctx, query, phaseID)
}

// listWithDeps closes the item cursor before reading dependencies so it
// works on a single-connection database.
func (r *SQLiteItemRepo) listWithDeps(ctx context.Context, query string, args ...any) ([]domain.ScheduleItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	var items []domain.ScheduleItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	rows.Close()

	deps, err := NewSQLiteDependencyRepo(r.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].DependsOn = deps[items[i].ID]
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.ScheduleItem) error {
	query := `UPDATE items SET title = ?, phase_id = ?, status = ?, priority = ?,
		target_date = ?, end_date = ?, assignee_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Title, it.PhaseID, string(it.Status), int(it.Priority),
		it.TargetDate.Format(dateLayout),
		nullableTimeToString(it.EndDate, dateLayout),
		it.AssigneeID, timestamp(it.UpdatedAt), it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return checkAffected(res, "item", it.ID)
}

func (r *SQLiteItemRepo) UpdateSchedule(ctx context.Context, id string, target time.Time, end *time.Time, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET target_date = ?, end_date = ?, updated_at = ? WHERE id = ?`,
		target.Format(dateLayout), nullableTimeToString(end, dateLayout), timestamp(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("rescheduling item: %w", err)
	}
	return checkAffected(res, "item", id)
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return checkAffected(res, "item", id)
}

func scanItem(s rowScanner) (*domain.ScheduleItem, error) {
	var (
		it                     domain.ScheduleItem
		status, target         string
		priority               int
		end                    sql.NullString
		createdStr, updatedStr string
	)
	err := s.Scan(&it.ID, &it.Title, &it.PhaseID, &status, &priority, &target, &end,
		&it.AssigneeID, &createdStr, &updatedStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	it.Status = domain.ItemStatus(status)
	it.Priority = domain.Priority(priority)
	if it.TargetDate, err = time.Parse(dateLayout, target); err != nil {
		return nil, fmt.Errorf("parsing target_date: %w", err)
	}
	it.EndDate = parseNullableTime(end, dateLayout)
	if err := parseTimestamps(createdStr, updatedStr, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
