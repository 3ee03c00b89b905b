package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roadmap/internal/db"
)

type SQLiteDependencyRepo struct {
	db db.DBTX
}

func NewSQLiteDependencyRepo(d db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: d}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, predecessorID, successorID string) error {
	if predecessorID == successorID {
		return fmt.Errorf("item %q cannot depend on itself: %w", successorID, ErrInvalidInput)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO item_dependencies (predecessor_id, successor_id) VALUES (?, ?)`,
		predecessorID, successorID,
	)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM item_dependencies WHERE predecessor_id = ? AND successor_id = ?`,
		predecessorID, successorID,
	)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return checkAffected(res, "dependency", predecessorID+"->"+successorID)
}

func (r *SQLiteDependencyRepo) ListPredecessors(ctx context.Context, itemID string) ([]string, error) {
	return r.listIDs(ctx,
		`SELECT predecessor_id FROM item_dependencies WHERE successor_id = ? ORDER BY rowid`, itemID)
}

func (r *SQLiteDependencyRepo) ListSuccessors(ctx context.Context, itemID string) ([]string, error) {
	return r.listIDs(ctx,
		`SELECT successor_id FROM item_dependencies WHERE predecessor_id = ? ORDER BY rowid`, itemID)
}

func (r *SQLiteDependencyRepo) ListAll(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT predecessor_id, successor_id FROM item_dependencies ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying dependencies: %w", err)
	}
	defer rows.Close()

	deps := make(map[string][]string)
	for rows.Next() {
		var pred, succ string
		if err := rows.Scan(&pred, &succ); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps[succ] = append(deps[succ], pred)
	}
	return deps, rows.Err()
}

func (r *SQLiteDependencyRepo) listIDs(ctx context.Context, query, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying dependencies: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		ids = append(ids, s)
	}
	return ids, rows.Err()
}
