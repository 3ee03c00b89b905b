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

type SQLiteMilestoneRepo struct {
	db  db.DBTX
	now func() time.Time
}

func NewSQLiteMilestoneRepo(d db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: d, now: nowUTC}
}

// Create inserts the milestone and its item links in list order.
func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	ts := timestamp(r.now())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (id, title, date, icon, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Date.Format(dateLayout), m.Icon, m.Color, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	for _, itemID := range m.LinkedItemIDs {
		if err := r.LinkItem(ctx, m.ID, itemID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, date, icon, color FROM milestones WHERE id = ?`, id)
	m, err := scanMilestone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("milestone %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	links, err := r.links(ctx, `WHERE milestone_id = ?`, id)
	if err != nil {
		return nil, err
	}
	m.LinkedItemIDs = links[id]
	return m, nil
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, date, icon, color FROM milestones ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("querying milestones: %w", err)
	}
	var ms []domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	rows.Close()

	links, err := r.links(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range ms {
		ms[i].LinkedItemIDs = links[ms[i].ID]
	}
	return ms, nil
}

func (r *SQLiteMilestoneRepo) LinkItem(ctx context.Context, milestoneID, itemID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO milestone_items (milestone_id, item_id, position)
		 VALUES (?, ?, (SELECT COUNT(*) FROM milestone_items WHERE milestone_id = ?))`,
		milestoneID, itemID, milestoneID,
	)
	if err != nil {
		return fmt.Errorf("linking item to milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return checkAffected(res, "milestone", id)
}

func (r *SQLiteMilestoneRepo) links(ctx context.Context, where string, args ...any) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT milestone_id, item_id FROM milestone_items `+where+` ORDER BY milestone_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying milestone links: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var mid, iid string
		if err := rows.Scan(&mid, &iid); err != nil {
			return nil, fmt.Errorf("scanning milestone link: %w", err)
		}
		links[mid] = append(links[mid], iid)
	}
	return links, rows.Err()
}

func scanMilestone(s rowScanner) (*domain.Milestone, error) {
	var (
		m    domain.Milestone
		date string
	)
	if err := s.Scan(&m.ID, &m.Title, &date, &m.Icon, &m.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	var err error
	if m.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing milestone date: %w", err)
	}
	return &m, nil
}
