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

type SQLitePhaseRepo struct {
	db  db.DBTX
	now func() time.Time
}

func NewSQLitePhaseRepo(d db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: d, now: nowUTC}
}

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	ts := timestamp(r.now())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO phases (id, name, type, order_index, color, start_date, end_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(phaseType(p.Type)), p.Order, p.Color,
		p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, type, order_index, color, start_date, end_date FROM phases WHERE id = ?`, id)
	p, err := scanPhase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("phase %q: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePhaseRepo) List(ctx context.Context) ([]domain.Phase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, order_index, color, start_date, end_date
		 FROM phases ORDER BY order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("querying phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.Phase
	for rows.Next() {
		p, err := scanPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, *p)
	}
	return phases, rows.Err()
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE phases SET name = ?, type = ?, order_index = ?, color = ?,
		 start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`,
		p.Name, string(phaseType(p.Type)), p.Order, p.Color,
		p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout),
		timestamp(r.now()), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return checkAffected(res, "phase", p.ID)
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return checkAffected(res, "phase", id)
}

func phaseType(t domain.PhaseType) domain.PhaseType {
	if t == "" {
		return domain.PhaseGeneric
	}
	return t
}

func scanPhase(s rowScanner) (*domain.Phase, error) {
	var (
		p          domain.Phase
		typ        string
		start, end string
	)
	if err := s.Scan(&p.ID, &p.Name, &typ, &p.Order, &p.Color, &start, &end); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}
	p.Type = domain.PhaseType(typ)

	var err error
	if p.StartDate, err = time.Parse(dateLayout, start); err != nil {
		return nil, fmt.Errorf("parsing phase start_date: %w", err)
	}
	if p.EndDate, err = time.Parse(dateLayout, end); err != nil {
		return nil, fmt.Errorf("parsing phase end_date: %w", err)
	}
	return &p, nil
}
