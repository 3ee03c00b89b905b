package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS phases (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL DEFAULT 'generic'
		            CHECK(type IN ('discovery','strategy','creation','review','launch','generic')),
		order_index INTEGER NOT NULL DEFAULT 0,
		color       TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		phase_id    TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'planned'
		            CHECK(status IN ('planned','in_progress','review','complete')),
		priority    INTEGER NOT NULL DEFAULT 2 CHECK(priority BETWEEN 1 AND 4),
		target_date TEXT NOT NULL,
		end_date    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_phase ON items(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_target ON items(target_date)`,

	`ALTER TABLE items ADD COLUMN assignee_id TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS item_dependencies (
		predecessor_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		successor_id   TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		PRIMARY KEY (predecessor_id, successor_id),
		CHECK(predecessor_id != successor_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_item_deps_successor ON item_dependencies(successor_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		date       TEXT NOT NULL,
		icon       TEXT NOT NULL DEFAULT '',
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestone_items (
		milestone_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		item_id      TEXT NOT NULL,
		position     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (milestone_id, item_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestone_items_item ON milestone_items(item_id)`,
}
