package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every open. Statements must stay
// re-runnable: CREATE uses IF NOT EXISTS and ALTER TABLE duplicates are
// tolerated.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'other',
		recurring INTEGER NOT NULL DEFAULT 0,
		repeat_type TEXT NOT NULL DEFAULT '',
		repeat_until TEXT,
		parent_event_id TEXT REFERENCES events(id) ON DELETE CASCADE,
		overrides_date TEXT,
		title TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		list_id TEXT NOT NULL DEFAULT '',
		source_calendar_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_parent ON events(parent_event_id)`,
	`ALTER TABLE events ADD COLUMN overrides_date TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_events_overrides_date ON events(overrides_date)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		start_date TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		due_date TEXT NOT NULL DEFAULT '',
		due_time TEXT NOT NULL DEFAULT '',
		estimated_min INTEGER NOT NULL DEFAULT 0,
		list_id TEXT NOT NULL DEFAULT '',
		done INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
}

// Migrate applies the schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// ALTER TABLE re-runs surface as duplicate columns.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
