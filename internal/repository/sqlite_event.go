package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tempora/internal/db"
	"tempora/internal/domain"
)

// eventColumns is the canonical SELECT column list for events.
const eventColumns = `id, date, start_time, end_time, type,
		recurring, repeat_type, repeat_until, parent_event_id, overrides_date,
		title, location, color, list_id, source_calendar_id,
		created_at, updated_at`

// SQLiteEventRepo implements EventRepo on a SQLite database.
type SQLiteEventRepo struct {
	q db.Querier
}

// NewSQLiteEventRepo creates an event repository over q, which may be a
// *sql.DB or a transaction.
func NewSQLiteEventRepo(q db.Querier) *SQLiteEventRepo {
	return &SQLiteEventRepo{q: q}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.EventDefinition) error {
	query := `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		e.ID,
		e.Date,
		e.StartTime,
		e.EndTime,
		string(e.Type),
		boolToInt(e.Recurring),
		string(e.RepeatType),
		nullableString(e.RepeatUntil),
		nullableString(e.ParentEventID),
		nullableString(e.OverridesDate),
		e.Title,
		e.Location,
		e.Color,
		e.ListID,
		e.SourceCalendarID,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.EventDefinition, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return r.scanEvent(row)
}

func (r *SQLiteEventRepo) ListForRange(ctx context.Context, rangeStart, rangeEnd string) ([]domain.EventDefinition, error) {
	// Recurring definitions anchored before the range still generate
	// occurrences inside it, so the anchor-date filter only applies to
	// non-recurring rows. Overrides moved to another date must still be
	// fetched when the occurrence they replace falls in range, or that
	// occurrence would be regenerated.
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE (recurring = 0 AND date >= ? AND date <= ?)
		   OR (overrides_date IS NOT NULL AND overrides_date >= ? AND overrides_date <= ?)
		   OR (recurring = 1 AND date <= ? AND (repeat_until IS NULL OR repeat_until >= ?))
		ORDER BY date, start_time, id`
	rows, err := r.q.QueryContext(ctx, query, rangeStart, rangeEnd, rangeStart, rangeEnd, rangeEnd, rangeStart)
	if err != nil {
		return nil, fmt.Errorf("listing events for range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListOverrides(ctx context.Context, parentID string) ([]domain.EventDefinition, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE parent_event_id = ? ORDER BY date`
	rows, err := r.q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListAll(ctx context.Context) ([]domain.EventDefinition, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date, start_time, id`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.EventDefinition) error {
	query := `UPDATE events SET date = ?, start_time = ?, end_time = ?, type = ?,
		recurring = ?, repeat_type = ?, repeat_until = ?, parent_event_id = ?,
		overrides_date = ?,
		title = ?, location = ?, color = ?, list_id = ?, source_calendar_id = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		e.Date,
		e.StartTime,
		e.EndTime,
		string(e.Type),
		boolToInt(e.Recurring),
		string(e.RepeatType),
		nullableString(e.RepeatUntil),
		nullableString(e.ParentEventID),
		nullableString(e.OverridesDate),
		e.Title,
		e.Location,
		e.Color,
		e.ListID,
		e.SourceCalendarID,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating event %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	// Overrides cascade with their parent via the foreign key.
	if _, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.EventDefinition, error) {
	var e domain.EventDefinition
	var typ, repeatType, createdAt, updatedAt string
	var recurring int
	var repeatUntil, parentID, overridesDate sql.NullString

	err := row.Scan(
		&e.ID, &e.Date, &e.StartTime, &e.EndTime, &typ,
		&recurring, &repeatType, &repeatUntil, &parentID, &overridesDate,
		&e.Title, &e.Location, &e.Color, &e.ListID, &e.SourceCalendarID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	e.Type = domain.EventType(typ)
	e.Recurring = intToBool(recurring)
	e.RepeatType = domain.RepeatType(repeatType)
	e.RepeatUntil = stringPtr(repeatUntil)
	e.ParentEventID = stringPtr(parentID)
	e.OverridesDate = stringPtr(overridesDate)
	e.CreatedAt = parseTimestamp(createdAt)
	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.EventDefinition, error) {
	var out []domain.EventDefinition
	for rows.Next() {
		var e domain.EventDefinition
		var typ, repeatType, createdAt, updatedAt string
		var recurring int
		var repeatUntil, parentID, overridesDate sql.NullString

		if err := rows.Scan(
			&e.ID, &e.Date, &e.StartTime, &e.EndTime, &typ,
			&recurring, &repeatType, &repeatUntil, &parentID, &overridesDate,
			&e.Title, &e.Location, &e.Color, &e.ListID, &e.SourceCalendarID,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}

		e.Type = domain.EventType(typ)
		e.Recurring = intToBool(recurring)
		e.RepeatType = domain.RepeatType(repeatType)
		e.RepeatUntil = stringPtr(repeatUntil)
		e.ParentEventID = stringPtr(parentID)
		e.OverridesDate = stringPtr(overridesDate)
		e.CreatedAt = parseTimestamp(createdAt)
		e.UpdatedAt = parseTimestamp(updatedAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event rows: %w", err)
	}
	return out, nil
}
