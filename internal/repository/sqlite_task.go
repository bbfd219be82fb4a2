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

const taskColumns = `id, title, start_date, start_time, due_date, due_time,
		estimated_min, list_id, done, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo on a SQLite database.
type SQLiteTaskRepo struct {
	q db.Querier
}

// NewSQLiteTaskRepo creates a task repository over q.
func NewSQLiteTaskRepo(q db.Querier) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{q: q}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.StartDate,
		t.StartTime,
		t.DueDate,
		t.DueTime,
		t.EstimatedMin,
		t.ListID,
		boolToInt(t.Done),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeDone bool) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeDone {
		query += ` WHERE done = 0`
	}
	query += ` ORDER BY due_date, due_time, id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, start_date = ?, start_time = ?,
		due_date = ?, due_time = ?, estimated_min = ?, list_id = ?, done = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		t.Title,
		t.StartDate,
		t.StartTime,
		t.DueDate,
		t.DueTime,
		t.EstimatedMin,
		t.ListID,
		boolToInt(t.Done),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetDone(ctx context.Context, id string, done bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE tasks SET done = ?, updated_at = ? WHERE id = ?`,
		boolToInt(done), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("marking task done: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("marking task %s done: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// scanTask scans one task row via the given Scan function, shared between
// single-row and multi-row queries.
func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var done int
	var createdAt, updatedAt string

	if err := scan(
		&t.ID, &t.Title, &t.StartDate, &t.StartTime, &t.DueDate, &t.DueTime,
		&t.EstimatedMin, &t.ListID, &done, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.Done = intToBool(done)
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updatedAt)
	return &t, nil
}
