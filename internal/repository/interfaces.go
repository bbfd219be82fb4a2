package repository

import (
	"context"
	"errors"

	"tempora/internal/domain"
)

// ErrNotFound is returned when a lookup matches no stored record.
var ErrNotFound = errors.New("not found")

// EventRepo is the event store collaborator: the engine only ever sees
// EventDefinitions through this interface.
type EventRepo interface {
	Create(ctx context.Context, e *domain.EventDefinition) error
	GetByID(ctx context.Context, id string) (*domain.EventDefinition, error)
	// ListForRange returns every definition that can contribute an instance
	// to the inclusive date range: one-offs and overrides dated inside it,
	// plus recurring definitions whose recurrence window intersects it.
	ListForRange(ctx context.Context, rangeStart, rangeEnd string) ([]domain.EventDefinition, error)
	ListOverrides(ctx context.Context, parentID string) ([]domain.EventDefinition, error)
	ListAll(ctx context.Context) ([]domain.EventDefinition, error)
	Update(ctx context.Context, e *domain.EventDefinition) error
	Delete(ctx context.Context, id string) error
}

// TaskRepo is the task collaborator feeding pseudo-events.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
}
