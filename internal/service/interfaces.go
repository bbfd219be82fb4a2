package service

import (
	"context"

	"tempora/internal/domain"
	"tempora/internal/gesture"
	"tempora/internal/importer"
)

type EventService interface {
	Create(ctx context.Context, e *domain.EventDefinition) error
	GetByID(ctx context.Context, id string) (*domain.EventDefinition, error)
	List(ctx context.Context) ([]domain.EventDefinition, error)
	Update(ctx context.Context, e *domain.EventDefinition) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]domain.Task, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ConflictPair is two same-day instances whose times collide.
type ConflictPair struct {
	A domain.Instance
	B domain.Instance
}

type ScheduleService interface {
	// Range resolves the filtered, unpacked instance list for the context.
	Range(ctx context.Context, sctx domain.ScheduleContext) ([]domain.Instance, error)
	// Day resolves one date and packs it into layout slots.
	Day(ctx context.Context, date string, filters domain.VisibilityFilters) ([]domain.Instance, error)
	// Conflicts lists the overlapping instance pairs of one date.
	Conflicts(ctx context.Context, date string) ([]ConflictPair, error)
}

type GestureService interface {
	// Commit persists the outcome of a finished drag or resize gesture.
	// Generated occurrences are materialized as stored overrides; task
	// pseudo-events are read-only and rejected.
	Commit(ctx context.Context, change gesture.Change) (*domain.EventDefinition, error)
	// MaterializeOccurrence converts one generated occurrence into a
	// stored override carrying the definition's times on that date.
	MaterializeOccurrence(ctx context.Context, definitionID, date string) (*domain.EventDefinition, error)
}

// ImportResult summarizes a calendar import.
type ImportResult struct {
	SourceCalendarID string
	EventCount       int
	SkippedCount     int
}

type ImportService interface {
	// ImportFile loads events from an .ics or .json file into the store,
	// atomically: either every valid record lands or none do.
	ImportFile(ctx context.Context, filePath, sourceCalendarID string) (*ImportResult, error)
	ImportRecords(ctx context.Context, records []importer.EventRecord, sourceCalendarID string) (*ImportResult, error)
}
