package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tempora/internal/domain"
	"tempora/internal/gesture"
	"tempora/internal/repository"
)

// ErrReadOnlyInstance is returned when a gesture targets a task pseudo-event.
var ErrReadOnlyInstance = errors.New("instance is read-only")

type gestureService struct {
	events   repository.EventRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewGestureService(events repository.EventRepo, observers ...UseCaseObserver) GestureService {
	return &gestureService{
		events:   events,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *gestureService) Commit(ctx context.Context, change gesture.Change) (def *domain.EventDefinition, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "gesture_commit", started, err, map[string]any{
			"instance_id": change.InstanceID,
			"generated":   change.WasGenerated,
		})
	}()

	if strings.HasPrefix(change.InstanceID, "task:") {
		return nil, fmt.Errorf("committing gesture for %s: %w", change.InstanceID, ErrReadOnlyInstance)
	}

	if change.WasGenerated {
		// The override is keyed to the occurrence the gesture started on,
		// not the drop target, so the replaced occurrence stays suppressed
		// when the event moves to another date.
		occurrenceDate := change.OriginalDate
		if occurrenceDate == "" {
			if _, date, ok := strings.Cut(change.InstanceID, ":"); ok {
				occurrenceDate = date
			} else {
				occurrenceDate = change.Date
			}
		}
		override, err := s.materialize(ctx, change.DefinitionID, occurrenceDate)
		if err != nil {
			return nil, err
		}
		override.StartTime = change.StartTime
		override.EndTime = change.EndTime
		override.Date = change.Date
		override.UpdatedAt = s.now().UTC()
		if err := s.events.Update(ctx, override); err != nil {
			return nil, fmt.Errorf("updating materialized override: %w", err)
		}
		return override, nil
	}

	stored, err := s.events.GetByID(ctx, change.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("loading event %s: %w", change.InstanceID, err)
	}
	stored.Date = change.Date
	stored.StartTime = change.StartTime
	stored.EndTime = change.EndTime
	stored.UpdatedAt = s.now().UTC()
	if err := s.events.Update(ctx, stored); err != nil {
		return nil, fmt.Errorf("updating event %s: %w", stored.ID, err)
	}
	return stored, nil
}

func (s *gestureService) MaterializeOccurrence(ctx context.Context, definitionID, date string) (def *domain.EventDefinition, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "gesture_materialize", started, err, map[string]any{
			"definition_id": definitionID,
			"date":          date,
		})
	}()
	return s.materialize(ctx, definitionID, date)
}

// materialize returns the stored override replacing the generated occurrence
// of definitionID on date, creating one from the parent definition's times if
// none exists yet.
func (s *gestureService) materialize(ctx context.Context, definitionID, date string) (*domain.EventDefinition, error) {
	parent, err := s.events.GetByID(ctx, definitionID)
	if err != nil {
		return nil, fmt.Errorf("loading definition %s: %w", definitionID, err)
	}
	if !parent.Recurring {
		return nil, fmt.Errorf("materializing occurrence of %s: definition is not recurring", definitionID)
	}

	overrides, err := s.events.ListOverrides(ctx, definitionID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides of %s: %w", definitionID, err)
	}
	for i := range overrides {
		if overrides[i].ReplacedDate() == date {
			return &overrides[i], nil
		}
	}

	now := s.now().UTC()
	parentID := parent.ID
	occurrenceDate := date
	override := &domain.EventDefinition{
		ID:               uuid.NewString(),
		Date:             date,
		OverridesDate:    &occurrenceDate,
		StartTime:        parent.StartTime,
		EndTime:          parent.EndTime,
		Type:             parent.Type,
		ParentEventID:    &parentID,
		Title:            parent.Title,
		Location:         parent.Location,
		Color:            parent.Color,
		ListID:           parent.ListID,
		SourceCalendarID: parent.SourceCalendarID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.events.Create(ctx, override); err != nil {
		return nil, fmt.Errorf("storing override for %s on %s: %w", definitionID, date, err)
	}
	return override, nil
}
