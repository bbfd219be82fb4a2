package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tempora/internal/domain"
	"tempora/internal/repository"
	"tempora/internal/timegrid"
)

type eventService struct {
	events   repository.EventRepo
	observer UseCaseObserver
}

func NewEventService(events repository.EventRepo, observers ...UseCaseObserver) EventService {
	return &eventService{events: events, observer: useCaseObserverOrNoop(observers)}
}

// validateDefinition is the structural gate: malformed dates or inverted
// times on a stored record are hard faults, unlike the fail-soft handling
// of already-stored data inside the pure engine.
func validateDefinition(e *domain.EventDefinition) error {
	if !timegrid.ValidDate(e.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	start, err := timegrid.ToMinutes(e.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timegrid.ToMinutes(e.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start time %s must be before end time %s", e.StartTime, e.EndTime)
	}
	if e.Type != "" && !domain.ValidEventTypes[string(e.Type)] {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.Recurring {
		if !domain.ValidRepeatTypes[string(e.RepeatType)] {
			return fmt.Errorf("unknown repeat type %q", e.RepeatType)
		}
		if e.RepeatUntil != nil && !timegrid.ValidDate(*e.RepeatUntil) {
			return fmt.Errorf("invalid repeat-until date %q", *e.RepeatUntil)
		}
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, e *domain.EventDefinition) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "event_create", started, err, map[string]any{"event_id": e.ID})
	}()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Type == "" {
		e.Type = domain.EventOther
	}
	if err = validateDefinition(e); err != nil {
		return err
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	err = s.events.Create(ctx, e)
	return err
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.EventDefinition, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]domain.EventDefinition, error) {
	return s.events.ListAll(ctx)
}

func (s *eventService) Update(ctx context.Context, e *domain.EventDefinition) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "event_update", started, err, map[string]any{"event_id": e.ID})
	}()

	if err = validateDefinition(e); err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UTC()
	err = s.events.Update(ctx, e)
	return err
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
