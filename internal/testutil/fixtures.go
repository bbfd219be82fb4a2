package testutil

import (
	"time"

	"tempora/internal/domain"
)

// FixedNow is the timestamp fixtures stamp onto created records.
var FixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// EventOption mutates an event fixture before use.
type EventOption func(*domain.EventDefinition)

// MakeEvent builds a valid one-off event definition, customized by opts.
func MakeEvent(id, date string, opts ...EventOption) domain.EventDefinition {
	e := domain.EventDefinition{
		ID:        id,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      domain.EventWork,
		Title:     "Event " + id,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithTimes sets the fixture's start and end times.
func WithTimes(start, end string) EventOption {
	return func(e *domain.EventDefinition) {
		e.StartTime = start
		e.EndTime = end
	}
}

// WithType sets the fixture's event type.
func WithType(t domain.EventType) EventOption {
	return func(e *domain.EventDefinition) { e.Type = t }
}

// WithRepeat makes the fixture recurring.
func WithRepeat(rt domain.RepeatType, until *string) EventOption {
	return func(e *domain.EventDefinition) {
		e.Recurring = true
		e.RepeatType = rt
		e.RepeatUntil = until
	}
}

// WithParent turns the fixture into an override of parentID replacing the
// generated occurrence on the fixture's own date.
func WithParent(parentID string) EventOption {
	return func(e *domain.EventDefinition) {
		e.ParentEventID = &parentID
		date := e.Date
		e.OverridesDate = &date
	}
}

// MakeTask builds a task fixture due on date at due.
func MakeTask(id, date, due string) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "Task " + id,
		DueDate:   date,
		DueTime:   due,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}
