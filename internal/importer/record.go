package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// EventRecord is the source-agnostic shape every import format is parsed
// into before conversion to stored definitions. Dates and times are already
// local-wall-clock strings here; timezone handling belongs to the parser.
type EventRecord struct {
	UID      string
	Title    string
	Location string

	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM"
	EndTime   string

	Type   string
	ListID string

	Recurring   bool
	RepeatType  string
	RepeatUntil *string
}

// ToDefinition converts one record into a persistable event definition.
// The record's UID is kept as display metadata only; storage ids are
// always freshly generated.
func ToDefinition(rec EventRecord, sourceCalendarID string, now time.Time) (*domain.EventDefinition, error) {
	if !timegrid.ValidDate(rec.Date) {
		return nil, fmt.Errorf("record %q: invalid date %q", rec.UID, rec.Date)
	}
	startMin, err := timegrid.ToMinutes(rec.StartTime)
	if err != nil {
		return nil, fmt.Errorf("record %q: start time: %w", rec.UID, err)
	}
	endMin, err := timegrid.ToMinutes(rec.EndTime)
	if err != nil {
		return nil, fmt.Errorf("record %q: end time: %w", rec.UID, err)
	}
	if startMin >= endMin {
		return nil, fmt.Errorf("record %q: start %q must be before end %q", rec.UID, rec.StartTime, rec.EndTime)
	}

	eventType := domain.EventType(rec.Type)
	if rec.Type == "" {
		eventType = domain.EventOther
	} else if !domain.ValidEventTypes[rec.Type] {
		return nil, fmt.Errorf("record %q: invalid event type %q", rec.UID, rec.Type)
	}

	var repeatType domain.RepeatType
	if rec.Recurring {
		repeatType = domain.RepeatType(rec.RepeatType)
		if !domain.ValidRepeatTypes[rec.RepeatType] {
			return nil, fmt.Errorf("record %q: invalid repeat type %q", rec.UID, rec.RepeatType)
		}
		if rec.RepeatUntil != nil && !timegrid.ValidDate(*rec.RepeatUntil) {
			return nil, fmt.Errorf("record %q: invalid repeat_until %q", rec.UID, *rec.RepeatUntil)
		}
	}

	return &domain.EventDefinition{
		ID:               uuid.NewString(),
		Date:             rec.Date,
		StartTime:        rec.StartTime,
		EndTime:          rec.EndTime,
		Type:             eventType,
		Recurring:        rec.Recurring,
		RepeatType:       repeatType,
		RepeatUntil:      rec.RepeatUntil,
		Title:            rec.Title,
		Location:         rec.Location,
		ListID:           rec.ListID,
		SourceCalendarID: sourceCalendarID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
