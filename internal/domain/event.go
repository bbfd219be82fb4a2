package domain

import "time"

// EventDefinition is the stored, authoritative calendar record. Dates are
// local-wall-clock "YYYY-MM-DD" keys and times are "HH:MM" strings; neither
// is ever derived from a UTC-serialized timestamp.
type EventDefinition struct {
	ID        string
	Date      string // anchor date, first occurrence for recurring events
	StartTime string
	EndTime   string // StartTime < EndTime required
	Type      EventType

	// Recurrence
	Recurring   bool
	RepeatType  RepeatType
	RepeatUntil *string // inclusive upper bound date, nil = unbounded

	// ParentEventID is set on a materialized override that replaces one
	// auto-generated occurrence of a recurring definition.
	ParentEventID *string

	// OverridesDate is the generated occurrence date an override replaces.
	// It stays fixed when the override itself is moved to another Date, so
	// the replaced occurrence remains suppressed.
	OverridesDate *string

	// Display metadata, passed through the engine unchanged.
	Title    string
	Location string
	Color    string

	ListID           string
	SourceCalendarID string // non-empty for imported events

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Imported reports whether the definition came from an imported calendar.
func (e *EventDefinition) Imported() bool {
	return e.SourceCalendarID != ""
}

// IsOverride reports whether the definition replaces a generated occurrence.
func (e *EventDefinition) IsOverride() bool {
	return e.ParentEventID != nil
}

// ReplacedDate is the occurrence date an override suppresses. Overrides
// stored before OverridesDate existed fall back to their own Date.
func (e *EventDefinition) ReplacedDate() string {
	if e.OverridesDate != nil {
		return *e.OverridesDate
	}
	return e.Date
}

// Instance is an in-memory, range-resolved occurrence. It is rebuilt on every
// schedule query and never persisted unless explicitly materialized as an
// override definition.
type Instance struct {
	EventDefinition

	Kind InstanceKind

	// IsGenerated is true when the instance was synthesized by recurrence
	// expansion rather than loaded from the store. Date then holds the
	// occurrence date, not the definition's anchor.
	IsGenerated bool

	// DefinitionID is the id of the originating definition. Equals ID for
	// stored instances; generated instances carry a derived ID.
	DefinitionID string

	// Slot is assigned by the day layout pass. Zero until packed.
	Slot LayoutSlot
}

// LayoutSlot positions an instance horizontally within a day column.
// Width and Left are percentages in [0, 100].
type LayoutSlot struct {
	Width float64
	Left  float64
}

// NewStoredInstance wraps a stored definition as a resolved instance.
func NewStoredInstance(def EventDefinition) Instance {
	return Instance{
		EventDefinition: def,
		Kind:            KindEvent,
		DefinitionID:    def.ID,
	}
}
