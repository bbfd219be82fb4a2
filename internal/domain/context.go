package domain

// VisibilityFilters are AND-combined boolean predicates applied to resolved
// instances. A key missing from any map means "visible"; the zero value
// hides nothing.
type VisibilityFilters struct {
	Types     map[EventType]bool
	Lists     map[string]bool
	Calendars map[string]bool

	// HideImported is the master switch for imported-calendar events.
	// It is the inversion of the caller-facing "show imported" toggle so
	// that the zero value stays all-visible.
	HideImported bool
}

// NewVisibilityFilters returns all-visible filters with allocated maps.
func NewVisibilityFilters() VisibilityFilters {
	return VisibilityFilters{
		Types:     make(map[EventType]bool),
		Lists:     make(map[string]bool),
		Calendars: make(map[string]bool),
	}
}

// ScheduleContext carries everything a schedule query depends on: the
// inclusive date range and the active visibility filters. It is passed
// explicitly into every engine call; there is no shared mutable view state.
type ScheduleContext struct {
	RangeStart string // inclusive "YYYY-MM-DD"
	RangeEnd   string
	Filters    VisibilityFilters
}

// NewScheduleContext builds an all-visible context for [rangeStart, rangeEnd].
func NewScheduleContext(rangeStart, rangeEnd string) ScheduleContext {
	return ScheduleContext{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Filters:    NewVisibilityFilters(),
	}
}
