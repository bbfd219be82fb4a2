// Package recurrence expands recurring event definitions into concrete dated
// instances within a query range. Expansion is pure and deterministic:
// identical inputs always produce identical instances in identical order.
package recurrence

import (
	"fmt"
	"time"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// Warning describes a fail-soft data problem encountered during expansion.
type Warning struct {
	DefinitionID string
	Message      string
}

// OccurrenceID derives the deterministic id of a generated occurrence, so
// repeated expansions are stable for diffing and override matching.
func OccurrenceID(definitionID, date string) string {
	return definitionID + ":" + date
}

// NewOccurrence builds the generated instance of def on occurrenceDate.
// The definition is never mutated; the instance carries a derived id and the
// occurrence date in place of the anchor date.
func NewOccurrence(def domain.EventDefinition, occurrenceDate string) domain.Instance {
	inst := domain.Instance{
		EventDefinition: def,
		Kind:            domain.KindEvent,
		IsGenerated:     true,
		DefinitionID:    def.ID,
	}
	inst.ID = OccurrenceID(def.ID, occurrenceDate)
	inst.Date = occurrenceDate
	return inst
}

// Expand resolves def within the inclusive range [rangeStart, rangeEnd].
//
// The anchor date, when in range, is yielded once as the stored base instance
// and never again as a generated one. Generated occurrences respect
// RepeatUntil and are suppressed on any date a stored replacement claims
// (ParentEventID == def.ID, matched by ReplacedDate so a moved override keeps
// suppressing its original occurrence); the override itself is the caller's
// to yield. An override claiming the anchor date suppresses the base instance
// too. An unknown repeat type produces the base instance only, plus a
// warning.
//
// An inverted range yields nothing.
func Expand(def domain.EventDefinition, overrides []domain.EventDefinition, rangeStart, rangeEnd string) ([]domain.Instance, []Warning) {
	if rangeStart > rangeEnd {
		return nil, nil
	}

	overridden := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		if o.ParentEventID != nil && *o.ParentEventID == def.ID {
			overridden[o.ReplacedDate()] = true
		}
	}

	var out []domain.Instance
	if def.Date >= rangeStart && def.Date <= rangeEnd && !overridden[def.Date] {
		out = append(out, domain.NewStoredInstance(def))
	}
	if !def.Recurring {
		return out, nil
	}

	anchor, err := timegrid.ParseDate(def.Date)
	if err != nil {
		return out, []Warning{{DefinitionID: def.ID, Message: fmt.Sprintf("unparseable anchor date %q", def.Date)}}
	}

	match, warn := matcher(def, anchor)
	if warn != nil {
		return out, []Warning{*warn}
	}

	end := rangeEnd
	if def.RepeatUntil != nil && *def.RepeatUntil < end {
		end = *def.RepeatUntil
	}
	start := rangeStart
	if def.Date > start {
		start = def.Date
	}
	if start > end {
		return out, nil
	}

	cur, err := timegrid.ParseDate(start)
	if err != nil {
		return out, []Warning{{DefinitionID: def.ID, Message: fmt.Sprintf("unparseable range start %q", start)}}
	}
	for key := timegrid.FormatDate(cur); key <= end; key = timegrid.FormatDate(cur) {
		if key != def.Date && !overridden[key] && match(cur, key) {
			out = append(out, NewOccurrence(def, key))
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out, nil
}

// matcher returns the per-date predicate for the definition's repeat type.
func matcher(def domain.EventDefinition, anchor time.Time) (func(d time.Time, key string) bool, *Warning) {
	switch def.RepeatType {
	case domain.RepeatDaily:
		return func(time.Time, string) bool { return true }, nil

	case domain.RepeatWeekly:
		wd := anchor.Weekday()
		return func(d time.Time, _ string) bool { return d.Weekday() == wd }, nil

	case domain.RepeatBiweekly:
		wd := anchor.Weekday()
		return func(d time.Time, _ string) bool {
			if d.Weekday() != wd {
				return false
			}
			days := int(d.Sub(anchor).Hours() / 24)
			return (days/7)%2 == 0
		}, nil

	case domain.RepeatMonthly:
		// Dates where the anchor's day-of-month does not exist (e.g. the
		// 31st in February) are skipped, never rolled over.
		day := anchor.Day()
		return func(d time.Time, _ string) bool { return d.Day() == day }, nil
	}

	return nil, &Warning{
		DefinitionID: def.ID,
		Message:      fmt.Sprintf("unknown repeat type %q", def.RepeatType),
	}
}
