// Package schedule resolves stored definitions and tasks into the flat,
// filtered instance list for a date range. Resolution is a pure function of
// its inputs; fetching is the service layer's job.
package schedule

import (
	"sort"

	"tempora/internal/domain"
	"tempora/internal/recurrence"
)

// Warning is a fail-soft data problem found while resolving a range.
type Warning struct {
	SourceID string
	Message  string
}

// Resolve produces the instance list for ctx's range from the given stored
// definitions and tasks.
//
// Non-recurring definitions and stored overrides in range are yielded
// directly; recurring definitions are expanded with their overrides
// suppressing generated occurrences; qualifying tasks are projected into
// pseudo-event instances. Visibility filters are AND-combined with
// default-allow. The result is sorted by (date, start, end, id) so identical
// inputs always produce the identical list.
func Resolve(defs []domain.EventDefinition, tasks []domain.Task, ctx domain.ScheduleContext) ([]domain.Instance, []Warning) {
	if ctx.RangeStart > ctx.RangeEnd {
		return nil, nil
	}

	overridesByParent := make(map[string][]domain.EventDefinition)
	for _, def := range defs {
		if def.ParentEventID != nil {
			overridesByParent[*def.ParentEventID] = append(overridesByParent[*def.ParentEventID], def)
		}
	}

	var out []domain.Instance
	var warnings []Warning

	for _, def := range defs {
		if def.Recurring && !def.IsOverride() {
			expanded, warns := recurrence.Expand(def, overridesByParent[def.ID], ctx.RangeStart, ctx.RangeEnd)
			out = append(out, expanded...)
			for _, w := range warns {
				warnings = append(warnings, Warning{SourceID: w.DefinitionID, Message: w.Message})
			}
			continue
		}
		if def.Date >= ctx.RangeStart && def.Date <= ctx.RangeEnd {
			out = append(out, domain.NewStoredInstance(def))
		}
	}

	for _, task := range tasks {
		inst, ok, warn := ProjectTask(task)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if !ok {
			continue
		}
		if inst.Date >= ctx.RangeStart && inst.Date <= ctx.RangeEnd {
			out = append(out, inst)
		}
	}

	out = applyFilters(out, ctx.Filters)

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.EndTime != b.EndTime {
			return a.EndTime < b.EndTime
		}
		return a.ID < b.ID
	})
	return out, warnings
}
