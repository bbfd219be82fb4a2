package schedule

import "tempora/internal/domain"

// applyFilters keeps the instances every AND-combined predicate allows.
func applyFilters(instances []domain.Instance, f domain.VisibilityFilters) []domain.Instance {
	out := instances[:0]
	for _, inst := range instances {
		if Visible(inst, f) {
			out = append(out, inst)
		}
	}
	return out
}

// Visible evaluates the visibility predicates for one instance. A key that
// is absent from a filter map defaults to visible.
func Visible(inst domain.Instance, f domain.VisibilityFilters) bool {
	if show, ok := f.Types[inst.Type]; ok && !show {
		return false
	}
	if inst.ListID != "" {
		if show, ok := f.Lists[inst.ListID]; ok && !show {
			return false
		}
	}
	if inst.Imported() {
		if f.HideImported {
			return false
		}
		if show, ok := f.Calendars[inst.SourceCalendarID]; ok && !show {
			return false
		}
	}
	return true
}
