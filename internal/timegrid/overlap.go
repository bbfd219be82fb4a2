package timegrid

import "tempora/internal/domain"

// Overlaps reports whether two half-open minute ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// OverlapsTimes is Overlaps over "HH:MM" strings.
func OverlapsTimes(aStart, aEnd, bStart, bEnd string) bool {
	return Overlaps(
		MinutesOrDefault(aStart), MinutesOrDefault(aEnd),
		MinutesOrDefault(bStart), MinutesOrDefault(bEnd),
	)
}

// ConflictsWithAny reports whether the candidate's [start, end) collides with
// any same-day instance in existing. The instance whose id equals excludeID
// is skipped, so an event never conflicts with itself while being edited.
func ConflictsWithAny(candidate domain.Instance, existing []domain.Instance, excludeID string) bool {
	cs := MinutesOrDefault(candidate.StartTime)
	ce := MinutesOrDefault(candidate.EndTime)
	if cs >= ce {
		return false
	}
	for _, other := range existing {
		if other.ID == excludeID || other.ID == candidate.ID {
			continue
		}
		if other.Date != candidate.Date {
			continue
		}
		os := MinutesOrDefault(other.StartTime)
		oe := MinutesOrDefault(other.EndTime)
		if os >= oe {
			continue
		}
		if Overlaps(cs, ce, os, oe) {
			return true
		}
	}
	return false
}
