// Package timegrid provides minute-level time arithmetic for the schedule
// engine: "HH:MM" conversions, clamping, grid snapping, date-key math and
// interval overlap tests. All functions are pure.
package timegrid

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	// MinutesPerDay is the number of minutes in a wall-clock day.
	MinutesPerDay = 1440
	// DayStartMin and DayEndMin bound valid minute-of-day values.
	DayStartMin = 0
	DayEndMin = MinutesPerDay - 1

	// DefaultSnapMin is the snap grid used by interactive edits.
	DefaultSnapMin = 15
	// MinDurationMin is the smallest duration interactive edits may produce.
	MinDurationMin = 15

	// DefaultTime substitutes for malformed time input at call sites that
	// own user input.
	DefaultTime = "09:00"
)

// ErrInvalidTimeFormat reports a time string that is not "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format")

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ToMinutes parses an "H:MM" or "HH:MM" string into minutes since midnight.
func ToMinutes(t string) (int, error) {
	if !timePattern.MatchString(t) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	sep := 1
	if t[1] != ':' {
		sep = 2
	}
	h := 0
	for _, c := range t[:sep] {
		h = h*10 + int(c-'0')
	}
	m := int(t[sep+1]-'0')*10 + int(t[sep+2]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return h*60 + m, nil
}

// MinutesOrDefault parses t, substituting DefaultTime for malformed input.
func MinutesOrDefault(t string) int {
	m, err := ToMinutes(t)
	if err != nil {
		m, _ = ToMinutes(DefaultTime)
	}
	return m
}

// ToTimeString formats minutes since midnight as zero-padded "HH:MM".
// Out-of-range values are clamped into [0, 1439]; it never fails.
func ToTimeString(minutes int) string {
	minutes = Clamp(minutes, DayStartMin, DayEndMin)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts a time string by delta minutes, clamping the result to
// the same day (no rollover). Malformed input falls back to DefaultTime.
func AddMinutes(t string, delta int) string {
	return ToTimeString(MinutesOrDefault(t) + delta)
}

// SnapToGrid rounds minutes to the nearest multiple of gridMinutes,
// half away from zero so negative pointer deltas snap symmetrically.
// Non-positive grids leave the value untouched.
func SnapToGrid(minutes, gridMinutes int) int {
	if gridMinutes <= 0 {
		return minutes
	}
	if minutes < 0 {
		return -SnapToGrid(-minutes, gridMinutes)
	}
	return (minutes + gridMinutes/2) / gridMinutes * gridMinutes
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
