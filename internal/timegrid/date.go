package timegrid

import (
	"fmt"
	"time"
)

// DateLayout is the canonical "YYYY-MM-DD" date key layout.
const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" date key.
func ParseDate(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", key, err)
	}
	return t, nil
}

// FormatDate renders t's wall-clock year/month/day as a date key. The local
// components are used directly, so a date key never shifts across midnight
// the way a UTC-serialized timestamp can.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDate(key)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the whole-day distance from a to b (negative when b
// precedes a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// ValidDate reports whether key is a well-formed date key.
func ValidDate(key string) bool {
	_, err := ParseDate(key)
	return err == nil
}
