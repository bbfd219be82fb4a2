package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tempora/internal/timegrid"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a friendly label for a "YYYY-MM-DD" date key, relative
// to now. Malformed keys pass through untouched.
func HumanDate(key string, now time.Time) string {
	t, err := timegrid.ParseDate(key)
	if err != nil {
		return key
	}
	today := timegrid.FormatDate(now)
	switch key {
	case today:
		return "Today"
	case addDaysOr(today, 1, ""):
		return "Tomorrow"
	case addDaysOr(today, -1, ""):
		return "Yesterday"
	}
	return t.Format("Mon, Jan 2 2006")
}

func addDaysOr(key string, n int, fallback string) string {
	d, err := timegrid.AddDays(key, n)
	if err != nil {
		return fallback
	}
	return d
}

// TimeRange renders "09:00–10:30" with the foreground style.
func TimeRange(start, end string) string {
	return StyleFg.Render(start + "–" + end)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Duration renders the span between two "HH:MM" times as "1h 30m".
func Duration(start, end string) string {
	return FormatMinutes(timegrid.MinutesOrDefault(end) - timegrid.MinutesOrDefault(start))
}
