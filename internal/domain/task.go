package domain

import "time"

// Task is an external to-do record that the schedule projects into a
// read-only pseudo-event. Only tasks carrying a usable date+time pair
// appear on the calendar.
type Task struct {
	ID    string
	Title string

	// Optional scheduling anchors; empty string = absent.
	StartDate string // "YYYY-MM-DD"
	StartTime string // "HH:MM"
	DueDate   string
	DueTime   string

	// EstimatedMin is the expected duration in minutes. Zero = unset;
	// the projection falls back to a 30-minute default.
	EstimatedMin int

	ListID string
	Done   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
