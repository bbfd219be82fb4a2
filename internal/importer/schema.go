package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for calendar import.
type ImportSchema struct {
	Calendar CalendarImport `json:"calendar"`
	Events   []EventImport  `json:"events"`
}

// CalendarImport defines the calendar-level fields in the import file.
type CalendarImport struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// EventImport defines one event in the import file.
type EventImport struct {
	UID         string  `json:"uid"`
	Title       string  `json:"title"`
	Location    string  `json:"location,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Type        string  `json:"type,omitempty"`
	ListID      string  `json:"list_id,omitempty"`
	Recurring   bool    `json:"recurring,omitempty"`
	RepeatType  string  `json:"repeat_type,omitempty"`
	RepeatUntil *string `json:"repeat_until,omitempty"`
}

// LoadImportSchema reads and parses a calendar import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
