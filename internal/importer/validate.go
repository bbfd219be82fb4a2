package importer

import (
	"fmt"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Calendar.ID == "" {
		errs = append(errs, fmt.Errorf("calendar.id is required"))
	}

	uids := make(map[string]bool)
	for i, e := range schema.Events {
		prefix := fmt.Sprintf("events[%d]", i)
		errs = append(errs, validateEvent(prefix, &e, uids)...)
	}

	return errs
}

func validateEvent(prefix string, e *EventImport, uids map[string]bool) []error {
	var errs []error

	if e.UID == "" {
		errs = append(errs, fmt.Errorf("%s.uid is required", prefix))
	} else if uids[e.UID] {
		errs = append(errs, fmt.Errorf("%s.uid: duplicate uid %q", prefix, e.UID))
	} else {
		uids[e.UID] = true
	}

	if e.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}

	if e.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if !timegrid.ValidDate(e.Date) {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, e.Date))
	}

	startMin, startErr := timegrid.ToMinutes(e.StartTime)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start_time: invalid time %q (expected HH:MM)", prefix, e.StartTime))
	}
	endMin, endErr := timegrid.ToMinutes(e.EndTime)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end_time: invalid time %q (expected HH:MM)", prefix, e.EndTime))
	}
	if startErr == nil && endErr == nil && startMin >= endMin {
		errs = append(errs, fmt.Errorf("%s: start_time %q must be before end_time %q", prefix, e.StartTime, e.EndTime))
	}

	if e.Type != "" && !domain.ValidEventTypes[e.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, e.Type))
	}

	if e.Recurring {
		if e.RepeatType == "" {
			errs = append(errs, fmt.Errorf("%s.repeat_type is required for recurring events", prefix))
		} else if !domain.ValidRepeatTypes[e.RepeatType] {
			errs = append(errs, fmt.Errorf("%s.repeat_type: invalid value %q", prefix, e.RepeatType))
		}
		if e.RepeatUntil != nil && *e.RepeatUntil != "" {
			if !timegrid.ValidDate(*e.RepeatUntil) {
				errs = append(errs, fmt.Errorf("%s.repeat_until: invalid date format %q (expected YYYY-MM-DD)", prefix, *e.RepeatUntil))
			} else if e.Date != "" && *e.RepeatUntil < e.Date {
				errs = append(errs, fmt.Errorf("%s.repeat_until %q must not precede date %q", prefix, *e.RepeatUntil, e.Date))
			}
		}
	} else if e.RepeatType != "" {
		errs = append(errs, fmt.Errorf("%s.repeat_type set on a non-recurring event", prefix))
	}

	return errs
}
