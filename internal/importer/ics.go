package importer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tempora/internal/timegrid"
)

// ParseICSFile reads an iCalendar file and converts its VEVENTs into event
// records. Events the engine cannot represent (all-day, multi-day, or
// recurrence rules outside the supported repeat types) are skipped, not
// fatal; the returned skip list carries one message per dropped VEVENT.
func ParseICSFile(path string) ([]EventRecord, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseICS(data)
}

// ParseICS parses a single ICS payload into event records.
func ParseICS(body []byte) ([]EventRecord, []string, error) {
	if len(body) == 0 {
		return nil, nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var (
		records []EventRecord
		skipped []string
	)
	for _, ve := range cal.Events() {
		rec, err := parseVEvent(ve)
		if err != nil {
			skipped = append(skipped, err.Error())
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func parseVEvent(ve *ical.VEvent) (EventRecord, error) {
	var rec EventRecord

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return rec, errors.New("vevent missing UID")
	}
	rec.UID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		rec.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		rec.Location = p.Value
	}

	if isAllDay(ve) {
		return rec, fmt.Errorf("vevent %s: all-day events are not supported", rec.UID)
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return rec, fmt.Errorf("vevent %s: reading DTSTART: %w", rec.UID, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return rec, fmt.Errorf("vevent %s: reading DTEND: %w", rec.UID, err)
	}
	if !end.After(start) {
		return rec, fmt.Errorf("vevent %s: end does not follow start", rec.UID)
	}

	rec.Date = timegrid.FormatDate(start)
	rec.StartTime = timegrid.ToTimeString(start.Hour()*60 + start.Minute())

	switch {
	case timegrid.FormatDate(end) == rec.Date:
		rec.EndTime = timegrid.ToTimeString(end.Hour()*60 + end.Minute())
	case endsAtNextMidnight(start, end):
		rec.EndTime = timegrid.ToTimeString(timegrid.DayEndMin)
	default:
		return rec, fmt.Errorf("vevent %s: multi-day events are not supported", rec.UID)
	}

	if rruleProp := ve.GetProperty(ical.ComponentPropertyRrule); rruleProp != nil {
		if err := applyRRule(&rec, rruleProp.Value); err != nil {
			return rec, fmt.Errorf("vevent %s: %w", rec.UID, err)
		}
	}

	return rec, nil
}

func isAllDay(ve *ical.VEvent) bool {
	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return false
	}
	if params := dtStart.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(dtStart.Value, "T")
}

// endsAtNextMidnight reports whether end is exactly 00:00 on the day after
// start. Such events are treated as running to the close of the start day.
func endsAtNextMidnight(start, end time.Time) bool {
	if end.Hour() != 0 || end.Minute() != 0 {
		return false
	}
	next, err := timegrid.AddDays(timegrid.FormatDate(start), 1)
	if err != nil {
		return false
	}
	return timegrid.FormatDate(end) == next
}

// applyRRule maps a raw RRULE value onto the record's recurrence fields.
// Supported rules: FREQ=DAILY, FREQ=WEEKLY (INTERVAL 1 or 2), FREQ=MONTHLY,
// each with an optional UNTIL bound.
func applyRRule(rec *EventRecord, raw string) error {
	parts := make(map[string]string)
	for _, kv := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		parts[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	interval := parts["INTERVAL"]
	switch strings.ToUpper(parts["FREQ"]) {
	case "DAILY":
		if interval != "" && interval != "1" {
			return fmt.Errorf("unsupported DAILY interval %q", interval)
		}
		rec.RepeatType = "daily"
	case "WEEKLY":
		switch interval {
		case "", "1":
			rec.RepeatType = "weekly"
		case "2":
			rec.RepeatType = "biweekly"
		default:
			return fmt.Errorf("unsupported WEEKLY interval %q", interval)
		}
	case "MONTHLY":
		if interval != "" && interval != "1" {
			return fmt.Errorf("unsupported MONTHLY interval %q", interval)
		}
		rec.RepeatType = "monthly"
	default:
		return fmt.Errorf("unsupported recurrence rule %q", raw)
	}
	rec.Recurring = true

	if until := parts["UNTIL"]; until != "" {
		date, err := parseUntilDate(until)
		if err != nil {
			return fmt.Errorf("parsing UNTIL %q: %w", until, err)
		}
		rec.RepeatUntil = &date
	}
	return nil
}

func parseUntilDate(v string) (string, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "Z")
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		v = v[:i]
	}
	if len(v) != 8 {
		return "", fmt.Errorf("unexpected UNTIL length")
	}
	date := v[:4] + "-" + v[4:6] + "-" + v[6:8]
	if !timegrid.ValidDate(date) {
		return "", fmt.Errorf("invalid date")
	}
	return date, nil
}
