package formatter

import (
	"fmt"
	"strings"
	"time"

	"tempora/internal/domain"
)

// FormatEventList renders stored event definitions as a table.
func FormatEventList(events []domain.EventDefinition, now time.Time) string {
	headers := []string{"ID", "DATE", "TIME", "TYPE", "TITLE", "REPEATS"}
	rows := make([][]string, 0, len(events))

	for _, e := range events {
		repeats := Dim("--")
		if e.Recurring {
			label := string(e.RepeatType)
			if e.RepeatUntil != nil {
				label += " until " + *e.RepeatUntil
			}
			repeats = StyleAqua.Render(label)
		} else if e.IsOverride() {
			repeats = Dim("override")
		}

		title := Bold(e.Title)
		if e.Imported() {
			title += " " + Dim("["+e.SourceCalendarID+"]")
		}

		rows = append(rows, []string{
			TruncID(e.ID),
			StyleFg.Render(HumanDate(e.Date, now)),
			TimeRange(e.StartTime, e.EndTime),
			TypeBadge(e.Type),
			title,
			repeats,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Events", table)
}

// FormatEventInspect renders a single definition as a detail card.
func FormatEventInspect(e *domain.EventDefinition, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(e.Title) + "\n")
	b.WriteString(TypeBadge(e.Type) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}
	field("ID     ", TruncID(e.ID))
	field("DATE   ", StyleFg.Render(HumanDate(e.Date, now))+" "+Dim("("+e.Date+")"))
	field("TIME   ", TimeRange(e.StartTime, e.EndTime)+" "+Dim("("+Duration(e.StartTime, e.EndTime)+")"))
	if e.Location != "" {
		field("PLACE  ", StyleFg.Render(e.Location))
	}
	if e.Recurring {
		label := string(e.RepeatType)
		if e.RepeatUntil != nil {
			label += " until " + *e.RepeatUntil
		}
		field("REPEATS", StyleAqua.Render(label))
	}
	if e.IsOverride() {
		field("PARENT ", TruncID(*e.ParentEventID))
	}
	if e.ListID != "" {
		field("LIST   ", StylePurple.Render(e.ListID))
	}
	if e.Imported() {
		field("SOURCE ", Dim(e.SourceCalendarID))
	}

	return RenderBox("", b.String())
}
