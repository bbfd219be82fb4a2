package formatter

import (
	"fmt"
	"strings"
	"time"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// FormatWeekView renders seven days starting at weekStart as stacked
// per-day sections. Days come from the dates slice so the caller controls
// ordering; instances are grouped by their occurrence date.
func FormatWeekView(weekStart string, instances []domain.Instance, now time.Time) string {
	byDate := make(map[string][]domain.Instance)
	for _, inst := range instances {
		byDate[inst.Date] = append(byDate[inst.Date], inst)
	}

	var b strings.Builder
	date := weekStart
	for i := 0; i < 7; i++ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Header(HumanDate(date, now)))
		b.WriteString("\n")

		day := byDate[date]
		if len(day) == 0 {
			b.WriteString(Dim("  —"))
		}
		for j, inst := range day {
			if j > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("  %s  %s",
				TimeRange(inst.StartTime, inst.EndTime),
				instanceLine(inst),
			))
		}

		next, err := timegrid.AddDays(date, 1)
		if err != nil {
			break
		}
		date = next
	}

	title := fmt.Sprintf("Week of %s", weekStart)
	return RenderBox(title, b.String())
}
