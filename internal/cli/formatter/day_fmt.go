package formatter

import (
	"fmt"
	"strings"
	"time"

	"tempora/internal/domain"
)

// slotBarWidth is the number of cells used to visualize an instance's
// horizontal layout slot within the day column.
const slotBarWidth = 8

// FormatDayView renders one packed day as a bordered agenda. Each row shows
// the time range, a slot bar visualizing the instance's share of the day
// column, the type badge, and the title.
func FormatDayView(date string, instances []domain.Instance, now time.Time) string {
	title := fmt.Sprintf("%s · %s", HumanDate(date, now), date)
	if len(instances) == 0 {
		return RenderBox(title, Dim("Nothing scheduled."))
	}

	var b strings.Builder
	for i, inst := range instances {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s",
			TimeRange(inst.StartTime, inst.EndTime),
			slotBar(inst.Slot),
			instanceLine(inst),
		))
	}
	return RenderBox(title, b.String())
}

// instanceLine renders the badge, title, and trailing metadata of one row.
func instanceLine(inst domain.Instance) string {
	parts := []string{TypeBadge(inst.Type), Bold(inst.Title)}
	if badge := KindBadge(inst.Kind); badge != "" {
		parts = append(parts, badge)
	}
	if inst.Location != "" {
		parts = append(parts, Dim("@ "+inst.Location))
	}
	if inst.IsGenerated {
		parts = append(parts, Dim("(recurring)"))
	}
	if inst.Imported() {
		parts = append(parts, Dim("["+inst.SourceCalendarID+"]"))
	}
	return strings.Join(parts, " ")
}

// slotBar draws the instance's layout slot as a filled span inside a fixed
// width bar, so side-by-side events read as side-by-side cells.
func slotBar(slot domain.LayoutSlot) string {
	if slot.Width <= 0 {
		return StyleDim.Render(strings.Repeat("░", slotBarWidth))
	}
	from := int(slot.Left / 100 * slotBarWidth)
	to := int((slot.Left + slot.Width) / 100 * slotBarWidth)
	if to > slotBarWidth {
		to = slotBarWidth
	}
	if to <= from {
		to = from + 1
	}
	var b strings.Builder
	b.WriteString(StyleDim.Render(strings.Repeat("░", from)))
	b.WriteString(StyleGreen.Render(strings.Repeat("▓", to-from)))
	b.WriteString(StyleDim.Render(strings.Repeat("░", slotBarWidth-to)))
	return b.String()
}

// FormatConflicts lists the overlapping pairs of one date.
func FormatConflicts(date string, pairs [][2]domain.Instance) string {
	title := "Conflicts · " + date
	if len(pairs) == 0 {
		return RenderBox(title, StyleGreen.Render("No conflicts."))
	}

	var b strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleRed.Render("✖"),
			Bold(pair[0].Title),
			Dim(TimeRangePlain(pair[0])),
		))
		b.WriteString(fmt.Sprintf("  %s %s %s",
			Dim("overlaps"),
			Bold(pair[1].Title),
			Dim(TimeRangePlain(pair[1])),
		))
	}
	return RenderBox(title, b.String())
}

// TimeRangePlain renders an unstyled "(09:00–10:00)" span.
func TimeRangePlain(inst domain.Instance) string {
	return "(" + inst.StartTime + "–" + inst.EndTime + ")"
}
