package formatter

import (
	"time"

	"tempora/internal/domain"
)

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []domain.Task, now time.Time) string {
	headers := []string{"ID", "TITLE", "DUE", "ESTIMATE", "STATUS"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		due := Dim("--")
		if t.DueDate != "" {
			due = StyleFg.Render(HumanDate(t.DueDate, now))
			if t.DueTime != "" {
				due += " " + Dim(t.DueTime)
			}
		}

		estimate := Dim("--")
		if t.EstimatedMin > 0 {
			estimate = StyleFg.Render(FormatMinutes(t.EstimatedMin))
		}

		status := StyleBlue.Render("○ Open")
		if t.Done {
			status = StyleDim.Render("✔ Done")
		}

		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			due,
			estimate,
			status,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Tasks", table)
}
