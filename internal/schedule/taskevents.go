package schedule

import (
	"fmt"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// DefaultTaskEstimateMin is assumed when a task has no duration estimate.
const DefaultTaskEstimateMin = 30

// ProjectTask derives the read-only pseudo-event instance for a task.
//
// The span rule: with both a start and a due on the same day the block runs
// [startTime, dueTime); with only a due, the estimate applies backward from
// the due time so the block ends when the task is due; with only a start,
// the estimate applies forward. Results are clamped into [00:00, 23:59] and
// never inverted. Tasks without a usable date+time anchor (and completed
// tasks) do not appear on the calendar; ok is false for them.
func ProjectTask(task domain.Task) (inst domain.Instance, ok bool, warn *Warning) {
	if task.Done {
		return domain.Instance{}, false, nil
	}

	estimate := task.EstimatedMin
	if estimate <= 0 {
		estimate = DefaultTaskEstimateMin
	}

	hasStart := task.StartDate != "" && task.StartTime != ""
	hasDue := task.DueDate != "" && task.DueTime != ""

	var date string
	var startMin, endMin int
	switch {
	case hasStart && hasDue && task.StartDate == task.DueDate:
		date = task.StartDate
		startMin = timegrid.MinutesOrDefault(task.StartTime)
		endMin = timegrid.MinutesOrDefault(task.DueTime)
	case hasStart:
		date = task.StartDate
		startMin = timegrid.MinutesOrDefault(task.StartTime)
		endMin = startMin + estimate
	case hasDue:
		date = task.DueDate
		endMin = timegrid.MinutesOrDefault(task.DueTime)
		startMin = endMin - estimate
	default:
		return domain.Instance{}, false, nil
	}

	if !timegrid.ValidDate(date) {
		return domain.Instance{}, false, &Warning{
			SourceID: task.ID,
			Message:  fmt.Sprintf("task has unparseable date %q", date),
		}
	}

	startMin = timegrid.Clamp(startMin, timegrid.DayStartMin, timegrid.DayEndMin)
	endMin = timegrid.Clamp(endMin, timegrid.DayStartMin, timegrid.DayEndMin)
	if endMin <= startMin {
		// A due at midnight or an inverted start/due pair still gets a
		// minimal visible block ending at the anchor.
		startMin = timegrid.Clamp(endMin-estimate, timegrid.DayStartMin, timegrid.DayEndMin)
		if endMin <= startMin {
			endMin = timegrid.Clamp(startMin+estimate, timegrid.DayStartMin, timegrid.DayEndMin)
		}
	}
	if endMin <= startMin {
		return domain.Instance{}, false, &Warning{
			SourceID: task.ID,
			Message:  "task span collapsed to zero width",
		}
	}

	inst = domain.Instance{
		EventDefinition: domain.EventDefinition{
			ID:        "task:" + task.ID,
			Date:      date,
			StartTime: timegrid.ToTimeString(startMin),
			EndTime:   timegrid.ToTimeString(endMin),
			Type:      domain.EventOther,
			Title:     task.Title,
			ListID:    task.ListID,
		},
		Kind:         domain.KindTask,
		IsGenerated:  true,
		DefinitionID: task.ID,
	}
	return inst, true, nil
}
