package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"tempora/internal/cli/formatter"
	"tempora/internal/domain"
	"tempora/internal/gesture"
	"tempora/internal/recurrence"
	"tempora/internal/timegrid"
)

// resolveEventID matches a stored definition by exact id or unambiguous
// id prefix.
func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("event ID is required")
	}

	events, err := app.Events.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range events {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range events {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("event not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("event ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveInstance turns CLI input into the instance a gesture operates on.
// "ID" names a stored definition; "ID:DATE" names one generated occurrence
// of a recurring definition.
func resolveInstance(ctx context.Context, app *App, input string) (domain.Instance, error) {
	defInput, date, isOccurrence := strings.Cut(input, ":")

	id, err := resolveEventID(ctx, app, defInput)
	if err != nil {
		return domain.Instance{}, err
	}
	def, err := app.Events.GetByID(ctx, id)
	if err != nil {
		return domain.Instance{}, err
	}

	if !isOccurrence {
		return domain.NewStoredInstance(*def), nil
	}

	if !def.Recurring {
		return domain.Instance{}, fmt.Errorf("event %s is not recurring; drop the :DATE suffix", id)
	}
	if !timegrid.ValidDate(date) {
		return domain.Instance{}, fmt.Errorf("invalid occurrence date %q (expected YYYY-MM-DD)", date)
	}
	return recurrence.NewOccurrence(*def, date), nil
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventInspectCmd(app),
		newEventUpdateCmd(app),
		newEventRemoveCmd(app),
		newEventMoveCmd(app),
		newEventResizeCmd(app),
		newEventMaterializeCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, date, start, end, typeStr, location, listID, repeat, until string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				var err error
				title, date, start, end, typeStr, repeat, err = runEventForm(title, date, start, end, typeStr, repeat)
				if err != nil {
					return err
				}
			}

			e := &domain.EventDefinition{
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Type:      domain.EventType(typeStr),
				Title:     title,
				Location:  location,
				ListID:    listID,
			}
			if repeat != "" {
				e.Recurring = true
				e.RepeatType = domain.RepeatType(repeat)
				if until != "" {
					e.RepeatUntil = &until
				}
			}

			if err := app.Events.Create(cmd.Context(), e); err != nil {
				return err
			}

			cmd.Printf("Created event %s (%s %s–%s)\n", e.Title, e.Date, e.StartTime, e.EndTime)
			warnOnConflict(cmd, app, domain.NewStoredInstance(*e))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&typeStr, "type", "", "Event type (class|study|personal|work|meeting|deadline|other)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&listID, "list", "", "List the event belongs to")
	cmd.Flags().StringVar(&repeat, "repeat", "", "Repeat rule (daily|weekly|biweekly|monthly)")
	cmd.Flags().StringVar(&until, "until", "", "Last date the repeat applies (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields through a form")

	return cmd
}

// warnOnConflict prints a notice when the instance overlaps anything else on
// its date. Overlaps are allowed; the day layout packs them side by side.
func warnOnConflict(cmd *cobra.Command, app *App, inst domain.Instance) {
	day, err := app.Schedule.Range(cmd.Context(), domain.NewScheduleContext(inst.Date, inst.Date))
	if err != nil {
		return
	}
	if timegrid.ConflictsWithAny(inst, day, inst.ID) {
		cmd.Printf("Note: %s overlaps another entry; see `tempora day %s --conflicts`\n", inst.Title, inst.Date)
	}
}

// runEventForm collects the core event fields through a huh form, seeded
// with whatever flags were already set.
func runEventForm(title, date, start, end, typeStr, repeat string) (string, string, string, string, string, string, error) {
	if date == "" {
		date = timegrid.FormatDate(time.Now())
	}
	if typeStr == "" {
		typeStr = string(domain.EventOther)
	}

	typeOptions := make([]huh.Option[string], 0, len(domain.ValidEventTypes))
	for _, t := range []domain.EventType{
		domain.EventClass, domain.EventStudy, domain.EventPersonal,
		domain.EventWork, domain.EventMeeting, domain.EventDeadline, domain.EventOther,
	} {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&date).Validate(func(s string) error {
				if !timegrid.ValidDate(s) {
					return fmt.Errorf("expected YYYY-MM-DD")
				}
				return nil
			}),
			huh.NewInput().Title("Start (HH:MM)").Value(&start).Validate(validateTimeInput),
			huh.NewInput().Title("End (HH:MM)").Value(&end).Validate(validateTimeInput),
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(&typeStr),
			huh.NewSelect[string]().Title("Repeats").Options(
				huh.NewOption("never", ""),
				huh.NewOption("daily", "daily"),
				huh.NewOption("weekly", "weekly"),
				huh.NewOption("biweekly", "biweekly"),
				huh.NewOption("monthly", "monthly"),
			).Value(&repeat),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", "", "", "", "", err
	}
	return title, date, start, end, typeStr, repeat, nil
}

func validateTimeInput(s string) error {
	if _, err := timegrid.ToMinutes(s); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored event definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No events found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatEventList(events, time.Now()))
			return nil
		},
	}
}

func newEventInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Events.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEventInspect(e, time.Now()))
			return nil
		},
	}
}

func newEventUpdateCmd(app *App) *cobra.Command {
	var title, date, start, end, typeStr, location, listID, until string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Events.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				e.Title = title
			}
			if cmd.Flags().Changed("date") {
				e.Date = date
			}
			if cmd.Flags().Changed("start") {
				e.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				e.EndTime = end
			}
			if cmd.Flags().Changed("type") {
				e.Type = domain.EventType(typeStr)
			}
			if cmd.Flags().Changed("location") {
				e.Location = location
			}
			if cmd.Flags().Changed("list") {
				e.ListID = listID
			}
			if cmd.Flags().Changed("until") {
				if until == "" {
					e.RepeatUntil = nil
				} else {
					e.RepeatUntil = &until
				}
			}

			if err := app.Events.Update(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Updated event %s\n", e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&typeStr, "type", "", "Event type")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&listID, "list", "", "List the event belongs to")
	cmd.Flags().StringVar(&until, "until", "", "Last date the repeat applies (empty clears it)")

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an event and its overrides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed event %s\n", id)
			return nil
		},
	}
}

func newEventMoveCmd(app *App) *cobra.Command {
	var to, at string

	cmd := &cobra.Command{
		Use:   "move ID[:DATE]",
		Short: "Move an event or occurrence to a new date and start time",
		Long: "Moves the event while keeping its duration. Moving a generated\n" +
			"occurrence (ID:DATE) materializes it as a stored override.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			inst, err := resolveInstance(ctx, app, args[0])
			if err != nil {
				return err
			}

			targetDate := inst.Date
			if to != "" {
				if !timegrid.ValidDate(to) {
					return fmt.Errorf("invalid target date %q (expected YYYY-MM-DD)", to)
				}
				targetDate = to
			}
			startMin, err := timegrid.ToMinutes(at)
			if err != nil {
				return fmt.Errorf("invalid target time %q: %w", at, err)
			}

			ctrl := gesture.NewController(1, timegrid.DefaultSnapMin)
			if err := ctrl.BeginDrag(inst); err != nil {
				return err
			}
			if err := ctrl.Drop(targetDate, startMin); err != nil {
				return err
			}
			change, changed := ctrl.End()
			if !changed {
				fmt.Println("Nothing to do.")
				return nil
			}

			updated, err := app.Gestures.Commit(ctx, change)
			if err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s %s–%s\n", updated.Title, updated.Date, updated.StartTime, updated.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target date (YYYY-MM-DD, defaults to the current date)")
	cmd.Flags().StringVar(&at, "at", "", "Target start time (HH:MM, snapped to the grid)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newEventResizeCmd(app *App) *cobra.Command {
	var edge string
	var byMin int

	cmd := &cobra.Command{
		Use:   "resize ID[:DATE]",
		Short: "Grow or shrink an event by dragging one edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			inst, err := resolveInstance(ctx, app, args[0])
			if err != nil {
				return err
			}

			var handle gesture.Handle
			switch edge {
			case "top", "start":
				handle = gesture.HandleTop
			case "bottom", "end":
				handle = gesture.HandleBottom
			default:
				return fmt.Errorf("invalid --edge %q (expected top or bottom)", edge)
			}

			ctrl := gesture.NewController(1, timegrid.DefaultSnapMin)
			if err := ctrl.BeginResize(inst, handle); err != nil {
				return err
			}
			if err := ctrl.Update(gesture.Gesture{PointerDeltaY: float64(byMin)}); err != nil {
				return err
			}
			change, changed := ctrl.End()
			if !changed {
				fmt.Println("Nothing to do.")
				return nil
			}

			updated, err := app.Gestures.Commit(ctx, change)
			if err != nil {
				return err
			}
			fmt.Printf("Resized %s to %s–%s\n", updated.Title, updated.StartTime, updated.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&edge, "edge", "bottom", "Edge to drag (top|bottom)")
	cmd.Flags().IntVar(&byMin, "by", 0, "Minutes to move the edge (negative moves it earlier)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func newEventMaterializeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "materialize ID DATE",
		Short: "Pin one generated occurrence as a stored override",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !timegrid.ValidDate(args[1]) {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[1])
			}

			override, err := app.Gestures.MaterializeOccurrence(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Materialized %s on %s as %s\n", override.Title, override.Date, override.ID)
			return nil
		},
	}
}
