package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tempora/internal/cli/formatter"
	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

// addVisibilityFlags registers the hide flags shared by the day and week views.
func addVisibilityFlags(flags *pflag.FlagSet, hideTypes, hideLists *[]string, hideImported *bool) {
	flags.StringSliceVar(hideTypes, "hide-type", nil, "Event types to hide")
	flags.StringSliceVar(hideLists, "hide-list", nil, "Lists to hide")
	flags.BoolVar(hideImported, "hide-imported", false, "Hide imported calendar events")
}

// buildFilters maps the shared visibility flags onto engine filters.
func buildFilters(hideTypes, hideLists []string, hideImported bool) domain.VisibilityFilters {
	f := domain.NewVisibilityFilters()
	for _, t := range hideTypes {
		f.Types[domain.EventType(t)] = false
	}
	for _, l := range hideLists {
		f.Lists[l] = false
	}
	f.HideImported = hideImported
	return f
}

func newDayCmd(app *App) *cobra.Command {
	var date string
	var conflicts, interactive, hideImported bool
	var hideTypes, hideLists []string

	cmd := &cobra.Command{
		Use:   "day [DATE]",
		Short: "Show one day's packed schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				date = args[0]
			}
			if date == "" {
				date = timegrid.FormatDate(time.Now())
			}
			if !timegrid.ValidDate(date) {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
			}

			if conflicts {
				pairs, err := app.Schedule.Conflicts(ctx, date)
				if err != nil {
					return err
				}
				flat := make([][2]domain.Instance, len(pairs))
				for i, p := range pairs {
					flat[i] = [2]domain.Instance{p.A, p.B}
				}
				fmt.Printf("%s\n", formatter.FormatConflicts(date, flat))
				return nil
			}

			filters := buildFilters(hideTypes, hideLists, hideImported)

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive day view requires a terminal")
				}
				return runDayView(app, date, filters)
			}

			instances, err := app.Schedule.Day(ctx, date, filters)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDayView(date, instances, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&conflicts, "conflicts", false, "List overlapping pairs instead of the agenda")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive day view")
	addVisibilityFlags(cmd.Flags(), &hideTypes, &hideLists, &hideImported)

	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	var start string
	var hideImported bool
	var hideTypes, hideLists []string

	cmd := &cobra.Command{
		Use:   "week [START]",
		Short: "Show seven days starting at START",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				start = args[0]
			}
			if start == "" {
				start = timegrid.FormatDate(time.Now())
			}
			if !timegrid.ValidDate(start) {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", start)
			}
			end, err := timegrid.AddDays(start, 6)
			if err != nil {
				return err
			}

			sctx := domain.ScheduleContext{
				RangeStart: start,
				RangeEnd:   end,
				Filters:    buildFilters(hideTypes, hideLists, hideImported),
			}
			instances, err := app.Schedule.Range(ctx, sctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWeekView(start, instances, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the week (YYYY-MM-DD, defaults to today)")
	addVisibilityFlags(cmd.Flags(), &hideTypes, &hideLists, &hideImported)

	return cmd
}
