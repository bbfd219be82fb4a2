package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import events from an .ics or .json calendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0], calendarID)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d event(s) from calendar %s", result.EventCount, result.SourceCalendarID)
			if result.SkippedCount > 0 {
				msg += fmt.Sprintf(" (%d skipped)", result.SkippedCount)
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "Source calendar id (defaults to the one declared in the file)")

	return cmd
}
