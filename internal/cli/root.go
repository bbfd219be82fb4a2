package cli

import (
	"github.com/spf13/cobra"

	"tempora/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Events   service.EventService
	Tasks    service.TaskService
	Schedule service.ScheduleService
	Gestures service.GestureService
	Import   service.ImportService

	// IsInteractive reports whether stdin is attached to a terminal; the
	// interactive day view refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempora" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempora",
		Short: "Calendar scheduling and day layout from the terminal",
	}

	root.AddCommand(
		newEventCmd(app),
		newTaskCmd(app),
		newDayCmd(app),
		newWeekCmd(app),
		newImportCmd(app),
	)

	return root
}
