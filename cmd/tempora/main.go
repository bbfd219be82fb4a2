package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"tempora/internal/cli"
	"tempora/internal/db"
	"tempora/internal/repository"
	"tempora/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempora/tempora.db
	dbPath := os.Getenv("TEMPORA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempora", "tempora.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	eventRepo := repository.NewSQLiteEventRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Use-case telemetry goes to stderr when requested, so agenda output
	// stays clean for piping.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("TEMPORA_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Events:   service.NewEventService(eventRepo, observer),
		Tasks:    service.NewTaskService(taskRepo, observer),
		Schedule: service.NewScheduleService(eventRepo, taskRepo, observer),
		Gestures: service.NewGestureService(eventRepo, observer),
		Import:   service.NewImportService(database, observer),
	}

	// Detect interactive terminal for the day-view entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
