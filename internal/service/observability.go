package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"tempora/internal/schedule"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
// Warning events report data-quality findings (malformed stored rows, skipped
// import records) rather than a completed operation.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Warning   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs, "use_case", event.Name)
	if !event.Warning {
		attrs = append(attrs,
			"duration_ms", event.Duration.Milliseconds(),
			"success", event.Success,
		)
	}
	// Deterministic field order keeps log lines diffable in tests.
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, event.Fields[k])
	}

	switch {
	case event.Err != nil:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
	case event.Warning:
		o.logger.WarnContext(ctx, "service_use_case", attrs...)
	default:
		o.logger.InfoContext(ctx, "service_use_case", attrs...)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// observe reports one completed use case to the observer.
func observe(ctx context.Context, obs UseCaseObserver, name string, started time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

// warnDataQuality reports a fail-soft data finding attributed to a source record.
func warnDataQuality(ctx context.Context, obs UseCaseObserver, name string, w schedule.Warning) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:    name,
		Warning: true,
		Fields: map[string]any{
			"source_id": w.SourceID,
			"message":   w.Message,
		},
	})
}
