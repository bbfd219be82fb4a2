package service

import (
	"context"
	"time"

	"tempora/internal/domain"
	"tempora/internal/layout"
	"tempora/internal/repository"
	"tempora/internal/schedule"
	"tempora/internal/timegrid"
)

type scheduleService struct {
	events   repository.EventRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewScheduleService(events repository.EventRepo, tasks repository.TaskRepo, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		events:   events,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Range(ctx context.Context, sctx domain.ScheduleContext) (instances []domain.Instance, err error) {
	started := time.Now()
	fields := map[string]any{"range_start": sctx.RangeStart, "range_end": sctx.RangeEnd}
	defer func() {
		observe(ctx, s.observer, "schedule_range", started, err, fields)
	}()

	defs, err := s.events.ListForRange(ctx, sctx.RangeStart, sctx.RangeEnd)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, err
	}

	instances, warnings := schedule.Resolve(defs, tasks, sctx)
	fields["instances"] = len(instances)
	for _, w := range warnings {
		warnDataQuality(ctx, s.observer, "schedule_data_warning", w)
	}
	return instances, nil
}

func (s *scheduleService) Day(ctx context.Context, date string, filters domain.VisibilityFilters) ([]domain.Instance, error) {
	sctx := domain.ScheduleContext{RangeStart: date, RangeEnd: date, Filters: filters}
	instances, err := s.Range(ctx, sctx)
	if err != nil {
		return nil, err
	}

	packed, degenerate := layout.Pack(instances)
	for _, id := range degenerate {
		warnDataQuality(ctx, s.observer, "schedule_data_warning", schedule.Warning{
			SourceID: id,
			Message:  "degenerate interval excluded from packing",
		})
	}
	return packed, nil
}

func (s *scheduleService) Conflicts(ctx context.Context, date string) ([]ConflictPair, error) {
	instances, err := s.Range(ctx, domain.NewScheduleContext(date, date))
	if err != nil {
		return nil, err
	}

	var pairs []ConflictPair
	for i := 0; i < len(instances); i++ {
		for j := i + 1; j < len(instances); j++ {
			if timegrid.OverlapsTimes(
				instances[i].StartTime, instances[i].EndTime,
				instances[j].StartTime, instances[j].EndTime,
			) {
				pairs = append(pairs, ConflictPair{A: instances[i], B: instances[j]})
			}
		}
	}
	return pairs, nil
}
