package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tempora/internal/domain"
	"tempora/internal/repository"
	"tempora/internal/timegrid"
)

type taskService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

func validateTask(t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	for _, d := range []struct{ name, val string }{
		{"start date", t.StartDate},
		{"due date", t.DueDate},
	} {
		if d.val != "" && !timegrid.ValidDate(d.val) {
			return fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", d.name, d.val)
		}
	}
	for _, tm := range []struct{ name, val string }{
		{"start time", t.StartTime},
		{"due time", t.DueTime},
	} {
		if tm.val != "" {
			if _, err := timegrid.ToMinutes(tm.val); err != nil {
				return fmt.Errorf("invalid %s: %w", tm.name, err)
			}
		}
	}
	if t.EstimatedMin < 0 {
		return fmt.Errorf("estimate must not be negative")
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_create", started, err, map[string]any{"task_id": t.ID})
	}()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err = validateTask(t); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	err = s.tasks.Create(ctx, t)
	return err
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeDone bool) ([]domain.Task, error) {
	return s.tasks.List(ctx, includeDone)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.tasks.SetDone(ctx, id, true)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
