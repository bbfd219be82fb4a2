package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/internal/domain"
	"tempora/internal/repository"
	"tempora/internal/testutil"
)

func TestTaskServiceCreate(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))
	ctx := context.Background()

	task := &domain.Task{Title: "Essay", DueDate: "2024-03-06", DueTime: "16:00", EstimatedMin: 90}
	require.NoError(t, svc.Create(ctx, task))
	assert.NotEmpty(t, task.ID)

	stored, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Essay", stored.Title)
	assert.Equal(t, 90, stored.EstimatedMin)
}

func TestTaskServiceCreate_Validation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))
	ctx := context.Background()

	tests := []struct {
		name    string
		task    domain.Task
		wantErr string
	}{
		{"missing title", domain.Task{}, "title is required"},
		{"bad due date", domain.Task{Title: "T", DueDate: "soon"}, "invalid due date"},
		{"bad due time", domain.Task{Title: "T", DueDate: "2024-03-06", DueTime: "4pm"}, "invalid due time"},
		{"negative estimate", domain.Task{Title: "T", EstimatedMin: -5}, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.task
			err := svc.Create(ctx, &task)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTaskServiceMarkDone_HidesFromDefaultList(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))
	ctx := context.Background()

	task := testutil.MakeTask("essay", "2024-03-06", "16:00")
	require.NoError(t, svc.Create(ctx, &task))
	require.NoError(t, svc.MarkDone(ctx, "essay"))

	open, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Done)
}
