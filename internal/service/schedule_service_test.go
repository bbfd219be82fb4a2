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

func newScheduleFixture(t *testing.T) (ScheduleService, *repository.SQLiteEventRepo, *repository.SQLiteTaskRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	return NewScheduleService(events, tasks), events, tasks
}

func TestScheduleRange_ExpandsRecurringAndProjectsTasks(t *testing.T) {
	svc, events, tasks := newScheduleFixture(t)
	ctx := context.Background()

	// Weekly standup anchored the Monday before the queried week.
	standup := testutil.MakeEvent("standup", "2024-02-26",
		testutil.WithTimes("09:00", "09:15"),
		testutil.WithRepeat(domain.RepeatWeekly, nil))
	require.NoError(t, events.Create(ctx, &standup))

	oneOff := testutil.MakeEvent("dentist", "2024-03-05", testutil.WithTimes("14:00", "15:00"))
	require.NoError(t, events.Create(ctx, &oneOff))

	essay := testutil.MakeTask("essay", "2024-03-06", "16:00")
	essay.EstimatedMin = 90
	require.NoError(t, tasks.Create(ctx, &essay))

	instances, err := svc.Range(ctx, domain.NewScheduleContext("2024-03-04", "2024-03-10"))
	require.NoError(t, err)

	var got []string
	for _, inst := range instances {
		got = append(got, inst.Date+" "+inst.ID)
	}
	assert.Equal(t, []string{
		"2024-03-04 standup:2024-03-04",
		"2024-03-05 dentist",
		"2024-03-06 task:essay",
	}, got)

	// Task pseudo-event runs backward from its due time.
	assert.Equal(t, "14:30", instances[2].StartTime)
	assert.Equal(t, "16:00", instances[2].EndTime)
	assert.Equal(t, domain.KindTask, instances[2].Kind)
}

func TestScheduleRange_AppliesFilters(t *testing.T) {
	svc, events, _ := newScheduleFixture(t)
	ctx := context.Background()

	work := testutil.MakeEvent("work", "2024-03-05", testutil.WithType(domain.EventWork))
	personal := testutil.MakeEvent("gym", "2024-03-05",
		testutil.WithType(domain.EventPersonal), testutil.WithTimes("18:00", "19:00"))
	require.NoError(t, events.Create(ctx, &work))
	require.NoError(t, events.Create(ctx, &personal))

	sctx := domain.NewScheduleContext("2024-03-05", "2024-03-05")
	sctx.Filters.Types[domain.EventWork] = false

	instances, err := svc.Range(ctx, sctx)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "gym", instances[0].ID)
}

func TestScheduleDay_PacksOverlaps(t *testing.T) {
	svc, events, _ := newScheduleFixture(t)
	ctx := context.Background()

	a := testutil.MakeEvent("a", "2024-03-05", testutil.WithTimes("09:00", "10:00"))
	b := testutil.MakeEvent("b", "2024-03-05", testutil.WithTimes("09:30", "10:30"))
	c := testutil.MakeEvent("c", "2024-03-05", testutil.WithTimes("11:00", "12:00"))
	for _, e := range []*domain.EventDefinition{&a, &b, &c} {
		require.NoError(t, events.Create(ctx, e))
	}

	instances, err := svc.Day(ctx, "2024-03-05", domain.NewVisibilityFilters())
	require.NoError(t, err)
	require.Len(t, instances, 3)

	byID := make(map[string]domain.Instance, len(instances))
	for _, inst := range instances {
		byID[inst.ID] = inst
	}
	assert.Equal(t, domain.LayoutSlot{Width: 50, Left: 0}, byID["a"].Slot)
	assert.Equal(t, domain.LayoutSlot{Width: 50, Left: 50}, byID["b"].Slot)
	assert.Equal(t, domain.LayoutSlot{Width: 100, Left: 0}, byID["c"].Slot)
}

func TestScheduleConflicts(t *testing.T) {
	svc, events, _ := newScheduleFixture(t)
	ctx := context.Background()

	a := testutil.MakeEvent("a", "2024-03-05", testutil.WithTimes("09:00", "10:00"))
	b := testutil.MakeEvent("b", "2024-03-05", testutil.WithTimes("09:30", "10:30"))
	c := testutil.MakeEvent("c", "2024-03-05", testutil.WithTimes("10:00", "11:00"))
	for _, e := range []*domain.EventDefinition{&a, &b, &c} {
		require.NoError(t, events.Create(ctx, e))
	}

	pairs, err := svc.Conflicts(ctx, "2024-03-05")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", pairs[0].A.ID)
	assert.Equal(t, "b", pairs[0].B.ID)
	assert.Equal(t, "b", pairs[1].A.ID)
	assert.Equal(t, "c", pairs[1].B.ID)
}

func TestScheduleRange_EmptyStore(t *testing.T) {
	svc, _, _ := newScheduleFixture(t)
	instances, err := svc.Range(context.Background(), domain.NewScheduleContext("2024-03-04", "2024-03-10"))
	require.NoError(t, err)
	assert.Empty(t, instances)
}
