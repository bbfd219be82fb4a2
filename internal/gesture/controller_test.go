package gesture

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

func inst(id, date, start, end string) domain.Instance {
	return domain.NewStoredInstance(domain.EventDefinition{
		ID: id, Date: date, StartTime: start, EndTime: end, Type: domain.EventWork,
	})
}

func TestResize_BottomSnapsToGrid(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "09:00", "10:00"), HandleBottom))

	// +7 minutes of pointer travel snaps away, +8 snaps to the next notch.
	require.NoError(t, c.Update(Gesture{PointerDeltaY: 7}))
	_, _, end := c.Preview()
	assert.Equal(t, "10:00", end)

	require.NoError(t, c.Update(Gesture{PointerDeltaY: 8}))
	_, _, end = c.Preview()
	assert.Equal(t, "10:15", end)

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "09:00", change.StartTime)
	assert.Equal(t, "10:15", change.EndTime)
}

func TestResize_TopMinimumDuration(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "09:00", "10:00"), HandleTop))

	// Dragging far past the end pins the start at end - 15.
	require.NoError(t, c.Update(Gesture{PointerDeltaY: 300}))

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "09:45", change.StartTime)
	assert.Equal(t, "10:00", change.EndTime)
}

func TestResize_BottomMinimumDuration(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "09:00", "10:00"), HandleBottom))

	require.NoError(t, c.Update(Gesture{PointerDeltaY: -300}))

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "09:15", change.EndTime)
}

func TestResize_TopClampsToDayStart(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "00:30", "01:30"), HandleTop))

	require.NoError(t, c.Update(Gesture{PointerDeltaY: -120}))

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "00:00", change.StartTime)
}

func TestResize_PxPerMinuteScaling(t *testing.T) {
	c := NewController(2, 15) // two pixels per minute
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "09:00", "10:00"), HandleBottom))

	require.NoError(t, c.Update(Gesture{PointerDeltaY: 60})) // 30 minutes

	_, _, end := c.Preview()
	assert.Equal(t, "10:30", end)
	c.Cancel()
}

func TestDrag_MovePreservesDuration(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginDrag(inst("a", "2024-03-05", "09:00", "10:30")))

	require.NoError(t, c.Drop("2024-03-07", 14*60+5)) // lands on 14:00 after snap

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "2024-03-05", change.OriginalDate, "the date the gesture started on")
	assert.Equal(t, "2024-03-07", change.Date)
	assert.Equal(t, "14:00", change.StartTime)
	assert.Equal(t, "15:30", change.EndTime)
}

func TestDrag_ClampedToDayEnd(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginDrag(inst("a", "2024-03-05", "09:00", "11:00")))

	require.NoError(t, c.Drop("2024-03-05", 23*60))

	change, changed := c.End()
	require.True(t, changed)
	assert.Equal(t, "21:59", change.StartTime, "start shifts back so the end stays inside the day")
	assert.Equal(t, "23:59", change.EndTime)
}

func TestEnd_NoopWhenUnchanged(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginResize(inst("a", "2024-03-05", "09:00", "10:00"), HandleBottom))

	require.NoError(t, c.Update(Gesture{PointerDeltaY: 7})) // snaps back to the original

	_, changed := c.End()
	assert.False(t, changed)
	assert.Equal(t, StateIdle, c.State())
}

func TestSingleGestureAtATime(t *testing.T) {
	c := NewController(1, 15)
	require.NoError(t, c.BeginDrag(inst("a", "2024-03-05", "09:00", "10:00")))

	assert.ErrorIs(t, c.BeginDrag(inst("b", "2024-03-05", "11:00", "12:00")), ErrGestureActive)
	assert.ErrorIs(t, c.BeginResize(inst("b", "2024-03-05", "11:00", "12:00"), HandleTop), ErrGestureActive)

	// End always resets, even for a no-op, so a new gesture may start.
	_, _ = c.End()
	assert.NoError(t, c.BeginDrag(inst("b", "2024-03-05", "11:00", "12:00")))
	c.Cancel()
	assert.False(t, c.Active())
}

func TestUpdate_RequiresActiveGesture(t *testing.T) {
	c := NewController(1, 15)
	assert.ErrorIs(t, c.Update(Gesture{PointerDeltaY: 10}), ErrNoGesture)
	assert.ErrorIs(t, c.Drop("2024-03-05", 600), ErrNoGesture)
}

// After any random gesture sequence the result keeps at least the minimum
// duration and stays inside the day.
func TestGesture_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		start := rng.Intn(1300)
		end := start + 15 + rng.Intn(200)
		in := inst("a", "2024-03-05",
			timegrid.ToTimeString(start),
			timegrid.ToTimeString(timegrid.Clamp(end, 0, timegrid.DayEndMin)))

		c := NewController(1, 15)
		if rng.Intn(2) == 0 {
			handle := HandleTop
			if rng.Intn(2) == 0 {
				handle = HandleBottom
			}
			require.NoError(t, c.BeginResize(in, handle))
		} else {
			require.NoError(t, c.BeginDrag(in))
		}

		for i := 0; i < rng.Intn(5)+1; i++ {
			_ = c.Update(Gesture{PointerDeltaY: float64(rng.Intn(4000) - 2000)})
		}

		_, s, e := c.Preview()
		sMin, err := timegrid.ToMinutes(s)
		require.NoError(t, err)
		eMin, err := timegrid.ToMinutes(e)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, eMin-sMin, timegrid.MinDurationMin,
			"trial %d: [%s, %s) below minimum duration", trial, s, e)
		assert.LessOrEqual(t, eMin, timegrid.DayEndMin, "trial %d", trial)
		assert.GreaterOrEqual(t, sMin, 0, "trial %d", trial)

		_, _ = c.End()
		assert.Equal(t, StateIdle, c.State(), "trial %d: End always resets", trial)
	}
}
