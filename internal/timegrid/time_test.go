package timegrid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "9:5", "ab:cd", "24:00", "12:60", "12:30:00", "-1:00"} {
		_, err := ToMinutes(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", in)
	}
}

func TestToTimeString_Clamps(t *testing.T) {
	assert.Equal(t, "00:00", ToTimeString(-10))
	assert.Equal(t, "23:59", ToTimeString(5000))
	assert.Equal(t, "09:05", ToTimeString(545))
}

// Every valid minute value survives a string round trip unchanged.
func TestRoundTrip_AllMinutes(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		got, err := ToMinutes(ToTimeString(m))
		require.NoError(t, err)
		require.Equal(t, m, got, "minute %d", m)
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		in    string
		delta int
		want  string
	}{
		{"09:00", 30, "09:30"},
		{"09:00", -30, "08:30"},
		{"23:45", 30, "23:59"}, // no day rollover
		{"00:10", -30, "00:00"},
		{"bogus", 15, "09:15"}, // malformed input falls back to the default time
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AddMinutes(tt.in, tt.delta), "%s %+d", tt.in, tt.delta)
	}
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		in, grid, want int
	}{
		{0, 15, 0},
		{7, 15, 15},
		{8, 15, 15},
		{22, 15, 15},
		{23, 15, 30},
		{-7, 15, -15},
		{-8, 15, -15},
		{-22, 15, -15},
		{100, 0, 100}, // non-positive grid is a no-op
		{37, 30, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapToGrid(tt.in, tt.grid), "snap(%d, %d)", tt.in, tt.grid)
	}
}

// Snapping an already-snapped value is a no-op for any positive grid.
func TestSnapToGrid_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		x := rng.Intn(4000) - 2000
		g := rng.Intn(60) + 1
		once := SnapToGrid(x, g)
		assert.Equal(t, once, SnapToGrid(once, g), "snap(snap(%d, %d))", x, g)
		assert.Zero(t, once%g, "snap(%d, %d) not on grid", x, g)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
}
