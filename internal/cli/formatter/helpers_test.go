package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today", "2024-03-05", "Today"},
		{"tomorrow", "2024-03-06", "Tomorrow"},
		{"yesterday", "2024-03-04", "Yesterday"},
		{"other day", "2024-03-11", "Mon, Mar 11 2024"},
		{"malformed passes through", "not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDate(tt.input, now))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "1h 30m", Duration("10:00", "11:30"))
	assert.Equal(t, "15m", Duration("09:00", "09:15"))
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{
		{"x", "y"},
		{"wide-cell", "z"},
	})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "LONGER")
	assert.Contains(t, out, "wide-cell")
}
