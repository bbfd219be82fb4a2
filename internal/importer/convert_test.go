package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/internal/domain"
)

func TestConvert_MapsAllFields(t *testing.T) {
	schema := validSchema()
	records := Convert(schema)
	require.Len(t, records, 2)

	assert.Equal(t, EventRecord{
		UID:       "lecture-1",
		Title:     "Algorithms",
		Location:  "Hall B",
		Date:      "2024-02-05",
		StartTime: "10:00",
		EndTime:   "11:30",
		Type:      "class",
	}, records[0])

	assert.True(t, records[1].Recurring)
	assert.Equal(t, "weekly", records[1].RepeatType)
	require.NotNil(t, records[1].RepeatUntil)
	assert.Equal(t, "2024-06-30", *records[1].RepeatUntil)
}

func TestConvert_DropsRecurrenceOfOneOffs(t *testing.T) {
	until := "2024-06-30"
	schema := &ImportSchema{
		Calendar: CalendarImport{ID: "cal"},
		Events: []EventImport{
			{UID: "a", Title: "A", Date: "2024-02-05", StartTime: "10:00", EndTime: "11:00", RepeatUntil: &until},
		},
	}
	records := Convert(schema)
	require.Len(t, records, 1)
	assert.False(t, records[0].Recurring)
	assert.Empty(t, records[0].RepeatType)
	assert.Nil(t, records[0].RepeatUntil)
}

func TestToDefinition(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	until := "2024-06-30"
	rec := EventRecord{
		UID:         "standup",
		Title:       "Standup",
		Date:        "2024-02-05",
		StartTime:   "09:00",
		EndTime:     "09:15",
		Type:        "work",
		ListID:      "job",
		Recurring:   true,
		RepeatType:  "weekly",
		RepeatUntil: &until,
	}

	def, err := ToDefinition(rec, "work-cal", now)
	require.NoError(t, err)

	assert.NotEmpty(t, def.ID)
	assert.Equal(t, "2024-02-05", def.Date)
	assert.Equal(t, "09:00", def.StartTime)
	assert.Equal(t, "09:15", def.EndTime)
	assert.Equal(t, domain.EventWork, def.Type)
	assert.Equal(t, "job", def.ListID)
	assert.True(t, def.Recurring)
	assert.Equal(t, domain.RepeatWeekly, def.RepeatType)
	require.NotNil(t, def.RepeatUntil)
	assert.Equal(t, "2024-06-30", *def.RepeatUntil)
	assert.Equal(t, "work-cal", def.SourceCalendarID)
	assert.True(t, def.Imported())
	assert.Equal(t, now, def.CreatedAt)
}

func TestToDefinition_DefaultsTypeToOther(t *testing.T) {
	def, err := ToDefinition(EventRecord{
		UID: "x", Title: "X", Date: "2024-02-05", StartTime: "10:00", EndTime: "11:00",
	}, "cal", time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.EventOther, def.Type)
}

func TestToDefinition_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		rec     EventRecord
		wantErr string
	}{
		{
			name:    "bad date",
			rec:     EventRecord{UID: "x", Date: "2024-13-05", StartTime: "10:00", EndTime: "11:00"},
			wantErr: "invalid date",
		},
		{
			name:    "bad start",
			rec:     EventRecord{UID: "x", Date: "2024-02-05", StartTime: "10:70", EndTime: "11:00"},
			wantErr: "start time",
		},
		{
			name:    "inverted times",
			rec:     EventRecord{UID: "x", Date: "2024-02-05", StartTime: "11:00", EndTime: "10:00"},
			wantErr: "must be before end",
		},
		{
			name:    "bad type",
			rec:     EventRecord{UID: "x", Date: "2024-02-05", StartTime: "10:00", EndTime: "11:00", Type: "gala"},
			wantErr: "invalid event type",
		},
		{
			name:    "bad repeat",
			rec:     EventRecord{UID: "x", Date: "2024-02-05", StartTime: "10:00", EndTime: "11:00", Recurring: true, RepeatType: "yearly"},
			wantErr: "invalid repeat type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDefinition(tt.rec, "cal", time.Now())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
