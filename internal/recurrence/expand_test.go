package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/internal/domain"
)

func recurringDef(id, anchor string, repeat domain.RepeatType, until *string) domain.EventDefinition {
	return domain.EventDefinition{
		ID:          id,
		Date:        anchor,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Type:        domain.EventClass,
		Recurring:   true,
		RepeatType:  repeat,
		RepeatUntil: until,
	}
}

func dates(instances []domain.Instance) []string {
	out := make([]string, len(instances))
	for i, in := range instances {
		out[i] = in.Date
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestExpand_WeeklyWithRepeatUntil(t *testing.T) {
	// Anchored Monday 2024-01-01, capped at 01-22, queried through January.
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, strPtr("2024-01-22"))

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-01-31")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}, dates(instances))

	assert.False(t, instances[0].IsGenerated, "anchor is the stored base instance")
	for _, in := range instances[1:] {
		assert.True(t, in.IsGenerated)
		assert.Equal(t, "ev1", in.DefinitionID)
		assert.Equal(t, OccurrenceID("ev1", in.Date), in.ID)
	}
}

func TestExpand_Daily(t *testing.T) {
	def := recurringDef("ev1", "2024-01-05", domain.RepeatDaily, nil)

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-01-08")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08"}, dates(instances))
}

func TestExpand_Biweekly_EvenWeeksOnly(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatBiweekly, nil)

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-02-12")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-29", "2024-02-12"}, dates(instances))
}

func TestExpand_Monthly_SkipsShortMonths(t *testing.T) {
	// Anchored on the 31st: February has no matching day and is skipped
	// outright, never rolled over to March 1st.
	def := recurringDef("ev1", "2024-01-31", domain.RepeatMonthly, nil)

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-04-30")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-31", "2024-03-31"}, dates(instances))
}

func TestExpand_AnchorBeforeRange(t *testing.T) {
	def := recurringDef("ev1", "2023-12-25", domain.RepeatWeekly, nil)

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-01-14")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-01", "2024-01-08"}, dates(instances))
	for _, in := range instances {
		assert.True(t, in.IsGenerated, "anchor out of range, everything is generated")
	}
}

func TestExpand_OverridePrecedence(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, nil)
	override := domain.EventDefinition{
		ID:            "ev2",
		Date:          "2024-01-08",
		StartTime:     "14:00",
		EndTime:       "15:00",
		ParentEventID: strPtr("ev1"),
	}

	instances, warnings := Expand(def, []domain.EventDefinition{override}, "2024-01-01", "2024-01-15")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-01", "2024-01-15"}, dates(instances),
		"no generated instance on the overridden date")
}

func TestExpand_MovedOverrideStillSuppressesOriginalDate(t *testing.T) {
	// The override was dragged from 01-08 to 01-09; the 01-08 occurrence it
	// replaces must not come back.
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, nil)
	override := domain.EventDefinition{
		ID:            "ev2",
		Date:          "2024-01-09",
		OverridesDate: strPtr("2024-01-08"),
		StartTime:     "14:00",
		EndTime:       "15:00",
		ParentEventID: strPtr("ev1"),
	}

	instances, warnings := Expand(def, []domain.EventDefinition{override}, "2024-01-01", "2024-01-15")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-01", "2024-01-15"}, dates(instances))
}

func TestExpand_AnchorOverrideSuppressesBaseInstance(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, nil)
	override := domain.EventDefinition{
		ID:            "ev2",
		Date:          "2024-01-01",
		OverridesDate: strPtr("2024-01-01"),
		StartTime:     "14:00",
		EndTime:       "15:00",
		ParentEventID: strPtr("ev1"),
	}

	instances, warnings := Expand(def, []domain.EventDefinition{override}, "2024-01-01", "2024-01-15")

	require.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-08", "2024-01-15"}, dates(instances),
		"the stored base instance gives way to its override")
}

func TestExpand_OverrideForOtherDefinitionIgnored(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, nil)
	foreign := domain.EventDefinition{
		ID:            "ev9",
		Date:          "2024-01-08",
		ParentEventID: strPtr("other"),
	}

	instances, _ := Expand(def, []domain.EventDefinition{foreign}, "2024-01-01", "2024-01-15")

	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15"}, dates(instances))
}

func TestExpand_NonRecurring(t *testing.T) {
	def := domain.EventDefinition{ID: "ev1", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00"}

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-01-31")
	require.Empty(t, warnings)
	require.Len(t, instances, 1)
	assert.False(t, instances[0].IsGenerated)

	instances, _ = Expand(def, nil, "2024-02-01", "2024-02-28")
	assert.Empty(t, instances, "out-of-range non-recurring definition yields nothing")
}

func TestExpand_UnknownRepeatType_FailSoft(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatType("yearly"), nil)

	instances, warnings := Expand(def, nil, "2024-01-01", "2024-03-31")

	require.Len(t, instances, 1, "base anchor instance is still returned")
	assert.False(t, instances[0].IsGenerated)
	require.Len(t, warnings, 1)
	assert.Equal(t, "ev1", warnings[0].DefinitionID)
	assert.Contains(t, warnings[0].Message, "yearly")
}

func TestExpand_InvertedRange(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatDaily, nil)

	instances, warnings := Expand(def, nil, "2024-02-01", "2024-01-01")

	assert.Empty(t, instances)
	assert.Empty(t, warnings)
}

// Two expansions of the same inputs must agree exactly, ids included.
func TestExpand_Idempotent(t *testing.T) {
	def := recurringDef("ev1", "2024-01-03", domain.RepeatDaily, strPtr("2024-01-20"))
	override := domain.EventDefinition{ID: "ov", Date: "2024-01-10", ParentEventID: strPtr("ev1")}

	first, _ := Expand(def, []domain.EventDefinition{override}, "2024-01-01", "2024-01-31")
	second, _ := Expand(def, []domain.EventDefinition{override}, "2024-01-01", "2024-01-31")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Date, second[i].Date)
	}
}

func TestNewOccurrence_DoesNotMutateDefinition(t *testing.T) {
	def := recurringDef("ev1", "2024-01-01", domain.RepeatWeekly, nil)

	occ := NewOccurrence(def, "2024-01-08")

	assert.Equal(t, "2024-01-01", def.Date)
	assert.Equal(t, "ev1", def.ID)
	assert.Equal(t, "2024-01-08", occ.Date)
	assert.Equal(t, "ev1:2024-01-08", occ.ID)
	assert.Equal(t, def.StartTime, occ.StartTime)
}
