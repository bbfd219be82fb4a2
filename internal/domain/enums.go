package domain

type EventType string

const (
	EventClass    EventType = "class"
	EventStudy    EventType = "study"
	EventPersonal EventType = "personal"
	EventWork     EventType = "work"
	EventMeeting  EventType = "meeting"
	EventDeadline EventType = "deadline"
	EventOther    EventType = "other"
)

// ValidEventTypes is the canonical set of accepted event type strings.
var ValidEventTypes = map[string]bool{
	"class": true, "study": true, "personal": true, "work": true,
	"meeting": true, "deadline": true, "other": true,
}

type RepeatType string

const (
	RepeatDaily    RepeatType = "daily"
	RepeatWeekly   RepeatType = "weekly"
	RepeatBiweekly RepeatType = "biweekly"
	RepeatMonthly  RepeatType = "monthly"
)

// ValidRepeatTypes is the canonical set of accepted repeat type strings.
var ValidRepeatTypes = map[string]bool{
	"daily": true, "weekly": true, "biweekly": true, "monthly": true,
}

// InstanceKind discriminates event-backed instances from task-derived ones,
// so layout and rendering code switch on the tag instead of probing fields.
type InstanceKind string

const (
	KindEvent InstanceKind = "event"
	KindTask  InstanceKind = "task"
)
