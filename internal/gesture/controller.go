// Package gesture converts pointer deltas into snapped start/end time edits.
// The controller is a small state machine (idle → resizing|dragging → idle)
// with no UI-framework coupling: callers feed it Gesture value objects and
// commit the Change it reports on release.
package gesture

import (
	"errors"
	"math"

	"tempora/internal/domain"
	"tempora/internal/timegrid"
)

type State int

const (
	StateIdle State = iota
	StateResizing
	StateDragging
)

// Handle identifies which edge of the event a resize grabs.
type Handle string

const (
	HandleTop    Handle = "top"
	HandleBottom Handle = "bottom"
)

var (
	// ErrGestureActive is returned when a gesture begins while another is
	// still in flight; only one gesture may be active per controller.
	ErrGestureActive = errors.New("a gesture is already active")
	// ErrNoGesture is returned by Update outside an active gesture.
	ErrNoGesture = errors.New("no active gesture")
)

// Gesture is one pointer-movement sample, decoupled from any UI event type.
type Gesture struct {
	PointerDeltaY float64 // pixels from the gesture's starting position
	ElapsedMs     int
}

// Change is the committed outcome of a finished gesture.
type Change struct {
	InstanceID   string
	DefinitionID string
	WasGenerated bool
	// OriginalDate is the date the instance occupied when the gesture
	// began; for a generated occurrence it names the occurrence to
	// replace even when Date moved elsewhere.
	OriginalDate string
	Date         string
	StartTime    string
	EndTime      string
}

// Controller turns gesture samples into clamped, snapped time edits for one
// instance at a time.
type Controller struct {
	pxPerMinute float64
	snapMin     int

	state  State
	handle Handle
	inst   domain.Instance

	origStart, origEnd int
	curStart, curEnd   int
	curDate            string
}

// NewController builds a controller. pxPerMinute maps pointer distance to
// minutes; zero or negative falls back to 1. snapMin of zero falls back to
// the 15-minute default.
func NewController(pxPerMinute float64, snapMin int) *Controller {
	if pxPerMinute <= 0 {
		pxPerMinute = 1
	}
	if snapMin <= 0 {
		snapMin = timegrid.DefaultSnapMin
	}
	return &Controller{pxPerMinute: pxPerMinute, snapMin: snapMin}
}

// State reports the controller's current phase.
func (c *Controller) State() State { return c.state }

// Active reports whether a gesture is in flight.
func (c *Controller) Active() bool { return c.state != StateIdle }

// BeginResize captures the instance and handle for a resize gesture.
func (c *Controller) BeginResize(inst domain.Instance, handle Handle) error {
	if c.state != StateIdle {
		return ErrGestureActive
	}
	c.begin(inst)
	c.state = StateResizing
	c.handle = handle
	return nil
}

// BeginDrag captures the instance for a drag-to-move gesture.
func (c *Controller) BeginDrag(inst domain.Instance) error {
	if c.state != StateIdle {
		return ErrGestureActive
	}
	c.begin(inst)
	c.state = StateDragging
	return nil
}

func (c *Controller) begin(inst domain.Instance) {
	c.inst = inst
	c.origStart = timegrid.MinutesOrDefault(inst.StartTime)
	c.origEnd = timegrid.MinutesOrDefault(inst.EndTime)
	if c.origEnd <= c.origStart {
		c.origEnd = timegrid.Clamp(c.origStart+timegrid.MinDurationMin, 0, timegrid.DayEndMin)
	}
	c.curStart, c.curEnd = c.origStart, c.origEnd
	c.curDate = inst.Date
}

// Update applies a gesture sample to the active edit. The new times are
// snapped to the grid and clamped so the event keeps its minimum duration
// and never leaves the day; an impossible move is clamped, never rejected.
func (c *Controller) Update(g Gesture) error {
	if c.state == StateIdle {
		return ErrNoGesture
	}
	delta := int(math.Round(g.PointerDeltaY / c.pxPerMinute))
	snapped := timegrid.SnapToGrid(delta, c.snapMin)

	switch c.state {
	case StateResizing:
		if c.handle == HandleTop {
			c.curStart = timegrid.Clamp(c.origStart+snapped, timegrid.DayStartMin, c.origEnd-timegrid.MinDurationMin)
		} else {
			c.curEnd = timegrid.Clamp(c.origEnd+snapped, c.origStart+timegrid.MinDurationMin, timegrid.DayEndMin)
		}
	case StateDragging:
		c.moveTo(c.curDate, c.origStart+snapped)
	}
	return nil
}

// Drop retargets an in-flight drag at a day cell: the new start is the
// snapped minute offset within the target date, duration preserved.
func (c *Controller) Drop(date string, minuteOffset int) error {
	if c.state != StateDragging {
		return ErrNoGesture
	}
	c.moveTo(date, timegrid.SnapToGrid(minuteOffset, c.snapMin))
	return nil
}

// moveTo shifts the event to start at the given minute, keeping its original
// duration. The shift is pulled back when the end would pass 23:59.
func (c *Controller) moveTo(date string, startMin int) {
	duration := c.origEnd - c.origStart
	startMin = timegrid.Clamp(startMin, timegrid.DayStartMin, timegrid.DayEndMin-duration)
	c.curDate = date
	c.curStart = startMin
	c.curEnd = startMin + duration
}

// Preview returns the gesture's current date and times without ending it.
func (c *Controller) Preview() (date, start, end string) {
	return c.curDate, timegrid.ToTimeString(c.curStart), timegrid.ToTimeString(c.curEnd)
}

// End finishes the gesture and resets to idle regardless of outcome. The
// returned Change is meaningful only when changed is true, i.e. the final
// position differs from the original.
func (c *Controller) End() (change Change, changed bool) {
	defer func() {
		c.state = StateIdle
		c.inst = domain.Instance{}
	}()

	if c.state == StateIdle {
		return Change{}, false
	}
	if c.curDate == c.inst.Date && c.curStart == c.origStart && c.curEnd == c.origEnd {
		return Change{}, false
	}
	return Change{
		InstanceID:   c.inst.ID,
		DefinitionID: c.inst.DefinitionID,
		WasGenerated: c.inst.IsGenerated,
		OriginalDate: c.inst.Date,
		Date:         c.curDate,
		StartTime:    timegrid.ToTimeString(c.curStart),
		EndTime:      timegrid.ToTimeString(c.curEnd),
	}, true
}

// Cancel abandons the gesture without producing a change.
func (c *Controller) Cancel() {
	c.state = StateIdle
	c.inst = domain.Instance{}
}
