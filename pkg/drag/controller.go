package drag

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/jellycal/jellycal/internal/event_bus"
	"github.com/jellycal/jellycal/pkg/calendar"
	"github.com/jellycal/jellycal/pkg/geometry"
	log "github.com/sirupsen/logrus"
)

var (
	ErrDragInProgress = errors.New("drag session already in progress")
	ErrNoActiveDrag   = errors.New("no active drag session")
)

// State of the per-gesture machine: Idle -> Dragging -> Committed|Cancelled.
// Committed and Cancelled are terminal for the session; the controller
// itself accepts a fresh Begin afterwards.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitted
	StateCancelled
)

// session is the ephemeral state of one pointer-drag gesture. It holds the
// dragged event's original schedule so every Update stays a pure function of
// the accumulated pixel offset. Previews cannot drift when pointer-move
// events are dropped or coalesced.
type session struct {
	eventID  string
	date     time.Time
	start    string
	top      int // minutes since midnight
	duration int // minutes, may be negative for midnight-crossing events
}

// Controller converts pointer-drag pixel deltas into discrete schedule
// changes: a signed day offset from horizontal movement and a whole-hour
// time shift from vertical movement. Only one session may be active at a
// time.
type Controller struct {
	mu            sync.Mutex
	store         calendar.EventStore
	bus           *event_bus.EventBus
	pixelsPerHour int
	columnGapPx   int
	state         State
	session       *session
}

func NewController(store calendar.EventStore, bus *event_bus.EventBus, pixelsPerHour, columnGapPx int) *Controller {
	return &Controller{
		store:         store,
		bus:           bus,
		pixelsPerHour: pixelsPerHour,
		columnGapPx:   columnGapPx,
		state:         StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin starts a drag for the given event, snapshotting its current
// schedule. A second Begin while a session is active is rejected.
func (c *Controller) Begin(eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDragging {
		return ErrDragInProgress
	}

	event, err := c.store.ByID(eventID)
	if err != nil {
		return err
	}

	c.session = &session{
		eventID:  event.ID,
		date:     event.Date,
		start:    event.StartTime,
		top:      geometry.TimeToOffset(event.StartTime),
		duration: geometry.Duration(event.StartTime, event.EndTime),
	}
	c.state = StateDragging
	log.Debugf("drag started for event %s", event.ID)
	return nil
}

// Update recomputes the live preview from the accumulated pixel offset. The
// previewed top is deliberately not clamped, so the view may show
// out-of-bounds positions mid-gesture. Safe to call at pointer-move
// frequency.
func (c *Controller) Update(ctx context.Context, deltaX, deltaY, columnWidth float64) (event_bus.DragPreview, error) {
	c.mu.Lock()
	if c.state != StateDragging {
		c.mu.Unlock()
		return event_bus.DragPreview{}, ErrNoActiveDrag
	}

	preview := event_bus.DragPreview{
		EventID:   c.session.eventID,
		DayOffset: c.dayOffset(deltaX, columnWidth),
		NewTop:    c.session.top + c.hoursMoved(deltaY)*60,
		Dragging:  true,
	}
	c.mu.Unlock()

	c.publish(ctx, preview)
	return preview, nil
}

// Commit ends the gesture and applies the schedule change: the start hour is
// shifted by whole hours and clamped to [0,23] with the original minute
// component preserved, the date moves by the day offset, and the end time is
// recomputed from the event's original duration.
func (c *Controller) Commit(ctx context.Context, deltaX, deltaY, columnWidth float64) (calendar.Event, error) {
	c.mu.Lock()
	if c.state != StateDragging {
		c.mu.Unlock()
		return calendar.Event{}, ErrNoActiveDrag
	}
	s := c.session

	startOffset := geometry.TimeToOffset(s.start)
	hours := startOffset / 60
	minutes := startOffset % 60

	newHours := hours + c.hoursMoved(deltaY)
	if newHours < 0 {
		newHours = 0
	}
	if newHours > 23 {
		newHours = 23
	}

	newStart := geometry.OffsetToTime(newHours*60 + minutes)
	newEnd := geometry.OffsetToTime(newHours*60 + minutes + s.duration)
	newDate := s.date.AddDate(0, 0, c.dayOffset(deltaX, columnWidth))

	finalPreview := event_bus.DragPreview{EventID: s.eventID, NewTop: s.top}
	c.session = nil
	c.state = StateCommitted
	c.mu.Unlock()

	updated, err := c.store.Update(ctx, s.eventID, calendar.EventPatch{
		Date:      &newDate,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	if err != nil {
		return calendar.Event{}, err
	}

	log.Debugf("drag committed for event %s: %s %s", s.eventID, newDate.Format("2006-01-02"), newStart)
	c.publish(ctx, finalPreview)
	return updated, nil
}

// Cancel discards the session without touching the store.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateDragging {
		c.mu.Unlock()
		return ErrNoActiveDrag
	}
	finalPreview := event_bus.DragPreview{EventID: c.session.eventID, NewTop: c.session.top}
	c.session = nil
	c.state = StateCancelled
	c.mu.Unlock()

	c.publish(ctx, finalPreview)
	return nil
}

// dayOffset snaps horizontal movement to whole day columns, accounting for
// the gap between columns. An unknown column width yields no day change.
func (c *Controller) dayOffset(deltaX, columnWidth float64) int {
	if columnWidth <= 0 {
		return 0
	}
	return roundHalfUp(deltaX / (columnWidth + float64(c.columnGapPx)))
}

// hoursMoved snaps vertical movement to whole-hour increments; partial-hour
// drops are never produced.
func (c *Controller) hoursMoved(deltaY float64) int {
	return roundHalfUp(deltaY / float64(c.pixelsPerHour))
}

func (c *Controller) publish(ctx context.Context, preview event_bus.DragPreview) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(event_bus.NewEvent(ctx, event_bus.TopicDragPreview, preview))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
