package event_bus

const (
	// TopicCalendarChanged carries the full event collection snapshot after
	// every store mutation. Payload: []calendar.Event.
	TopicCalendarChanged EventType = "calendar.changed"

	// TopicDragPreview carries the live preview of an in-flight drag gesture.
	// Payload: DragPreview.
	TopicDragPreview EventType = "drag.preview"
)

// DragPreview is the view-facing projection of an in-flight drag gesture.
// NewTop is the previewed top offset in minutes since midnight; it is not
// clamped, so out-of-bounds positions are possible while dragging.
type DragPreview struct {
	EventID   string
	DayOffset int
	NewTop    int
	Dragging  bool
}
