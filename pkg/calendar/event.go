package calendar

import (
	"time"
)

// Event is a scheduled calendar item. StartTime and EndTime are wall-clock
// "HH:MM" strings; Date carries the calendar day only, its time-of-day is
// ignored. Color is an opaque display tag the core never interprets.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Date        time.Time
	Color       string
	Location    string
}

// EventDraft is an event payload without identity, as produced by the
// assistant or the edit form before it is committed to the store.
type EventDraft struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Date        time.Time
	Color       string
	Location    string
}

// EventPatch is a partial update. Nil fields are retained from the stored
// event, non-nil fields overwrite (shallow merge).
type EventPatch struct {
	Title       *string
	Description *string
	StartTime   *string
	EndTime     *string
	Date        *time.Time
	Color       *string
	Location    *string
}

func (p EventPatch) applyTo(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
}
