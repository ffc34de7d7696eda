// Package export renders the event collection as an iCalendar document so a
// schedule built in JellyCal can be pulled into any other calendar client.
package export

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jellycal/jellycal/pkg/calendar"
	"github.com/jellycal/jellycal/pkg/geometry"
)

// colorProperty carries the event's display tag; COLOR is the RFC 7986
// extension property most clients understand.
const colorProperty = ics.ComponentProperty("COLOR")

// Render serializes the events into a VCALENDAR. Events keep their stored
// wall-clock times in the local timezone; an end time before the start (the
// midnight-wrap edge case) is emitted as-is on the same date.
func Render(events []calendar.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, event := range events {
		ve := cal.AddEvent(event.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(event.Title)
		ve.SetStartAt(atWallClock(event.Date, event.StartTime))
		ve.SetEndAt(atWallClock(event.Date, event.EndTime))
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}
		if event.Color != "" {
			ve.SetProperty(colorProperty, event.Color)
		}
	}

	return cal.Serialize()
}

func atWallClock(date time.Time, hhmm string) time.Time {
	return date.Add(time.Duration(geometry.TimeToOffset(hhmm)) * time.Minute)
}
