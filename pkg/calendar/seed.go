package calendar

import (
	"context"

	"github.com/jellycal/jellycal/internal/utils"
)

// SeedDemoEvents fills an empty store with a small sample schedule spread
// over today and tomorrow. Used when the calendar.demo config flag is set.
func SeedDemoEvents(ctx context.Context, store EventStore, clock utils.Clock) {
	today := utils.DateOnly(clock.Now())
	tomorrow := today.AddDate(0, 0, 1)

	drafts := []EventDraft{
		{Title: "Design Review", StartTime: "11:00", EndTime: "12:00", Date: today, Color: "#a78bfa"},
		{Title: "Lunch Break", StartTime: "12:00", EndTime: "13:00", Date: today, Color: "#6ee7b7"},
		{Title: "Client Presentation", StartTime: "14:00", EndTime: "15:30", Date: today, Color: "#60a5fa"},
		{Title: "Code Review", StartTime: "16:00", EndTime: "17:00", Date: today, Color: "#fbbf24"},
		{Title: "Project Planning", StartTime: "10:00", EndTime: "11:30", Date: tomorrow, Color: "#f97316"},
		{Title: "Workshop", StartTime: "13:00", EndTime: "15:00", Date: tomorrow, Color: "#ec4899"},
	}
	for _, draft := range drafts {
		store.Add(ctx, draft)
	}
}
