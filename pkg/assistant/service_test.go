package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/jellycal/jellycal/internal/utils"
	"github.com/jellycal/jellycal/pkg/calendar"
	"github.com/stretchr/testify/assert"
)

func newTestService() (*Service, *calendar.InMemoryStore) {
	store := calendar.NewInMemoryStore(nil)
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.August, 30, 15, 30, 0, 0, time.Local)}
	interpreter := NewInterpreter(store, clock)
	return NewService(interpreter, store), store
}

func TestHandleMessage_AddDialogue(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService()

	reply := service.HandleMessage(ctx, "Add meeting tomorrow at 2pm")
	assert.Equal(t, QuestionTitle, reply)
	assert.Empty(t, store.List(), "nothing stored until the draft is complete")

	reply = service.HandleMessage(ctx, "Team Sync")
	assert.Equal(t, "Perfect! I've added that event to your calendar.", reply)

	events := store.List()
	assert.Len(t, events, 1)
	assert.Equal(t, "Team Sync", events[0].Title)
	assert.Equal(t, "14:00", events[0].StartTime)
	assert.Equal(t, "15:00", events[0].EndTime)
}

func TestHandleMessage_DirectAdd(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService()

	reply := service.HandleMessage(ctx, "Schedule a meeting called 'Budget Sync' on Friday at 3pm")
	assert.Equal(t, `Perfect! I've added "Budget Sync" to your calendar.`, reply)
	assert.Len(t, store.List(), 1)
}

func TestHandleMessage_Reschedule(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService()

	event := store.Add(ctx, calendar.EventDraft{
		Title:     "Team Sync",
		StartTime: "14:00",
		EndTime:   "15:00",
		Date:      time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local),
	})

	reply := service.HandleMessage(ctx, "Reschedule Team Sync to Friday 9am")
	assert.Equal(t, `Done! I've rescheduled "Team Sync".`, reply)

	updated, err := store.ByID(event.ID)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 4, 0, 0, 0, 0, time.Local), updated.Date)
	assert.Equal(t, "09:00", updated.StartTime)
	// The end time is deliberately left untouched by a chat reschedule.
	assert.Equal(t, "15:00", updated.EndTime)
}

func TestHandleMessage_ClarificationAndFallback(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	reply := service.HandleMessage(ctx, "Reschedule the retro to Friday")
	assert.Equal(t, QuestionWhichEvent, reply)

	reply = service.HandleMessage(ctx, "what's the weather like")
	assert.Equal(t, HelpMessage, reply)
}
