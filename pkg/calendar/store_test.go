package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/jellycal/jellycal/internal/event_bus"
	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns unique ids", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			event := store.Add(ctx, EventDraft{Title: "Standup", StartTime: "09:00", EndTime: "09:15"})
			assert.NotEmpty(t, event.ID)
			assert.False(t, seen[event.ID], "id %s assigned twice", event.ID)
			seen[event.ID] = true
		}
	})

	t.Run("returns the full stored event", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		date := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local)
		event := store.Add(ctx, EventDraft{
			Title:     "Team Sync",
			StartTime: "14:00",
			EndTime:   "15:00",
			Date:      date,
			Color:     "#60A5FA",
			Location:  "Room 4",
		})

		assert.Equal(t, "Team Sync", event.Title)
		assert.Equal(t, "14:00", event.StartTime)
		assert.Equal(t, "15:00", event.EndTime)
		assert.Equal(t, date, event.Date)
		assert.Equal(t, "Room 4", event.Location)

		stored, err := store.ByID(event.ID)
		assert.NoError(t, err)
		assert.Equal(t, event, stored)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("shallow merge keeps untouched fields", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		event := store.Add(ctx, EventDraft{
			Title:     "Design Review",
			StartTime: "11:00",
			EndTime:   "12:00",
			Location:  "Studio",
			Color:     "#a78bfa",
		})

		newTitle := "Design Review II"
		updated, err := store.Update(ctx, event.ID, EventPatch{Title: &newTitle})
		assert.NoError(t, err)

		assert.Equal(t, "Design Review II", updated.Title)
		assert.Equal(t, event.StartTime, updated.StartTime)
		assert.Equal(t, event.EndTime, updated.EndTime)
		assert.Equal(t, event.Location, updated.Location)
		assert.Equal(t, event.Color, updated.Color)

		stored, err := store.ByID(event.ID)
		assert.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("unknown id returns ErrEventNotFound", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		newTitle := "X"
		_, err := store.Update(ctx, "missing", EventPatch{Title: &newTitle})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the event", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		event := store.Add(ctx, EventDraft{Title: "Workshop"})
		keep := store.Add(ctx, EventDraft{Title: "Lunch"})

		assert.NoError(t, store.Remove(ctx, event.ID))
		_, err := store.ByID(event.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
		_, err = store.ByID(keep.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown id leaves store unchanged", func(t *testing.T) {
		store := NewInMemoryStore(nil)
		store.Add(ctx, EventDraft{Title: "Workshop"})
		before := store.List()

		assert.ErrorIs(t, store.Remove(ctx, "missing"), ErrEventNotFound)
		assert.Equal(t, before, store.List())
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	first := store.Add(ctx, EventDraft{Title: "First"})
	second := store.Add(ctx, EventDraft{Title: "Second"})
	third := store.Add(ctx, EventDraft{Title: "Third"})

	events := store.List()
	assert.Len(t, events, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{events[0].ID, events[1].ID, events[2].ID})
}

func TestByDate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	wednesday := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local)
	thursday := wednesday.AddDate(0, 0, 1)

	a := store.Add(ctx, EventDraft{Title: "A", Date: wednesday})
	store.Add(ctx, EventDraft{Title: "B", Date: thursday})
	c := store.Add(ctx, EventDraft{Title: "C", Date: wednesday})

	events := store.ByDate(wednesday)
	assert.Len(t, events, 2)
	assert.Equal(t, a.ID, events[0].ID)
	assert.Equal(t, c.ID, events[1].ID)

	t.Run("time of day is ignored", func(t *testing.T) {
		afternoon := wednesday.Add(14 * time.Hour)
		assert.Len(t, store.ByDate(afternoon), 2)
	})
}

func TestNotifiesSubscribersWithFullSnapshot(t *testing.T) {
	ctx := context.Background()
	bus := event_bus.NewEventBus()
	store := NewInMemoryStore(bus)

	var snapshots [][]Event
	event_bus.SubscribeTyped[[]Event](bus, event_bus.TopicCalendarChanged,
		func(e event_bus.EventT[[]Event]) error {
			snapshots = append(snapshots, e.Data)
			return nil
		})

	event := store.Add(ctx, EventDraft{Title: "Standup"})
	newTitle := "Daily Standup"
	_, err := store.Update(ctx, event.ID, EventPatch{Title: &newTitle})
	assert.NoError(t, err)
	assert.NoError(t, store.Remove(ctx, event.ID))

	assert.Len(t, snapshots, 3)
	assert.Len(t, snapshots[0], 1)
	assert.Equal(t, "Standup", snapshots[0][0].Title)
	assert.Equal(t, "Daily Standup", snapshots[1][0].Title)
	assert.Empty(t, snapshots[2])
}
