package calendar

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jellycal/jellycal/internal/event_bus"
	"github.com/jellycal/jellycal/internal/utils"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

// EventStore owns the event collection. It is the only write surface; views
// read snapshots via List or by subscribing to TopicCalendarChanged on the
// bus. Every mutation publishes the full new collection, not a diff, which
// keeps consumers trivial at the cost of O(n) redraw.
type EventStore interface {
	Add(ctx context.Context, draft EventDraft) Event
	Update(ctx context.Context, id string, patch EventPatch) (Event, error)
	Remove(ctx context.Context, id string) error
	List() []Event
	ByID(id string) (Event, error)
	ByDate(date time.Time) []Event
}

// InMemoryStore keeps events in insertion order. Lookups are linear filters;
// at tens to low hundreds of events an index would be overkill.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
	bus    *event_bus.EventBus
}

func NewInMemoryStore(bus *event_bus.EventBus) *InMemoryStore {
	return &InMemoryStore{bus: bus}
}

// Add assigns a fresh id, inserts the event at the tail and returns it.
// It never fails.
func (s *InMemoryStore) Add(ctx context.Context, draft EventDraft) Event {
	event := Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Date:        draft.Date,
		Color:       draft.Color,
		Location:    draft.Location,
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Debugf("added event %s (%q)", event.ID, event.Title)
	s.notify(ctx, snapshot)
	return event
}

// Update shallow-merges the patch into the stored event: non-nil patch
// fields overwrite, the rest are retained.
func (s *InMemoryStore) Update(ctx context.Context, id string, patch EventPatch) (Event, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return Event{}, ErrEventNotFound
	}
	patch.applyTo(&s.events[idx])
	updated := s.events[idx]
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Debugf("updated event %s (%q)", updated.ID, updated.Title)
	s.notify(ctx, snapshot)
	return updated, nil
}

func (s *InMemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrEventNotFound
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Debugf("removed event %s", id)
	s.notify(ctx, snapshot)
	return nil
}

// List returns a copy of all events in insertion order.
func (s *InMemoryStore) List() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *InMemoryStore) ByID(id string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.events[idx], nil
	}
	return Event{}, ErrEventNotFound
}

// ByDate returns the events falling on the given calendar day, in insertion
// order. The time-of-day component of date is ignored.
func (s *InMemoryStore) ByDate(date time.Time) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []Event
	for _, e := range s.events {
		if utils.SameDate(e.Date, date) {
			result = append(result, e)
		}
	}
	return result
}

func (s *InMemoryStore) indexLocked(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *InMemoryStore) snapshotLocked() []Event {
	snapshot := make([]Event, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

// notify publishes the new collection snapshot. Called outside the store
// lock so subscribers may read back from the store.
func (s *InMemoryStore) notify(ctx context.Context, snapshot []Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TopicCalendarChanged, snapshot))
}
