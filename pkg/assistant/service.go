package assistant

import (
	"context"
	"fmt"
	"sync"

	"github.com/jellycal/jellycal/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

const Greeting = "Hi! I'm your jelly calendar assistant. I can help you add events or reschedule them. Just tell me what you need!"

// Service runs the interpreter over incoming chat messages and applies the
// resulting mutations to the store. The interpreter itself is single-session
// state, so the service serializes access to it.
type Service struct {
	mu          sync.Mutex
	interpreter *Interpreter
	store       calendar.EventStore
}

func NewService(interpreter *Interpreter, store calendar.EventStore) *Service {
	return &Service{interpreter: interpreter, store: store}
}

// HandleMessage interprets one utterance, applies any mutation and words the
// reply shown in the chat. It never fails from the user's point of view;
// store-level misses degrade to an apologetic reply.
func (s *Service) HandleMessage(ctx context.Context, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.interpreter.Interpret(text)

	switch result.Kind {
	case KindAddEvent:
		event := s.store.Add(ctx, result.Draft)
		log.Infof("assistant added event %s (%q)", event.ID, event.Title)
		switch result.Resolved {
		case FieldTitle:
			return "Perfect! I've added that event to your calendar."
		case FieldLocation:
			return "Great! Event added with the location."
		default:
			return fmt.Sprintf("Perfect! I've added %q to your calendar.", event.Title)
		}

	case KindReschedule:
		updated, err := s.store.Update(ctx, result.EventID, calendar.EventPatch{
			Date:      &result.NewDate,
			StartTime: &result.NewTime,
		})
		if err != nil {
			log.Errorf("assistant reschedule of %s failed: %v", result.EventID, err)
			return "Sorry, I couldn't find that event anymore."
		}
		log.Infof("assistant rescheduled event %s (%q) to %s %s",
			updated.ID, updated.Title, updated.Date.Format("2006-01-02"), updated.StartTime)
		return fmt.Sprintf("Done! I've rescheduled %q.", updated.Title)

	case KindAskClarification:
		return result.Question

	default:
		return HelpMessage
	}
}
