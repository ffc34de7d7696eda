package assistant

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jellycal/jellycal/internal/utils"
	"github.com/jellycal/jellycal/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Canned assistant lines. The interpreter owns the questions; the service
// owns the confirmations.
const (
	QuestionTitle      = "What should I call this event?"
	QuestionWhichEvent = "Which event would you like to reschedule?"
	QuestionWhen       = "When would you like to reschedule it to?"

	HelpMessage = "I can help you add events (e.g., 'Add team meeting tomorrow at 2pm') " +
		"or reschedule them (e.g., 'Reschedule team meeting to Friday'). What would you like to do?"
)

// eventPalette is the fixed set of display colors assigned uniformly at
// random to events created through the assistant.
var eventPalette = []string{"#FF6B9D", "#A78BFA", "#60A5FA", "#34D399", "#FBBF24", "#F97316"}

type ResultKind int

const (
	KindAddEvent ResultKind = iota
	KindReschedule
	KindAskClarification
	KindUnrecognized
)

// Field names a draft slot the interpreter may wait on across turns.
type Field string

const (
	FieldTitle    Field = "title"
	FieldLocation Field = "location"
)

// Result is the single outcome of one Interpret call. Exactly one of the
// kind-specific field groups is meaningful, selected by Kind.
type Result struct {
	Kind ResultKind

	// AddEvent
	Draft calendar.EventDraft
	// Resolved names the field a pending clarification just filled, empty
	// for a direct add.
	Resolved Field

	// Reschedule
	EventID string
	NewDate time.Time
	NewTime string

	// AskClarification
	Question string
}

// EventSource is the read access the interpreter needs for reschedule
// matching.
type EventSource interface {
	List() []calendar.Event
}

// pendingClarification is the AwaitingField state: a partially parsed draft
// plus the one slot the next utterance will fill.
type pendingClarification struct {
	waitingFor Field
	draft      calendar.EventDraft
}

// Interpreter turns free-text utterances into structured calendar mutations.
// It holds at most one pending clarification; a new ambiguous add command
// overwrites it, there is no queue. Not safe for concurrent use; one
// interpreter per conversation, serialized by the caller.
type Interpreter struct {
	events    EventSource
	clock     utils.Clock
	pending   *pendingClarification
	pickColor func() string
}

func NewInterpreter(events EventSource, clock utils.Clock) *Interpreter {
	return &Interpreter{
		events: events,
		clock:  clock,
		pickColor: func() string {
			return eventPalette[rand.IntN(len(eventPalette))]
		},
	}
}

// Interpret processes one utterance. Matching is strictly ordered: a pending
// clarification consumes the utterance first, then reschedule intent, then
// add intent, then the fallback. Unparseable input never errors, it
// degrades to a question or the help message.
func (i *Interpreter) Interpret(utterance string) Result {
	if i.pending != nil {
		return i.resolvePending(utterance)
	}

	lower := strings.ToLower(utterance)

	if strings.Contains(lower, "reschedule") || strings.Contains(lower, "move") {
		return i.interpretReschedule(utterance, lower)
	}

	if strings.Contains(lower, "add") || strings.Contains(lower, "create") ||
		strings.Contains(lower, "schedule") || strings.Contains(lower, "book") {
		return i.interpretAdd(utterance)
	}

	log.Debugf("unrecognized utterance: %q", utterance)
	return Result{Kind: KindUnrecognized}
}

// Pending reports whether the interpreter is awaiting a field, and which.
func (i *Interpreter) Pending() (Field, bool) {
	if i.pending == nil {
		return "", false
	}
	return i.pending.waitingFor, true
}

// resolvePending binds the whole raw utterance into the awaited slot, with
// no further parsing. A reply like "never mind" becomes a literal title,
// which is part of the dialogue contract.
func (i *Interpreter) resolvePending(utterance string) Result {
	pending := i.pending
	i.pending = nil

	draft := pending.draft
	switch pending.waitingFor {
	case FieldLocation:
		draft.Location = utterance
	default:
		draft.Title = utterance
	}
	if draft.Color == "" {
		draft.Color = i.pickColor()
	}

	log.Debugf("pending %s resolved to %q", pending.waitingFor, utterance)
	return Result{Kind: KindAddEvent, Draft: draft, Resolved: pending.waitingFor}
}

func (i *Interpreter) interpretReschedule(utterance, lower string) Result {
	target, ok := i.matchEvent(lower)
	if !ok {
		return Result{Kind: KindAskClarification, Question: QuestionWhichEvent}
	}

	cmd := parseCommand(utterance, i.clock.Now())
	if !cmd.dateFound {
		return Result{Kind: KindAskClarification, Question: QuestionWhen}
	}

	return Result{
		Kind:    KindReschedule,
		EventID: target.ID,
		NewDate: cmd.date,
		NewTime: cmd.startTime,
	}
}

// matchEvent finds the reschedule target: the first event in list order
// whose title occurs, case-insensitively, inside the utterance. Overlapping
// titles resolve by list order, not by best match.
func (i *Interpreter) matchEvent(lower string) (calendar.Event, bool) {
	for _, event := range i.events.List() {
		if event.Title == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(event.Title)) {
			return event, true
		}
	}
	return calendar.Event{}, false
}

func (i *Interpreter) interpretAdd(utterance string) Result {
	cmd := parseCommand(utterance, i.clock.Now())

	draft := calendar.EventDraft{
		Title:     cmd.title,
		StartTime: cmd.startTime,
		EndTime:   cmd.endTime,
		Date:      cmd.date,
		Location:  cmd.location,
	}

	if draft.Title == "" {
		i.pending = &pendingClarification{waitingFor: FieldTitle, draft: draft}
		return Result{Kind: KindAskClarification, Question: QuestionTitle}
	}

	draft.Color = i.pickColor()
	return Result{Kind: KindAddEvent, Draft: draft}
}
