package app

import (
	"time"

	"github.com/jellycal/jellycal/internal/config"
	"github.com/jellycal/jellycal/internal/event_bus"
	"github.com/jellycal/jellycal/internal/utils"
	"github.com/jellycal/jellycal/pkg/assistant"
	"github.com/jellycal/jellycal/pkg/calendar"
	"github.com/jellycal/jellycal/pkg/drag"
	"github.com/jellycal/jellycal/pkg/export"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	EventStore      *calendar.InMemoryStore
	CalendarHandler *calendar.Handler

	Interpreter      *assistant.Interpreter
	AssistantService *assistant.Service
	AssistantHandler *assistant.Handler

	DragController *drag.Controller
	DragHandler    *drag.Handler

	ExportHandler *export.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = utils.SystemClock{}

	deps.EventStore = calendar.NewInMemoryStore(deps.Bus)
	deps.CalendarHandler = calendar.NewHandler(deps.EventStore)

	deps.Interpreter = assistant.NewInterpreter(deps.EventStore, deps.Clock)
	deps.AssistantService = assistant.NewService(deps.Interpreter, deps.EventStore)
	deps.AssistantHandler = assistant.NewHandler(deps.AssistantService,
		time.Duration(cfg.Assistant.ReplyDelayMs)*time.Millisecond)

	deps.DragController = drag.NewController(deps.EventStore, deps.Bus,
		cfg.Grid.PixelsPerHour, cfg.Grid.ColumnGapPx)
	deps.DragHandler = drag.NewHandler(deps.DragController)

	deps.ExportHandler = export.NewHandler(deps.EventStore, deps.Clock)

	return deps
}
