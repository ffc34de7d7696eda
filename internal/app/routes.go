package app

import (
	"github.com/gorilla/mux"
	"github.com/jellycal/jellycal/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar events
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.CalendarHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.CalendarHandler.DeleteEvent).Methods("DELETE")
	r.HandleFunc("/api/calendar/export.ics", deps.ExportHandler.ExportICS).Methods("GET")

	// Assistant chat
	r.HandleFunc("/api/assistant/message", deps.AssistantHandler.PostMessage).Methods("POST")
	r.HandleFunc("/api/assistant/ws", deps.AssistantHandler.ChatSocket).Methods("GET")

	// Drag gestures
	r.HandleFunc("/api/drag/begin", deps.DragHandler.Begin).Methods("POST")
	r.HandleFunc("/api/drag/update", deps.DragHandler.Update).Methods("POST")
	r.HandleFunc("/api/drag/commit", deps.DragHandler.Commit).Methods("POST")
	r.HandleFunc("/api/drag/cancel", deps.DragHandler.Cancel).Methods("POST")
}
