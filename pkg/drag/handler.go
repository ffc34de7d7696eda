package drag

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jellycal/jellycal/internal/rest"
	"github.com/jellycal/jellycal/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Handler exposes the drag gesture contract to the pointer layer. The client
// accumulates pixel deltas relative to the drag start and reports them here.
type Handler struct {
	controller *Controller
}

type BeginRequest struct {
	EventID string `json:"eventId"`
}

type MoveRequest struct {
	DeltaX      float64 `json:"deltaX"`
	DeltaY      float64 `json:"deltaY"`
	ColumnWidth float64 `json:"columnWidth"`
}

type PreviewDTO struct {
	EventID   string `json:"eventId"`
	DayOffset int    `json:"dayOffset"`
	NewTop    int    `json:"newTop"`
	Dragging  bool   `json:"dragging"`
}

func NewHandler(controller *Controller) *Handler {
	return &Handler{controller}
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req BeginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Trace("Drag begin for event ", req.EventID)

	if err := h.controller.Begin(req.EventID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found", "")
		case errors.Is(err, ErrDragInProgress):
			writeError(w, http.StatusConflict, "A drag is already in progress", "")
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	preview, err := h.controller.Update(r.Context(), req.DeltaX, req.DeltaY, req.ColumnWidth)
	if err != nil {
		writeError(w, http.StatusConflict, "No drag in progress", "")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PreviewDTO{
		EventID:   preview.EventID,
		DayOffset: preview.DayOffset,
		NewTop:    preview.NewTop,
		Dragging:  preview.Dragging,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.controller.Commit(r.Context(), req.DeltaX, req.DeltaY, req.ColumnWidth)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveDrag):
			writeError(w, http.StatusConflict, "No drag in progress", "")
		case errors.Is(err, calendar.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found", "")
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(calendar.EventDTO{
		ID:          updated.ID,
		Title:       updated.Title,
		Description: updated.Description,
		StartTime:   updated.StartTime,
		EndTime:     updated.EndTime,
		Date:        updated.Date.Format("2006-01-02"),
		Color:       updated.Color,
		Location:    updated.Location,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.controller.Cancel(r.Context()); err != nil {
		writeError(w, http.StatusConflict, "No drag in progress", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
