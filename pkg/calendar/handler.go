package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jellycal/jellycal/internal/rest"
	log "github.com/sirupsen/logrus"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04"
)

type Handler struct {
	store EventStore
}

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Date        string `json:"date"`
	Color       string `json:"color"`
	Location    string `json:"location,omitempty"`
}

// EventPatchDTO mirrors EventPatch: absent fields leave the stored value
// untouched.
type EventPatchDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Date        *string `json:"date"`
	Color       *string `json:"color"`
	Location    *string `json:"location"`
}

func NewHandler(store EventStore) *Handler {
	return &Handler{store}
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var events []Event
	if dateString := r.URL.Query().Get("date"); dateString != "" {
		date, err := time.ParseInLocation(dateFormat, dateString, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
			return
		}
		events = h.store.ByDate(date)
	} else {
		events = h.store.List()
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Debug("New event request: ", dto)

	draft, err := dtoToDraft(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}
	if draft.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid event payload", "'title' must not be empty")
		return
	}

	event := h.store.Add(r.Context(), draft)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	eventId := mux.Vars(r)["eventId"]

	var dto EventPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	patch, err := dtoToPatch(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}

	event, err := h.store.Update(r.Context(), eventId, patch)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			writeError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	eventId := mux.Vars(r)["eventId"]
	if err := h.store.Remove(r.Context(), eventId); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			writeError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Date:        e.Date.Format(dateFormat),
		Color:       e.Color,
		Location:    e.Location,
	}
}

func dtoToDraft(dto EventDTO) (EventDraft, error) {
	date, err := parseDate(dto.Date)
	if err != nil {
		return EventDraft{}, err
	}
	if err := validateTime(dto.StartTime); err != nil {
		return EventDraft{}, err
	}
	if err := validateTime(dto.EndTime); err != nil {
		return EventDraft{}, err
	}
	return EventDraft{
		Title:       dto.Title,
		Description: dto.Description,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Date:        date,
		Color:       dto.Color,
		Location:    dto.Location,
	}, nil
}

func dtoToPatch(dto EventPatchDTO) (EventPatch, error) {
	patch := EventPatch{
		Title:       dto.Title,
		Description: dto.Description,
		Color:       dto.Color,
		Location:    dto.Location,
	}
	if dto.StartTime != nil {
		if err := validateTime(*dto.StartTime); err != nil {
			return EventPatch{}, err
		}
		patch.StartTime = dto.StartTime
	}
	if dto.EndTime != nil {
		if err := validateTime(*dto.EndTime); err != nil {
			return EventPatch{}, err
		}
		patch.EndTime = dto.EndTime
	}
	if dto.Date != nil {
		date, err := parseDate(*dto.Date)
		if err != nil {
			return EventPatch{}, err
		}
		patch.Date = &date
	}
	return patch, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(dateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, errors.New("'date' must be in YYYY-MM-DD format")
	}
	return date, nil
}

// validateTime guards the geometry contract: only well-formed "HH:MM" may
// enter the store.
func validateTime(s string) error {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return errors.New("times must be in HH:MM 24-hour format")
	}
	return nil
}
