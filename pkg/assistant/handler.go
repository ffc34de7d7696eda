package assistant

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jellycal/jellycal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type MessageRequest struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	Reply string `json:"reply"`
}

// Handler exposes the assistant over plain HTTP. The reply delay is purely
// cosmetic chat pacing; interpretation never depends on it.
type Handler struct {
	service    *Service
	replyDelay time.Duration
}

func NewHandler(service *Service, replyDelay time.Duration) *Handler {
	return &Handler{service: service, replyDelay: replyDelay}
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	log.Trace("Assistant message: ", req.Text)

	if h.replyDelay > 0 {
		time.Sleep(h.replyDelay)
	}

	reply := h.service.HandleMessage(r.Context(), req.Text)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(MessageResponse{Reply: reply}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
