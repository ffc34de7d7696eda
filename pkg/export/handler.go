package export

import (
	"net/http"

	"github.com/jellycal/jellycal/internal/utils"
	"github.com/jellycal/jellycal/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store calendar.EventStore
	clock utils.Clock
}

func NewHandler(store calendar.EventStore, clock utils.Clock) *Handler {
	return &Handler{store: store, clock: clock}
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	events := h.store.List()
	log.Debugf("exporting %d events as ICS", len(events))

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="jellycal.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(Render(events, h.clock.Now()))); err != nil {
		log.Errorf("failed to write ICS response: %v", err)
	}
}
