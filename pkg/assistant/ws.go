package assistant

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Single-user local app; the API is not exposed cross-origin.
		return true
	},
}

// ChatSocket serves the assistant conversation over a WebSocket: a greeting
// on connect, then one reply per received text message. Each connection is
// its own goroutine; the shared Service serializes interpreter access.
func (h *Handler) ChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(Greeting)); err != nil {
		log.Debugf("websocket greeting failed: %v", err)
		return
	}

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debugf("websocket read failed: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage || len(payload) == 0 {
			continue
		}

		if h.replyDelay > 0 {
			time.Sleep(h.replyDelay)
		}

		reply := h.service.HandleMessage(r.Context(), string(payload))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Debugf("websocket write failed: %v", err)
			return
		}
	}
}
