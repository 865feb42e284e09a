package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-statement-list/internal/logger"
)

const (
	statusWriteWait  = 10 * time.Second
	statusPongWait   = 60 * time.Second
	statusPingPeriod = statusPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// statusStream upgrades the connection and forwards the company's status
// frames until either side goes away. Frames sent by the client are read
// and discarded.
func (h *Handler) statusStream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		log.Err(err).Str("func", "*Handler.statusStream").Msg("failed to upgrade the websocket")
		return
	}
	defer conn.Close()

	frames, unsubscribe := h.services.StatusHub.Subscribe(companyID(r))
	defer unsubscribe()

	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		_ = conn.SetReadDeadline(time.Now().Add(statusPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(statusPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(statusPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-clientGone:
			log.Debug().Msg("status stream closed by client")
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(statusWriteWait))
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case frame, ok := <-frames:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(statusWriteWait))
			if err = conn.WriteJSON(frame); err != nil {
				log.Warn().Err(err).Str("id", frame.StatementID).Msg("status frame not delivered")
				return
			}
		}
	}
}
