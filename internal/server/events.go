package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tableside/internal/notify"
)

// EventsHandler streams hub events to an admin viewer over Server-Sent
// Events. Each connection gets its own hub subscription: events are delivered
// in publish order, and nothing published before the connection is replayed.
type EventsHandler struct {
	hub    *notify.Hub
	logger *zap.Logger
}

func NewEventsHandler(hub *notify.Hub, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		hub:    hub,
		logger: logger,
	}
}

func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub := h.hub.Subscribe()
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("admin viewer connected", zap.String("remoteAddr", r.RemoteAddr))

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("admin viewer disconnected", zap.String("remoteAddr", r.RemoteAddr))
			return

		case event, open := <-sub.Events():
			if !open {
				// Dropped by the hub for not keeping up.
				h.logger.Warn("admin viewer dropped", zap.String("remoteAddr", r.RemoteAddr))
				return
			}

			data, err := json.Marshal(event.Payload)
			if err != nil {
				h.logger.Error("failed to encode event payload", zap.Error(err))
				continue
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
