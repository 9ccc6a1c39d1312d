package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler returns an HTTP handler for SSE connections. The optional
// "types" query parameter is a comma separated list of event types and
// "guild" restricts the stream to one guild.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		filter := Filter{Guild: r.URL.Query().Get(QueryGuild)}
		if types := r.URL.Query().Get(QueryTypes); types != "" {
			filter.Types = strings.Split(types, ",")
		}

		client := hub.Register(filter)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"types", filter.Types,
			"guild", filter.Guild,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   filter,
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub shutting down
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
