package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// trackCommand asks to follow the counterpart position for a request. The
// fallback is the request's stored location, shown until the first push.
type trackCommand struct {
	RequestID string          `json:"request_id"`
	Fallback  models.Location `json:"fallback"`
}

// requestRef names a request in untrack and publish commands
type requestRef struct {
	RequestID string `json:"request_id"`
}

// viewLocation is the location push sent to a tracking view
type viewLocation struct {
	RequestID string  `json:"request_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *ViewsHandler) handleTrack(conn *websocket.Conn, data json.RawMessage) error {
	var cmd trackCommand
	if err := unmarshalCommand(data, &cmd); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid track command")
	}
	if cmd.RequestID == "" {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Request ID is required")
	}

	h.mu.Lock()
	if h.watchers[conn] == nil {
		h.watchers[conn] = make(map[string]func())
	}
	if _, exists := h.watchers[conn][cmd.RequestID]; exists {
		h.mu.Unlock()
		return nil // already tracking
	}
	h.mu.Unlock()

	unwatch, err := h.trackingUC.WatchLocation(cmd.RequestID, cmd.Fallback, func(pos models.Location) {
		if err := h.manager.SendMessage(conn, constants.EventViewLocationUpdated, viewLocation{
			RequestID: cmd.RequestID,
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}); err != nil {
			logger.Warn("Failed to push location to view",
				logger.String("request_id", cmd.RequestID),
				logger.Err(err))
		}
	})
	if err != nil {
		return h.sendError(conn, constants.ErrorInternalError, "Failed to start tracking")
	}

	h.mu.Lock()
	h.watchers[conn][cmd.RequestID] = unwatch
	h.mu.Unlock()

	return nil
}

func (h *ViewsHandler) handleUntrack(conn *websocket.Conn, data json.RawMessage) error {
	var cmd requestRef
	if err := unmarshalCommand(data, &cmd); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid untrack command")
	}

	h.mu.Lock()
	unwatch := h.watchers[conn][cmd.RequestID]
	delete(h.watchers[conn], cmd.RequestID)
	h.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
	return nil
}

func (h *ViewsHandler) handlePublishLocation(conn *websocket.Conn, data json.RawMessage) error {
	var cmd requestRef
	if err := unmarshalCommand(data, &cmd); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid publish command")
	}
	if cmd.RequestID == "" {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Request ID is required")
	}

	h.mu.Lock()
	if h.publishers[conn] == nil {
		h.publishers[conn] = make(map[string]func())
	}
	if _, exists := h.publishers[conn][cmd.RequestID]; exists {
		h.mu.Unlock()
		return nil // already publishing
	}
	h.mu.Unlock()

	stop, err := h.trackingUC.PublishLocation(context.Background(), cmd.RequestID)
	if err != nil {
		return h.sendError(conn, constants.ErrorInternalError, "Failed to start publishing")
	}

	h.mu.Lock()
	h.publishers[conn][cmd.RequestID] = stop
	h.mu.Unlock()

	return nil
}

func (h *ViewsHandler) handleStopPublishing(conn *websocket.Conn, data json.RawMessage) error {
	var cmd requestRef
	if err := unmarshalCommand(data, &cmd); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid stop command")
	}

	h.mu.Lock()
	stop := h.publishers[conn][cmd.RequestID]
	delete(h.publishers[conn], cmd.RequestID)
	h.mu.Unlock()

	if stop != nil {
		stop()
	}
	return nil
}
