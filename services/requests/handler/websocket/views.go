package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	wspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/websocket"
	"github.com/Mat0512/roadbuddy-client/services/chat"
	"github.com/Mat0512/roadbuddy-client/services/requests"
	"github.com/Mat0512/roadbuddy-client/services/tracking"
)

// ViewsHandler pushes state to dashboard view connections and routes their
// commands. Countdown snapshots and connection status go to every view;
// location and chat pushes go to the views that asked for them.
type ViewsHandler struct {
	manager    *wspkg.Manager
	trackingUC tracking.TrackingUC
	chatUC     chat.ChatUC
	store      requests.StatusStore
	rt         *realtime.Channel

	mu         sync.Mutex
	watchers   map[*websocket.Conn]map[string]func() // conn -> requestID -> unwatch
	publishers map[*websocket.Conn]map[string]func() // conn -> requestID -> stop

	stopStore func()
}

// NewViewsHandler creates a new dashboard view handler
func NewViewsHandler(
	manager *wspkg.Manager,
	trackingUC tracking.TrackingUC,
	chatUC chat.ChatUC,
	store requests.StatusStore,
	rt *realtime.Channel,
) *ViewsHandler {
	return &ViewsHandler{
		manager:    manager,
		trackingUC: trackingUC,
		chatUC:     chatUC,
		store:      store,
		rt:         rt,
		watchers:   make(map[*websocket.Conn]map[string]func()),
		publishers: make(map[*websocket.Conn]map[string]func()),
	}
}

// Start wires the pushes that are not bound to one connection: every store
// mutation and every realtime channel status change reaches every open view
func (h *ViewsHandler) Start() {
	states, cancel := h.store.Subscribe()
	h.stopStore = cancel

	go func() {
		for state := range states {
			h.manager.Broadcast(constants.EventStoreUpdated, state)
		}
	}()

	h.rt.OnStatusChange(func(status models.ConnectionStatus) {
		h.manager.Broadcast(constants.EventConnectionStatus, status)
	})
}

// Stop releases the store subscription
func (h *ViewsHandler) Stop() {
	if h.stopStore != nil {
		h.stopStore()
	}
}

// HandleWebSocket upgrades and serves one dashboard view connection
func (h *ViewsHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *ViewsHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	logger.Info("Dashboard view connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	// A reconnecting view renders the countdown immediately
	if err := h.manager.SendMessage(conn, constants.EventStoreUpdated, h.store.Snapshot()); err != nil {
		return err
	}

	stopChat, err := h.chatUC.WatchMessages(client.UserID, func(msg models.ChatMessage) {
		if err := h.manager.SendMessage(conn, constants.EventViewMessageReceived, msg); err != nil {
			logger.Warn("Failed to push chat message to view",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	})
	if err != nil {
		logger.Error("Failed to watch chat messages for view",
			logger.String("user_id", client.UserID),
			logger.Err(err))
	} else {
		defer stopChat()
	}

	defer h.releaseConn(conn)

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Info("Dashboard view disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		if err := h.routeMessage(client, conn, msg); err != nil {
			logger.Warn("Failed to handle view command",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *ViewsHandler) routeMessage(client *models.WebSocketClient, conn *websocket.Conn, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(conn, constants.EventPong, nil)
	case constants.CommandTrack:
		return h.handleTrack(conn, msg.Data)
	case constants.CommandUntrack:
		return h.handleUntrack(conn, msg.Data)
	case constants.CommandPublishLocation:
		return h.handlePublishLocation(conn, msg.Data)
	case constants.CommandStopPublishing:
		return h.handleStopPublishing(conn, msg.Data)
	case constants.CommandChatSend:
		return h.handleChatSend(client, conn, msg.Data)
	default:
		return h.sendError(conn, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

func (h *ViewsHandler) sendError(conn *websocket.Conn, code, message string) error {
	return h.manager.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// releaseConn stops every watch and publish loop owned by a closed connection
func (h *ViewsHandler) releaseConn(conn *websocket.Conn) {
	h.mu.Lock()
	watchers := h.watchers[conn]
	publishers := h.publishers[conn]
	delete(h.watchers, conn)
	delete(h.publishers, conn)
	h.mu.Unlock()

	for _, unwatch := range watchers {
		unwatch()
	}
	for _, stop := range publishers {
		stop()
	}
}

func unmarshalCommand(data json.RawMessage, v interface{}) error {
	return json.Unmarshal(data, v)
}
