package gateway

import (
	wspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/websocket"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

// WSNotifier pushes lifecycle events to dashboard views over WebSocket
type WSNotifier struct {
	manager *wspkg.Manager
}

// NewWSNotifier creates a view notifier backed by the WebSocket manager
func NewWSNotifier(manager *wspkg.Manager) requests.ViewNotifier {
	return &WSNotifier{manager: manager}
}

// NotifyUser pushes an event to every open view of a user
func (n *WSNotifier) NotifyUser(userID, event string, data interface{}) {
	n.manager.SendToUser(userID, event, data)
}

// NotifyAll pushes an event to every connected view
func (n *WSNotifier) NotifyAll(event string, data interface{}) {
	n.manager.Broadcast(event, data)
}
