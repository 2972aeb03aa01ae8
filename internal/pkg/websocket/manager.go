package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/Mat0512/roadbuddy-client/internal/pkg/jwt"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// Manager manages dashboard view WebSocket connections. Several views may be
// open for the same user; pushes fan out to all of them.
type Manager struct {
	sync.RWMutex
	conns    map[string]map[*websocket.Conn]bool // userID -> open view connections
	writeMus map[*websocket.Conn]*sync.Mutex     // serializes writes per connection
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns:    make(map[string]map[*websocket.Conn]bool),
		writeMus: make(map[*websocket.Conn]*sync.Mutex),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new view connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	m.addConn(client.UserID, ws)
	defer func() {
		m.removeConn(client.UserID, ws)
		ws.Close()
	}()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

func (m *Manager) addConn(userID string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	if m.conns[userID] == nil {
		m.conns[userID] = make(map[*websocket.Conn]bool)
	}
	m.conns[userID][conn] = true
}

func (m *Manager) removeConn(userID string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	delete(m.conns[userID], conn)
	if len(m.conns[userID]) == 0 {
		delete(m.conns, userID)
	}
	delete(m.writeMus, conn)
}

// writeLock returns the mutex serializing writes on a connection. The store
// broadcast, NATS dispatch callbacks and the read loop all write to the same
// conn concurrently; gorilla/websocket allows only one writer at a time.
func (m *Manager) writeLock(conn *websocket.Conn) *sync.Mutex {
	m.Lock()
	defer m.Unlock()
	mu, ok := m.writeMus[conn]
	if !ok {
		mu = &sync.Mutex{}
		m.writeMus[conn] = mu
	}
	return mu
}

// SendMessage sends a message to a single WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	mu := m.writeLock(conn)
	mu.Lock()
	defer mu.Unlock()
	return conn.WriteJSON(response)
}

// SendToUser pushes an event to every open view of a user
func (m *Manager) SendToUser(userID, event string, data interface{}) {
	m.RLock()
	conns := make([]*websocket.Conn, 0, len(m.conns[userID]))
	for conn := range m.conns[userID] {
		conns = append(conns, conn)
	}
	m.RUnlock()

	for _, conn := range conns {
		if err := m.SendMessage(conn, event, data); err != nil {
			logger.Warn("Failed to push event to view",
				logger.String("user_id", userID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// Broadcast pushes an event to every connected view
func (m *Manager) Broadcast(event string, data interface{}) {
	m.RLock()
	conns := make([]*websocket.Conn, 0)
	for _, userConns := range m.conns {
		for conn := range userConns {
			conns = append(conns, conn)
		}
	}
	m.RUnlock()

	for _, conn := range conns {
		if err := m.SendMessage(conn, event, data); err != nil {
			logger.Warn("Failed to broadcast event to view",
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
