package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents an authenticated dashboard view connection
type WebSocketClient struct {
	UserID string
	Role   string
}

// WebSocketClaims are the JWT claims carried by a view's bearer token
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
