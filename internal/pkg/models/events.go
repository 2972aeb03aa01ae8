package models

// RequestAcceptedEvent is delivered on the driver's user topic when the
// provider accepts a pending request
type RequestAcceptedEvent struct {
	RequestID string `json:"request_id"`
}

// RequestCancelledEvent is delivered on the counterpart's user topic when
// either party cancels a request
type RequestCancelledEvent struct {
	RequestID string `json:"request_id"`
}

// ConnectionState describes the realtime channel connection lifecycle
type ConnectionState string

const (
	ConnectionStateConnected    ConnectionState = "connected"
	ConnectionStateDisconnected ConnectionState = "disconnected"
	ConnectionStateError        ConnectionState = "error"
)

// ConnectionStatus is surfaced to views as a non-fatal indicator only
type ConnectionStatus struct {
	State   ConnectionState `json:"state"`
	Message string          `json:"message,omitempty"`
}
