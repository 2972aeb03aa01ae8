package constants

// WebSocket event types pushed to dashboard views
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Countdown store events
	EventStoreUpdated = "store_updated"

	// Request lifecycle events
	EventViewRequestAccepted  = "request_accepted"
	EventViewRequestCancelled = "request_cancelled"
	EventViewNavigate         = "navigate"

	// Location relay events
	EventViewLocationUpdated = "location_updated"

	// Chat events
	EventViewMessageReceived = "message_received"

	// Chat send acknowledgement
	EventViewMessageSent = "message_sent"

	// Realtime channel status events
	EventConnectionStatus = "connection_status"
)

// WebSocket commands sent by dashboard views
const (
	CommandTrack           = "track"
	CommandUntrack         = "untrack"
	CommandPublishLocation = "publish_location"
	CommandStopPublishing  = "stop_publishing"
	CommandChatSend        = "chat_send"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorRequestNotFound  = "request_not_found"
	ErrorInvalidStatus    = "invalid_status"
	ErrorTransitionFailed = "transition_failed"
)
