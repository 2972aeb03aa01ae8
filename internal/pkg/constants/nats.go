package constants

// Realtime channel topics. Each topic carries named events; the NATS subject
// for a topic/event pair is "<topic>.<event>".
const (
	TopicUser     = "user.%s"     // Format: user.{userID}
	TopicLocation = "location.%s" // Format: location.{requestID}
	TopicChat     = "chat.%s"     // Format: chat.{userID}
)

// Event names within topics
const (
	// User topic events
	EventRequestAccepted  = "service.request.accepted"
	EventRequestCancelled = "service.request.cancel"

	// Location topic events
	EventLocationUpdated = "location.updated"

	// Chat topic events
	EventMessageSent = "message.sent"
)
