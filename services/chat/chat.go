package chat

import (
	"context"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// ChatUC defines the interface for conversation handling
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Mat0512/roadbuddy-client/services/chat ChatUC
type ChatUC interface {
	// Send persists a message and notifies the receiver's realtime topic
	Send(ctx context.Context, msg models.SendChatMessage) (*models.ChatMessage, error)

	// History fetches the conversation with a counterpart
	History(ctx context.Context, counterpartID string) ([]models.ChatMessage, error)

	// WatchMessages delivers inbound messages for a user until the returned
	// cancel function is called
	WatchMessages(userID string, fn func(models.ChatMessage)) (func(), error)
}

// ChatGW defines the interface for chat persistence and realtime delivery
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Mat0512/roadbuddy-client/services/chat ChatGW
type ChatGW interface {
	SendMessage(ctx context.Context, msg models.SendChatMessage) (*models.ChatMessage, error)
	GetMessages(ctx context.Context, counterpartID string) ([]models.ChatMessage, error)
	SubscribeMessages(userID string, fn func(models.ChatMessage)) (func(), error)
}
