package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/chat"
)

// chatUC implements the chat.ChatUC interface. Messages are persisted through
// the backend, which fans them out to the receiver's realtime topic; the
// watch side only consumes.
type chatUC struct {
	gw chat.ChatGW
}

// NewChatUC creates the chat usecase
func NewChatUC(gw chat.ChatGW) chat.ChatUC {
	return &chatUC{gw: gw}
}

// Send persists a message. Empty or whitespace-only messages are rejected
// before reaching the backend.
func (uc *chatUC) Send(ctx context.Context, msg models.SendChatMessage) (*models.ChatMessage, error) {
	if strings.TrimSpace(msg.Message) == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	sent, err := uc.gw.SendMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	logger.Info("Chat message sent",
		logger.String("receiver_id", msg.ReceiverID))

	return sent, nil
}

// History fetches the conversation with a counterpart, oldest first
func (uc *chatUC) History(ctx context.Context, counterpartID string) ([]models.ChatMessage, error) {
	messages, err := uc.gw.GetMessages(ctx, counterpartID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return messages, nil
}

// WatchMessages delivers inbound messages for a user until cancelled
func (uc *chatUC) WatchMessages(userID string, fn func(models.ChatMessage)) (func(), error) {
	cancel, err := uc.gw.SubscribeMessages(userID, fn)
	if err != nil {
		return nil, fmt.Errorf("failed to watch messages: %w", err)
	}

	logger.Info("Watching inbound chat messages",
		logger.String("user_id", userID))

	return cancel, nil
}
