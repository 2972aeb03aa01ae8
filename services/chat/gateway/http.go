package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	"github.com/Mat0512/roadbuddy-client/services/chat"
)

// ChatGW persists messages through the marketplace backend and consumes
// inbound messages from the realtime channel
type ChatGW struct {
	client *httpclient.Client
	rt     *realtime.Channel
}

// NewChatGW creates a new chat gateway
func NewChatGW(client *httpclient.Client, rt *realtime.Channel) chat.ChatGW {
	return &ChatGW{
		client: client,
		rt:     rt,
	}
}

// SendMessage persists a new chat message. The backend relays it to the
// receiver's realtime topic.
func (g *ChatGW) SendMessage(ctx context.Context, msg models.SendChatMessage) (*models.ChatMessage, error) {
	var sent models.ChatMessage
	if err := g.client.PostJSON(ctx, "/chat/send", msg, &sent); err != nil {
		return nil, fmt.Errorf("send chat message: %w", err)
	}
	return &sent, nil
}

// GetMessages fetches the conversation with a counterpart
func (g *ChatGW) GetMessages(ctx context.Context, counterpartID string) ([]models.ChatMessage, error) {
	var envelope models.ChatHistoryEnvelope
	endpoint := fmt.Sprintf("/chat/messages/%s", counterpartID)
	if err := g.client.GetJSON(ctx, endpoint, &envelope); err != nil {
		return nil, fmt.Errorf("get conversation with %s: %w", counterpartID, err)
	}
	return envelope.Messages, nil
}
