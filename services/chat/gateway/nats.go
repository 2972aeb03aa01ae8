package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
)

// SubscribeMessages delivers inbound messages published on the user's chat
// topic until the returned cancel function is called
func (g *ChatGW) SubscribeMessages(userID string, fn func(models.ChatMessage)) (func(), error) {
	topic := fmt.Sprintf(constants.TopicChat, userID)

	sub, err := g.rt.Subscribe(topic, constants.EventMessageSent, func(ev realtime.Event) {
		var msg models.ChatMessage
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			logger.Error("Failed to unmarshal chat message",
				logger.String("topic", ev.Topic),
				logger.Err(err))
			return
		}
		fn(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe chat messages for user %s: %w", userID, err)
	}

	return sub.Unsubscribe, nil
}
