package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

func (h *ViewsHandler) handleChatSend(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var msg models.SendChatMessage
	if err := unmarshalCommand(data, &msg); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid chat message format")
	}

	// The sender is always the authenticated view, never the payload
	msg.SenderID = client.UserID

	sent, err := h.chatUC.Send(context.Background(), msg)
	if err != nil {
		return h.sendError(conn, constants.ErrorInternalError, err.Error())
	}

	return h.manager.SendMessage(conn, constants.EventViewMessageSent, sent)
}
