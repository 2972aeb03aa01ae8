package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/utils"
	"github.com/Mat0512/roadbuddy-client/services/chat"
)

// ChatHandler handles HTTP requests for conversations
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

// SendMessage posts a new message to a counterpart
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var msg models.SendChatMessage
	if err := c.Bind(&msg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if msg.ReceiverID == "" {
		return utils.BadRequestResponse(c, "Receiver ID is required")
	}

	sent, err := h.chatUC.Send(c.Request().Context(), msg)
	if err != nil {
		logger.Error("Failed to send chat message",
			logger.String("receiver_id", msg.ReceiverID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to send message: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", sent)
}

// GetMessages fetches the conversation with a counterpart
func (h *ChatHandler) GetMessages(c echo.Context) error {
	counterpartID := c.Param("counterpartID")
	if counterpartID == "" {
		return utils.BadRequestResponse(c, "Counterpart ID is required")
	}

	messages, err := h.chatUC.History(c.Request().Context(), counterpartID)
	if err != nil {
		logger.Error("Failed to fetch conversation",
			logger.String("counterpart_id", counterpartID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to fetch conversation: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Conversation fetched", messages)
}
