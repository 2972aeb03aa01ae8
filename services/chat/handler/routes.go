package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/services/chat"
	httpHandler "github.com/Mat0512/roadbuddy-client/services/chat/handler/http"
)

// Handler combines all handlers for the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
}

// NewHandler creates a new combined handler
func NewHandler(chatUC chat.ChatUC) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	chatGroup := e.Group("/chat")
	chatGroup.POST("/send", h.chatHTTP.SendMessage)
	chatGroup.GET("/messages/:counterpartID", h.chatHTTP.GetMessages)
}
