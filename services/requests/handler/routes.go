package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	wspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/websocket"
	"github.com/Mat0512/roadbuddy-client/services/chat"
	"github.com/Mat0512/roadbuddy-client/services/requests"
	httpHandler "github.com/Mat0512/roadbuddy-client/services/requests/handler/http"
	natsHandler "github.com/Mat0512/roadbuddy-client/services/requests/handler/nats"
	wsHandler "github.com/Mat0512/roadbuddy-client/services/requests/handler/websocket"
	"github.com/Mat0512/roadbuddy-client/services/tracking"
)

// Handler combines all handlers for the requests service
type Handler struct {
	requestsHTTP *httpHandler.RequestsHandler
	requestsNATS *natsHandler.RequestsHandler
	views        *wsHandler.ViewsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	requestUC requests.RequestUC,
	trackingUC tracking.TrackingUC,
	chatUC chat.ChatUC,
	store requests.StatusStore,
	rt *realtime.Channel,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		requestsHTTP: httpHandler.NewRequestsHandler(requestUC, store),
		requestsNATS: natsHandler.NewRequestsHandler(requestUC, rt, store),
		views:        wsHandler.NewViewsHandler(wsManager, trackingUC, chatUC, store, rt),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	requestsGroup := e.Group("/requests")
	requestsGroup.POST("", h.requestsHTTP.CreateRequest)
	requestsGroup.GET("/countdown", h.requestsHTTP.GetCountdown)
	requestsGroup.GET("/:requestID", h.requestsHTTP.GetRequest)
	requestsGroup.PUT("/:requestID/status", h.requestsHTTP.UpdateStatus)
	requestsGroup.POST("/rating", h.requestsHTTP.SubmitRating)

	e.GET("/ws", h.views.HandleWebSocket)
}

// Start begins the realtime consumers and view pushes
func (h *Handler) Start() {
	h.requestsNATS.Start()
	h.views.Start()
}

// Stop releases the realtime consumers and view pushes
func (h *Handler) Stop() {
	h.requestsNATS.Stop()
	h.views.Stop()
}
