package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/utils"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

// RequestsHandler handles HTTP requests for the service-request lifecycle
type RequestsHandler struct {
	requestUC requests.RequestUC
	store     requests.StatusStore
}

// NewRequestsHandler creates a new requests HTTP handler
func NewRequestsHandler(requestUC requests.RequestUC, store requests.StatusStore) *RequestsHandler {
	return &RequestsHandler{
		requestUC: requestUC,
		store:     store,
	}
}

// CreateRequest submits a new service request and starts the countdown
func (h *RequestsHandler) CreateRequest(c echo.Context) error {
	var req models.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.ServiceID == "" || req.ProviderID == "" {
		return utils.BadRequestResponse(c, "Service ID and provider ID are required")
	}

	created, err := h.requestUC.Create(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create service request",
			logger.String("service_id", req.ServiceID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create service request: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service request created", created)
}

// GetRequest fetches the request detail
func (h *RequestsHandler) GetRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	request, err := h.requestUC.Get(c.Request().Context(), requestID)
	if err != nil {
		logger.Error("Failed to fetch service request",
			logger.String("request_id", requestID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to fetch service request: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service request fetched", request)
}

// UpdateStatus transitions a request to the target status
func (h *RequestsHandler) UpdateStatus(c echo.Context) error {
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	var body struct {
		Status models.RequestStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	updated, err := h.requestUC.Transition(c.Request().Context(), requestID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Status transition not allowed")
		case errors.Is(err, requests.ErrTransitionInFlight):
			return utils.ConflictResponse(c, "Another transition is in progress")
		default:
			logger.Error("Failed to transition service request",
				logger.String("request_id", requestID),
				logger.String("status", string(body.Status)),
				logger.ErrorField(err))
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update status: "+err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated", updated)
}

// SubmitRating posts a rating for a completed request
func (h *RequestsHandler) SubmitRating(c echo.Context) error {
	var rating models.Rating
	if err := c.Bind(&rating); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if rating.Score < 1 || rating.Score > 5 {
		return utils.BadRequestResponse(c, "Rating must be between 1 and 5")
	}

	if err := h.requestUC.SubmitRating(c.Request().Context(), rating); err != nil {
		logger.Error("Failed to submit rating",
			logger.String("request_id", rating.RequestID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to submit rating: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating submitted", nil)
}

// GetCountdown returns the current countdown store snapshot
func (h *RequestsHandler) GetCountdown(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Countdown state", h.store.Snapshot())
}
