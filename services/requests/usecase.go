package requests

import (
	"context"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// RequestUC defines the interface for request lifecycle coordination
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Mat0512/roadbuddy-client/services/requests RequestUC
type RequestUC interface {
	// Create submits a new service request for the driver and starts the
	// acceptance countdown
	Create(ctx context.Context, req models.CreateServiceRequest) (*models.ServiceRequest, error)

	// Get fetches the request detail including nested provider, service and user
	Get(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// Transition moves a request to the target status after validating the
	// transition against the current backend status
	Transition(ctx context.Context, requestID string, target models.RequestStatus) (*models.ServiceRequest, error)

	// SubmitRating posts a rating for a completed request
	SubmitRating(ctx context.Context, rating models.Rating) error

	// HandleAccepted reacts to a realtime acceptance event on the driver side
	HandleAccepted(ctx context.Context, userID string, event models.RequestAcceptedEvent)

	// HandleCancelled reacts to a realtime cancellation event from the counterpart
	HandleCancelled(ctx context.Context, userID string, event models.RequestCancelledEvent)

	// Reconcile re-issues an unconfirmed timeout cancellation, if any
	Reconcile(ctx context.Context)
}
