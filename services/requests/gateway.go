package requests

import (
	"context"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// RequestGW defines the interface for backend request/response operations
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Mat0512/roadbuddy-client/services/requests RequestGW
type RequestGW interface {
	CreateServiceRequest(ctx context.Context, req models.CreateServiceRequest) (*models.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	UpdateServiceRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) (*models.ServiceRequest, error)
	PostRating(ctx context.Context, rating models.Rating) error
}
