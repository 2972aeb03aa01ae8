package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

// RequestGW performs authenticated request/response calls against the
// marketplace backend. Stateless per call.
type RequestGW struct {
	client *httpclient.Client
}

// NewRequestGW creates a new request gateway
func NewRequestGW(client *httpclient.Client) requests.RequestGW {
	return &RequestGW{client: client}
}

// CreateServiceRequest creates a new service request with status pending
func (g *RequestGW) CreateServiceRequest(ctx context.Context, req models.CreateServiceRequest) (*models.ServiceRequest, error) {
	var envelope models.ServiceRequestEnvelope
	if err := g.client.PostJSON(ctx, "/service-requests", req, &envelope); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	if envelope.ServiceRequest == nil {
		return nil, fmt.Errorf("create service request: empty response envelope")
	}

	return envelope.ServiceRequest, nil
}

// GetServiceRequest fetches a request detail including nested provider,
// service and user
func (g *RequestGW) GetServiceRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	var envelope models.ServiceRequestEnvelope
	endpoint := fmt.Sprintf("/service-requests/%s", requestID)
	if err := g.client.GetJSON(ctx, endpoint, &envelope); err != nil {
		return nil, fmt.Errorf("get service request %s: %w", requestID, err)
	}

	if envelope.ServiceRequest == nil {
		return nil, fmt.Errorf("get service request %s: empty response envelope", requestID)
	}

	return envelope.ServiceRequest, nil
}

// UpdateServiceRequestStatus persists a status transition
func (g *RequestGW) UpdateServiceRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) (*models.ServiceRequest, error) {
	body := map[string]models.RequestStatus{"status": status}

	var envelope models.ServiceRequestEnvelope
	endpoint := fmt.Sprintf("/service-requests/%s", requestID)
	if err := g.client.PutJSON(ctx, endpoint, body, &envelope); err != nil {
		return nil, fmt.Errorf("update service request %s: %w", requestID, err)
	}

	return envelope.ServiceRequest, nil
}

// PostRating submits a rating for a completed request
func (g *RequestGW) PostRating(ctx context.Context, rating models.Rating) error {
	if err := g.client.PostJSON(ctx, "/rating", rating, nil); err != nil {
		return fmt.Errorf("post rating: %w", err)
	}
	return nil
}
