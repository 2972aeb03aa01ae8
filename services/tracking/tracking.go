package tracking

import (
	"context"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// TrackingUC defines the interface for the location relay
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Mat0512/roadbuddy-client/services/tracking TrackingUC
type TrackingUC interface {
	// PublishLocation starts the provider-side publish loop for a request:
	// on a fixed interval the current position is read, persisted to the
	// backend and broadcast to the peer. The returned stop function ends
	// the loop.
	PublishLocation(ctx context.Context, requestID string) (func(), error)

	// WatchLocation follows the counterpart position for a request. The
	// fallback is delivered immediately and each subsequent realtime push
	// replaces it. The returned unwatch function releases the subscription
	// and the cached position.
	WatchLocation(requestID string, fallback models.Location, fn func(models.Location)) (func(), error)

	// LastKnown returns the most recent position seen for a request
	LastKnown(requestID string) (models.Location, bool)
}

// TrackingGW defines the interface for location persistence and peer broadcast
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Mat0512/roadbuddy-client/services/tracking TrackingGW
type TrackingGW interface {
	// PostLocation persists a position fix against the request
	PostLocation(ctx context.Context, post models.LocationPost) error

	// PublishLocationUpdate broadcasts a position to the request's peer
	PublishLocationUpdate(requestID string, update models.LocationUpdate) error

	// SubscribeLocationUpdates delivers peer position pushes for a request
	// until the returned cancel function is called
	SubscribeLocationUpdates(requestID string, fn func(models.LocationUpdate)) (func(), error)
}

// Geolocator defines the interface for reading the device position
//go:generate mockgen -destination=mocks/mock_geolocator.go -package=mocks github.com/Mat0512/roadbuddy-client/services/tracking Geolocator
type Geolocator interface {
	CurrentPosition(ctx context.Context) (models.Location, error)
}
