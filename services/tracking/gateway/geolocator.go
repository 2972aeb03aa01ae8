package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/tracking"
)

// HTTPGeolocator reads the device position from a local position source
// endpoint that reports the current fix as JSON
type HTTPGeolocator struct {
	client *httpclient.Client
}

// NewHTTPGeolocator creates a geolocator backed by the configured source URL
func NewHTTPGeolocator(cfg *models.Config) tracking.Geolocator {
	timeout := time.Duration(cfg.Geolocation.Timeout) * time.Second
	return &HTTPGeolocator{
		client: httpclient.NewClient(cfg.Geolocation.SourceURL, "", timeout),
	}
}

// CurrentPosition reads one fix from the position source
func (g *HTTPGeolocator) CurrentPosition(ctx context.Context) (models.Location, error) {
	var pos models.Location
	if err := g.client.GetJSON(ctx, "", &pos); err != nil {
		return models.Location{}, fmt.Errorf("read device position: %w", err)
	}
	return pos, nil
}
