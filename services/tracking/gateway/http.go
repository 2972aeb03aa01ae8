package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	"github.com/Mat0512/roadbuddy-client/services/tracking"
)

// TrackingGW relays position fixes: durable writes go to the backend over
// REST, peer broadcast and consumption go over the realtime channel
type TrackingGW struct {
	client *httpclient.Client
	rt     *realtime.Channel
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(client *httpclient.Client, rt *realtime.Channel) tracking.TrackingGW {
	return &TrackingGW{
		client: client,
		rt:     rt,
	}
}

// PostLocation persists one position fix against the request
func (g *TrackingGW) PostLocation(ctx context.Context, post models.LocationPost) error {
	if err := g.client.PostJSON(ctx, "/service-requests/location", post, nil); err != nil {
		return fmt.Errorf("post location for request %s: %w", post.RequestID, err)
	}
	return nil
}
