package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
)

// PublishLocationUpdate broadcasts a position on the request's location topic
func (g *TrackingGW) PublishLocationUpdate(requestID string, update models.LocationUpdate) error {
	topic := fmt.Sprintf(constants.TopicLocation, requestID)
	if err := g.rt.Publish(topic, constants.EventLocationUpdated, update); err != nil {
		return fmt.Errorf("publish location update for request %s: %w", requestID, err)
	}
	return nil
}

// SubscribeLocationUpdates delivers peer position pushes for a request until
// the returned cancel function is called
func (g *TrackingGW) SubscribeLocationUpdates(requestID string, fn func(models.LocationUpdate)) (func(), error) {
	topic := fmt.Sprintf(constants.TopicLocation, requestID)

	sub, err := g.rt.Subscribe(topic, constants.EventLocationUpdated, func(ev realtime.Event) {
		var update models.LocationUpdate
		if err := json.Unmarshal(ev.Data, &update); err != nil {
			logger.Error("Failed to unmarshal location update",
				logger.String("topic", ev.Topic),
				logger.Err(err))
			return
		}
		fn(update)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe location updates for request %s: %w", requestID, err)
	}

	return sub.Unsubscribe, nil
}
