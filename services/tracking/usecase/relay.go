package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/tracking"
)

// DefaultPublishInterval is the provider fix cadence when none is configured
const DefaultPublishInterval = 10 * time.Second

// relayUC implements the tracking.TrackingUC interface. The provider side
// reads the device position on an interval and fans each fix out to the
// backend and the peer; the consumer side merges the stored fallback with
// realtime pushes, last write wins.
type relayUC struct {
	cfg *models.Config
	gw  tracking.TrackingGW
	geo tracking.Geolocator

	mu       sync.Mutex
	last     map[string]models.Location
	watchers map[string]int
}

// NewRelayUC creates the location relay usecase
func NewRelayUC(cfg *models.Config, gw tracking.TrackingGW, geo tracking.Geolocator) tracking.TrackingUC {
	return &relayUC{
		cfg:      cfg,
		gw:       gw,
		geo:      geo,
		last:     make(map[string]models.Location),
		watchers: make(map[string]int),
	}
}

// PublishLocation starts the provider publish loop for a request. The first
// fix is taken immediately, then one per interval until stopped.
func (uc *relayUC) PublishLocation(ctx context.Context, requestID string) (func(), error) {
	interval := time.Duration(uc.cfg.Tracking.PublishInterval) * time.Second
	if interval <= 0 {
		interval = DefaultPublishInterval
	}

	loopCtx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		uc.publishFix(loopCtx, requestID)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				uc.publishFix(loopCtx, requestID)
			}
		}
	}()

	logger.Info("Location publishing started",
		logger.String("request_id", requestID),
		logger.String("interval", interval.String()))

	return cancel, nil
}

// publishFix reads one position and relays it. Persistence and broadcast
// failures are logged but never end the loop; a transient outage should not
// stop the provider from being trackable once it recovers.
func (uc *relayUC) publishFix(ctx context.Context, requestID string) {
	fixTimeout := time.Duration(uc.cfg.Geolocation.Timeout) * time.Second
	if fixTimeout <= 0 {
		fixTimeout = 5 * time.Second
	}
	fixCtx, cancel := context.WithTimeout(ctx, fixTimeout)
	defer cancel()

	pos, err := uc.geo.CurrentPosition(fixCtx)
	if err != nil {
		logger.Warn("Failed to read device position",
			logger.String("request_id", requestID),
			logger.Err(err))
		return
	}

	uc.remember(requestID, pos)

	if err := uc.gw.PostLocation(ctx, models.LocationPost{
		RequestID: requestID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	}); err != nil {
		logger.Warn("Failed to persist position fix",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	if err := uc.gw.PublishLocationUpdate(requestID, models.LocationUpdate{
		Lat:  pos.Latitude,
		Long: pos.Longitude,
	}); err != nil {
		logger.Warn("Failed to broadcast position fix",
			logger.String("request_id", requestID),
			logger.Err(err))
	}
}

// WatchLocation delivers the fallback position, then every realtime push for
// the request until unwatched
func (uc *relayUC) WatchLocation(requestID string, fallback models.Location, fn func(models.Location)) (func(), error) {
	uc.beginWatch(requestID, fallback)
	fn(fallback)

	unsubscribe, err := uc.gw.SubscribeLocationUpdates(requestID, func(update models.LocationUpdate) {
		pos := models.Location{Latitude: update.Lat, Longitude: update.Long}
		uc.rememberWatched(requestID, pos)
		fn(pos)
	})
	if err != nil {
		uc.endWatch(requestID)
		return nil, err
	}

	logger.Info("Watching counterpart location",
		logger.String("request_id", requestID))

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			uc.endWatch(requestID)
		})
	}, nil
}

// LastKnown returns the most recent position seen for a request
func (uc *relayUC) LastKnown(requestID string) (models.Location, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	pos, ok := uc.last[requestID]
	return pos, ok
}

func (uc *relayUC) remember(requestID string, pos models.Location) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.last[requestID] = pos
}

// rememberWatched caches a push only while the request is still watched. A
// subscription callback already dispatched when unwatch runs must not
// repopulate the cache after the watch released it.
func (uc *relayUC) rememberWatched(requestID string, pos models.Location) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.watchers[requestID] > 0 {
		uc.last[requestID] = pos
	}
}

func (uc *relayUC) beginWatch(requestID string, fallback models.Location) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.watchers[requestID]++
	uc.last[requestID] = fallback
}

// endWatch drops the cached position once the last watcher releases
func (uc *relayUC) endWatch(requestID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.watchers[requestID]--
	if uc.watchers[requestID] <= 0 {
		delete(uc.watchers, requestID)
		delete(uc.last, requestID)
	}
}
