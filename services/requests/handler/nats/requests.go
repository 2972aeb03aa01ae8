package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

// RequestsHandler binds the realtime user topic to the lifecycle coordinator.
// The subscription follows the status store: it is established when a user id
// becomes active and released when the store is cleared, so acceptance and
// cancellation events always reach the coordinator while a request is awaited.
type RequestsHandler struct {
	uc    requests.RequestUC
	rt    *realtime.Channel
	store requests.StatusStore

	mu     sync.Mutex
	userID string
	subs   []*realtime.Subscription

	stopWatch func()
}

// NewRequestsHandler creates a new realtime requests handler
func NewRequestsHandler(uc requests.RequestUC, rt *realtime.Channel, store requests.StatusStore) *RequestsHandler {
	return &RequestsHandler{
		uc:    uc,
		rt:    rt,
		store: store,
	}
}

// Start begins following the status store's user id
func (h *RequestsHandler) Start() {
	states, cancel := h.store.Subscribe()
	h.stopWatch = cancel

	// Pick up a user id that was set before Start
	h.follow(h.store.Snapshot())

	go func() {
		for state := range states {
			h.follow(state)
		}
	}()
}

// Stop releases the store watch and any live subscriptions
func (h *RequestsHandler) Stop() {
	if h.stopWatch != nil {
		h.stopWatch()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.unbindLocked()
}

func (h *RequestsHandler) follow(state models.CountdownState) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if state.UserID == h.userID {
		return
	}

	h.unbindLocked()
	h.userID = state.UserID

	if h.userID == "" {
		return
	}

	if err := h.bindLocked(h.userID); err != nil {
		logger.Error("Failed to bind user topic",
			logger.String("user_id", h.userID),
			logger.Err(err))
	}
}

func (h *RequestsHandler) bindLocked(userID string) error {
	topic := fmt.Sprintf(constants.TopicUser, userID)

	acceptedSub, err := h.rt.Subscribe(topic, constants.EventRequestAccepted, func(ev realtime.Event) {
		h.handleAccepted(userID, ev)
	})
	if err != nil {
		return fmt.Errorf("subscribe accepted events: %w", err)
	}
	h.subs = append(h.subs, acceptedSub)

	cancelledSub, err := h.rt.Subscribe(topic, constants.EventRequestCancelled, func(ev realtime.Event) {
		h.handleCancelled(userID, ev)
	})
	if err != nil {
		return fmt.Errorf("subscribe cancelled events: %w", err)
	}
	h.subs = append(h.subs, cancelledSub)

	logger.Info("Bound user topic for lifecycle events",
		logger.String("topic", topic))

	return nil
}

func (h *RequestsHandler) unbindLocked() {
	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
	h.subs = nil
}

func (h *RequestsHandler) handleAccepted(userID string, ev realtime.Event) {
	var event models.RequestAcceptedEvent
	if err := json.Unmarshal(ev.Data, &event); err != nil {
		logger.Error("Failed to unmarshal accepted event",
			logger.String("topic", ev.Topic),
			logger.Err(err))
		return
	}

	h.uc.HandleAccepted(context.Background(), userID, event)
}

func (h *RequestsHandler) handleCancelled(userID string, ev realtime.Event) {
	var event models.RequestCancelledEvent
	if err := json.Unmarshal(ev.Data, &event); err != nil {
		logger.Error("Failed to unmarshal cancelled event",
			logger.String("topic", ev.Topic),
			logger.Err(err))
		return
	}

	h.uc.HandleCancelled(context.Background(), userID, event)
}
