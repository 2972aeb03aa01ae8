package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/requests"
)

// lifecycleUC implements the requests.RequestUC interface. It is the single
// place where request status transitions are decided: user actions, realtime
// events and countdown expiry all converge here. Persistence comes first; a
// failed backend call leaves local state untouched, with the one documented
// exception of the timeout auto-cancel path.
type lifecycleUC struct {
	cfg      *models.Config
	gw       requests.RequestGW
	store    requests.StatusStore
	notifier requests.ViewNotifier

	mu       sync.Mutex
	inflight map[string]bool

	// set when a timeout auto-cancel failed to persist; retried on the
	// next load via Reconcile
	unconfirmedCancel string

	stopWatcher func()
}

// NewLifecycleUC creates the lifecycle coordinator and starts watching the
// status store for countdown expiry
func NewLifecycleUC(
	cfg *models.Config,
	gw requests.RequestGW,
	store requests.StatusStore,
	notifier requests.ViewNotifier,
) requests.RequestUC {
	uc := &lifecycleUC{
		cfg:      cfg,
		gw:       gw,
		store:    store,
		notifier: notifier,
		inflight: make(map[string]bool),
	}

	states, cancel := store.Subscribe()
	uc.stopWatcher = cancel
	go uc.watchCountdown(states)

	return uc
}

// Create submits a new service request and starts the acceptance countdown.
// On gateway failure no local state is mutated so the user may retry.
func (uc *lifecycleUC) Create(ctx context.Context, req models.CreateServiceRequest) (*models.ServiceRequest, error) {
	// Settle any unconfirmed timeout cancellation before opening a new request
	uc.Reconcile(ctx)

	req.Status = models.RequestStatusPending

	created, err := uc.gw.CreateServiceRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	uc.store.SetRequestID(created.RequestID)
	uc.store.SetUserID(created.UserID)
	uc.store.SetActive(true)
	uc.store.StartTimer()

	logger.Info("Service request created, countdown started",
		logger.String("request_id", created.RequestID),
		logger.String("user_id", created.UserID))

	return created, nil
}

// Get fetches the request detail from the backend
func (uc *lifecycleUC) Get(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	request, err := uc.gw.GetServiceRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service request: %w", err)
	}
	return request, nil
}

// Transition moves a request to the target status. The current status is
// fetched first and the transition validated against the state machine;
// invalid transitions are rejected without touching the backend. Only one
// transition per request may be in flight at a time.
func (uc *lifecycleUC) Transition(ctx context.Context, requestID string, target models.RequestStatus) (*models.ServiceRequest, error) {
	if !uc.beginTransition(requestID) {
		return nil, requests.ErrTransitionInFlight
	}
	defer uc.endTransition(requestID)

	current, err := uc.gw.GetServiceRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service request: %w", err)
	}

	if !current.Status.CanTransitionTo(target) {
		logger.Warn("Rejected status transition",
			logger.String("request_id", requestID),
			logger.String("from", string(current.Status)),
			logger.String("to", string(target)))
		return nil, requests.ErrInvalidTransition
	}

	updated, err := uc.gw.UpdateServiceRequestStatus(ctx, requestID, target)
	if err != nil {
		// Leave local state untouched so the user may retry
		return nil, fmt.Errorf("failed to persist status transition: %w", err)
	}

	uc.applyTransition(requestID, target)

	logger.Info("Service request transitioned",
		logger.String("request_id", requestID),
		logger.String("status", string(target)))

	return updated, nil
}

// applyTransition reflects a persisted transition in local state
func (uc *lifecycleUC) applyTransition(requestID string, target models.RequestStatus) {
	if target != models.RequestStatusCancelled {
		return
	}

	// Cancelling our own awaited request clears the waiting state
	if uc.store.Snapshot().RequestID == requestID {
		uc.store.Reset()
	}
}

// SubmitRating posts a rating for a completed request
func (uc *lifecycleUC) SubmitRating(ctx context.Context, rating models.Rating) error {
	if err := uc.gw.PostRating(ctx, rating); err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}
	return nil
}

// HandleAccepted reacts to the provider accepting the awaited request: the
// waiting state is cleared and the view told to navigate away
func (uc *lifecycleUC) HandleAccepted(ctx context.Context, userID string, event models.RequestAcceptedEvent) {
	logger.Info("Request accepted by provider",
		logger.String("request_id", event.RequestID),
		logger.String("user_id", userID))

	uc.store.Reset()
	uc.notifier.NotifyUser(userID, constants.EventViewRequestAccepted, event)
}

// HandleCancelled reacts to the counterpart cancelling: the view navigates to
// the tracking page for the cancelled request
func (uc *lifecycleUC) HandleCancelled(ctx context.Context, userID string, event models.RequestCancelledEvent) {
	logger.Info("Request cancelled by counterpart",
		logger.String("request_id", event.RequestID),
		logger.String("user_id", userID))

	uc.notifier.NotifyUser(userID, constants.EventViewRequestCancelled, event)
}

// Reconcile re-issues an unconfirmed timeout cancellation. Called on the next
// load so the backend does not keep a pending request the client already
// treats as cancelled.
func (uc *lifecycleUC) Reconcile(ctx context.Context) {
	uc.mu.Lock()
	requestID := uc.unconfirmedCancel
	uc.mu.Unlock()

	if requestID == "" {
		return
	}

	if _, err := uc.gw.UpdateServiceRequestStatus(ctx, requestID, models.RequestStatusCancelled); err != nil {
		logger.Warn("Reconciliation of timeout cancellation failed",
			logger.String("request_id", requestID),
			logger.Err(err))
		return
	}

	uc.mu.Lock()
	if uc.unconfirmedCancel == requestID {
		uc.unconfirmedCancel = ""
	}
	uc.mu.Unlock()

	logger.Info("Reconciled unconfirmed timeout cancellation",
		logger.String("request_id", requestID))
}

// Close stops the countdown watcher
func (uc *lifecycleUC) Close() {
	if uc.stopWatcher != nil {
		uc.stopWatcher()
	}
}

// watchCountdown consumes store snapshots and triggers the auto-cancel when
// the countdown reaches zero. The store emits the zero value exactly once
// per countdown, so the cancellation is issued exactly once.
func (uc *lifecycleUC) watchCountdown(states <-chan models.CountdownState) {
	for state := range states {
		if state.TimeRemaining == 0 && state.IsActive && state.RequestID != "" {
			uc.handleCountdownExpired(state.RequestID)
		}
	}
}

// handleCountdownExpired persists the timeout cancellation. Local countdown
// state is reset even when persistence fails, so the view never shows a stuck
// countdown; the unconfirmed cancellation is remembered for reconciliation.
func (uc *lifecycleUC) handleCountdownExpired(requestID string) {
	logger.Info("Countdown expired, cancelling request",
		logger.String("request_id", requestID))

	if !uc.beginTransition(requestID) {
		// A user-initiated transition is already persisting; leave the
		// outcome to it but clear the stuck countdown state
		uc.store.Reset()
		return
	}
	defer uc.endTransition(requestID)

	timeout := time.Duration(uc.cfg.Backend.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := uc.gw.UpdateServiceRequestStatus(ctx, requestID, models.RequestStatusCancelled)
	if err != nil {
		logger.Warn("Failed to persist timeout cancellation",
			logger.String("request_id", requestID),
			logger.Err(err))

		uc.mu.Lock()
		uc.unconfirmedCancel = requestID
		uc.mu.Unlock()
	}

	uc.store.Reset()
	uc.notifier.NotifyAll(constants.EventViewRequestCancelled, models.RequestCancelledEvent{RequestID: requestID})
}

func (uc *lifecycleUC) beginTransition(requestID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inflight[requestID] {
		return false
	}
	uc.inflight[requestID] = true
	return true
}

func (uc *lifecycleUC) endTransition(requestID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, requestID)
}
