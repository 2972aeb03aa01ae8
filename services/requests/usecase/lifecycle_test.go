package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/constants"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/requests"
	"github.com/Mat0512/roadbuddy-client/services/requests/mocks"
)

type lifecycleMocks struct {
	gw       *mocks.MockRequestGW
	store    *mocks.MockStatusStore
	notifier *mocks.MockViewNotifier
	states   chan models.CountdownState
}

func newLifecycleUC(t *testing.T, ctrl *gomock.Controller) (requests.RequestUC, *lifecycleMocks) {
	t.Helper()

	m := &lifecycleMocks{
		gw:       mocks.NewMockRequestGW(ctrl),
		store:    mocks.NewMockStatusStore(ctrl),
		notifier: mocks.NewMockViewNotifier(ctrl),
		states:   make(chan models.CountdownState, 8),
	}

	m.store.EXPECT().
		Subscribe().
		Return((<-chan models.CountdownState)(m.states), func() {})

	cfg := &models.Config{
		Backend: models.BackendConfig{Timeout: 1},
	}

	return NewLifecycleUC(cfg, m.gw, m.store, m.notifier), m
}

func TestCreateStartsCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	created := &models.ServiceRequest{
		RequestID: "req-1",
		UserID:    "user-1",
		Status:    models.RequestStatusPending,
	}

	m.gw.EXPECT().
		CreateServiceRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateServiceRequest) (*models.ServiceRequest, error) {
			// The usecase always submits with status pending
			assert.Equal(t, models.RequestStatusPending, req.Status)
			return created, nil
		})

	m.store.EXPECT().SetRequestID("req-1")
	m.store.EXPECT().SetUserID("user-1")
	m.store.EXPECT().SetActive(true)
	m.store.EXPECT().StartTimer()

	result, err := uc.Create(context.Background(), models.CreateServiceRequest{
		UserID:     "user-1",
		ProviderID: "provider-1",
		ServiceID:  "service-1",
		Status:     models.RequestStatusAccepted, // caller cannot pick the status
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", result.RequestID)
}

func TestCreateGatewayFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		CreateServiceRequest(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unavailable"))

	// No store mutation is expected on failure

	result, err := uc.Create(context.Background(), models.CreateServiceRequest{
		ProviderID: "provider-1",
		ServiceID:  "service-1",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestTransitionRejectsInvalidTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		GetServiceRequest(gomock.Any(), "req-1").
		Return(&models.ServiceRequest{
			RequestID: "req-1",
			Status:    models.RequestStatusPending,
		}, nil)

	// pending -> completed skips acceptance and must be rejected locally
	result, err := uc.Transition(context.Background(), "req-1", models.RequestStatusCompleted)

	assert.ErrorIs(t, err, requests.ErrInvalidTransition)
	assert.Nil(t, result)
}

func TestTransitionRejectsLeavingTerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		GetServiceRequest(gomock.Any(), "req-1").
		Return(&models.ServiceRequest{
			RequestID: "req-1",
			Status:    models.RequestStatusCancelled,
		}, nil)

	result, err := uc.Transition(context.Background(), "req-1", models.RequestStatusAccepted)

	assert.ErrorIs(t, err, requests.ErrInvalidTransition)
	assert.Nil(t, result)
}

func TestTransitionCancelClearsAwaitedRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		GetServiceRequest(gomock.Any(), "req-1").
		Return(&models.ServiceRequest{
			RequestID: "req-1",
			Status:    models.RequestStatusPending,
		}, nil)

	m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-1", models.RequestStatusCancelled).
		Return(&models.ServiceRequest{
			RequestID: "req-1",
			Status:    models.RequestStatusCancelled,
		}, nil)

	m.store.EXPECT().
		Snapshot().
		Return(models.CountdownState{RequestID: "req-1", IsActive: true, TimeRemaining: 80})
	m.store.EXPECT().Reset()

	result, err := uc.Transition(context.Background(), "req-1", models.RequestStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, result.Status)
}

func TestTransitionCancelOtherRequestKeepsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		GetServiceRequest(gomock.Any(), "req-2").
		Return(&models.ServiceRequest{
			RequestID: "req-2",
			Status:    models.RequestStatusAccepted,
		}, nil)

	m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-2", models.RequestStatusCancelled).
		Return(&models.ServiceRequest{
			RequestID: "req-2",
			Status:    models.RequestStatusCancelled,
		}, nil)

	// The store tracks a different request; it must not be reset
	m.store.EXPECT().
		Snapshot().
		Return(models.CountdownState{RequestID: "req-1"})

	_, err := uc.Transition(context.Background(), "req-2", models.RequestStatusCancelled)
	require.NoError(t, err)
}

func TestTransitionPersistFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	m.gw.EXPECT().
		GetServiceRequest(gomock.Any(), "req-1").
		Return(&models.ServiceRequest{
			RequestID: "req-1",
			Status:    models.RequestStatusAccepted,
		}, nil)

	m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-1", models.RequestStatusCompleted).
		Return(nil, errors.New("backend unavailable"))

	result, err := uc.Transition(context.Background(), "req-1", models.RequestStatusCompleted)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestHandleAcceptedClearsStoreAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	event := models.RequestAcceptedEvent{RequestID: "req-1"}

	m.store.EXPECT().Reset()
	m.notifier.EXPECT().NotifyUser("user-1", constants.EventViewRequestAccepted, event)

	uc.HandleAccepted(context.Background(), "user-1", event)
}

func TestHandleCancelledNotifiesWithoutReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)

	event := models.RequestCancelledEvent{RequestID: "req-1"}

	// The view navigates to the cancelled request; countdown state is not
	// cleared here
	m.notifier.EXPECT().NotifyUser("user-1", constants.EventViewRequestCancelled, event)

	uc.HandleCancelled(context.Background(), "user-1", event)
}

func TestCountdownExpiryCancelsExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)
	defer uc.(*lifecycleUC).Close()

	cancelled := make(chan struct{})

	m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-1", models.RequestStatusCancelled).
		DoAndReturn(func(_ context.Context, _ string, _ models.RequestStatus) (*models.ServiceRequest, error) {
			return &models.ServiceRequest{RequestID: "req-1", Status: models.RequestStatusCancelled}, nil
		}).
		Times(1)

	m.store.EXPECT().Reset()
	m.notifier.EXPECT().
		NotifyAll(constants.EventViewRequestCancelled, models.RequestCancelledEvent{RequestID: "req-1"}).
		Do(func(string, interface{}) { close(cancelled) })

	// Ticks above zero must not trigger anything
	m.states <- models.CountdownState{RequestID: "req-1", IsActive: true, TimeRemaining: 2}
	m.states <- models.CountdownState{RequestID: "req-1", IsActive: true, TimeRemaining: 1}
	m.states <- models.CountdownState{RequestID: "req-1", IsActive: true, TimeRemaining: 0}
	// The post-expiry reset emit carries an inactive zeroed state
	m.states <- models.CountdownState{IsActive: false, TimeRemaining: 120}

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for timeout cancellation")
	}
}

func TestCountdownExpiryPersistFailureResetsAndReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newLifecycleUC(t, ctrl)
	defer uc.(*lifecycleUC).Close()

	notified := make(chan struct{})

	first := m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-1", models.RequestStatusCancelled).
		Return(nil, errors.New("backend unavailable"))

	// Local state is cleared even though persistence failed
	m.store.EXPECT().Reset()
	m.notifier.EXPECT().
		NotifyAll(constants.EventViewRequestCancelled, models.RequestCancelledEvent{RequestID: "req-1"}).
		Do(func(string, interface{}) { close(notified) })

	m.states <- models.CountdownState{RequestID: "req-1", IsActive: true, TimeRemaining: 0}

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for timeout cancellation")
	}

	// The next load retries the unconfirmed cancellation
	m.gw.EXPECT().
		UpdateServiceRequestStatus(gomock.Any(), "req-1", models.RequestStatusCancelled).
		Return(&models.ServiceRequest{RequestID: "req-1", Status: models.RequestStatusCancelled}, nil).
		After(first)

	uc.Reconcile(context.Background())

	// A second reconcile is a no-op
	uc.Reconcile(context.Background())
}
