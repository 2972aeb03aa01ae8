package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

func newTestStore(seconds int) *StatusStore {
	return NewStatusStore(&models.Config{
		Countdown: models.CountdownConfig{
			Seconds:      seconds,
			TickInterval: 5, // milliseconds, keeps tests fast
		},
	})
}

func collectUntil(t *testing.T, states <-chan models.CountdownState, done func(models.CountdownState) bool) []models.CountdownState {
	t.Helper()

	var seen []models.CountdownState
	deadline := time.After(5 * time.Second)
	for {
		select {
		case state := <-states:
			seen = append(seen, state)
			if done(state) {
				return seen
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for state, saw %d snapshots", len(seen))
		}
	}
}

func TestSnapshotDefaults(t *testing.T) {
	store := newTestStore(120)

	state := store.Snapshot()
	assert.Equal(t, "", state.RequestID)
	assert.Equal(t, "", state.UserID)
	assert.False(t, state.IsActive)
	assert.Equal(t, 120, state.TimeRemaining)
}

func TestCountdownRunsToZeroThenResets(t *testing.T) {
	store := newTestStore(3)

	states, cancel := store.Subscribe()
	defer cancel()

	store.SetRequestID("req-1")
	store.SetActive(true)
	store.StartTimer()

	// The countdown must pass through every value down to zero exactly once
	seen := collectUntil(t, states, func(s models.CountdownState) bool {
		return s.TimeRemaining == 0
	})

	zeroState := seen[len(seen)-1]
	assert.True(t, zeroState.IsActive, "zero snapshot must still be active for the expiry observer")
	assert.Equal(t, "req-1", zeroState.RequestID)

	// After the zero emit the store returns to the idle value on its own
	final := collectUntil(t, states, func(s models.CountdownState) bool {
		return s.TimeRemaining == 3 && !s.IsActive
	})
	require.NotEmpty(t, final)

	zeros := 0
	for _, s := range append(seen, final...) {
		if s.TimeRemaining == 0 {
			zeros++
		}
	}
	assert.Equal(t, 1, zeros, "zero must be emitted exactly once per countdown")
}

func TestStartTimerReplacesRunningCountdown(t *testing.T) {
	store := newTestStore(50)

	states, cancel := store.Subscribe()
	defer cancel()

	store.StartTimer()
	collectUntil(t, states, func(s models.CountdownState) bool {
		return s.TimeRemaining <= 48
	})

	// Restarting resets the value; only the new timer keeps decrementing,
	// so after the restart emit the value drops exactly one per tick
	store.StartTimer()

	seen := collectUntil(t, states, func(s models.CountdownState) bool {
		return s.TimeRemaining <= 45
	})

	restart := -1
	for i, s := range seen {
		if s.TimeRemaining == 50 {
			restart = i
		}
	}
	require.GreaterOrEqual(t, restart, 0, "restart emit not observed")

	last := 50
	for _, s := range seen[restart+1:] {
		assert.Equal(t, last-1, s.TimeRemaining, "countdown must decrement one per tick")
		last = s.TimeRemaining
	}
}

func TestResetStopsTimerAndClearsState(t *testing.T) {
	store := newTestStore(30)

	store.SetRequestID("req-2")
	store.SetUserID("user-2")
	store.SetActive(true)
	store.StartTimer()

	store.Reset()

	state := store.Snapshot()
	assert.Equal(t, "", state.RequestID)
	assert.Equal(t, "", state.UserID)
	assert.False(t, state.IsActive)
	assert.Equal(t, 30, state.TimeRemaining)

	// No tick may mutate the store after the reset
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 30, store.Snapshot().TimeRemaining)

	// Reset is idempotent
	store.Reset()
	assert.Equal(t, 30, store.Snapshot().TimeRemaining)
}

func TestResetTimerKeepsActiveFlag(t *testing.T) {
	store := newTestStore(30)

	store.SetActive(true)
	store.StartTimer()

	time.Sleep(20 * time.Millisecond)
	store.ResetTimer()

	state := store.Snapshot()
	assert.True(t, state.IsActive)
	assert.Equal(t, 30, state.TimeRemaining)
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	store := newTestStore(10)

	states, cancel := store.Subscribe()
	cancel()

	_, open := <-states
	assert.False(t, open, "cancel must close the subscriber channel")

	// Emitting after cancel must not panic
	store.SetRequestID("req-3")
}
