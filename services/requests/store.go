package requests

import (
	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
)

// StatusStore is the single process-wide state of the active request and its
// acceptance countdown. All operations are synchronous; the countdown tick is
// the only asynchronous mutator.
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/Mat0512/roadbuddy-client/services/requests StatusStore
type StatusStore interface {
	SetRequestID(id string)
	SetUserID(id string)
	SetActive(active bool)

	// StartTimer cancels any running countdown, resets the value and begins
	// decrementing once per tick interval
	StartTimer()

	// ResetTimer resets the countdown value without stopping the tick
	ResetTimer()

	// Reset stops any running countdown and clears all fields. Idempotent.
	Reset()

	// Snapshot returns the current state
	Snapshot() models.CountdownState

	// Subscribe returns a channel of state snapshots emitted on every
	// mutation, plus a cancel function
	Subscribe() (<-chan models.CountdownState, func())
}
