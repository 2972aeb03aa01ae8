package requests

import "errors"

var (
	// ErrInvalidTransition is returned when the requested status change is
	// not permitted from the request's current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransitionInFlight is returned when a transition for the same
	// request is already being persisted
	ErrTransitionInFlight = errors.New("transition already in flight")

	// ErrNoActiveRequest is returned when an operation requires an active
	// request and none is tracked
	ErrNoActiveRequest = errors.New("no active request")
)
