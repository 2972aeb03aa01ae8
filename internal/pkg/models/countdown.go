package models

// CountdownState is a snapshot of the request status store: the active
// request identity plus the acceptance-countdown value. RequestID and UserID
// are empty strings when no request is active.
type CountdownState struct {
	RequestID     string `json:"request_id"`
	UserID        string `json:"user_id"`
	IsActive      bool   `json:"is_active"`
	TimeRemaining int    `json:"time_remaining"`
}
