package models

// Location represents a geographical position with latitude and longitude
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationUpdate is the realtime peer event published on the request's
// location topic while the provider is en route
type LocationUpdate struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// LocationPost is the durability write sent to the backend for each fix
type LocationPost struct {
	RequestID string  `json:"requestId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
