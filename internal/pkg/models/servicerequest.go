package models

import (
	"time"
)

// RequestStatus represents the status of a service request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// CanTransitionTo reports whether a transition from s to target is valid.
// Valid transitions: pending -> accepted, pending -> cancelled,
// accepted -> completed, accepted -> cancelled. Everything else is rejected.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return target == RequestStatusAccepted || target == RequestStatusCancelled
	case RequestStatusAccepted:
		return target == RequestStatusCompleted || target == RequestStatusCancelled
	default:
		return false
	}
}

// ServiceRequest represents one request for roadside service
type ServiceRequest struct {
	RequestID      string           `json:"request_id"`
	UserID         string           `json:"user_id"`
	ProviderID     string           `json:"provider_id"`
	ServiceID      string           `json:"service_id"`
	Status         RequestStatus    `json:"status"`
	LocationLat    float64          `json:"location_lat"`
	LocationLng    float64          `json:"location_lng"`
	PaymentMethod  string           `json:"payment_method,omitempty"`
	RequestTime    time.Time        `json:"request_time"`
	CompletionTime *time.Time       `json:"completion_time"`
	Rating         int              `json:"rating,omitempty"`
	Provider       *Provider        `json:"provider,omitempty"`
	Service        *ProviderService `json:"service,omitempty"`
	User           *User            `json:"user,omitempty"`
}

// CreateServiceRequest is the payload for creating a new service request
type CreateServiceRequest struct {
	UserID        string        `json:"user_id"`
	ProviderID    string        `json:"provider_id"`
	ServiceID     string        `json:"service_id"`
	Status        RequestStatus `json:"status"`
	LocationLat   float64       `json:"location_lat"`
	LocationLng   float64       `json:"location_lng"`
	PaymentMethod string        `json:"payment_method,omitempty"`
}

// ServiceRequestEnvelope is the backend response wrapper for a single request
type ServiceRequestEnvelope struct {
	Message        string          `json:"message"`
	ServiceRequest *ServiceRequest `json:"service_request"`
}

// Provider represents a service provider (vulcanizing shop, gas station, etc.)
type Provider struct {
	ProviderID  string  `json:"provider_id"`
	Name        string  `json:"service_provider_name"`
	ContactInfo string  `json:"contact_info"`
	LocationLat float64 `json:"location_lat"`
	LocationLng float64 `json:"location_lng"`
}

// ProviderService represents a service offered by a provider
type ProviderService struct {
	ProviderServiceID string  `json:"provider_service_id"`
	ProviderID        string  `json:"provider_id"`
	ServiceName       string  `json:"service_name"`
	Price             float64 `json:"price"`
	Description       string  `json:"description"`
}

// User represents the requesting driver or the servicing provider account
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Type   string `json:"type"` // driver or service_provider
}

// Rating is submitted by the driver after a completed request
type Rating struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	Score     int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}
