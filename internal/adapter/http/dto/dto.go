package dto

import (
	"encoding/json"

	"pitchbook/internal/core/domain"
)

// CreateEndpointRequest is the request body for endpoint registration.
// Field validation lives in the service layer so error codes stay uniform.
type CreateEndpointRequest struct {
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	Events        []string          `json:"events"`
	Headers       map[string]string `json:"headers,omitempty"`
	TimeoutMS     *int              `json:"timeout_ms,omitempty"`
	RetryAttempts *int              `json:"retry_attempts,omitempty"`
}

// UpdateEndpointRequest is a partial update; omitted fields are left unchanged.
type UpdateEndpointRequest struct {
	Name          *string           `json:"name,omitempty"`
	URL           *string           `json:"url,omitempty"`
	Events        []string          `json:"events,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	TimeoutMS     *int              `json:"timeout_ms,omitempty"`
	RetryAttempts *int              `json:"retry_attempts,omitempty"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

// EndpointResponse is the endpoint representation returned by the API.
// The signing secret is never included; it has its own reveal route.
type EndpointResponse struct {
	ID            string            `json:"id"`
	ScopeID       string            `json:"scope_id"`
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	Events        []string          `json:"events"`
	IsActive      bool              `json:"is_active"`
	Headers       map[string]string `json:"headers,omitempty"`
	TimeoutMS     int               `json:"timeout_ms"`
	RetryAttempts int               `json:"retry_attempts"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// SecretResponse carries the raw signing secret.
type SecretResponse struct {
	Secret string `json:"secret"`
}

// ActorRef identifies who triggered an event.
type ActorRef struct {
	ID   string `json:"id" binding:"required,uuid"`
	Name string `json:"name"`
	Type string `json:"type" binding:"required,oneof=user system"`
}

// TriggerEventRequest is the internal request body for dispatching an event.
type TriggerEventRequest struct {
	ScopeID     string    `json:"scope_id" binding:"required,uuid"`
	Event       string    `json:"event" binding:"required"`
	Data        any       `json:"data" binding:"required"`
	Previous    any       `json:"previous,omitempty"`
	TriggeredBy *ActorRef `json:"triggered_by,omitempty"`
}

// DeliveryResultResponse mirrors the recorded subscriber response.
type DeliveryResultResponse struct {
	Status  int               `json:"status"`
	Body    string            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// DeliveryRecord is one delivery attempt history entry.
type DeliveryRecord struct {
	ID          string                  `json:"id"`
	WebhookID   string                  `json:"webhook_id"`
	Event       string                  `json:"event"`
	Payload     json.RawMessage         `json:"payload"`
	Status      string                  `json:"status"`
	Attempts    int                     `json:"attempts"`
	NextRetryAt *string                 `json:"next_retry_at,omitempty"`
	Response    *DeliveryResultResponse `json:"response,omitempty"`
	Error       *string                 `json:"error,omitempty"`
	DeliveredAt *string                 `json:"delivered_at,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// ToEvents converts wire event names into domain events. Unknown names pass
// through; the service rejects them with the proper error code.
func ToEvents(names []string) []domain.WebhookEvent {
	if names == nil {
		return nil
	}
	events := make([]domain.WebhookEvent, len(names))
	for i, n := range names {
		events[i] = domain.WebhookEvent(n)
	}
	return events
}
