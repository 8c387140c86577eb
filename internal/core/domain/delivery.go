package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the delivery state of one webhook transmission.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusRetrying  DeliveryStatus = "retrying"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusFailed
}

// ActorType distinguishes who triggered an event.
type ActorType string

const (
	ActorTypeUser   ActorType = "user"
	ActorTypeSystem ActorType = "system"
)

// Actor attributes an event to the user or system process that caused it.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type ActorType `json:"type"`
}

// ScopeRef identifies the owning league in the payload envelope.
type ScopeRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// WebhookPayload is the canonical envelope sent as the request body.
// One trigger builds a single envelope shared by every matching endpoint's
// delivery: same id, same timestamp.
type WebhookPayload struct {
	ID          uuid.UUID    `json:"id"`
	Event       WebhookEvent `json:"event"`
	Timestamp   time.Time    `json:"timestamp"`
	Data        any          `json:"data"`
	Previous    any          `json:"previous,omitempty"`
	Scope       ScopeRef     `json:"scope"`
	TriggeredBy *Actor       `json:"triggered_by,omitempty"`
}

// DeliveryResponse captures the most recent HTTP attempt's result.
type DeliveryResponse struct {
	Status  int               `json:"status"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers"`
}

// WebhookDelivery is one attempted transmission of one payload to one
// endpoint. Payload holds the envelope's canonical JSON bytes, serialized
// exactly once at fan-out; the same bytes are signed and sent on every
// attempt so the signature can never drift from the body.
type WebhookDelivery struct {
	ID          uuid.UUID         `json:"id"`
	WebhookID   uuid.UUID         `json:"webhook_id"`
	Event       WebhookEvent      `json:"event"`
	Payload     []byte            `json:"payload"`
	Status      DeliveryStatus    `json:"status"`
	Attempts    int               `json:"attempts"`
	NextRetryAt *time.Time        `json:"next_retry_at,omitempty"`
	Response    *DeliveryResponse `json:"response,omitempty"`
	Error       *string           `json:"error,omitempty"`
	DeliveredAt *time.Time        `json:"delivered_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
