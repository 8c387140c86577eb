package domain

import (
	"time"

	"github.com/google/uuid"
)

// Endpoint configuration bounds. Timeout is in milliseconds.
const (
	MinTimeoutMS     = 1000
	MaxTimeoutMS     = 30000
	DefaultTimeoutMS = 10000

	MinRetryAttempts     = 0
	MaxRetryAttempts     = 5
	DefaultRetryAttempts = 3
)

// WebhookEndpoint is a subscriber registration: a callback URL plus its
// delivery policy, owned by a single scope (league).
type WebhookEndpoint struct {
	ID            uuid.UUID         `json:"id"`
	ScopeID       uuid.UUID         `json:"scope_id"`
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	Events        []WebhookEvent    `json:"events"`
	IsActive      bool              `json:"is_active"`
	Secret        string            `json:"-"` // hex, exposed only via explicit reveal
	Headers       map[string]string `json:"headers,omitempty"`
	TimeoutMS     int               `json:"timeout_ms"`
	RetryAttempts int               `json:"retry_attempts"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// SubscribedTo reports whether the endpoint subscribes to event.
func (e *WebhookEndpoint) SubscribedTo(event WebhookEvent) bool {
	for _, sub := range e.Events {
		if sub == event {
			return true
		}
	}
	return false
}

// Timeout returns the per-request deadline as a duration.
func (e *WebhookEndpoint) Timeout() time.Duration {
	return time.Duration(e.TimeoutMS) * time.Millisecond
}
