package ports

import (
	"context"
	"time"

	"pitchbook/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing and verification of payload
// bytes. Sign operates on the exact bytes sent on the wire.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// Clock abstracts time.Now so backoff scheduling is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// EndpointInput holds validated input for endpoint registration.
type EndpointInput struct {
	Name          string
	URL           string
	Events        []domain.WebhookEvent
	Headers       map[string]string
	TimeoutMS     *int
	RetryAttempts *int
}

// EndpointPatch holds a partial update; nil fields are left unchanged.
type EndpointPatch struct {
	Name          *string
	URL           *string
	Events        []domain.WebhookEvent
	Headers       map[string]string
	TimeoutMS     *int
	RetryAttempts *int
	IsActive      *bool
}

// EndpointService defines scoped CRUD for webhook endpoints.
type EndpointService interface {
	Create(ctx context.Context, scopeID uuid.UUID, input EndpointInput) (*domain.WebhookEndpoint, error)
	Update(ctx context.Context, id, scopeID uuid.UUID, patch EndpointPatch) (*domain.WebhookEndpoint, error)
	Delete(ctx context.Context, id, scopeID uuid.UUID) error
	Get(ctx context.Context, id, scopeID uuid.UUID) (*domain.WebhookEndpoint, error)
	List(ctx context.Context, scopeID uuid.UUID) ([]domain.WebhookEndpoint, error)
	// RevealSecret is the single deliberate accessor for the raw signing
	// secret; everything else redacts it.
	RevealSecret(ctx context.Context, id, scopeID uuid.UUID) (string, error)
}

// DispatcherService fans a domain event out to subscribed endpoints.
type DispatcherService interface {
	// Trigger creates one pending delivery per active subscribed endpoint
	// and nudges the processor. previous and triggeredBy may be nil.
	Trigger(ctx context.Context, scopeID uuid.UUID, event domain.WebhookEvent, data, previous any, triggeredBy *domain.Actor) error
}

// ProcessorService drains due deliveries.
type ProcessorService interface {
	// ProcessDue claims and dispatches one batch of due deliveries.
	ProcessDue(ctx context.Context)
	// Kick requests an immediate pass without blocking the caller.
	Kick()
	// Run polls until ctx is cancelled.
	Run(ctx context.Context)
}

// DeliveryService is the operational surface over delivery history.
type DeliveryService interface {
	List(ctx context.Context, params DeliveryListParams) ([]domain.WebhookDelivery, int64, error)
	// Retry resets a delivery for immediate re-dispatch. Attempts are kept.
	Retry(ctx context.Context, deliveryID uuid.UUID) error
}
