package ports

import (
	"context"
	"time"

	"pitchbook/internal/core/domain"

	"github.com/google/uuid"
)

// EndpointRepository defines persistence operations for webhook endpoints.
// Scoped lookups treat an id owned by another scope as not found; existence
// must never leak across tenants.
type EndpointRepository interface {
	Create(ctx context.Context, ep *domain.WebhookEndpoint) error
	Update(ctx context.Context, ep *domain.WebhookEndpoint) error
	// Delete reports whether a row was removed. Historical deliveries keep
	// referencing the endpoint id.
	Delete(ctx context.Context, id, scopeID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id, scopeID uuid.UUID) (*domain.WebhookEndpoint, error)
	// GetUnscoped fetches an endpoint regardless of scope. Used by the
	// delivery processor, which holds only the endpoint id from the
	// delivery row.
	GetUnscoped(ctx context.Context, id uuid.UUID) (*domain.WebhookEndpoint, error)
	ListByScope(ctx context.Context, scopeID uuid.UUID) ([]domain.WebhookEndpoint, error)
	// ListSubscribed returns active endpoints of scopeID subscribed to event.
	ListSubscribed(ctx context.Context, scopeID uuid.UUID, event domain.WebhookEvent) ([]domain.WebhookEndpoint, error)
}

// DeliveryListParams holds filter + pagination for the delivery history.
type DeliveryListParams struct {
	WebhookID uuid.UUID
	Status    *domain.DeliveryStatus
	Event     *domain.WebhookEvent
	Limit     int
	Offset    int
}

// DeliveryRepository defines persistence for webhook deliveries. The
// pending/retrying rows double as the work queue; ClaimDue and the Mark*
// methods are the atomic operations the processor's state machine relies on.
type DeliveryRepository interface {
	CreateBatch(ctx context.Context, deliveries []*domain.WebhookDelivery) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error)
	// ClaimDue atomically selects up to limit due deliveries (pending or
	// retrying with next_retry_at null or <= now) and pushes their
	// next_retry_at to leaseUntil so an overlapping pass skips them.
	ClaimDue(ctx context.Context, limit int, now, leaseUntil time.Time) ([]domain.WebhookDelivery, error)
	// MarkDelivered transitions to delivered. Returns false if the row was
	// already terminal (conditional write; a concurrent pass won).
	MarkDelivered(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, deliveredAt time.Time) (bool, error)
	// MarkRetrying records a failed attempt and schedules the next one.
	MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, nextRetryAt time.Time, resp *domain.DeliveryResponse, errMsg string) (bool, error)
	// MarkFailed transitions to the terminal failed state.
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, errMsg string) (bool, error)
	// ResetForRetry is the manual-retry override: back to pending, clears
	// next_retry_at and error, keeps attempts. Returns false if not found.
	ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, params DeliveryListParams) ([]domain.WebhookDelivery, int64, error)
}

// ScopeRepository resolves display metadata for a scope (league). Returns
// "" when the scope is unknown; callers fall back to a placeholder name.
type ScopeRepository interface {
	GetName(ctx context.Context, id uuid.UUID) (string, error)
}

// ScopeNameCache is the Redis-layer cache in front of ScopeRepository.
type ScopeNameCache interface {
	Get(ctx context.Context, id uuid.UUID) (string, error) // "" on miss
	Set(ctx context.Context, id uuid.UUID, name string, ttl time.Duration) error
}
