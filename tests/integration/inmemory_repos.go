package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Endpoint Repo ---

type inMemoryEndpointRepo struct {
	mu        sync.RWMutex
	endpoints map[uuid.UUID]*domain.WebhookEndpoint
}

func newInMemoryEndpointRepo() *inMemoryEndpointRepo {
	return &inMemoryEndpointRepo{endpoints: make(map[uuid.UUID]*domain.WebhookEndpoint)}
}

func (r *inMemoryEndpointRepo) Create(ctx context.Context, ep *domain.WebhookEndpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ep
	r.endpoints[ep.ID] = &cp
	return nil
}

func (r *inMemoryEndpointRepo) Update(ctx context.Context, ep *domain.WebhookEndpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.endpoints[ep.ID]
	if !ok || existing.ScopeID != ep.ScopeID {
		return nil
	}
	cp := *ep
	r.endpoints[ep.ID] = &cp
	return nil
}

func (r *inMemoryEndpointRepo) Delete(ctx context.Context, id, scopeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ep, ok := r.endpoints[id]
	if !ok || ep.ScopeID != scopeID {
		return false, nil
	}
	delete(r.endpoints, id)
	return true, nil
}

func (r *inMemoryEndpointRepo) GetByID(ctx context.Context, id, scopeID uuid.UUID) (*domain.WebhookEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ep, ok := r.endpoints[id]
	if !ok || ep.ScopeID != scopeID {
		return nil, nil
	}
	cp := *ep
	return &cp, nil
}

func (r *inMemoryEndpointRepo) GetUnscoped(ctx context.Context, id uuid.UUID) (*domain.WebhookEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ep, ok := r.endpoints[id]
	if !ok {
		return nil, nil
	}
	cp := *ep
	return &cp, nil
}

func (r *inMemoryEndpointRepo) ListByScope(ctx context.Context, scopeID uuid.UUID) ([]domain.WebhookEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WebhookEndpoint
	for _, ep := range r.endpoints {
		if ep.ScopeID == scopeID {
			out = append(out, *ep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryEndpointRepo) ListSubscribed(ctx context.Context, scopeID uuid.UUID, event domain.WebhookEvent) ([]domain.WebhookEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WebhookEndpoint
	for _, ep := range r.endpoints {
		if ep.ScopeID == scopeID && ep.IsActive && ep.SubscribedTo(event) {
			out = append(out, *ep)
		}
	}
	return out, nil
}

// --- In-Memory Delivery Repo ---

type inMemoryDeliveryRepo struct {
	mu         sync.Mutex
	deliveries map[uuid.UUID]*domain.WebhookDelivery
}

func newInMemoryDeliveryRepo() *inMemoryDeliveryRepo {
	return &inMemoryDeliveryRepo{deliveries: make(map[uuid.UUID]*domain.WebhookDelivery)}
}

func (r *inMemoryDeliveryRepo) CreateBatch(ctx context.Context, deliveries []*domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range deliveries {
		cp := *d
		r.deliveries[d.ID] = &cp
	}
	return nil
}

func (r *inMemoryDeliveryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deliveries[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *inMemoryDeliveryRepo) ClaimDue(ctx context.Context, limit int, now, leaseUntil time.Time) ([]domain.WebhookDelivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*domain.WebhookDelivery
	for _, d := range r.deliveries {
		if d.Status.Terminal() {
			continue
		}
		if d.NextRetryAt == nil || !d.NextRetryAt.After(now) {
			due = append(due, d)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].CreatedAt.Before(due[j].CreatedAt) })
	if len(due) > limit {
		due = due[:limit]
	}

	claimed := make([]domain.WebhookDelivery, 0, len(due))
	for _, d := range due {
		claimed = append(claimed, *d)
		lease := leaseUntil
		d.NextRetryAt = &lease
		d.UpdatedAt = now
	}
	return claimed, nil
}

func (r *inMemoryDeliveryRepo) MarkDelivered(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, deliveredAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deliveries[id]
	if !ok || d.Status.Terminal() {
		return false, nil
	}
	d.Status = domain.DeliveryStatusDelivered
	d.Attempts = attempts
	d.Response = resp
	d.Error = nil
	d.NextRetryAt = nil
	at := deliveredAt
	d.DeliveredAt = &at
	d.UpdatedAt = deliveredAt
	return true, nil
}

func (r *inMemoryDeliveryRepo) MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, nextRetryAt time.Time, resp *domain.DeliveryResponse, errMsg string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deliveries[id]
	if !ok || d.Status.Terminal() {
		return false, nil
	}
	d.Status = domain.DeliveryStatusRetrying
	d.Attempts = attempts
	at := nextRetryAt
	d.NextRetryAt = &at
	d.Response = resp
	d.Error = &errMsg
	return true, nil
}

func (r *inMemoryDeliveryRepo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, errMsg string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deliveries[id]
	if !ok || d.Status.Terminal() {
		return false, nil
	}
	d.Status = domain.DeliveryStatusFailed
	d.Attempts = attempts
	d.Response = resp
	d.Error = &errMsg
	d.NextRetryAt = nil
	return true, nil
}

func (r *inMemoryDeliveryRepo) ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deliveries[id]
	if !ok || d.Status == domain.DeliveryStatusDelivered {
		return false, nil
	}
	d.Status = domain.DeliveryStatusPending
	d.NextRetryAt = nil
	d.Error = nil
	return true, nil
}

func (r *inMemoryDeliveryRepo) List(ctx context.Context, params ports.DeliveryListParams) ([]domain.WebhookDelivery, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.WebhookDelivery
	for _, d := range r.deliveries {
		if d.WebhookID != params.WebhookID {
			continue
		}
		if params.Status != nil && d.Status != *params.Status {
			continue
		}
		if params.Event != nil && d.Event != *params.Event {
			continue
		}
		matched = append(matched, *d)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[params.Offset:]
	if params.Limit > 0 && len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}
	return matched, total, nil
}

// --- In-Memory Scope Repo ---

type inMemoryScopeRepo struct {
	mu    sync.RWMutex
	names map[uuid.UUID]string
}

func newInMemoryScopeRepo() *inMemoryScopeRepo {
	return &inMemoryScopeRepo{names: make(map[uuid.UUID]string)}
}

func (r *inMemoryScopeRepo) put(id uuid.UUID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[id] = name
}

func (r *inMemoryScopeRepo) GetName(ctx context.Context, id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names[id], nil
}
