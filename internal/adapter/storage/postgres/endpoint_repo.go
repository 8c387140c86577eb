package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pitchbook/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EndpointRepo implements ports.EndpointRepository.
type EndpointRepo struct {
	pool Pool
}

// NewEndpointRepo creates a new EndpointRepo.
func NewEndpointRepo(pool Pool) *EndpointRepo {
	return &EndpointRepo{pool: pool}
}

const endpointColumns = `id, scope_id, name, url, events, is_active, secret, headers, timeout_ms, retry_attempts, created_at, updated_at`

// Create inserts a new webhook endpoint.
func (r *EndpointRepo) Create(ctx context.Context, ep *domain.WebhookEndpoint) error {
	headers, err := marshalHeaders(ep.Headers)
	if err != nil {
		return err
	}

	query := `INSERT INTO webhook_endpoints (` + endpointColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.pool.Exec(ctx, query,
		ep.ID, ep.ScopeID, ep.Name, ep.URL, eventStrings(ep.Events), ep.IsActive,
		ep.Secret, headers, ep.TimeoutMS, ep.RetryAttempts, ep.CreatedAt, ep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook endpoint: %w", err)
	}
	return nil
}

// Update persists changes to an existing endpoint, scoped to its owner.
func (r *EndpointRepo) Update(ctx context.Context, ep *domain.WebhookEndpoint) error {
	headers, err := marshalHeaders(ep.Headers)
	if err != nil {
		return err
	}

	query := `UPDATE webhook_endpoints
		SET name = $1, url = $2, events = $3, is_active = $4, headers = $5,
			timeout_ms = $6, retry_attempts = $7, updated_at = $8
		WHERE id = $9 AND scope_id = $10`

	tag, err := r.pool.Exec(ctx, query,
		ep.Name, ep.URL, eventStrings(ep.Events), ep.IsActive, headers,
		ep.TimeoutMS, ep.RetryAttempts, ep.UpdatedAt, ep.ID, ep.ScopeID,
	)
	if err != nil {
		return fmt.Errorf("update webhook endpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook endpoint not found: %s", ep.ID)
	}
	return nil
}

// Delete removes an endpoint within its scope. Returns false when no row matched.
func (r *EndpointRepo) Delete(ctx context.Context, id, scopeID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM webhook_endpoints WHERE id = $1 AND scope_id = $2`, id, scopeID)
	if err != nil {
		return false, fmt.Errorf("delete webhook endpoint: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID fetches an endpoint by ID within a scope. Returns nil when not found.
func (r *EndpointRepo) GetByID(ctx context.Context, id, scopeID uuid.UUID) (*domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints WHERE id = $1 AND scope_id = $2`
	return scanEndpoint(r.pool.QueryRow(ctx, query, id, scopeID))
}

// GetUnscoped fetches an endpoint by ID alone. Used by the delivery processor,
// which holds no scope context.
func (r *EndpointRepo) GetUnscoped(ctx context.Context, id uuid.UUID) (*domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints WHERE id = $1`
	return scanEndpoint(r.pool.QueryRow(ctx, query, id))
}

// ListByScope returns all endpoints registered for a scope, newest first.
func (r *EndpointRepo) ListByScope(ctx context.Context, scopeID uuid.UUID) ([]domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints
		WHERE scope_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list webhook endpoints: %w", err)
	}
	defer rows.Close()
	return collectEndpoints(rows)
}

// ListSubscribed returns the active endpoints in a scope subscribed to an event.
func (r *EndpointRepo) ListSubscribed(ctx context.Context, scopeID uuid.UUID, event domain.WebhookEvent) ([]domain.WebhookEndpoint, error) {
	query := `SELECT ` + endpointColumns + ` FROM webhook_endpoints
		WHERE scope_id = $1 AND is_active = true AND $2 = ANY(events)`

	rows, err := r.pool.Query(ctx, query, scopeID, string(event))
	if err != nil {
		return nil, fmt.Errorf("list subscribed endpoints: %w", err)
	}
	defer rows.Close()
	return collectEndpoints(rows)
}

func collectEndpoints(rows pgx.Rows) ([]domain.WebhookEndpoint, error) {
	var eps []domain.WebhookEndpoint
	for rows.Next() {
		ep, err := scanEndpointRow(rows)
		if err != nil {
			return nil, err
		}
		eps = append(eps, *ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate endpoint rows: %w", err)
	}
	return eps, nil
}

func scanEndpoint(row pgx.Row) (*domain.WebhookEndpoint, error) {
	ep, err := scanEndpointRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return ep, err
}

func scanEndpointRow(row pgx.Row) (*domain.WebhookEndpoint, error) {
	var (
		ep          domain.WebhookEndpoint
		events      []string
		headersJSON []byte
	)
	err := row.Scan(
		&ep.ID, &ep.ScopeID, &ep.Name, &ep.URL, &events, &ep.IsActive,
		&ep.Secret, &headersJSON, &ep.TimeoutMS, &ep.RetryAttempts,
		&ep.CreatedAt, &ep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan endpoint row: %w", err)
	}

	ep.Events = make([]domain.WebhookEvent, len(events))
	for i, e := range events {
		ep.Events[i] = domain.WebhookEvent(e)
	}
	if len(headersJSON) > 0 {
		if err := json.Unmarshal(headersJSON, &ep.Headers); err != nil {
			return nil, fmt.Errorf("decode endpoint headers: %w", err)
		}
	}
	return &ep, nil
}

func eventStrings(events []domain.WebhookEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = string(e)
	}
	return out
}

func marshalHeaders(headers map[string]string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(headers)
	if err != nil {
		return nil, fmt.Errorf("encode endpoint headers: %w", err)
	}
	return b, nil
}
