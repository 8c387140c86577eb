package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ScopeRepo implements ports.ScopeRepository backed by the scopes table.
type ScopeRepo struct {
	pool Pool
}

// NewScopeRepo creates a new ScopeRepo.
func NewScopeRepo(pool Pool) *ScopeRepo {
	return &ScopeRepo{pool: pool}
}

// GetName returns the display name of a scope, or "" when the scope is unknown.
func (r *ScopeRepo) GetName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM scopes WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get scope name: %w", err)
	}
	return name, nil
}
