package postgres

import (
	"context"
	"testing"
	"time"

	"pitchbook/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEndpoint(scopeID uuid.UUID) *domain.WebhookEndpoint {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.WebhookEndpoint{
		ID:      uuid.New(),
		ScopeID: scopeID,
		Name:    "Roster sync",
		URL:     "https://hooks.example.com/pitchbook",
		Events: []domain.WebhookEvent{
			domain.EventReservationCreated,
			domain.EventReservationCancelled,
		},
		IsActive:      true,
		Secret:        "8f2a9c1d3e5b7a0f8f2a9c1d3e5b7a0f8f2a9c1d3e5b7a0f8f2a9c1d3e5b7a0f",
		Headers:       map[string]string{"X-Env": "staging"},
		TimeoutMS:     domain.DefaultTimeoutMS,
		RetryAttempts: domain.DefaultRetryAttempts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func endpointCols() []string {
	return []string{"id", "scope_id", "name", "url", "events", "is_active", "secret",
		"headers", "timeout_ms", "retry_attempts", "created_at", "updated_at"}
}

func endpointRow(t *testing.T, ep *domain.WebhookEndpoint) *pgxmock.Rows {
	t.Helper()
	headers, err := marshalHeaders(ep.Headers)
	require.NoError(t, err)
	return pgxmock.NewRows(endpointCols()).AddRow(
		ep.ID, ep.ScopeID, ep.Name, ep.URL, eventStrings(ep.Events), ep.IsActive,
		ep.Secret, headers, ep.TimeoutMS, ep.RetryAttempts, ep.CreatedAt, ep.UpdatedAt,
	)
}

func TestEndpointRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	ep := newTestEndpoint(uuid.New())
	headers, err := marshalHeaders(ep.Headers)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO webhook_endpoints").
		WithArgs(
			ep.ID, ep.ScopeID, ep.Name, ep.URL, eventStrings(ep.Events), ep.IsActive,
			ep.Secret, headers, ep.TimeoutMS, ep.RetryAttempts, ep.CreatedAt, ep.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), ep)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	ep := newTestEndpoint(uuid.New())

	mock.ExpectExec("UPDATE webhook_endpoints").
		WithArgs(
			ep.Name, ep.URL, eventStrings(ep.Events), ep.IsActive, pgxmock.AnyArg(),
			ep.TimeoutMS, ep.RetryAttempts, ep.UpdatedAt, ep.ID, ep.ScopeID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), ep)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	id, scopeID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM webhook_endpoints").
		WithArgs(id, scopeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	found, err := repo.Delete(context.Background(), id, scopeID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	id, scopeID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM webhook_endpoints").
		WithArgs(id, scopeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	found, err := repo.Delete(context.Background(), id, scopeID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	ep := newTestEndpoint(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM webhook_endpoints WHERE id = \\$1 AND scope_id").
		WithArgs(ep.ID, ep.ScopeID).
		WillReturnRows(endpointRow(t, ep))

	result, err := repo.GetByID(context.Background(), ep.ID, ep.ScopeID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, ep.ID, result.ID)
	assert.Equal(t, ep.URL, result.URL)
	assert.Equal(t, ep.Events, result.Events)
	assert.Equal(t, ep.Headers, result.Headers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	id, scopeID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT .+ FROM webhook_endpoints WHERE id = \\$1 AND scope_id").
		WithArgs(id, scopeID).
		WillReturnRows(pgxmock.NewRows(endpointCols()))

	result, err := repo.GetByID(context.Background(), id, scopeID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_ListSubscribed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	scopeID := uuid.New()
	ep := newTestEndpoint(scopeID)

	mock.ExpectQuery("SELECT .+ FROM webhook_endpoints").
		WithArgs(scopeID, string(domain.EventReservationCreated)).
		WillReturnRows(endpointRow(t, ep))

	results, err := repo.ListSubscribed(context.Background(), scopeID, domain.EventReservationCreated)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ep.ID, results[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndpointRepo_ListByScope_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEndpointRepo(mock)
	scopeID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM webhook_endpoints").
		WithArgs(scopeID).
		WillReturnRows(pgxmock.NewRows(endpointCols()))

	results, err := repo.ListByScope(context.Background(), scopeID)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}
