package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pitchbook/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One processing pass dispatches the whole claimed batch concurrently; a
// slow or failing subscriber must not hold up its siblings.
func TestProcessDue_ConcurrentFanOut(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()
	scopeID := uuid.New()

	const endpoints = 20
	sub := newSubscriber(t, http.StatusOK)

	ids := make([]uuid.UUID, 0, endpoints)
	for i := 0; i < endpoints; i++ {
		ep := registerEndpoint(t, st, scopeID, sub.server.URL, 3)
		ids = append(ids, ep.ID)
	}

	require.NoError(t, st.dispatcher.Trigger(ctx, scopeID, domain.EventReservationCreated,
		map[string]any{"reservation_id": "res-burst"}, nil, nil))

	st.processor.ProcessDue(ctx)

	assert.Equal(t, endpoints, sub.calls())
	for _, id := range ids {
		d := singleDelivery(t, st, id)
		assert.Equal(t, domain.DeliveryStatusDelivered, d.Status)
		assert.Equal(t, 1, d.Attempts)
	}
}

// A second pass started while rows are leased claims nothing.
func TestClaimDue_LeaseBlocksOverlappingPass(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()
	scopeID := uuid.New()
	sub := newSubscriber(t, http.StatusOK)

	registerEndpoint(t, st, scopeID, sub.server.URL, 3)
	require.NoError(t, st.dispatcher.Trigger(ctx, scopeID, domain.EventReservationCreated,
		map[string]any{"reservation_id": "res-lease"}, nil, nil))

	now := st.clock.Now()
	first, err := st.deliveries.ClaimDue(ctx, 50, now, now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := st.deliveries.ClaimDue(ctx, 50, now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, second, "leased rows must be invisible to overlapping claimers")

	// Once the lease expires without a terminal transition the row is
	// claimable again (crash recovery).
	later := now.Add(2 * time.Minute)
	third, err := st.deliveries.ClaimDue(ctx, 50, later, later.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Equal(t, first[0].ID, third[0].ID)
}
