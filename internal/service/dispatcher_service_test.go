package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherDeps struct {
	endpoints  *mocks.MockEndpointRepository
	deliveries *mocks.MockDeliveryRepository
	scopes     *mocks.MockScopeRepository
	scopeCache *mocks.MockScopeNameCache
	processor  *mocks.MockProcessorService
}

func newTestDispatcher(t *testing.T) (*dispatcherService, dispatcherDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := dispatcherDeps{
		endpoints:  mocks.NewMockEndpointRepository(ctrl),
		deliveries: mocks.NewMockDeliveryRepository(ctrl),
		scopes:     mocks.NewMockScopeRepository(ctrl),
		scopeCache: mocks.NewMockScopeNameCache(ctrl),
		processor:  mocks.NewMockProcessorService(ctrl),
	}
	svc := NewDispatcherService(
		deps.endpoints,
		deps.deliveries,
		deps.scopes,
		deps.scopeCache,
		deps.processor,
		&fakeClock{now: fixedTime},
		newTestLogger(),
	).(*dispatcherService)
	return svc, deps
}

func subscriber(scopeID uuid.UUID, events ...domain.WebhookEvent) domain.WebhookEndpoint {
	return domain.WebhookEndpoint{
		ID:       uuid.New(),
		ScopeID:  scopeID,
		Name:     "sub",
		URL:      "https://sub.example.com/hook",
		Events:   events,
		IsActive: true,
	}
}

func TestDispatcher_Trigger_NoSubscribers(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventReservationCancelled).
		Return(nil, nil)
	// No scope lookup, no rows, no kick.

	err := svc.Trigger(context.Background(), scopeID, domain.EventReservationCancelled,
		map[string]any{"reservation_id": "r-9"}, nil, nil)
	assert.NoError(t, err)
}

func TestDispatcher_Trigger_FanOutSharesEnvelope(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()
	ep1 := subscriber(scopeID, domain.EventPaymentProcessed)
	ep2 := subscriber(scopeID, domain.EventPaymentProcessed)

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventPaymentProcessed).
		Return([]domain.WebhookEndpoint{ep1, ep2}, nil)
	deps.scopeCache.EXPECT().Get(gomock.Any(), scopeID).Return("", nil)
	deps.scopes.EXPECT().GetName(gomock.Any(), scopeID).Return("Sunday League", nil)
	deps.scopeCache.EXPECT().Set(gomock.Any(), scopeID, "Sunday League", scopeNameTTL).Return(nil)

	var batch []*domain.WebhookDelivery
	deps.deliveries.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ds []*domain.WebhookDelivery) error {
			batch = ds
			return nil
		})
	deps.processor.EXPECT().Kick()

	err := svc.Trigger(context.Background(), scopeID, domain.EventPaymentProcessed,
		map[string]any{"payment_id": "p-1", "amount": 125.50}, nil,
		&domain.Actor{ID: uuid.New(), Name: "Alex", Type: domain.ActorTypeUser})
	require.NoError(t, err)

	require.Len(t, batch, 2)
	assert.Equal(t, ep1.ID, batch[0].WebhookID)
	assert.Equal(t, ep2.ID, batch[1].WebhookID)

	for _, d := range batch {
		assert.Equal(t, domain.DeliveryStatusPending, d.Status)
		assert.Zero(t, d.Attempts)
		assert.Nil(t, d.NextRetryAt)
		assert.Equal(t, domain.EventPaymentProcessed, d.Event)
	}

	// Both deliveries carry the identical envelope bytes: one payload id,
	// one timestamp.
	assert.Equal(t, batch[0].Payload, batch[1].Payload)

	var envelope domain.WebhookPayload
	require.NoError(t, json.Unmarshal(batch[0].Payload, &envelope))
	assert.NotEqual(t, uuid.Nil, envelope.ID)
	assert.Equal(t, fixedTime, envelope.Timestamp)
	assert.Equal(t, "Sunday League", envelope.Scope.Name)
	assert.Equal(t, scopeID, envelope.Scope.ID)
	require.NotNil(t, envelope.TriggeredBy)
	assert.Equal(t, domain.ActorTypeUser, envelope.TriggeredBy.Type)
}

func TestDispatcher_Trigger_ScopeNameFromCache(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()
	ep := subscriber(scopeID, domain.EventTeamUpdated)

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventTeamUpdated).
		Return([]domain.WebhookEndpoint{ep}, nil)
	deps.scopeCache.EXPECT().Get(gomock.Any(), scopeID).Return("Cached League", nil)
	// Cache hit: no store lookup, no cache write.

	var batch []*domain.WebhookDelivery
	deps.deliveries.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ds []*domain.WebhookDelivery) error {
			batch = ds
			return nil
		})
	deps.processor.EXPECT().Kick()

	err := svc.Trigger(context.Background(), scopeID, domain.EventTeamUpdated,
		map[string]any{"team_id": "t-1"},
		map[string]any{"name": "Old FC"}, nil)
	require.NoError(t, err)

	var envelope domain.WebhookPayload
	require.NoError(t, json.Unmarshal(batch[0].Payload, &envelope))
	assert.Equal(t, "Cached League", envelope.Scope.Name)
	assert.NotNil(t, envelope.Previous)
}

func TestDispatcher_Trigger_ScopeLookupFailureFallsBack(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()
	ep := subscriber(scopeID, domain.EventSyncFailed)

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventSyncFailed).
		Return([]domain.WebhookEndpoint{ep}, nil)
	deps.scopeCache.EXPECT().Get(gomock.Any(), scopeID).Return("", errors.New("redis down"))
	deps.scopes.EXPECT().GetName(gomock.Any(), scopeID).Return("", errors.New("db down"))

	var batch []*domain.WebhookDelivery
	deps.deliveries.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ds []*domain.WebhookDelivery) error {
			batch = ds
			return nil
		})
	deps.processor.EXPECT().Kick()

	// Missing metadata must not block delivery creation.
	err := svc.Trigger(context.Background(), scopeID, domain.EventSyncFailed,
		map[string]any{"error": "provider unavailable"}, nil, nil)
	require.NoError(t, err)

	var envelope domain.WebhookPayload
	require.NoError(t, json.Unmarshal(batch[0].Payload, &envelope))
	assert.Equal(t, "Unknown", envelope.Scope.Name)
	assert.Equal(t, scopeID, envelope.Scope.ID)
}

func TestDispatcher_Trigger_StoreErrorPropagates(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()
	ep := subscriber(scopeID, domain.EventUserCreated)

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventUserCreated).
		Return([]domain.WebhookEndpoint{ep}, nil)
	deps.scopeCache.EXPECT().Get(gomock.Any(), scopeID).Return("League", nil)
	deps.deliveries.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	// No kick when enqueue fails.

	err := svc.Trigger(context.Background(), scopeID, domain.EventUserCreated,
		map[string]any{"user_id": "u-1"}, nil, nil)
	assert.Error(t, err)
}

func TestDispatcher_Trigger_ListError(t *testing.T) {
	svc, deps := newTestDispatcher(t)
	scopeID := uuid.New()

	deps.endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventFieldDeleted).
		Return(nil, errors.New("query failed"))

	err := svc.Trigger(context.Background(), scopeID, domain.EventFieldDeleted, nil, nil, nil)
	assert.Error(t, err)
}

func TestDispatcher_Trigger_NilCacheIsSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	endpoints := mocks.NewMockEndpointRepository(ctrl)
	deliveries := mocks.NewMockDeliveryRepository(ctrl)
	scopes := mocks.NewMockScopeRepository(ctrl)
	processor := mocks.NewMockProcessorService(ctrl)

	svc := NewDispatcherService(endpoints, deliveries, scopes, nil, processor,
		&fakeClock{now: fixedTime}, newTestLogger())

	scopeID := uuid.New()
	ep := subscriber(scopeID, domain.EventFieldCreated)

	endpoints.EXPECT().
		ListSubscribed(gomock.Any(), scopeID, domain.EventFieldCreated).
		Return([]domain.WebhookEndpoint{ep}, nil)
	scopes.EXPECT().GetName(gomock.Any(), scopeID).Return("League", nil)
	deliveries.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	processor.EXPECT().Kick()

	err := svc.Trigger(context.Background(), scopeID, domain.EventFieldCreated,
		map[string]any{"field_id": "f-1"}, nil, nil)
	assert.NoError(t, err)
}
