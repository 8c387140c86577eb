package service

import (
	"context"
	"encoding/json"
	"time"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// scopeNameTTL bounds staleness of the cached scope display name.
const scopeNameTTL = 5 * time.Minute

// unknownScopeName is the fallback when scope metadata cannot be resolved.
// Missing metadata must not block delivery creation.
const unknownScopeName = "Unknown"

// dispatcherService implements ports.DispatcherService.
type dispatcherService struct {
	endpoints  ports.EndpointRepository
	deliveries ports.DeliveryRepository
	scopes     ports.ScopeRepository
	scopeCache ports.ScopeNameCache
	processor  ports.ProcessorService
	clock      ports.Clock
	log        zerolog.Logger
}

// NewDispatcherService creates the event fan-out service. scopeCache may be
// nil when no cache layer is configured.
func NewDispatcherService(
	endpoints ports.EndpointRepository,
	deliveries ports.DeliveryRepository,
	scopes ports.ScopeRepository,
	scopeCache ports.ScopeNameCache,
	processor ports.ProcessorService,
	clock ports.Clock,
	log zerolog.Logger,
) ports.DispatcherService {
	return &dispatcherService{
		endpoints:  endpoints,
		deliveries: deliveries,
		scopes:     scopes,
		scopeCache: scopeCache,
		processor:  processor,
		clock:      clock,
		log:        log,
	}
}

// Trigger resolves subscribed active endpoints and enqueues one pending
// delivery per match, all sharing a single envelope (same id and timestamp).
// No network I/O happens here; the processor picks the rows up.
func (s *dispatcherService) Trigger(ctx context.Context, scopeID uuid.UUID, event domain.WebhookEvent, data, previous any, triggeredBy *domain.Actor) error {
	endpoints, err := s.endpoints.ListSubscribed(ctx, scopeID, event)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if len(endpoints) == 0 {
		// Most domain events have zero subscribers.
		return nil
	}

	now := s.clock.Now()
	envelope := domain.WebhookPayload{
		ID:        uuid.New(),
		Event:     event,
		Timestamp: now,
		Data:      data,
		Previous:  previous,
		Scope: domain.ScopeRef{
			ID:   scopeID,
			Name: s.scopeName(ctx, scopeID),
		},
		TriggeredBy: triggeredBy,
	}

	// Serialize once; the delivery stores these exact bytes and the
	// processor signs and sends them verbatim.
	raw, err := json.Marshal(envelope)
	if err != nil {
		return apperror.InternalError(err)
	}

	batch := make([]*domain.WebhookDelivery, 0, len(endpoints))
	for _, ep := range endpoints {
		batch = append(batch, &domain.WebhookDelivery{
			ID:        uuid.New(),
			WebhookID: ep.ID,
			Event:     event,
			Payload:   raw,
			Status:    domain.DeliveryStatusPending,
			Attempts:  0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.deliveries.CreateBatch(ctx, batch); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.log.Debug().
		Str("event", string(event)).
		Str("scope_id", scopeID.String()).
		Str("payload_id", envelope.ID.String()).
		Int("deliveries", len(batch)).
		Msg("webhook deliveries enqueued")

	// Fire-and-forget: nudge the processor for an immediate pass.
	s.processor.Kick()

	return nil
}

// scopeName resolves the scope's display name best-effort: cache, then
// store, then placeholder. Lookup failures are logged, never surfaced.
func (s *dispatcherService) scopeName(ctx context.Context, scopeID uuid.UUID) string {
	if s.scopeCache != nil {
		if name, err := s.scopeCache.Get(ctx, scopeID); err != nil {
			s.log.Warn().Err(err).Str("scope_id", scopeID.String()).Msg("scope name cache lookup failed")
		} else if name != "" {
			return name
		}
	}

	name, err := s.scopes.GetName(ctx, scopeID)
	if err != nil {
		s.log.Warn().Err(err).Str("scope_id", scopeID.String()).Msg("scope name lookup failed")
		return unknownScopeName
	}
	if name == "" {
		return unknownScopeName
	}

	if s.scopeCache != nil {
		if err := s.scopeCache.Set(ctx, scopeID, name, scopeNameTTL); err != nil {
			s.log.Warn().Err(err).Str("scope_id", scopeID.String()).Msg("scope name cache write failed")
		}
	}
	return name
}
