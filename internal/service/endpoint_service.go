package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/url"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// secretBytes is the secret length before hex encoding: 256 bits.
const secretBytes = 32

// endpointService implements ports.EndpointService.
type endpointService struct {
	repo  ports.EndpointRepository
	clock ports.Clock
	log   zerolog.Logger
}

// NewEndpointService creates the endpoint CRUD service.
func NewEndpointService(repo ports.EndpointRepository, clock ports.Clock, log zerolog.Logger) ports.EndpointService {
	return &endpointService{repo: repo, clock: clock, log: log}
}

// Create validates the registration and stores a new endpoint with a fresh
// cryptographically-random secret. The secret is generated exactly once and
// never rotated automatically.
func (s *endpointService) Create(ctx context.Context, scopeID uuid.UUID, input ports.EndpointInput) (*domain.WebhookEndpoint, error) {
	if input.Name == "" {
		return nil, apperror.ErrMissingName()
	}
	if err := validateURL(input.URL); err != nil {
		return nil, err
	}
	if err := validateEvents(input.Events); err != nil {
		return nil, err
	}

	timeoutMS := domain.DefaultTimeoutMS
	if input.TimeoutMS != nil {
		timeoutMS = *input.TimeoutMS
	}
	if timeoutMS < domain.MinTimeoutMS || timeoutMS > domain.MaxTimeoutMS {
		return nil, apperror.ErrTimeoutOutOfRange()
	}

	retryAttempts := domain.DefaultRetryAttempts
	if input.RetryAttempts != nil {
		retryAttempts = *input.RetryAttempts
	}
	if retryAttempts < domain.MinRetryAttempts || retryAttempts > domain.MaxRetryAttempts {
		return nil, apperror.ErrRetryAttemptsOutOfRange()
	}

	secret, err := generateSecret()
	if err != nil {
		return nil, apperror.ErrSecretGeneration(err)
	}

	now := s.clock.Now()
	ep := &domain.WebhookEndpoint{
		ID:            uuid.New(),
		ScopeID:       scopeID,
		Name:          input.Name,
		URL:           input.URL,
		Events:        input.Events,
		IsActive:      true,
		Secret:        secret,
		Headers:       input.Headers,
		TimeoutMS:     timeoutMS,
		RetryAttempts: retryAttempts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, ep); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("endpoint_id", ep.ID.String()).
		Str("scope_id", scopeID.String()).
		Str("url", ep.URL).
		Int("events", len(ep.Events)).
		Msg("webhook endpoint registered")

	return ep, nil
}

// Update applies a partial update. Nil patch fields keep current values; the
// secret is never touched.
func (s *endpointService) Update(ctx context.Context, id, scopeID uuid.UUID, patch ports.EndpointPatch) (*domain.WebhookEndpoint, error) {
	ep, err := s.repo.GetByID(ctx, id, scopeID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if ep == nil {
		return nil, apperror.ErrEndpointNotFound()
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperror.ErrMissingName()
		}
		ep.Name = *patch.Name
	}
	if patch.URL != nil {
		if err := validateURL(*patch.URL); err != nil {
			return nil, err
		}
		ep.URL = *patch.URL
	}
	if patch.Events != nil {
		if err := validateEvents(patch.Events); err != nil {
			return nil, err
		}
		ep.Events = patch.Events
	}
	if patch.Headers != nil {
		ep.Headers = patch.Headers
	}
	if patch.TimeoutMS != nil {
		if *patch.TimeoutMS < domain.MinTimeoutMS || *patch.TimeoutMS > domain.MaxTimeoutMS {
			return nil, apperror.ErrTimeoutOutOfRange()
		}
		ep.TimeoutMS = *patch.TimeoutMS
	}
	if patch.RetryAttempts != nil {
		if *patch.RetryAttempts < domain.MinRetryAttempts || *patch.RetryAttempts > domain.MaxRetryAttempts {
			return nil, apperror.ErrRetryAttemptsOutOfRange()
		}
		ep.RetryAttempts = *patch.RetryAttempts
	}
	if patch.IsActive != nil {
		ep.IsActive = *patch.IsActive
	}
	ep.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, ep); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return ep, nil
}

// Delete removes the endpoint. Historical deliveries are retained and keep
// referencing the id; the processor treats the missing endpoint as a
// terminal failure.
func (s *endpointService) Delete(ctx context.Context, id, scopeID uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id, scopeID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !found {
		return apperror.ErrEndpointNotFound()
	}
	s.log.Info().Str("endpoint_id", id.String()).Msg("webhook endpoint deleted")
	return nil
}

func (s *endpointService) Get(ctx context.Context, id, scopeID uuid.UUID) (*domain.WebhookEndpoint, error) {
	ep, err := s.repo.GetByID(ctx, id, scopeID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if ep == nil {
		return nil, apperror.ErrEndpointNotFound()
	}
	return ep, nil
}

func (s *endpointService) List(ctx context.Context, scopeID uuid.UUID) ([]domain.WebhookEndpoint, error) {
	eps, err := s.repo.ListByScope(ctx, scopeID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return eps, nil
}

// RevealSecret returns the raw signing secret for the owning tenant's admin.
func (s *endpointService) RevealSecret(ctx context.Context, id, scopeID uuid.UUID) (string, error) {
	ep, err := s.repo.GetByID(ctx, id, scopeID)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if ep == nil {
		return "", apperror.ErrEndpointNotFound()
	}
	return ep.Secret, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.ErrInvalidURL()
	}
	return nil
}

func validateEvents(events []domain.WebhookEvent) error {
	if len(events) == 0 {
		return apperror.ErrNoEvents()
	}
	for _, e := range events {
		if !e.Valid() {
			return apperror.ErrUnknownEvent(string(e))
		}
	}
	return nil
}

func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
