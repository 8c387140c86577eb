package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	// errInactiveEndpoint is the terminal error for missing or disabled
	// endpoints; it short-circuits retries entirely.
	errInactiveEndpoint = "Webhook endpoint is inactive"
	// errTimeout is recorded when the per-request deadline expires.
	errTimeout = "Request timeout"

	backoffBase = time.Second
	backoffCap  = 5 * time.Minute

	// maxResponseBody caps how much of the subscriber's response is kept
	// on the delivery row.
	maxResponseBody = 64 << 10
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProcessorConfig tunes the delivery processor.
type ProcessorConfig struct {
	BatchSize    int
	PollInterval time.Duration
	ClaimLease   time.Duration
	UserAgent    string
}

func (c ProcessorConfig) withDefaults() ProcessorConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.ClaimLease <= 0 {
		c.ClaimLease = time.Minute
	}
	if c.UserAgent == "" {
		c.UserAgent = "PitchBook-Webhooks/1.0"
	}
	return c
}

// processorService implements ports.ProcessorService: the delivery state
// machine. The pending/retrying rows in the delivery store are the work
// queue; each pass claims a batch and dispatches it concurrently.
type processorService struct {
	endpoints  ports.EndpointRepository
	deliveries ports.DeliveryRepository
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	clock      ports.Clock
	cfg        ProcessorConfig
	log        zerolog.Logger
	kick       chan struct{}
}

// NewDeliveryProcessor creates the delivery processor.
func NewDeliveryProcessor(
	endpoints ports.EndpointRepository,
	deliveries ports.DeliveryRepository,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	clock ports.Clock,
	cfg ProcessorConfig,
	log zerolog.Logger,
) ports.ProcessorService {
	return &processorService{
		endpoints:  endpoints,
		deliveries: deliveries,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		clock:      clock,
		cfg:        cfg.withDefaults(),
		log:        log,
		kick:       make(chan struct{}, 1),
	}
}

// Kick requests an immediate processing pass. Never blocks; if a pass is
// already requested the kick coalesces into it.
func (s *processorService) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Run polls for due deliveries until ctx is cancelled. A kick wakes the
// loop early, so deliveries enqueued by Trigger are usually dispatched
// without waiting for the next tick.
func (s *processorService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	s.log.Info().
		Dur("poll_interval", s.cfg.PollInterval).
		Int("batch_size", s.cfg.BatchSize).
		Msg("delivery processor started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("delivery processor stopped")
			return
		case <-ticker.C:
		case <-s.kick:
		}
		s.ProcessDue(ctx)
	}
}

// ProcessDue claims one batch of due deliveries and dispatches them
// concurrently. Individual failures are isolated: no dispatch error, panic
// or timeout may abort the batch or escape this method.
func (s *processorService) ProcessDue(ctx context.Context) {
	now := s.clock.Now()
	batch, err := s.deliveries.ClaimDue(ctx, s.cfg.BatchSize, now, now.Add(s.cfg.ClaimLease))
	if err != nil {
		s.log.Error().Err(err).Msg("webhook: claiming due deliveries failed")
		return
	}
	if len(batch) == 0 {
		return
	}

	var wg sync.WaitGroup
	for i := range batch {
		wg.Add(1)
		go func(d domain.WebhookDelivery) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.log.Error().
						Str("delivery_id", d.ID.String()).
						Interface("panic", r).
						Msg("webhook: dispatch panicked")
				}
			}()
			s.dispatch(ctx, &d)
		}(batch[i])
	}
	wg.Wait()
}

// dispatch performs one signed HTTP attempt for one claimed delivery and
// applies the resulting state transition.
func (s *processorService) dispatch(ctx context.Context, d *domain.WebhookDelivery) {
	ep, err := s.endpoints.GetUnscoped(ctx, d.WebhookID)
	if err != nil {
		// Leave the row claimed; it becomes due again when the lease expires.
		s.log.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: endpoint lookup failed")
		return
	}
	if ep == nil || !ep.IsActive {
		// Deleted or disabled endpoint: terminal, no HTTP call, no retry.
		if _, err := s.deliveries.MarkFailed(ctx, d.ID, d.Attempts, nil, errInactiveEndpoint); err != nil {
			s.log.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: marking delivery failed errored")
		}
		s.log.Warn().
			Str("delivery_id", d.ID.String()).
			Str("webhook_id", d.WebhookID.String()).
			Msg("webhook: endpoint missing or inactive, delivery failed")
		return
	}

	signature := s.sigSvc.Sign(ep.Secret, d.Payload)

	attemptCtx, cancel := context.WithTimeout(ctx, ep.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, ep.URL, bytes.NewReader(d.Payload))
	if err != nil {
		s.recordFailure(ctx, d, ep, nil, fmt.Sprintf("building request: %v", err))
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("X-Webhook-Signature", signature)
	req.Header.Set("X-Webhook-Event", string(d.Event))
	req.Header.Set("X-Webhook-ID", d.ID.String())
	req.Header.Set("X-Webhook-Timestamp", d.CreatedAt.UTC().Format(time.RFC3339))
	// Endpoint-configured static headers never override protocol headers.
	for k, v := range ep.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		msg := fmt.Sprintf("request failed: %v", err)
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() == context.DeadlineExceeded {
			msg = errTimeout
		}
		s.recordFailure(ctx, d, ep, nil, msg)
		return
	}
	defer resp.Body.Close()

	record := &domain.DeliveryResponse{
		Status:  resp.StatusCode,
		Body:    readBody(resp.Body),
		Headers: flattenHeaders(resp.Header),
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		attempts := d.Attempts + 1
		applied, err := s.deliveries.MarkDelivered(ctx, d.ID, attempts, record, s.clock.Now())
		if err != nil {
			s.log.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: marking delivery delivered errored")
			return
		}
		if !applied {
			// A concurrent pass reached a terminal state first.
			s.log.Debug().Str("delivery_id", d.ID.String()).Msg("webhook: delivery already terminal, skipping")
			return
		}
		s.log.Info().
			Str("delivery_id", d.ID.String()).
			Str("event", string(d.Event)).
			Int("attempt", attempts).
			Int("status", resp.StatusCode).
			Msg("webhook: delivered")
		return
	}

	s.recordFailure(ctx, d, ep, record, fmt.Sprintf("HTTP %d response", resp.StatusCode))
}

// recordFailure increments the attempt count and applies the retry policy:
// schedule the next attempt with exponential backoff while under the
// endpoint's ceiling, fail terminally once past it.
func (s *processorService) recordFailure(ctx context.Context, d *domain.WebhookDelivery, ep *domain.WebhookEndpoint, resp *domain.DeliveryResponse, errMsg string) {
	attempts := d.Attempts + 1

	if attempts <= ep.RetryAttempts {
		nextRetryAt := s.clock.Now().Add(backoffDelay(attempts))
		if _, err := s.deliveries.MarkRetrying(ctx, d.ID, attempts, nextRetryAt, resp, errMsg); err != nil {
			s.log.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: scheduling retry errored")
			return
		}
		s.log.Warn().
			Str("delivery_id", d.ID.String()).
			Int("attempt", attempts).
			Int("max_retries", ep.RetryAttempts).
			Time("next_retry_at", nextRetryAt).
			Str("error", errMsg).
			Msg("webhook: attempt failed, retry scheduled")
		return
	}

	if _, err := s.deliveries.MarkFailed(ctx, d.ID, attempts, resp, errMsg); err != nil {
		s.log.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("webhook: marking delivery failed errored")
		return
	}
	s.log.Error().
		Str("delivery_id", d.ID.String()).
		Int("attempts", attempts).
		Str("error", errMsg).
		Msg("webhook: retry attempts exhausted, delivery failed")
}

// backoffDelay returns the wait before the next attempt: 1s, 2s, 4s, ...
// doubling per attempt, capped at 5 minutes.
func backoffDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	shift := uint(attempts - 1)
	if shift > 16 {
		return backoffCap
	}
	d := backoffBase << shift
	if d > backoffCap {
		return backoffCap
	}
	return d
}

// readBody drains up to maxResponseBody bytes; read failures degrade to an
// empty string rather than failing the attempt record.
func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxResponseBody))
	if err != nil {
		return ""
	}
	return string(b)
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
