package service

import (
	"context"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// deliveryService implements ports.DeliveryService: the read-only history
// query plus the manual-retry override.
type deliveryService struct {
	deliveries ports.DeliveryRepository
	processor  ports.ProcessorService
	log        zerolog.Logger
}

// NewDeliveryService creates the delivery history service.
func NewDeliveryService(deliveries ports.DeliveryRepository, processor ports.ProcessorService, log zerolog.Logger) ports.DeliveryService {
	return &deliveryService{deliveries: deliveries, processor: processor, log: log}
}

// List returns a filtered, paginated page of delivery history plus the
// total match count. No state transitions.
func (s *deliveryService) List(ctx context.Context, params ports.DeliveryListParams) ([]domain.WebhookDelivery, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > 100 {
		params.Limit = 100
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	deliveries, total, err := s.deliveries.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return deliveries, total, nil
}

// Retry is the administrative override: the delivery goes back to pending
// with next_retry_at and error cleared, and the processor is kicked for an
// immediate pass. Attempts are deliberately NOT reset, so the cumulative
// count keeps growing across manual and automatic retries. Delivered
// deliveries cannot be requeued.
func (s *deliveryService) Retry(ctx context.Context, deliveryID uuid.UUID) error {
	applied, err := s.deliveries.ResetForRetry(ctx, deliveryID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !applied {
		d, err := s.deliveries.GetByID(ctx, deliveryID)
		if err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if d != nil && d.Status == domain.DeliveryStatusDelivered {
			return apperror.ErrDeliveryAlreadyDelivered()
		}
		return apperror.ErrDeliveryNotFound()
	}

	s.log.Info().Str("delivery_id", deliveryID.String()).Msg("webhook: delivery manually re-queued")
	s.processor.Kick()
	return nil
}
