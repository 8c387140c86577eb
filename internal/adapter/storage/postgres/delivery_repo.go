package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DeliveryRepo implements ports.DeliveryRepository. The webhook_deliveries
// table doubles as the work queue for the delivery processor.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliveryColumns = `id, webhook_id, event, payload, status, attempts, next_retry_at, response, error, delivered_at, created_at, updated_at`

// CreateBatch inserts the fan-out deliveries for one event atomically.
func (r *DeliveryRepo) CreateBatch(ctx context.Context, deliveries []*domain.WebhookDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delivery batch: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `INSERT INTO webhook_deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, d := range deliveries {
		response, err := marshalResponse(d.Response)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query,
			d.ID, d.WebhookID, string(d.Event), d.Payload, string(d.Status),
			d.Attempts, d.NextRetryAt, response, d.Error, d.DeliveredAt,
			d.CreatedAt, d.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert webhook delivery: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delivery batch: %w", err)
	}
	return nil
}

// GetByID fetches a delivery by UUID. Returns nil when not found.
func (r *DeliveryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDelivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM webhook_deliveries WHERE id = $1`
	d, err := scanDeliveryRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return d, err
}

// ClaimDue atomically claims up to limit due deliveries. Claimed rows have
// their next_retry_at pushed to leaseUntil so concurrent claimers skip them;
// SKIP LOCKED keeps claimers from blocking each other inside one poll cycle.
func (r *DeliveryRepo) ClaimDue(ctx context.Context, limit int, now, leaseUntil time.Time) ([]domain.WebhookDelivery, error) {
	query := `UPDATE webhook_deliveries
		SET next_retry_at = $1, updated_at = $2
		WHERE id IN (
			SELECT id FROM webhook_deliveries
			WHERE status IN ('pending', 'retrying')
				AND (next_retry_at IS NULL OR next_retry_at <= $3)
			ORDER BY created_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + deliveryColumns

	rows, err := r.pool.Query(ctx, query, leaseUntil, now, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.WebhookDelivery
	for rows.Next() {
		d, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed deliveries: %w", err)
	}
	return deliveries, nil
}

// MarkDelivered transitions a claimed delivery to its success terminal state.
// Returns false when the row already left the pending/retrying states.
func (r *DeliveryRepo) MarkDelivered(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, deliveredAt time.Time) (bool, error) {
	response, err := marshalResponse(resp)
	if err != nil {
		return false, err
	}

	query := `UPDATE webhook_deliveries
		SET status = 'delivered', attempts = $1, response = $2, error = NULL,
			next_retry_at = NULL, delivered_at = $3, updated_at = $4
		WHERE id = $5 AND status IN ('pending', 'retrying')`

	tag, err := r.pool.Exec(ctx, query, attempts, response, deliveredAt, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("mark delivery delivered: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkRetrying records a failed attempt and schedules the next one.
func (r *DeliveryRepo) MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, nextRetryAt time.Time, resp *domain.DeliveryResponse, errMsg string) (bool, error) {
	response, err := marshalResponse(resp)
	if err != nil {
		return false, err
	}

	query := `UPDATE webhook_deliveries
		SET status = 'retrying', attempts = $1, next_retry_at = $2, response = $3,
			error = $4, updated_at = $5
		WHERE id = $6 AND status IN ('pending', 'retrying')`

	tag, err := r.pool.Exec(ctx, query, attempts, nextRetryAt, response, errMsg, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("mark delivery retrying: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed transitions a claimed delivery to its failure terminal state.
func (r *DeliveryRepo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, resp *domain.DeliveryResponse, errMsg string) (bool, error) {
	response, err := marshalResponse(resp)
	if err != nil {
		return false, err
	}

	query := `UPDATE webhook_deliveries
		SET status = 'failed', attempts = $1, response = $2, error = $3,
			next_retry_at = NULL, updated_at = $4
		WHERE id = $5 AND status IN ('pending', 'retrying')`

	tag, err := r.pool.Exec(ctx, query, attempts, response, errMsg, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("mark delivery failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ResetForRetry requeues a delivery as pending so the processor picks it up
// immediately. Attempts are left untouched. Delivered rows are terminal and
// never requeued; the status guard makes that hold under concurrent retries.
func (r *DeliveryRepo) ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE webhook_deliveries
		SET status = 'pending', next_retry_at = NULL, error = NULL, updated_at = $1
		WHERE id = $2 AND status != 'delivered'`

	tag, err := r.pool.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("reset delivery for retry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List fetches the delivery history of one endpoint with filtering and pagination.
func (r *DeliveryRepo) List(ctx context.Context, params ports.DeliveryListParams) ([]domain.WebhookDelivery, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("webhook_id = $%d", argIdx))
	args = append(args, params.WebhookID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(*params.Status))
		argIdx++
	}
	if params.Event != nil {
		conditions = append(conditions, fmt.Sprintf("event = $%d", argIdx))
		args = append(args, string(*params.Event))
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM webhook_deliveries %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deliveries: %w", err)
	}

	// Fetch page
	dataQuery := fmt.Sprintf(`SELECT %s FROM webhook_deliveries %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, deliveryColumns, where, argIdx, argIdx+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.WebhookDelivery
	for rows.Next() {
		d, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, 0, err
		}
		deliveries = append(deliveries, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate delivery rows: %w", err)
	}
	return deliveries, total, nil
}

func scanDeliveryRow(row pgx.Row) (*domain.WebhookDelivery, error) {
	var (
		d            domain.WebhookDelivery
		responseJSON []byte
	)
	err := row.Scan(
		&d.ID, &d.WebhookID, &d.Event, &d.Payload, &d.Status, &d.Attempts,
		&d.NextRetryAt, &responseJSON, &d.Error, &d.DeliveredAt,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan delivery row: %w", err)
	}

	if len(responseJSON) > 0 {
		d.Response = &domain.DeliveryResponse{}
		if err := json.Unmarshal(responseJSON, d.Response); err != nil {
			return nil, fmt.Errorf("decode delivery response: %w", err)
		}
	}
	return &d, nil
}

func marshalResponse(resp *domain.DeliveryResponse) ([]byte, error) {
	if resp == nil {
		return nil, nil
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode delivery response: %w", err)
	}
	return b, nil
}
