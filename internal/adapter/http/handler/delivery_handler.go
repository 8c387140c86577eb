package handler

import (
	"strconv"
	"time"

	"pitchbook/internal/adapter/http/dto"
	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"
	"pitchbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler handles delivery history and manual retry routes.
type DeliveryHandler struct {
	deliverySvc ports.DeliveryService
	endpointSvc ports.EndpointService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliverySvc ports.DeliveryService, endpointSvc ports.EndpointService) *DeliveryHandler {
	return &DeliveryHandler{deliverySvc: deliverySvc, endpointSvc: endpointSvc}
}

// List handles GET /api/v1/scopes/:scope_id/webhooks/:id/deliveries.
// Query params: status, event, limit, offset.
func (h *DeliveryHandler) List(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	// Confirm the endpoint belongs to the scope before exposing its history.
	if _, err := h.endpointSvc.Get(c.Request.Context(), id, scopeID); err != nil {
		response.Error(c, err)
		return
	}

	params := ports.DeliveryListParams{WebhookID: id}

	if s := c.Query("status"); s != "" {
		status := domain.DeliveryStatus(s)
		switch status {
		case domain.DeliveryStatusPending, domain.DeliveryStatusRetrying,
			domain.DeliveryStatusDelivered, domain.DeliveryStatusFailed:
			params.Status = &status
		default:
			response.Error(c, apperror.Validation("unknown delivery status: "+s))
			return
		}
	}
	if e := c.Query("event"); e != "" {
		event := domain.WebhookEvent(e)
		if !event.Valid() {
			response.Error(c, apperror.ErrUnknownEvent(e))
			return
		}
		params.Event = &event
	}
	params.Limit = intQuery(c, "limit", 0)
	params.Offset = intQuery(c, "offset", 0)

	deliveries, total, err := h.deliverySvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.DeliveryRecord, len(deliveries))
	for i := range deliveries {
		out[i] = toDeliveryRecord(&deliveries[i])
	}
	response.Paged(c, out, total, params.Limit, params.Offset)
}

// Retry handles POST /api/v1/deliveries/:id/retry.
func (h *DeliveryHandler) Retry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deliverySvc.Retry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": "queued"})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// toDeliveryRecord converts a domain delivery to its API shape.
func toDeliveryRecord(d *domain.WebhookDelivery) dto.DeliveryRecord {
	rec := dto.DeliveryRecord{
		ID:        d.ID.String(),
		WebhookID: d.WebhookID.String(),
		Event:     string(d.Event),
		Payload:   d.Payload,
		Status:    string(d.Status),
		Attempts:  d.Attempts,
		Error:     d.Error,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
	if d.NextRetryAt != nil {
		s := d.NextRetryAt.Format(time.RFC3339)
		rec.NextRetryAt = &s
	}
	if d.DeliveredAt != nil {
		s := d.DeliveredAt.Format(time.RFC3339)
		rec.DeliveredAt = &s
	}
	if d.Response != nil {
		rec.Response = &dto.DeliveryResultResponse{
			Status:  d.Response.Status,
			Body:    d.Response.Body,
			Headers: d.Response.Headers,
		}
	}
	return rec
}
