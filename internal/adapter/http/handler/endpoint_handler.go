package handler

import (
	"time"

	"pitchbook/internal/adapter/http/dto"
	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"
	"pitchbook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EndpointHandler handles webhook endpoint management routes.
type EndpointHandler struct {
	svc ports.EndpointService
}

// NewEndpointHandler creates a new EndpointHandler.
func NewEndpointHandler(svc ports.EndpointService) *EndpointHandler {
	return &EndpointHandler{svc: svc}
}

// Create handles POST /api/v1/scopes/:scope_id/webhooks.
func (h *EndpointHandler) Create(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}

	var req dto.CreateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ep, err := h.svc.Create(c.Request.Context(), scopeID, ports.EndpointInput{
		Name:          req.Name,
		URL:           req.URL,
		Events:        dto.ToEvents(req.Events),
		Headers:       req.Headers,
		TimeoutMS:     req.TimeoutMS,
		RetryAttempts: req.RetryAttempts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEndpointResponse(ep))
}

// Update handles PUT /api/v1/scopes/:scope_id/webhooks/:id.
func (h *EndpointHandler) Update(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ep, err := h.svc.Update(c.Request.Context(), id, scopeID, ports.EndpointPatch{
		Name:          req.Name,
		URL:           req.URL,
		Events:        dto.ToEvents(req.Events),
		Headers:       req.Headers,
		TimeoutMS:     req.TimeoutMS,
		RetryAttempts: req.RetryAttempts,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEndpointResponse(ep))
}

// Delete handles DELETE /api/v1/scopes/:scope_id/webhooks/:id.
func (h *EndpointHandler) Delete(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, scopeID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Get handles GET /api/v1/scopes/:scope_id/webhooks/:id.
func (h *EndpointHandler) Get(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	ep, err := h.svc.Get(c.Request.Context(), id, scopeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEndpointResponse(ep))
}

// List handles GET /api/v1/scopes/:scope_id/webhooks.
func (h *EndpointHandler) List(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}

	eps, err := h.svc.List(c.Request.Context(), scopeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.EndpointResponse, len(eps))
	for i := range eps {
		out[i] = toEndpointResponse(&eps[i])
	}
	response.OK(c, out)
}

// RevealSecret handles GET /api/v1/scopes/:scope_id/webhooks/:id/secret.
func (h *EndpointHandler) RevealSecret(c *gin.Context) {
	scopeID, ok := scopeParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	secret, err := h.svc.RevealSecret(c.Request.Context(), id, scopeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SecretResponse{Secret: secret})
}

func scopeParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("scope_id"))
	if err != nil {
		response.Error(c, apperror.Validation("scope_id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// toEndpointResponse converts a domain endpoint to its API shape.
func toEndpointResponse(ep *domain.WebhookEndpoint) dto.EndpointResponse {
	events := make([]string, len(ep.Events))
	for i, e := range ep.Events {
		events[i] = string(e)
	}
	return dto.EndpointResponse{
		ID:            ep.ID.String(),
		ScopeID:       ep.ScopeID.String(),
		Name:          ep.Name,
		URL:           ep.URL,
		Events:        events,
		IsActive:      ep.IsActive,
		Headers:       ep.Headers,
		TimeoutMS:     ep.TimeoutMS,
		RetryAttempts: ep.RetryAttempts,
		CreatedAt:     ep.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     ep.UpdatedAt.Format(time.RFC3339),
	}
}
