package handler

import (
	"pitchbook/internal/adapter/http/dto"
	"pitchbook/internal/core/domain"
	"pitchbook/internal/core/ports"
	"pitchbook/pkg/apperror"
	"pitchbook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler accepts domain events from sibling services and hands them to
// the dispatcher.
type EventHandler struct {
	dispatcher ports.DispatcherService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(dispatcher ports.DispatcherService) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Trigger handles POST /internal/v1/events.
func (h *EventHandler) Trigger(c *gin.Context) {
	var req dto.TriggerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	scopeID, err := uuid.Parse(req.ScopeID)
	if err != nil {
		response.Error(c, apperror.Validation("scope_id must be a valid UUID"))
		return
	}

	event := domain.WebhookEvent(req.Event)
	if !event.Valid() {
		response.Error(c, apperror.ErrUnknownEvent(req.Event))
		return
	}

	var actor *domain.Actor
	if req.TriggeredBy != nil {
		actorID, err := uuid.Parse(req.TriggeredBy.ID)
		if err != nil {
			response.Error(c, apperror.Validation("triggered_by.id must be a valid UUID"))
			return
		}
		actor = &domain.Actor{ID: actorID, Name: req.TriggeredBy.Name, Type: domain.ActorType(req.TriggeredBy.Type)}
	}

	if err := h.dispatcher.Trigger(c.Request.Context(), scopeID, event, req.Data, req.Previous, actor); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": "accepted"})
}
