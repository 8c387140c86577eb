package handler

import (
	"pitchbook/internal/adapter/http/middleware"
	"pitchbook/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	EndpointSvc    ports.EndpointService
	DeliverySvc    ports.DeliveryService
	DispatcherSvc  ports.DispatcherService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	endpointHandler := NewEndpointHandler(deps.EndpointSvc)
	deliveryHandler := NewDeliveryHandler(deps.DeliverySvc, deps.EndpointSvc)
	eventHandler := NewEventHandler(deps.DispatcherSvc)

	// API v1 routes
	v1 := r.Group("/api/v1")

	webhooks := v1.Group("/scopes/:scope_id/webhooks")
	{
		webhooks.POST("", endpointHandler.Create)
		webhooks.GET("", endpointHandler.List)
		webhooks.GET("/:id", endpointHandler.Get)
		webhooks.PUT("/:id", endpointHandler.Update)
		webhooks.DELETE("/:id", endpointHandler.Delete)
		webhooks.GET("/:id/secret", endpointHandler.RevealSecret)
		webhooks.GET("/:id/deliveries", deliveryHandler.List)
	}

	v1.POST("/deliveries/:id/retry", deliveryHandler.Retry)

	// Internal surface for sibling services dispatching domain events.
	internal := r.Group("/internal/v1")
	{
		internal.POST("/events", eventHandler.Trigger)
	}

	return r
}
