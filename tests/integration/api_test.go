package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "pitchbook/internal/adapter/http/handler"
	redisStorage "pitchbook/internal/adapter/storage/redis"
	"pitchbook/internal/core/ports"
	"pitchbook/internal/service"
	"pitchbook/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp runs the full HTTP surface over in-memory storage and miniredis.
// It exercises the real router, middleware, handlers, services, and the
// Redis scope cache end-to-end.
type testApp struct {
	server    *httptest.Server
	processor ports.ProcessorService
	scopes    *inMemoryScopeRepo
	clock     *fakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	scopeCache := redisStorage.NewScopeNameCache(rdb)

	endpoints := newInMemoryEndpointRepo()
	deliveries := newInMemoryDeliveryRepo()
	scopes := newInMemoryScopeRepo()
	clock := &fakeClock{now: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)}
	log := logger.New("error", false)

	sigSvc := service.NewHMACSignatureService()
	endpointSvc := service.NewEndpointService(endpoints, clock, log)
	processor := service.NewDeliveryProcessor(
		endpoints, deliveries, sigSvc, &http.Client{}, clock,
		service.ProcessorConfig{}, log,
	)
	dispatcherSvc := service.NewDispatcherService(endpoints, deliveries, scopes, scopeCache, processor, clock, log)
	deliverySvc := service.NewDeliveryService(deliveries, processor, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EndpointSvc:   endpointSvc,
		DeliverySvc:   deliverySvc,
		DispatcherSvc: dispatcherSvc,
		Logger:        log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, processor: processor, scopes: scopes, clock: clock}
}

func (a *testApp) doJSON(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func TestAPI_WebhookLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Live subscriber the processor will deliver to.
	sub := newSubscriber(t, http.StatusOK)

	scopeID := uuid.New()
	app.scopes.put(scopeID, "Autumn League")
	base := fmt.Sprintf("/api/v1/scopes/%s/webhooks", scopeID)

	// Register an endpoint.
	resp, body := app.doJSON(t, http.MethodPost, base, map[string]any{
		"name":   "Facility sync",
		"url":    sub.server.URL,
		"events": []string{"reservation.created", "reservation.cancelled"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	webhookID := data["id"].(string)
	assert.Equal(t, true, data["is_active"])
	assert.NotContains(t, data, "secret")

	// The secret is only available on its dedicated route.
	resp, body = app.doJSON(t, http.MethodGet, base+"/"+webhookID+"/secret", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	secret := body["data"].(map[string]any)["secret"].(string)
	assert.Len(t, secret, 64)

	// Dispatch a domain event through the internal surface.
	resp, _ = app.doJSON(t, http.MethodPost, "/internal/v1/events", map[string]any{
		"scope_id": scopeID.String(),
		"event":    "reservation.created",
		"data":     map[string]any{"reservation_id": "res-9"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	app.processor.ProcessDue(context.Background())
	require.Equal(t, 1, sub.calls())

	// History shows the delivered attempt.
	resp, body = app.doJSON(t, http.MethodGet, base+"/"+webhookID+"/deliveries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
	deliveries := body["data"].([]any)
	require.Len(t, deliveries, 1)
	first := deliveries[0].(map[string]any)
	assert.Equal(t, "delivered", first["status"])
	assert.Equal(t, float64(1), first["attempts"])

	// Deactivate, dispatch again: the new delivery fails without a call.
	resp, _ = app.doJSON(t, http.MethodPut, base+"/"+webhookID, map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.doJSON(t, http.MethodPost, "/internal/v1/events", map[string]any{
		"scope_id": scopeID.String(),
		"event":    "reservation.created",
		"data":     map[string]any{"reservation_id": "res-10"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Inactive endpoints receive no new deliveries at all: the dispatcher
	// skips them during fan-out.
	resp, body = app.doJSON(t, http.MethodGet, base+"/"+webhookID+"/deliveries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, 1, sub.calls())

	// Delete and confirm 404 on subsequent reads.
	resp, _ = app.doJSON(t, http.MethodDelete, base+"/"+webhookID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = app.doJSON(t, http.MethodGet, base+"/"+webhookID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "WH_001", body["error_code"])
}

func TestAPI_ScopeIsolation(t *testing.T) {
	app := newTestApp(t)
	sub := newSubscriber(t, http.StatusOK)

	ownerScope := uuid.New()
	otherScope := uuid.New()

	resp, body := app.doJSON(t, http.MethodPost,
		fmt.Sprintf("/api/v1/scopes/%s/webhooks", ownerScope), map[string]any{
			"name":   "Mine",
			"url":    sub.server.URL,
			"events": []string{"team.created"},
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	webhookID := body["data"].(map[string]any)["id"].(string)

	// Another scope cannot read, update, delete, or list history for it.
	otherBase := fmt.Sprintf("/api/v1/scopes/%s/webhooks/%s", otherScope, webhookID)
	for _, probe := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, otherBase},
		{http.MethodGet, otherBase + "/secret"},
		{http.MethodGet, otherBase + "/deliveries"},
		{http.MethodDelete, otherBase},
	} {
		resp, body := app.doJSON(t, probe.method, probe.path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", probe.method, probe.path)
		assert.Equal(t, "WH_001", body["error_code"])
	}
}

func TestAPI_ValidationErrors(t *testing.T) {
	app := newTestApp(t)
	scopeID := uuid.New()
	base := fmt.Sprintf("/api/v1/scopes/%s/webhooks", scopeID)

	cases := []struct {
		name string
		req  map[string]any
		code string
	}{
		{
			name: "bad scheme",
			req:  map[string]any{"name": "x", "url": "ftp://files.example.com", "events": []string{"team.created"}},
			code: "CFG_001",
		},
		{
			name: "no events",
			req:  map[string]any{"name": "x", "url": "https://ok.example.com", "events": []string{}},
			code: "CFG_002",
		},
		{
			name: "unknown event",
			req:  map[string]any{"name": "x", "url": "https://ok.example.com", "events": []string{"weather.changed"}},
			code: "CFG_003",
		},
		{
			name: "timeout out of range",
			req:  map[string]any{"name": "x", "url": "https://ok.example.com", "events": []string{"team.created"}, "timeout_ms": 500},
			code: "CFG_004",
		},
		{
			name: "retries out of range",
			req:  map[string]any{"name": "x", "url": "https://ok.example.com", "events": []string{"team.created"}, "retry_attempts": 6},
			code: "CFG_005",
		},
		{
			name: "missing name",
			req:  map[string]any{"url": "https://ok.example.com", "events": []string{"team.created"}},
			code: "CFG_006",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := app.doJSON(t, http.MethodPost, base, tc.req)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.code, body["error_code"])
		})
	}
}
