package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"capi/forwarder/config"
	"capi/forwarder/domain"
	"capi/forwarder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, upstreamURL string) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Facebook: config.FacebookConfig{
			APIEndpoint:    upstreamURL,
			APIVersion:     "v12.0",
			PixelID:        "1234567890",
			AccessToken:    "token-abc",
			TimeoutSeconds: 5,
		},
	}
	forwardService, err := services.NewForwardService(cfg, nil, nil)
	require.NoError(t, err)

	handler := NewForwardHandler(forwardService, nil)
	app := fiber.New()
	app.Post("/events", handler.PostEvent)
	app.Get("/stats", handler.GetStats)
	return app
}

func postEvent(t *testing.T, app *fiber.App, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPostEventDeliversAndSignalsSuccessOnce(t *testing.T) {
	var calls int32
	var captured domain.EventEnvelope
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL)
	body := `{"event_name":"purchase","currency":"USD","value":25,"items":[{"item_id":"1","item_name":"X","price":25,"quantity":1}]}`
	resp := postEvent(t, app, body, &http.Cookie{Name: "_fbp", Value: "fb.1.1700000000.111"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out domain.ForwardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "Purchase", out.EventName)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.Len(t, captured.Data, 1)
	assert.Equal(t, "Purchase", captured.Data[0].EventName)
	require.NotNil(t, captured.Data[0].CustomData)
	assert.Equal(t, "USD", *captured.Data[0].CustomData.Currency)
	require.Len(t, captured.Data[0].CustomData.Contents, 1)
	assert.Equal(t, "1", *captured.Data[0].CustomData.Contents[0].ID)

	// The _fbp request cookie fed the identity bundle
	require.NotNil(t, captured.Data[0].UserData.BrowserID)
	assert.Equal(t, "fb.1.1700000000.111", *captured.Data[0].UserData.BrowserID)
}

func TestPostEventUpstreamRejectionMapsToBadGateway(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL)
	resp := postEvent(t, app, `{"event_name":"purchase"}`)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	var out domain.ForwardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusBadRequest, out.StatusCode)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "a failed dispatch is reported once, not retried")
}

func TestPostEventValidationFailure(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL)
	resp := postEvent(t, app, `{"currency":"USD"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out domain.ForwardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Zero(t, atomic.LoadInt32(&calls), "no dispatch happens for an invalid event")
}

func TestPostEventMalformedBody(t *testing.T) {
	app := newTestApp(t, "https://graph.facebook.com")
	resp := postEvent(t, app, `{"event_name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetStatsDisabled(t *testing.T) {
	app := newTestApp(t, "https://graph.facebook.com")

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out domain.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Nil(t, out.Stats)
}
