package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"capi/forwarder/config"
	"capi/forwarder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFacebookConfig(endpoint string) *config.FacebookConfig {
	return &config.FacebookConfig{
		APIEndpoint:    endpoint,
		APIVersion:     "v12.0",
		PixelID:        "1234567890",
		AccessToken:    "token-abc",
		TimeoutSeconds: 5,
	}
}

func newTestService(cfg *config.FacebookConfig) *forwardService {
	return &forwardService{
		cfg:   cfg,
		graph: newGraphClient(cfg),
		now:   func() time.Time { return time.Unix(1732233600, 0) },
	}
}

func TestForwardDeliversTranslatedEvent(t *testing.T) {
	var calls int32
	var captured domain.EventEnvelope
	var capturedPath, capturedToken, capturedContentType string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		capturedPath = r.URL.Path
		capturedToken = r.URL.Query().Get("access_token")
		capturedContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	svc := newTestService(newTestFacebookConfig(upstream.URL))
	event := &domain.ForwardRequest{
		EventName: "purchase",
		Currency:  sp("USD"),
		Value:     fp(25),
		Items: []domain.Item{
			{ItemID: sp("1"), ItemName: sp("X"), Price: fp(25), Quantity: ip(1)},
		},
	}

	resp, err := svc.Forward(context.Background(), event, nil)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Purchase", resp.EventName)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "exactly one dispatch per invocation")
	assert.Equal(t, "/v12.0/1234567890/events", capturedPath)
	assert.Equal(t, "token-abc", capturedToken)
	assert.Equal(t, "application/json", capturedContentType)

	require.Len(t, captured.Data, 1)
	assert.Equal(t, "Purchase", captured.Data[0].EventName)
	assert.Equal(t, PartnerAgent, captured.PartnerAgent)
	require.NotNil(t, captured.Data[0].CustomData)
	assert.Equal(t, "USD", *captured.Data[0].CustomData.Currency)
	require.Len(t, captured.Data[0].CustomData.Contents, 1)
	assert.Equal(t, "1", *captured.Data[0].CustomData.Contents[0].ID)
}

func TestForwardRemoteRejection(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer upstream.Close()

	svc := newTestService(newTestFacebookConfig(upstream.URL))
	resp, err := svc.Forward(context.Background(), &domain.ForwardRequest{EventName: "purchase"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.False(t, resp.Success, "failure must never also signal success")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "no retries on rejection")
}

func TestForwardTransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	svc := newTestService(newTestFacebookConfig(upstream.URL))
	resp, err := svc.Forward(context.Background(), &domain.ForwardRequest{EventName: "purchase"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.False(t, resp.Success)
	assert.Zero(t, resp.StatusCode, "no status code is available on transport failure")
}

func TestAssembleEnvelopeEventTimeFallback(t *testing.T) {
	svc := newTestService(newTestFacebookConfig("https://graph.facebook.com"))

	envelope := svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view"}, nil)
	assert.Equal(t, int64(1732233600), envelope.Data[0].EventTime, "wall clock in whole seconds when the event carries no time")

	supplied := int64(1700000000)
	envelope = svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view", EventTime: &supplied}, nil)
	assert.Equal(t, supplied, envelope.Data[0].EventTime)
}

func TestAssembleEnvelopeActionSourcePrecedence(t *testing.T) {
	cfg := newTestFacebookConfig("https://graph.facebook.com")
	cfg.ActionSource = "server"
	svc := newTestService(cfg)

	// Event-supplied value wins
	envelope := svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view", ActionSource: sp("website")}, nil)
	require.NotNil(t, envelope.Data[0].ActionSource)
	assert.Equal(t, "website", *envelope.Data[0].ActionSource)

	// Configured default fills the gap
	envelope = svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view"}, nil)
	require.NotNil(t, envelope.Data[0].ActionSource)
	assert.Equal(t, "server", *envelope.Data[0].ActionSource)

	// Neither resolves to absent
	svc = newTestService(newTestFacebookConfig("https://graph.facebook.com"))
	envelope = svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view"}, nil)
	assert.Nil(t, envelope.Data[0].ActionSource)
}

func TestAssembleEnvelopeTestEventCodePrecedence(t *testing.T) {
	cfg := newTestFacebookConfig("https://graph.facebook.com")
	cfg.TestEventCode = "TEST-DEFAULT"
	svc := newTestService(cfg)

	envelope := svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view", TestEventCode: sp("TEST-EVENT")}, nil)
	require.NotNil(t, envelope.TestEventCode)
	assert.Equal(t, "TEST-EVENT", *envelope.TestEventCode)

	envelope = svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view"}, nil)
	require.NotNil(t, envelope.TestEventCode)
	assert.Equal(t, "TEST-DEFAULT", *envelope.TestEventCode)
}

func TestEnvelopeSerializationOmitsAbsentFields(t *testing.T) {
	svc := newTestService(newTestFacebookConfig("https://graph.facebook.com"))
	envelope := svc.assembleEnvelope(&domain.ForwardRequest{EventName: "page_view"}, nil)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	payload := string(body)
	assert.Contains(t, payload, `"user_data":{}`, "the identity bundle is always present")
	assert.NotContains(t, payload, "custom_data", "an empty business-data bundle is omitted")
	assert.NotContains(t, payload, "null", "absent fields are omitted, never null")
	assert.NotContains(t, payload, "test_event_code")
}

func TestNewForwardServiceRequiresCredentials(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewForwardService(cfg, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "pixel id"))

	cfg.Facebook.PixelID = "1234567890"
	_, err = NewForwardService(cfg, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "access token"))

	cfg.Facebook.AccessToken = "token-abc"
	svc, err := NewForwardService(cfg, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
