package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"capi/forwarder/config"
	"capi/forwarder/domain"
)

// graphClient posts event envelopes to the Conversions API.
type graphClient struct {
	cfg        *config.FacebookConfig
	httpClient *http.Client
}

func newGraphClient(cfg *config.FacebookConfig) *graphClient {
	return &graphClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// endpointURL joins the Graph API base, the API version, the pixel id and
// the events route carrying the access token.
func (g *graphClient) endpointURL() string {
	routeParams := "events?access_token=" + url.QueryEscape(g.cfg.AccessToken)
	return strings.Join([]string{g.cfg.APIEndpoint, g.cfg.APIVersion, g.cfg.PixelID, routeParams}, "/")
}

// Send posts the envelope exactly once and returns the response status
// code. A non-nil error means the round trip failed before a status code
// was obtained. No retries.
func (g *graphClient) Send(ctx context.Context, envelope *domain.EventEnvelope) (int, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize event envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpointURL(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build Conversions API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("Conversions API request failed: %w", err)
	}
	defer resp.Body.Close()

	// Only the status code matters; drain the body so the connection can
	// be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
