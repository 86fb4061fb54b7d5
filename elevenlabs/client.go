// Package elevenlabs is a minimal client for the ElevenLabs REST API,
// covering speech synthesis, the voice catalog, and subscription usage.
package elevenlabs

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
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.elevenlabs.io"

// Client talks to the ElevenLabs API. Safe for sequential use; this tool has
// no concurrent callers.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient builds a Client from config. An empty BaseURL falls back to the
// public endpoint.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: base,
		httpc:   &http.Client{Timeout: 5 * time.Minute},
	}
}

// SynthesisRequest holds the parameters for one synthesis call.
type SynthesisRequest struct {
	Text         string
	ModelID      string
	OutputFormat string
}

type synthesisBody struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// Synthesize converts text to speech with the given voice and returns the
// audio stream. The caller owns the returned ReadCloser.
func (c *Client) Synthesize(ctx context.Context, voiceID string, req SynthesisRequest) (io.ReadCloser, error) {
	body, err := json.Marshal(synthesisBody{Text: req.Text, ModelID: req.ModelID})
	if err != nil {
		return nil, fmt.Errorf("unable to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s/stream", c.baseURL, url.PathEscape(voiceID))
	if req.OutputFormat != "" {
		endpoint += "?output_format=" + url.QueryEscape(req.OutputFormat)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close() //nolint:errcheck
		return nil, apiError(resp)
	}
	return resp.Body, nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}
	return nil
}

// apiError builds an APIError from a non-2xx response, keeping a trimmed
// slice of the body for the message.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(body)),
	}
}
