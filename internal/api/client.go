// Package api provides the HTTP client for the Blueace booking REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Client talks to the booking backend. All methods are safe for concurrent
// use. Token-carrying clones share the limiter and the geocode dedup group.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	limiter    *rate.Limiter
	geocodes   *singleflight.Group
	token      string
}

// New creates a client for the configured API origin.
func New(cfg config.APIConfig, log *logger.Logger) *Client {
	ratePerSecond := cfg.GetLookupRatePerSecond()
	if ratePerSecond <= 0 {
		ratePerSecond = 2
	}
	burst := cfg.GetLookupBurst()
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    cfg.GetAPIBaseURL(),
		httpClient: &http.Client{Timeout: cfg.GetAPITimeout()},
		log:        log,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		geocodes:   &singleflight.Group{},
	}
}

// WithToken returns a copy of the client that sends the given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do executes the request and decodes a JSON body into out. Non-2xx statuses
// become typed apperr errors so callers can branch on the kind.
func (c *Client) do(req *http.Request, out interface{}) error {
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.APIError(req.Method, req.URL.Path, 0, err)
		return apperr.Wrap(apperr.KindTransport, "request failed", err).WithOp(req.URL.Path)
	}
	defer resp.Body.Close()

	latency := float64(time.Since(started).Milliseconds())
	c.log.APIRequest(req.Method, req.URL.Path, resp.StatusCode, latency)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := decodeErrorMessage(resp.Body)
		if message == "" {
			message = fmt.Sprintf("upstream status %d", resp.StatusCode)
		}
		return apperr.New(apperr.FromStatus(resp.StatusCode), message).WithOp(req.URL.Path)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.APIError(req.Method, req.URL.Path, resp.StatusCode, err)
		return apperr.Wrap(apperr.KindInternal, "decode response", err).WithOp(req.URL.Path)
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create request", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode payload", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out interface{}) error {
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return apperr.Wrap(apperr.KindInternal, "encode payload", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// decodeErrorMessage pulls the backend message out of an error body, if any.
func decodeErrorMessage(body io.Reader) string {
	var envelope Envelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// envelopeData decodes the data field of an envelope into out, tolerating a
// missing payload.
func envelopeData(envelope Envelope, out interface{}) error {
	if len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
