package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/anuvat/anuvat/internal/store"
)

// TokenSource supplies the stored bearer token for authenticated requests.
type TokenSource interface {
	Token() (token string, ok bool, err error)
}

// EventLog records one entry per API request. Logging is best-effort:
// a log failure never fails the request it describes.
type EventLog interface {
	AppendAPIEvent(ctx context.Context, ev store.APIEvent) error
}

// Client talks to the Anuvat REST API. All requests send JSON bodies
// and receive JSON bodies; authenticated requests carry the stored
// bearer token. The client normalizes every failure kind (transport,
// status, shape) into a typed error and never swallows one.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	events  EventLog
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithEventLog wires a request event log into the client.
func WithEventLog(log EventLog) Option {
	return func(c *Client) { c.events = log }
}

// New creates a Client for the given deployment.
func New(cfg Config, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestOptions holds per-request settings.
type requestOptions struct {
	schema *Schema
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// WithSchema validates the response body against the given schema
// before it is returned. Shape mismatches fail closed.
func WithSchema(s *Schema) RequestOption {
	return func(o *requestOptions) { o.schema = s }
}

// Do performs one request against the API. body, when non-nil, is
// JSON-serialized; otherwise the request carries no body. When
// authenticated is true the stored token is attached, and a missing
// token fails with ErrTokenMissing before any network I/O.
//
// A 204 returns a nil body. Any other 2xx returns the raw JSON body.
// Non-2xx responses become a *StatusError carrying the server's message
// (or the status text when the error body is unparseable).
func (c *Client) Do(ctx context.Context, method, path string, body any, authenticated bool, opts ...RequestOption) (json.RawMessage, error) {
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	started := time.Now()
	raw, status, err := c.do(ctx, method, path, body, authenticated, ro.schema)
	c.logEvent(ctx, method, path, status, started, err)
	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, authenticated bool, schema *Schema) (json.RawMessage, int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authenticated {
		token, ok, err := c.tokens.Token()
		if err != nil {
			return nil, 0, fmt.Errorf("read stored token: %w", err)
		}
		if !ok || token == "" {
			return nil, 0, ErrTokenMissing
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if err := validateResponse(schema, raw); err != nil {
		return nil, resp.StatusCode, err
	}

	return raw, resp.StatusCode, nil
}

// Get performs an authenticated GET.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, true, opts...)
}

// Post performs an authenticated POST.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, true, opts...)
}

// errorMessage extracts the `{message}` error envelope from a failed
// response, falling back to the HTTP status text.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("HTTP error, status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// logEvent records the request outcome at the boundary. Failures to log
// are reported on stderr and otherwise ignored.
func (c *Client) logEvent(ctx context.Context, method, path string, status int, started time.Time, reqErr error) {
	if c.events == nil {
		return
	}
	ev := store.APIEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(started).Milliseconds(),
		Success:   reqErr == nil,
	}
	if reqErr != nil {
		ev.Error = reqErr.Error()
	}
	if err := c.events.AppendAPIEvent(ctx, ev); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log API request event: %v\n", err)
	}
}
