package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wardydev/bri-finder-admin/internal/common"
	"github.com/wardydev/bri-finder-admin/internal/logging"
	"github.com/wardydev/bri-finder-admin/internal/session"
)

// HTTPClient talks JSON (and multipart, for uploads) to the BRI-Finder
// backend. The session is injected explicitly; each outbound request reads
// the current token from it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Session
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying http.Client entirely.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithLogger attaches a logger for request-level diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l.With("component", "api") }
}

// New constructs an HTTPClient for the given base URL and session.
func New(baseURL string, sess *session.Session, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
		log:     logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the common response wrapper used by the backend.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// do issues one request against the backend and decodes the JSON response
// into out (when out is non-nil). The session token, if present, is attached
// as a bearer credential. Transport failures map to ErrNetwork; HTTP failure
// statuses map to ErrUnauthorized, ErrValidation or ErrServer.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug(ctx, "request finished", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: %w: malformed response: %v", method, path, ErrServer, err)
		}
	}
	return nil
}

// mapStatus converts an HTTP failure status into a sentinel error, carrying
// along the backend's message when the body holds one.
func (c *HTTPClient) mapStatus(resp *http.Response, method, path string) error {
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if env.Message != "" {
			return fmt.Errorf("%s %s: %w: %s", method, path, ErrValidation, env.Message)
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrValidation)
	default:
		if env.Message != "" {
			return fmt.Errorf("%s %s: %w: status %d: %s", method, path, ErrServer, resp.StatusCode, env.Message)
		}
		return fmt.Errorf("%s %s: %w: status %d", method, path, ErrServer, resp.StatusCode)
	}
}
