package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shopfront/internal/common"
	"shopfront/internal/logging"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current auth token for request construction.
// An empty string means the caller is anonymous.
type TokenSource interface {
	Token() string
}

// HTTPClient is the concrete Client speaking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// Option customizes a HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.hc.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.hc = hc
	}
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "https://ecommerce.routemisr.com/api/v1".
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one round trip and decodes the JSON body into out (skipped
// when out is nil). Transport and decoding failures are wrapped so that the
// result matches ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.tokens.Token(); t != "" {
		req.Header.Set(common.TokenHeaderName, t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *HTTPClient) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *HTTPClient) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}
