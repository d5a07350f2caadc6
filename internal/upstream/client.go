// Package upstream is the typed client for the remote salesforce-tracking
// API. One method per server operation; every call attaches the bearer
// credential supplied by the session store and runs under the caller's
// context. No retries, no caching.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"salesdash-backend/internal/metrics"
)

var (
	// ErrUnauthenticated covers 401/403 responses from the upstream.
	ErrUnauthenticated = errors.New("upstream rejected credential")
	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("upstream resource not found")
)

// CredentialSource supplies the current bearer credential. The session
// store implements it; the client never re-derives expiry itself.
type CredentialSource interface {
	Credential() (string, bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
}

func NewClient(baseURL string, timeout time.Duration, creds CredentialSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

// do performs one HTTP call. body is JSON-encoded when non-nil; the
// response body is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential, ok := c.creds.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		metrics.UpstreamRequestsTotal.WithLabelValues("unauthenticated").Inc()
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamRequestsTotal.WithLabelValues("not_found").Inc()
		return ErrNotFound
	case resp.StatusCode >= 400:
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping checks the upstream is reachable at all. Any HTTP response counts:
// reachability, not correctness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
