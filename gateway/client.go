// Package gateway wraps HTTP access to the backend REST API: it attaches
// auth and locale headers to every request, unwraps the response envelope
// and normalizes the backend's error taxonomy into typed errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request; there is no automatic retry, retrying
// is a caller action.
const DefaultTimeout = 15 * time.Second

const loginPath = "/auth/login"

// CredentialSource supplies the per-request auth token and locale and is told
// when the backend rejects the credentials.
type CredentialSource interface {
	// Token returns the stored bearer token, or "" when unauthenticated.
	Token(ctx context.Context) string

	// Locale returns the Accept-Language value. Empty falls back to "ar".
	Locale(ctx context.Context) string

	// Unauthorized is invoked on a 401 with the path of the rejected
	// request so the login surface can send the user back afterwards.
	Unauthorized(path string)
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Meta    *Meta               `json:"meta,omitempty"`
}

// Meta is the pagination block some list endpoints return.
type Meta struct {
	CurrentPage int `json:"current_page,omitempty"`
	LastPage    int `json:"last_page,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
	Total       int `json:"total,omitempty"`
}

// RequestOption mutates an outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets an extra header on the request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Client is the API gateway client. One instance serves the whole process.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   CredentialSource
	logger  *zap.Logger
}

// NewClient builds a client for the given backend base URL. The credential
// source may be nil, in which case requests go out unauthenticated in the
// default locale.
func NewClient(baseURL string, httpClient *http.Client, creds CredentialSource, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: u,
		http:    httpClient,
		creds:   creds,
		logger:  logger,
	}, nil
}

// Get issues a GET and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, opts...)
}

// Patch issues a PATCH with a JSON body and decodes the envelope data into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...RequestOption) error {
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	u := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.locale(ctx))
	if token := c.token(ctx); token != "" && path != loginPath {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.creds != nil && path != loginPath {
			c.creds.Unauthorized(path)
		}
		return ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound

	case resp.StatusCode == http.StatusUnprocessableEntity:
		verr := &ValidationError{Message: env.Message, Fields: env.Errors}
		if verr.Fields == nil {
			verr.Fields = map[string][]string{}
		}
		return verr

	case resp.StatusCode >= 500:
		c.logger.Error("server error",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
			zap.String("message", env.Message))
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)

	case resp.StatusCode >= 400:
		return fmt.Errorf("request rejected: status %d: %s", resp.StatusCode, env.Message)
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %v", ErrServer, decodeErr)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrServer, env.Message)
	}
	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode data: %v", ErrServer, err)
		}
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token(ctx)
}

func (c *Client) locale(ctx context.Context) string {
	if c.creds != nil {
		if l := c.creds.Locale(ctx); l != "" {
			return l
		}
	}
	return "ar"
}

// JoinPath builds an API path from segments, escaping each one.
func JoinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
