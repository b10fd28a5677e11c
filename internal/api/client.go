package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Session provides the auth capabilities a client needs: read the stored
// token and react to a rejected one. A 401 from any authenticated call
// invokes Unauthorized exactly once for that call; the client never
// retries after it.
type Session interface {
	// Token returns the stored bearer token, or "" when not logged in.
	Token() string

	// Unauthorized is called when the backend rejects the token.
	// Implementations clear the stored token.
	Unauthorized()
}

// Client talks to the ARBEIT CRM backend for one portal scope.
type Client struct {
	cfg      Config
	http     *http.Client
	session  Session
	observer Observer
}

// NewClient creates a Client bound to a session scope.
func NewClient(cfg Config, session Session, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		session:  session,
		observer: observer,
	}
}

// Get issues an authenticated GET and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Patch issues an authenticated PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		payload = data
	}

	var respBody []byte
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		var status int
		respBody, status, lastErr = c.doRequest(ctx, method, path, query, payload)
		if lastErr == nil {
			c.emit(method, path, status, start, nil)
			return respBody, nil
		}
		// Retry only transport-level failures. HTTP errors, 401 above all,
		// must surface exactly once.
		if !isConnectionError(lastErr) || ctx.Err() != nil {
			break
		}
	}

	if ctx.Err() != nil {
		c.emit(method, path, 0, start, ErrTimeout)
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		c.emit(method, path, 0, start, ErrUnavailable)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	c.emit(method, path, statusOf(lastErr), start, lastErr)
	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, int, error) {
	u := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if tok := c.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.session != nil {
			c.session.Unauthorized()
		}
		return nil, resp.StatusCode, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, ErrNotFound
	case resp.StatusCode >= 400:
		return nil, resp.StatusCode, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(respBody),
		}
	}

	return respBody, resp.StatusCode, nil
}

// serverMessage extracts the backend's own error message from a failure
// body, checking the field names the backend uses interchangeably.
func serverMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (c *Client) emit(method, path string, status int, start time.Time, err error) {
	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return errors.As(urlErr.Err, &netErr)
	}
	return false
}

func statusOf(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return 0
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "SERVER"
	}
}
