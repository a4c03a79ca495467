// Package api is the typed HTTP transport to the task service. It shapes
// requests and decodes responses; it does not retry, cache or validate.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/taskr/pkg/task"
)

// DefaultTimeout bounds a single request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept as a message.
const maxErrorBody = 4 << 10

// Client talks to the task resource rooted at a base URL.
type Client struct {
	base      *url.URL
	http      *http.Client
	userAgent string
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the task resource at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api: base url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base url %q must be absolute", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		base:      u,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: "taskr",
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resource root the client talks to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListAll returns every task.
func (c *Client) ListAll(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	if err := c.do(ctx, "list tasks", http.MethodGet, "", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

// GetByID returns a single task.
func (c *Client) GetByID(ctx context.Context, id string) (task.Task, error) {
	var out task.Task
	err := c.do(ctx, "get task", http.MethodGet, "/"+url.PathEscape(id), nil, &out)
	return out, notFound(err, "get task", id)
}

// Save creates the task when its id is unknown to the service and replaces
// it otherwise.
func (c *Client) Save(ctx context.Context, req task.SaveRequest) (task.Task, error) {
	var out task.Task
	err := c.do(ctx, "save task", http.MethodPost, "/add", req, &out)
	return out, err
}

// DeleteByID removes a task and returns the representation that was deleted.
func (c *Client) DeleteByID(ctx context.Context, id string) (task.Task, error) {
	var out task.Task
	err := c.do(ctx, "delete task", http.MethodDelete, "/Delete/"+url.PathEscape(id), nil, &out)
	return out, notFound(err, "delete task", id)
}

// SearchByName returns tasks whose name matches query. Match semantics are
// decided by the service; the query is passed through escaped.
func (c *Client) SearchByName(ctx context.Context, query string) ([]task.Task, error) {
	var out []task.Task
	if err := c.do(ctx, "search tasks", http.MethodGet, "/Search/"+url.PathEscape(query), nil, &out); err != nil {
		return nil, notFound(err, "search tasks", "")
	}
	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

// ExecuteByID asks the service to run the task and returns it with the new
// execution appended.
func (c *Client) ExecuteByID(ctx context.Context, id string) (task.Task, error) {
	var out task.Task
	err := c.do(ctx, "execute task", http.MethodPut, "/Execute/"+url.PathEscape(id), nil, &out)
	if err == nil {
		return out, nil
	}
	var te *TransportError
	if errors.As(err, &te) && executionFailed(te.Status) {
		var se *statusError
		if errors.As(te.Err, &se) {
			return out, &ExecutionError{ID: id, Status: te.Status, Message: se.message}
		}
	}
	return out, notFound(err, "execute task", id)
}

// executionFailed reports whether an execute response status means the
// service ran the task and reported failure. Gateway errors come from the
// proxy in front of the service and stay transport failures.
func executionFailed(status int) bool {
	switch status {
	case 0, http.StatusNotFound, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return false
	}
	return true
}

// statusError carries the body of a non-2xx response.
type statusError struct {
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return "unexpected status"
	}
	return e.message
}

func notFound(err error, op, id string) error {
	var te *TransportError
	if errors.As(err, &te) && te.Status == http.StatusNotFound {
		return &notFoundError{op: op, id: id}
	}
	return err
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	// PathEscape output is already encoded; keep it as-is on the wire.
	u.RawPath = c.base.EscapedPath() + path
	u.Path = c.base.Path + unescapePath(path)
	return u.String()
}

func unescapePath(p string) string {
	if s, err := url.PathUnescape(p); err == nil {
		return s
	}
	return p
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	target := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "op", op, "method", method, "url", target, "error", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.log.Debug("request", "op", op, "method", method, "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &TransportError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    &statusError{message: errorMessage(msg)},
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return &TransportError{Op: op, Status: resp.StatusCode, Err: errors.New("empty response body")}
		}
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage extracts a human readable message from an error body. Services
// commonly answer with {"message": "..."} or {"error": "..."}; anything else
// is returned trimmed.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
