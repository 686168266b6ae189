// Package upstream is the HTTP client for the external workflow-execution
// service.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// RunRequest is the body of the outbound workflow-run call.
type RunRequest struct {
	WorkflowID string         `json:"workflow_id"`
	Parameters map[string]any `json:"parameters"`
	IsAsync    bool           `json:"is_async"`
}

// Error carries the upstream HTTP status and error body when available.
// StatusCode is zero when the call never produced a response.
type Error struct {
	StatusCode int
	Body       any
	Message    string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// IsTimeout reports whether err is a deadline-exceeded upstream failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

const DefaultTimeout = 60 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Run performs a single POST to the workflow-run endpoint and returns the
// decoded response body on any 2xx status. There are no retries here: the
// upstream call may not be idempotent, so a failure is terminal for this
// invocation attempt.
func (c *Client) Run(ctx context.Context, authorization string, req RunRequest) (any, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Message: "failed to encode request body", cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/workflow/run", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Message: "failed to create request", cause: err}
	}
	httpReq.Header.Set("Authorization", authorization)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: "failed to read response body", cause: err}
	}

	var body any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			// pass the undecodable body through as a string; the
			// transformer degrades it to a failure envelope
			body = string(raw)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Body:       body,
			Message:    fmt.Sprintf("upstream returned status %d", resp.StatusCode),
		}
	}

	return body, nil
}
