package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout accommodates a cold-start inference pass. The first
// prediction after the model service boots can take minutes.
const DefaultTimeout = 180 * time.Second

// Client talks to the external inference service. It is stateless across
// calls and safe for concurrent use.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// NewClient creates a reusable client for the given inference endpoint.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		// The per-request context enforces the deadline; the http.Client
		// itself carries no timeout so the two cannot disagree.
		http: &http.Client{},
	}
}

// Infer sends text for classification and returns the raw outcome. Exactly
// one outbound call is made per invocation: the deadline races the request
// and on expiry the transport is cancelled, not merely abandoned. Failures
// are returned as *Error with a classified kind.
func (c *Client) Infer(ctx context.Context, text string) (*Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: FailureTimeout, Detail: fmt.Sprintf("no response within %s", c.timeout)}
		}
		return nil, &Error{Kind: FailureUnreachable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &Error{Kind: FailureBadStatus, Detail: resp.Status}
	}

	var outcome Outcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return nil, &Error{Kind: FailureMalformedBody, Detail: err.Error()}
	}

	if outcome.Prediction == "" {
		return nil, &Error{Kind: FailureMalformedBody, Detail: "response missing prediction"}
	}

	return &outcome, nil
}

// Health probes the service's liveness endpoint. Used by the demo client to
// pre-warm a cold service and by the API health report; never called on the
// analysis path.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health probe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe returned %s", resp.Status)
	}
	return nil
}
