package client

import (
	"context"
	"net/http"

	"credcheck/types"
)

// AnalyzeResult is the analyze endpoint response. Recorded is present only
// for authenticated calls.
type AnalyzeResult struct {
	types.AnalysisResult
	Recorded *bool `json:"recorded,omitempty"`
}

// Analyze submits text for a credibility analysis.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalyzeResult, error) {
	payload := map[string]string{"text": text}

	var result AnalyzeResult
	if err := c.doJSONRequest(ctx, http.MethodPost, "/api/analyze", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Health checks the service and reports whether the inference backend is
// reachable. Calling it early warms up a cold inference service.
func (c *Client) Health(ctx context.Context) (string, error) {
	var result struct {
		Status    string `json:"status"`
		Inference string `json:"inference"`
	}

	if err := c.doJSONRequest(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return "", err
	}

	return result.Inference, nil
}
