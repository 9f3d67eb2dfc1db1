package client

import (
	"context"
	"fmt"
	"net/http"

	"credcheck/types"
)

// ListHistory returns the caller's audit entries, newest first.
func (c *Client) ListHistory(ctx context.Context) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry
	if err := c.doJSONRequest(ctx, http.MethodGet, "/api/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteHistory deletes one of the caller's entries.
func (c *Client) DeleteHistory(ctx context.Context, id string) error {
	return c.doJSONRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/history/%s", id), nil, nil)
}
