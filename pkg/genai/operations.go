package genai

import (
	"context"
	"net/http"
)

// GetOperation re-fetches the current status of a long-running operation.
func (c *Client) GetOperation(ctx context.Context, name string) (*Operation, error) {
	var op Operation
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/"+name, nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
