package genai

import (
	"context"
	"fmt"
	"net/http"
)

// GenerateContent performs one grounded generation call against the given
// model. The request carries at most one tool; no tool-calling loop happens
// here or server-side on our behalf.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	var res GenerateContentResponse
	if err := c.do(ctx, http.MethodPost, endpoint, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
