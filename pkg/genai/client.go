// Package genai is a thin HTTP client for the Gemini File Search and
// generation APIs. It speaks plain JSON with the x-goog-api-key header and
// leaves normalization of optional response fields to the caller.
package genai

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

const (
	defaultBaseURL       = "https://generativelanguage.googleapis.com/v1beta"
	defaultUploadBaseURL = "https://generativelanguage.googleapis.com/upload/v1beta"
)

// FileSearchAPI is the store/document/operation surface consumed by the
// lifecycle services.
type FileSearchAPI interface {
	CreateStore(ctx context.Context, displayName string) (*Store, error)
	GetStore(ctx context.Context, name string) (*Store, error)
	ListStores(ctx context.Context) ([]Store, error)
	DeleteStore(ctx context.Context, name string, force bool) error

	UploadToStore(ctx context.Context, input UploadInput) (*Operation, error)
	ListDocuments(ctx context.Context, storeName string) ([]Document, error)
	GetDocument(ctx context.Context, name string) (*Document, error)
	DeleteDocument(ctx context.Context, name string) error

	GetOperation(ctx context.Context, name string) (*Operation, error)
}

// GenerativeAPI is the single-turn grounded generation surface.
type GenerativeAPI interface {
	GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) (*GenerateContentResponse, error)
}

type Client struct {
	apiKey        string
	baseURL       string
	uploadBaseURL string
	httpClient    *http.Client
}

var _ FileSearchAPI = (*Client)(nil)
var _ GenerativeAPI = (*Client)(nil)

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:        apiKey,
		baseURL:       defaultBaseURL,
		uploadBaseURL: defaultUploadBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// NewClientWithBaseURL points the client at an alternate endpoint. Both the
// regular and the upload surface are served from baseURL; used by tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	c.uploadBaseURL = baseURL
	return c
}

// APIError is a non-2xx response from the remote service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: status %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// do sends one JSON request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("genai request failed: %w", err)
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: res.StatusCode, Message: string(resBytes)}
		var parsed errorBody
		if err := json.Unmarshal(resBytes, &parsed); err == nil && parsed.Error.Message != "" {
			apiErr.Message = parsed.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
