package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
)

// UploadInput describes one upload-and-index request. ChunkingConfig is
// required; DisplayName and CustomMetadata are optional.
type UploadInput struct {
	StoreName      string
	FilePath       string
	DisplayName    string
	CustomMetadata []CustomMetadata
	ChunkingConfig ChunkingConfig
}

type uploadMetadata struct {
	DisplayName    string           `json:"displayName,omitempty"`
	CustomMetadata []CustomMetadata `json:"customMetadata,omitempty"`
	ChunkingConfig ChunkingConfig   `json:"chunkingConfig"`
}

// UploadToStore submits a file for indexing into a store and returns the
// long-running operation handle tracking it.
func (c *Client) UploadToStore(ctx context.Context, input UploadInput) (*Operation, error) {
	file, err := os.Open(input.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	meta := uploadMetadata{
		DisplayName:    input.DisplayName,
		CustomMetadata: input.CustomMetadata,
		ChunkingConfig: input.ChunkingConfig,
	}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal upload metadata: %w", err)
	}
	if err := writer.WriteField("metadata", string(metaBytes)); err != nil {
		return nil, fmt.Errorf("write metadata part: %w", err)
	}

	part, err := writer.CreateFormFile("file", input.FilePath)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:uploadToFileSearchStore", c.uploadBaseURL, input.StoreName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var op Operation
	if err := c.send(req, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// ListDocuments pages through every document in a store.
func (c *Client) ListDocuments(ctx context.Context, storeName string) ([]Document, error) {
	var documents []Document
	pageToken := ""
	for {
		endpoint := fmt.Sprintf("%s/%s/documents", c.baseURL, storeName)
		if pageToken != "" {
			endpoint += "?pageToken=" + url.QueryEscape(pageToken)
		}

		var page listDocumentsResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}
		documents = append(documents, page.Documents...)

		if page.NextPageToken == "" {
			return documents, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) GetDocument(ctx context.Context, name string) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/"+name, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) DeleteDocument(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/"+name, nil, nil)
}
