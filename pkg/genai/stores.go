package genai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateStore creates a new File Search store and returns its resource,
// including the service-assigned name.
func (c *Client) CreateStore(ctx context.Context, displayName string) (*Store, error) {
	body := &Store{DisplayName: displayName}
	var store Store
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/fileSearchStores", body, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (c *Client) GetStore(ctx context.Context, name string) (*Store, error) {
	var store Store
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/"+name, nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// ListStores pages through the full store listing. Callers never see partial
// pages.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	var stores []Store
	pageToken := ""
	for {
		endpoint := c.baseURL + "/fileSearchStores"
		if pageToken != "" {
			endpoint += "?pageToken=" + url.QueryEscape(pageToken)
		}

		var page listStoresResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}
		stores = append(stores, page.FileSearchStores...)

		if page.NextPageToken == "" {
			return stores, nil
		}
		pageToken = page.NextPageToken
	}
}

// DeleteStore removes a store. With force, the service cascades deletion of
// any documents the store still holds.
func (c *Client) DeleteStore(ctx context.Context, name string, force bool) error {
	endpoint := fmt.Sprintf("%s/%s?force=%t", c.baseURL, name, force)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}
