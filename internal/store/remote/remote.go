// Package remote implements store.Properties as a passthrough to a hosted
// JSON document store. The hosted collection speaks the same property record
// shape as the local files; admin identities and the auth log never leave
// the local machine.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rmagbanua/propstore/internal/property"
	"github.com/rmagbanua/propstore/internal/store"
)

const requestTimeout = 15 * time.Second

// Client talks to the hosted datastore's properties collection.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a remote properties client. apiKey may be empty when the
// hosted store is open.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// List implements store.Properties.
func (c *Client) List() ([]property.Property, error) {
	var props []property.Property
	if err := c.do(http.MethodGet, "/properties", nil, &props); err != nil {
		return nil, err
	}
	for i := range props {
		props[i].SyncImages()
	}
	return props, nil
}

// Get implements store.Properties.
func (c *Client) Get(id int64) (property.Property, error) {
	var p property.Property
	if err := c.do(http.MethodGet, fmt.Sprintf("/properties/%d", id), nil, &p); err != nil {
		return property.Property{}, err
	}
	p.SyncImages()
	return p, nil
}

// Create implements store.Properties. The hosted store assigns the id.
func (c *Client) Create(p property.Property) (property.Property, error) {
	p.SyncImages()
	var created property.Property
	if err := c.do(http.MethodPost, "/properties", p, &created); err != nil {
		return property.Property{}, err
	}
	created.SyncImages()
	return created, nil
}

// Update implements store.Properties.
func (c *Client) Update(p property.Property) (property.Property, error) {
	p.SyncImages()
	var updated property.Property
	if err := c.do(http.MethodPut, fmt.Sprintf("/properties/%d", p.ID), p, &updated); err != nil {
		return property.Property{}, err
	}
	updated.SyncImages()
	return updated, nil
}

// Delete implements store.Properties.
func (c *Client) Delete(id int64) (property.Property, error) {
	removed, err := c.Get(id)
	if err != nil {
		return property.Property{}, err
	}
	if err := c.do(http.MethodDelete, fmt.Sprintf("/properties/%d", id), nil, nil); err != nil {
		return property.Property{}, err
	}
	return removed, nil
}

// do executes a request against the hosted store and decodes the response.
// A 404 maps to store.ErrNotFound so handlers treat both backends alike.
func (c *Client) do(method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hosted store request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return store.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("hosted store returned %s", resp.Status)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
