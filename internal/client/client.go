// Package client provides an HTTP client for the property store REST API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/property"
)

// ErrUnauthorized is returned on any 401. Callers should discard their
// stored token and return to the unauthenticated state.
var ErrUnauthorized = errors.New("unauthorized")

// Client is an HTTP client for the property store API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates an API client. token may be empty for public calls.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// LoginResponse is the response from POST /api/admin/login.
type LoginResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	ExpiresInMs int64  `json:"expiresInMs"`
}

type itemsEnvelope struct {
	Items json.RawMessage `json:"items"`
}

type itemEnvelope struct {
	Item json.RawMessage `json:"item"`
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(username, password string) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp LoginResponse
	if err := c.post("/api/admin/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProperties returns the public catalogue.
func (c *Client) ListProperties() ([]property.Property, error) {
	return c.listProperties("/api/properties")
}

// AdminListProperties returns the catalogue via the admin endpoint.
func (c *Client) AdminListProperties() ([]property.Property, error) {
	return c.listProperties("/api/admin/properties")
}

func (c *Client) listProperties(path string) ([]property.Property, error) {
	var env itemsEnvelope
	if err := c.get(path, &env); err != nil {
		return nil, err
	}
	var props []property.Property
	if err := json.Unmarshal(env.Items, &props); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return props, nil
}

// CreateProperty creates a new listing from the given fields.
func (c *Client) CreateProperty(fields property.Patch) (*property.Property, error) {
	var env itemEnvelope
	if err := c.post("/api/admin/properties", fields, &env); err != nil {
		return nil, err
	}
	return decodeItem(env)
}

// UpdateProperty applies a partial update to an existing listing.
func (c *Client) UpdateProperty(id int64, fields property.Patch) (*property.Property, error) {
	var env itemEnvelope
	if err := c.put(fmt.Sprintf("/api/admin/properties/%d", id), fields, &env); err != nil {
		return nil, err
	}
	return decodeItem(env)
}

// DeleteProperty removes a listing and returns the removed record.
func (c *Client) DeleteProperty(id int64) (*property.Property, error) {
	var env itemEnvelope
	if err := c.doDelete(fmt.Sprintf("/api/admin/properties/%d", id), &env); err != nil {
		return nil, err
	}
	return decodeItem(env)
}

// AuthLogs returns the retained login attempts, newest first.
func (c *Client) AuthLogs() ([]auth.LogEntry, error) {
	var env itemsEnvelope
	if err := c.get("/api/admin/auth-logs", &env); err != nil {
		return nil, err
	}
	var logs []auth.LogEntry
	if err := json.Unmarshal(env.Items, &logs); err != nil {
		return nil, fmt.Errorf("decoding auth logs: %w", err)
	}
	return logs, nil
}

func decodeItem(env itemEnvelope) (*property.Property, error) {
	var p property.Property
	if err := json.Unmarshal(env.Item, &p); err != nil {
		return nil, fmt.Errorf("decoding property: %w", err)
	}
	return &p, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	return c.send("POST", path, body, result)
}

// put performs a PUT request with a JSON body and decodes the response.
func (c *Client) put(path string, body interface{}, result interface{}) error {
	return c.send("PUT", path, body, result)
}

func (c *Client) send(method, path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string, result interface{}) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// do executes an HTTP request with the bearer token and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
