package mockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Source fetches a resource and returns its decoded JSON body.
type Source interface {
	Fetch(ctx context.Context, r Resource) (any, error)
}

// Client fetches the mock data resources from a base URL over HTTP.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the server at baseURL. A zero timeout
// leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mock data %s http status: %d", e.Path, e.StatusCode)
}

func (c *Client) FetchUsers(ctx context.Context) (any, error) { return c.Fetch(ctx, Users) }

func (c *Client) FetchVehicles(ctx context.Context) (any, error) { return c.Fetch(ctx, Vehicles) }

func (c *Client) FetchBookings(ctx context.Context) (any, error) { return c.Fetch(ctx, Bookings) }

func (c *Client) FetchStats(ctx context.Context) (any, error) { return c.Fetch(ctx, Stats) }

// Fetch issues one GET for r and decodes the body. The decoded value is
// returned as is.
func (c *Client) Fetch(ctx context.Context, r Resource) (any, error) {
	path := r.Path()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}
