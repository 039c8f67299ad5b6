// Package supabase is a minimal PostgREST client for Supabase tables.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Query holds PostgREST query parameters, e.g. {"user_id": "eq.abc", "order": "created_at.desc"}
type Query map[string]any

// Eq formats an equality filter value
func Eq(v any) string {
	return fmt.Sprintf("eq.%v", v)
}

// Error is returned for non-2xx PostgREST responses
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type request struct {
	method string
	table  string
	query  Query
	body   any
	prefer string
}

func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	var payload io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, r.table)
	req, err := http.NewRequestWithContext(ctx, r.method, url, payload)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range r.query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.prefer != "" {
		req.Header.Set("Prefer", r.prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// Select returns the rows of table matching query as a JSON array
func (c *Client) Select(ctx context.Context, table string, query Query) ([]byte, error) {
	return c.do(ctx, request{method: http.MethodGet, table: table, query: query})
}

// Insert inserts data and returns the created rows
func (c *Client) Insert(ctx context.Context, table string, data any) ([]byte, error) {
	return c.do(ctx, request{
		method: http.MethodPost,
		table:  table,
		body:   data,
		prefer: "return=representation",
	})
}

// InsertIgnoreDuplicates inserts data unless it conflicts on onConflict. Only
// rows that were actually inserted are returned.
func (c *Client) InsertIgnoreDuplicates(ctx context.Context, table string, data any, onConflict string) ([]byte, error) {
	return c.do(ctx, request{
		method: http.MethodPost,
		table:  table,
		query:  Query{"on_conflict": onConflict},
		body:   data,
		prefer: "return=representation,resolution=ignore-duplicates",
	})
}

// Update patches the rows matching query and returns them
func (c *Client) Update(ctx context.Context, table string, query Query, data any) ([]byte, error) {
	return c.do(ctx, request{
		method: http.MethodPatch,
		table:  table,
		query:  query,
		body:   data,
		prefer: "return=representation",
	})
}

// Delete removes the rows matching query and returns them
func (c *Client) Delete(ctx context.Context, table string, query Query) ([]byte, error) {
	return c.do(ctx, request{
		method: http.MethodDelete,
		table:  table,
		query:  query,
		prefer: "return=representation",
	})
}
