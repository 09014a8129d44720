package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/groblegark/waveplan/internal/model"
)

// HTTPClient implements PlannerClient using the waveplan HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Snapshots ---

func (c *HTTPClient) IngestSnapshot(ctx context.Context, snap *model.Snapshot) (*IngestResponse, error) {
	var resp IngestResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/snapshots", snap, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Model projections ---

// filterQuery encodes a filter as query parameters; zero fields are omitted.
func filterQuery(f model.Filter) url.Values {
	q := url.Values{}
	if f.Priority != nil {
		q.Set("priority", fmt.Sprintf("%d", *f.Priority))
	}
	if f.Assignee != "" {
		q.Set("assignee", f.Assignee)
	}
	if f.Label != "" {
		q.Set("label", f.Label)
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) > 0 {
		return path + "?" + q.Encode()
	}
	return path
}

func (c *HTTPClient) GetModel(ctx context.Context, f model.Filter) (*model.BlockingModel, error) {
	var m model.BlockingModel
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/model", filterQuery(f)), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) GetReady(ctx context.Context, f model.Filter) ([]string, error) {
	var resp struct {
		ReadyItems []string `json:"ready_items"`
	}
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/model/ready", filterQuery(f)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.ReadyItems, nil
}

func (c *HTTPClient) GetCriticalPaths(ctx context.Context, f model.Filter) ([][]*model.Issue, error) {
	var resp struct {
		CriticalPaths [][]*model.Issue `json:"critical_paths"`
	}
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/model/critical-paths", filterQuery(f)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.CriticalPaths, nil
}

func (c *HTTPClient) GetPhases(ctx context.Context, f model.Filter) ([][]string, error) {
	var resp struct {
		ParallelGroups [][]string `json:"parallel_groups"`
	}
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/model/phases", filterQuery(f)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.ParallelGroups, nil
}

// --- Plans ---

func (c *HTTPClient) GetPlan(ctx context.Context, capacity int, f model.Filter) (*PlanResponse, error) {
	q := filterQuery(f)
	if capacity > 0 {
		q.Set("capacity", fmt.Sprintf("%d", capacity))
	}
	var resp PlanResponse
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/plan", q), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Builds ---

func (c *HTTPClient) ListBuilds(ctx context.Context, limit int) ([]*model.Build, error) {
	path := "/v1/builds"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var resp struct {
		Builds []*model.Build `json:"builds"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Builds, nil
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded (for DELETE/204 responses).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content: success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
