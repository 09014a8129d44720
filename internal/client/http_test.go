package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/groblegark/waveplan/internal/model"
)

// testHandler captures the incoming request details and returns a canned response.
type testHandler struct {
	// captured from the request
	method      string
	path        string
	query       string
	body        string
	contentType string
	authHeader  string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.contentType = r.Header.Get("Content-Type")
	h.authHeader = r.Header.Get("Authorization")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

// newTestClient creates an HTTPClient pointed at a test server with the given handler.
func newTestClient(h http.Handler) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewHTTPClient(srv.URL, "")
	return c, srv
}

func TestHTTPClient_IngestSnapshot(t *testing.T) {
	h := &testHandler{
		statusCode: http.StatusCreated,
		responseBody: `{
			"snapshot_id": "wps-abc",
			"build_id": "wpb-abc",
			"issue_count": 2,
			"edge_count": 1,
			"ready_count": 1,
			"phase_count": 2
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	snap := &model.Snapshot{Components: []*model.Component{
		{Issues: []*model.Issue{{ID: "a", Title: "Issue a", Status: model.StatusOpen}}},
	}}
	resp, err := c.IngestSnapshot(context.Background(), snap)
	if err != nil {
		t.Fatalf("IngestSnapshot() error = %v", err)
	}

	if h.method != http.MethodPost {
		t.Errorf("method = %q, want POST", h.method)
	}
	if h.path != "/v1/snapshots" {
		t.Errorf("path = %q, want /v1/snapshots", h.path)
	}
	if h.contentType != "application/json" {
		t.Errorf("content-type = %q, want application/json", h.contentType)
	}
	var reqBody map[string]any
	if err := json.Unmarshal([]byte(h.body), &reqBody); err != nil {
		t.Fatalf("unmarshaling request body: %v", err)
	}
	if _, ok := reqBody["components"]; !ok {
		t.Errorf("request body missing components: %s", h.body)
	}
	if resp.SnapshotID != "wps-abc" || resp.BuildID != "wpb-abc" || resp.IssueCount != 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestHTTPClient_GetModel(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"issues": [{"id":"a","title":"Issue a","status":"open","priority":2}],
			"edges": [],
			"completion_order": [{"id":"a","title":"Issue a","status":"open","priority":2}],
			"ready_items": ["a"],
			"parallel_groups": [["a"]],
			"fan_out_counts": {"a": 0}
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	p := 2
	m, err := c.GetModel(context.Background(), model.Filter{Priority: &p, Assignee: "alice"})
	if err != nil {
		t.Fatalf("GetModel() error = %v", err)
	}

	if h.path != "/v1/model" {
		t.Errorf("path = %q, want /v1/model", h.path)
	}
	if h.query != "assignee=alice&priority=2" {
		t.Errorf("query = %q", h.query)
	}
	if len(m.Issues) != 1 || m.Issues[0].ID != "a" {
		t.Errorf("model = %+v", m)
	}
	if len(m.ReadyItems) != 1 || m.ReadyItems[0] != "a" {
		t.Errorf("ready = %v", m.ReadyItems)
	}
}

func TestHTTPClient_GetReady(t *testing.T) {
	h := &testHandler{responseBody: `{"ready_items": ["a", "b"]}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	ready, err := c.GetReady(context.Background(), model.Filter{})
	if err != nil {
		t.Fatalf("GetReady() error = %v", err)
	}
	if h.path != "/v1/model/ready" {
		t.Errorf("path = %q", h.path)
	}
	if h.query != "" {
		t.Errorf("empty filter must add no query, got %q", h.query)
	}
	if len(ready) != 2 {
		t.Errorf("ready = %v", ready)
	}
}

func TestHTTPClient_GetCriticalPaths(t *testing.T) {
	h := &testHandler{
		responseBody: `{"critical_paths": [[{"id":"a","title":"Issue a","status":"open","priority":0}]]}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	paths, err := c.GetCriticalPaths(context.Background(), model.Filter{Label: "backend"})
	if err != nil {
		t.Fatalf("GetCriticalPaths() error = %v", err)
	}
	if h.path != "/v1/model/critical-paths" {
		t.Errorf("path = %q", h.path)
	}
	if h.query != "label=backend" {
		t.Errorf("query = %q", h.query)
	}
	if len(paths) != 1 || paths[0][0].ID != "a" {
		t.Errorf("paths = %v", paths)
	}
}

func TestHTTPClient_GetPhases(t *testing.T) {
	h := &testHandler{responseBody: `{"parallel_groups": [["a"], ["b", "c"]]}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	phases, err := c.GetPhases(context.Background(), model.Filter{})
	if err != nil {
		t.Fatalf("GetPhases() error = %v", err)
	}
	if h.path != "/v1/model/phases" {
		t.Errorf("path = %q", h.path)
	}
	if len(phases) != 2 || len(phases[1]) != 2 {
		t.Errorf("phases = %v", phases)
	}
}

func TestHTTPClient_GetPlan(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"plan_id": "wpp-1",
			"snapshot_id": "wps-1",
			"schedule": {"waves": [], "total_waves": 3, "total_items": 4, "average_throughput": 1.33, "capacity": 2}
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	resp, err := c.GetPlan(context.Background(), 2, model.Filter{})
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if h.path != "/v1/plan" {
		t.Errorf("path = %q", h.path)
	}
	if h.query != "capacity=2" {
		t.Errorf("query = %q", h.query)
	}
	if resp.PlanID != "wpp-1" || resp.Schedule == nil || resp.Schedule.Capacity != 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestHTTPClient_ListBuilds(t *testing.T) {
	h := &testHandler{
		responseBody: `{"builds": [{"id":"wpb-1","snapshot_id":"wps-1","issue_count":4}]}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	builds, err := c.ListBuilds(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListBuilds() error = %v", err)
	}
	if h.path != "/v1/builds" || h.query != "limit=5" {
		t.Errorf("path = %q query = %q", h.path, h.query)
	}
	if len(builds) != 1 || builds[0].ID != "wpb-1" {
		t.Errorf("builds = %v", builds)
	}
}

func TestHTTPClient_Health(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if h.path != "/v1/health" {
		t.Errorf("path = %q", h.path)
	}
	if status != "ok" {
		t.Errorf("status = %q, want ok", status)
	}
}

func TestHTTPClient_AuthHeader(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret-token")
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if h.authHeader != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want Bearer secret-token", h.authHeader)
	}
}

func TestHTTPClient_APIError(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusUnauthorized,
		responseBody: `{"error": "missing bearer token"}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.GetModel(context.Background(), model.Filter{})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "missing bearer token" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestHTTPClient_ImplementsPlannerClient(t *testing.T) {
	var _ PlannerClient = (*HTTPClient)(nil)
}
