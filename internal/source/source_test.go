package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const componentJSON = `[{"issues":[{"id":"a","title":"Issue a","status":"open","priority":2},{"id":"b","title":"Issue b","status":"open","priority":2}],"dependencies":[{"issueId":"b","dependsOnId":"a","type":"blocks"}]}]`

func TestCLISource_FetchSnapshot(t *testing.T) {
	// echo stands in for a tracker CLI that prints JSON on stdout.
	s := NewCLISource("echo", componentJSON)
	snap, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if len(snap.Components) != 1 {
		t.Fatalf("components = %d, want 1", len(snap.Components))
	}
	if len(snap.Components[0].Issues) != 2 || len(snap.Components[0].Dependencies) != 1 {
		t.Errorf("got %+v", snap.Components[0])
	}
}

func TestCLISource_CommandFails(t *testing.T) {
	s := NewCLISource("false")
	if _, err := s.FetchSnapshot(context.Background()); err == nil {
		t.Fatal("expected error from failing command")
	}
}

func TestCLISource_BadJSON(t *testing.T) {
	s := NewCLISource("echo", "not json")
	if _, err := s.FetchSnapshot(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCLISource_Defaults(t *testing.T) {
	s := NewCLISource("")
	if s.Bin != "bd" {
		t.Errorf("Bin = %q, want bd", s.Bin)
	}
	if len(s.Args) != 2 || s.Args[0] != "export" {
		t.Errorf("Args = %v", s.Args)
	}
}

func TestHTTPSource_FetchSnapshot(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"components":` + componentJSON + `}`))
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, "tok")
	snap, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(snap.Components) != 1 {
		t.Errorf("components = %d, want 1", len(snap.Components))
	}
}

func TestHTTPSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, "")
	if _, err := s.FetchSnapshot(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}

func TestSourceImplementations(t *testing.T) {
	var _ Source = (*CLISource)(nil)
	var _ Source = (*HTTPSource)(nil)
}
