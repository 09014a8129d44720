package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/groblegark/waveplan/internal/model"
)

// HTTPSource fetches a snapshot from a tracker export endpoint.
type HTTPSource struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource for the given export URL. When token is
// non-empty, an Authorization header is set on every request.
func NewHTTPSource(url, token string) *HTTPSource {
	return &HTTPSource{
		url:        strings.TrimRight(url, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

func (s *HTTPSource) FetchSnapshot(ctx context.Context) (*model.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching snapshot: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var snap model.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}
