package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/groblegark/waveplan/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version    string    `json:"version"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	HasLatest  bool      `json:"has_latest"`
	BuildCount int       `json:"build_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// exportBuildLimit bounds how much build history one export carries.
const exportBuildLimit = 200

// ExportJSONL writes the latest snapshot and recent build history from the
// store as JSONL to w. An empty store exports a header only.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	latest, err := s.LatestSnapshot(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("latest snapshot: %w", err)
	}

	builds, err := s.ListBuilds(ctx, exportBuildLimit)
	if err != nil {
		return fmt.Errorf("list builds: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	// Write header.
	if err := enc.Encode(header{
		Version:    "1",
		Type:       "header",
		Timestamp:  time.Now().UTC(),
		HasLatest:  latest != nil,
		BuildCount: len(builds),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	// Write the latest snapshot, if any.
	if latest != nil {
		if err := enc.Encode(record{Type: "snapshot", Data: latest}); err != nil {
			return fmt.Errorf("encode snapshot %s: %w", latest.ID, err)
		}
	}

	// Write build history.
	for _, b := range builds {
		if err := enc.Encode(record{Type: "build", Data: b}); err != nil {
			return fmt.Errorf("encode build %s: %w", b.ID, err)
		}
	}

	return nil
}
