package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/groblegark/waveplan/internal/model"
)

func TestExportJSONL_Empty(t *testing.T) {
	ms := newMockStore()
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), ms, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (header only), got %d", len(lines))
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.Version != "1" || h.Type != "header" || h.HasLatest || h.BuildCount != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestExportJSONL_WithSnapshotAndBuilds(t *testing.T) {
	ms := newMockStore()
	now := time.Now().UTC()

	ms.snapshots["wps-old"] = &model.SnapshotRecord{
		ID: "wps-old", CreatedAt: now.Add(-time.Hour),
		Snapshot: &model.Snapshot{},
	}
	ms.snapshots["wps-new"] = &model.SnapshotRecord{
		ID: "wps-new", CreatedAt: now,
		Snapshot: &model.Snapshot{Components: []*model.Component{
			{Issues: []*model.Issue{{ID: "a", Title: "Issue a", Status: model.StatusOpen}}},
		}},
	}
	ms.builds["wpb-1"] = &model.Build{ID: "wpb-1", SnapshotID: "wps-old", CreatedAt: now.Add(-time.Hour), IssueCount: 0}
	ms.builds["wpb-2"] = &model.Build{ID: "wpb-2", SnapshotID: "wps-new", CreatedAt: now, IssueCount: 1}

	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), ms, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	// 1 header + 1 snapshot + 2 builds = 4 lines
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if !h.HasLatest || h.BuildCount != 2 {
		t.Fatalf("header: %+v", h)
	}

	// Only the latest snapshot is exported.
	var snapRec struct {
		Type string                `json:"type"`
		Data *model.SnapshotRecord `json:"data"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &snapRec); err != nil {
		t.Fatalf("unmarshal snapshot line: %v", err)
	}
	if snapRec.Type != "snapshot" || snapRec.Data.ID != "wps-new" {
		t.Fatalf("snapshot record: %+v", snapRec)
	}

	// Builds follow, newest first.
	var buildRec struct {
		Type string       `json:"type"`
		Data *model.Build `json:"data"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &buildRec); err != nil {
		t.Fatalf("unmarshal build line: %v", err)
	}
	if buildRec.Type != "build" || buildRec.Data.ID != "wpb-2" {
		t.Fatalf("build record: %+v", buildRec)
	}
}
