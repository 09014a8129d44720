package sync

import (
	"context"
	"sort"
	"strings"

	"github.com/groblegark/waveplan/internal/model"
	"github.com/groblegark/waveplan/internal/store"
)

// mockStore is a minimal in-memory store for sync tests.
type mockStore struct {
	snapshots map[string]*model.SnapshotRecord
	builds    map[string]*model.Build
	schedules map[string]*model.ScheduleRecord
}

func newMockStore() *mockStore {
	return &mockStore{
		snapshots: make(map[string]*model.SnapshotRecord),
		builds:    make(map[string]*model.Build),
		schedules: make(map[string]*model.ScheduleRecord),
	}
}

func (m *mockStore) SaveSnapshot(_ context.Context, rec *model.SnapshotRecord) error {
	m.snapshots[rec.ID] = rec
	return nil
}

func (m *mockStore) GetSnapshot(_ context.Context, id string) (*model.SnapshotRecord, error) {
	rec, ok := m.snapshots[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (m *mockStore) LatestSnapshot(_ context.Context) (*model.SnapshotRecord, error) {
	var latest *model.SnapshotRecord
	for _, rec := range m.snapshots {
		if latest == nil || rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	return latest, nil
}

func (m *mockStore) RecordBuild(_ context.Context, build *model.Build) error {
	m.builds[build.ID] = build
	return nil
}

func (m *mockStore) ListBuilds(_ context.Context, limit int) ([]*model.Build, error) {
	var result []*model.Build
	for _, b := range m.builds {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockStore) SaveSchedule(_ context.Context, rec *model.ScheduleRecord) error {
	m.schedules[rec.ID] = rec
	return nil
}

func (m *mockStore) GetSchedule(_ context.Context, id string) (*model.ScheduleRecord, error) {
	rec, ok := m.schedules[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (m *mockStore) Close() error {
	return nil
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
