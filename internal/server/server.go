// Package server exposes the planning engine over HTTP/JSON.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/groblegark/waveplan/internal/engine"
	"github.com/groblegark/waveplan/internal/events"
	"github.com/groblegark/waveplan/internal/idgen"
	"github.com/groblegark/waveplan/internal/model"
	"github.com/groblegark/waveplan/internal/store"
)

// PlannerServer serves the waveplan HTTP API backed by the given store and
// event publisher.
type PlannerServer struct {
	store           store.Store
	publisher       events.Publisher
	defaultCapacity int
}

// NewPlannerServer returns a new PlannerServer. defaultCapacity is used for
// plan requests that do not specify one; values below 1 fall back to 3.
func NewPlannerServer(s store.Store, p events.Publisher, defaultCapacity int) *PlannerServer {
	if defaultCapacity < 1 {
		defaultCapacity = 3
	}
	return &PlannerServer{
		store:           s,
		publisher:       p,
		defaultCapacity: defaultCapacity,
	}
}

// publish sends an event best-effort; failures are logged but never block the
// request that triggered them.
func (s *PlannerServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

// ingest persists a snapshot, rebuilds the model over it, and records the
// build. Returns the stored record and the audit build.
func (s *PlannerServer) ingest(ctx context.Context, snap *model.Snapshot) (*model.SnapshotRecord, *model.Build, error) {
	snapshotID, err := idgen.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	buildID, err := idgen.Build()
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	rec := &model.SnapshotRecord{ID: snapshotID, CreatedAt: now, Snapshot: snap}
	if err := s.store.SaveSnapshot(ctx, rec); err != nil {
		return nil, nil, err
	}

	m := engine.BuildModel(snap, model.Filter{})
	build := &model.Build{
		ID:         buildID,
		SnapshotID: snapshotID,
		CreatedAt:  now,
		IssueCount: len(m.Issues),
		EdgeCount:  len(m.Edges),
		ReadyCount: len(m.ReadyItems),
		PhaseCount: len(m.ParallelGroups),
	}
	if err := s.store.RecordBuild(ctx, build); err != nil {
		return nil, nil, err
	}

	s.publish(ctx, events.TopicSnapshotIngested, events.SnapshotIngested{
		SnapshotID: snapshotID,
		IssueCount: build.IssueCount,
	})
	s.publish(ctx, events.TopicModelRebuilt, events.ModelRebuilt{
		SnapshotID: snapshotID,
		BuildID:    buildID,
		IssueCount: build.IssueCount,
		EdgeCount:  build.EdgeCount,
		ReadyCount: build.ReadyCount,
		PhaseCount: build.PhaseCount,
	})

	return rec, build, nil
}

// latestModel rebuilds the model from the most recent snapshot, filtered.
func (s *PlannerServer) latestModel(ctx context.Context, f model.Filter) (*model.SnapshotRecord, *model.BlockingModel, error) {
	rec, err := s.store.LatestSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return rec, engine.BuildModel(rec.Snapshot, f), nil
}

// buildPlan derives a wave schedule from the latest snapshot and persists it.
func (s *PlannerServer) buildPlan(ctx context.Context, capacity int, f model.Filter) (*model.ScheduleRecord, error) {
	rec, m, err := s.latestModel(ctx, f)
	if err != nil {
		return nil, err
	}

	planID, err := idgen.Plan()
	if err != nil {
		return nil, err
	}

	schedule := engine.Schedule(m, capacity)
	planRec := &model.ScheduleRecord{
		ID:         planID,
		SnapshotID: rec.ID,
		CreatedAt:  time.Now().UTC(),
		Capacity:   schedule.Capacity,
		Schedule:   schedule,
	}
	if err := s.store.SaveSchedule(ctx, planRec); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TopicPlanBuilt, events.PlanBuilt{
		PlanID:     planID,
		SnapshotID: rec.ID,
		Capacity:   schedule.Capacity,
		TotalWaves: schedule.TotalWaves,
		TotalItems: schedule.TotalItems,
	})

	return planRec, nil
}

// isNotFound reports whether err means no snapshot has been ingested yet.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
