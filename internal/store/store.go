package store

import (
	"context"
	"errors"

	"github.com/groblegark/waveplan/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for snapshots and derived plans.
type Store interface {
	// Snapshots
	SaveSnapshot(ctx context.Context, rec *model.SnapshotRecord) error
	GetSnapshot(ctx context.Context, id string) (*model.SnapshotRecord, error)
	LatestSnapshot(ctx context.Context) (*model.SnapshotRecord, error)

	// Builds
	RecordBuild(ctx context.Context, build *model.Build) error
	ListBuilds(ctx context.Context, limit int) ([]*model.Build, error)

	// Schedules
	SaveSchedule(ctx context.Context, rec *model.ScheduleRecord) error
	GetSchedule(ctx context.Context, id string) (*model.ScheduleRecord, error)

	// Lifecycle
	Close() error
}
