// Package client provides a transport-agnostic interface for the waveplan
// service and an HTTP/JSON implementation that talks to the waveplan REST API.
package client

import (
	"context"

	"github.com/groblegark/waveplan/internal/model"
)

// PlannerClient is the interface that all wp CLI commands use to communicate
// with the waveplan server. It is implemented by HTTPClient (default) and can
// be backed by any transport.
type PlannerClient interface {
	// Snapshots
	IngestSnapshot(ctx context.Context, snap *model.Snapshot) (*IngestResponse, error)

	// Model projections
	GetModel(ctx context.Context, f model.Filter) (*model.BlockingModel, error)
	GetReady(ctx context.Context, f model.Filter) ([]string, error)
	GetCriticalPaths(ctx context.Context, f model.Filter) ([][]*model.Issue, error)
	GetPhases(ctx context.Context, f model.Filter) ([][]string, error)

	// Plans
	GetPlan(ctx context.Context, capacity int, f model.Filter) (*PlanResponse, error)

	// Builds
	ListBuilds(ctx context.Context, limit int) ([]*model.Build, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// IngestResponse is the response from IngestSnapshot.
type IngestResponse struct {
	SnapshotID string `json:"snapshot_id"`
	BuildID    string `json:"build_id"`
	IssueCount int    `json:"issue_count"`
	EdgeCount  int    `json:"edge_count"`
	ReadyCount int    `json:"ready_count"`
	PhaseCount int    `json:"phase_count"`
}

// PlanResponse is the response from GetPlan.
type PlanResponse struct {
	PlanID     string              `json:"plan_id"`
	SnapshotID string              `json:"snapshot_id"`
	Schedule   *model.PlanSchedule `json:"schedule"`
}
