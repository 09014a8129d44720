package events

import (
	"context"

	"github.com/groblegark/waveplan/internal/model"
)

// Event topic constants
const (
	TopicSnapshotIngested = "waveplan.snapshot.ingested"
	TopicModelRebuilt     = "waveplan.model.rebuilt"
	TopicPlanBuilt        = "waveplan.plan.built"
)

// Event types

type SnapshotIngested struct {
	SnapshotID string `json:"snapshot_id"`
	IssueCount int    `json:"issue_count"`
}

type ModelRebuilt struct {
	SnapshotID string        `json:"snapshot_id"`
	BuildID    string        `json:"build_id"`
	IssueCount int           `json:"issue_count"`
	EdgeCount  int           `json:"edge_count"`
	ReadyCount int           `json:"ready_count"`
	PhaseCount int           `json:"phase_count"`
	Filter     *model.Filter `json:"filter,omitempty"`
}

type PlanBuilt struct {
	PlanID     string `json:"plan_id"`
	SnapshotID string `json:"snapshot_id"`
	Capacity   int    `json:"capacity"`
	TotalWaves int    `json:"total_waves"`
	TotalItems int    `json:"total_items"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
