package model

import "time"

// BlockingModel is the immutable result of one engine build over a filtered
// snapshot. It is rebuilt in full on every new snapshot or filter change and
// never mutated in place; all fields are derived from the same issue subset.
type BlockingModel struct {
	Issues          []*Issue       `json:"issues"`
	Edges           []BlockingEdge `json:"edges"`
	CompletionOrder []*Issue       `json:"completion_order"`
	CriticalPath    []*Issue       `json:"critical_path"`
	CriticalPaths   [][]*Issue     `json:"critical_paths"`
	ReadyItems      []string       `json:"ready_items"`
	ParallelGroups  [][]string     `json:"parallel_groups"`
	FanOutCounts    map[string]int `json:"fan_out_counts"`
}

// PlanSchedule is a capacity-bounded wave schedule derived from a
// BlockingModel. Complete issues never occupy a wave slot.
type PlanSchedule struct {
	Waves             [][]*Issue `json:"waves"`
	TotalWaves        int        `json:"total_waves"`
	TotalItems        int        `json:"total_items"`
	AverageThroughput float64    `json:"average_throughput"`
	Capacity          int        `json:"capacity"`
}

// SnapshotRecord is a persisted raw snapshot.
type SnapshotRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Snapshot  *Snapshot `json:"snapshot"`
}

// Build is the audit record of one engine run over a snapshot.
type Build struct {
	ID         string    `json:"id"`
	SnapshotID string    `json:"snapshot_id"`
	CreatedAt  time.Time `json:"created_at"`
	IssueCount int       `json:"issue_count"`
	EdgeCount  int       `json:"edge_count"`
	ReadyCount int       `json:"ready_count"`
	PhaseCount int       `json:"phase_count"`
	Filter     Filter    `json:"filter"`
}

// ScheduleRecord is a persisted wave schedule.
type ScheduleRecord struct {
	ID         string        `json:"id"`
	SnapshotID string        `json:"snapshot_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Capacity   int           `json:"capacity"`
	Schedule   *PlanSchedule `json:"schedule"`
}
