// Package source fetches raw dependency snapshots from issue trackers.
package source

import (
	"context"

	"github.com/groblegark/waveplan/internal/model"
)

// Source produces a raw snapshot from a tracker backend.
type Source interface {
	FetchSnapshot(ctx context.Context) (*model.Snapshot, error)
}
