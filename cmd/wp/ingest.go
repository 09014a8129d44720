package main

import (
	"context"
	"fmt"

	"github.com/groblegark/waveplan/internal/model"
	"github.com/groblegark/waveplan/internal/source"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [<file>]",
	Short: "Ingest a dependency snapshot into the server",
	Long: `Ingest reads a raw snapshot and posts it to the waveplan server.

With a file argument (or '-' for stdin) the snapshot is read locally.
Without one, the active tracker profile is asked for a fresh export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var snap *model.Snapshot
		var err error
		if len(args) == 1 {
			snap, err = readSnapshot(args[0])
		} else {
			src, srcErr := activeTrackerSource()
			if srcErr != nil {
				return srcErr
			}
			snap, err = src.FetchSnapshot(ctx)
		}
		if err != nil {
			return err
		}

		resp, err := api.IngestSnapshot(ctx, snap)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("snapshot %s ingested (build %s)\n", resp.SnapshotID, resp.BuildID)
		fmt.Printf("  issues: %d  edges: %d  ready: %d  phases: %d\n",
			resp.IssueCount, resp.EdgeCount, resp.ReadyCount, resp.PhaseCount)
		return nil
	},
}

// activeTrackerSource builds a snapshot source from the active tracker profile.
func activeTrackerSource() (source.Source, error) {
	t, ok := activeTracker()
	if !ok {
		return nil, fmt.Errorf("no active tracker; run 'wp tracker use <name>' or pass a snapshot file")
	}
	if t.Bin != "" {
		return source.NewCLISource(t.Bin, t.Args...), nil
	}
	if t.ExportURL != "" {
		return source.NewHTTPSource(t.ExportURL, t.ExportToken), nil
	}
	return nil, fmt.Errorf("active tracker has no snapshot source; set bin or export_url")
}
