package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/groblegark/waveplan/internal/engine"
	"github.com/groblegark/waveplan/internal/model"
	"github.com/spf13/cobra"
)

// addFilterFlags registers the shared issue filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("priority", -1, "only include issues with this exact priority (0-4)")
	cmd.Flags().String("assignee", "", "only include issues whose assignee contains this substring")
	cmd.Flags().String("label", "", "only include issues carrying this label")
}

func filterFromFlags(cmd *cobra.Command) model.Filter {
	var f model.Filter
	if p, _ := cmd.Flags().GetInt("priority"); p >= 0 {
		f.Priority = &p
	}
	f.Assignee, _ = cmd.Flags().GetString("assignee")
	f.Label, _ = cmd.Flags().GetString("label")
	return f
}

// addFileFlag registers --file for commands that can analyze a local snapshot
// without a server.
func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "analyze a local snapshot file instead of querying the server ('-' for stdin)")
}

// readSnapshot reads a snapshot from the given path, or stdin when path is "-".
func readSnapshot(path string) (*model.Snapshot, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

// localModel builds a model from --file when set. The second return value
// reports whether local mode was requested.
func localModel(cmd *cobra.Command, f model.Filter) (*model.BlockingModel, bool, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return nil, false, nil
	}
	snap, err := readSnapshot(path)
	if err != nil {
		return nil, true, err
	}
	return engine.BuildModel(snap, f), true, nil
}
