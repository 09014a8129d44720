package main

import (
	"context"

	"github.com/groblegark/waveplan/internal/model"
	"github.com/spf13/cobra"
)

var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "Show the weighted critical paths through the dependency graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := filterFromFlags(cmd)

		var paths [][]*model.Issue
		m, local, err := localModel(cmd, f)
		if err != nil {
			return err
		}
		if local {
			paths = m.CriticalPaths
		} else {
			paths, err = api.GetCriticalPaths(context.Background(), f)
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			printJSON(paths)
			return nil
		}
		printCriticalPaths(paths)
		return nil
	},
}

func init() {
	addFilterFlags(criticalCmd)
	addFileFlag(criticalCmd)
}
