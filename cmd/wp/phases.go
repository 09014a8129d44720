package main

import (
	"context"

	"github.com/spf13/cobra"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show parallel execution phases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := filterFromFlags(cmd)

		var groups [][]string
		m, local, err := localModel(cmd, f)
		if err != nil {
			return err
		}
		if local {
			groups = m.ParallelGroups
		} else {
			groups, err = api.GetPhases(context.Background(), f)
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			printJSON(groups)
			return nil
		}
		printPhases(groups)
		return nil
	},
}

func init() {
	addFilterFlags(phasesCmd)
	addFileFlag(phasesCmd)
}
