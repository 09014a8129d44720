package main

import (
	"context"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the full blocking model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := filterFromFlags(cmd)

		m, local, err := localModel(cmd, f)
		if err != nil {
			return err
		}
		if !local {
			m, err = api.GetModel(context.Background(), f)
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			printJSON(m)
			return nil
		}
		printModelSummary(m)
		return nil
	},
}

func init() {
	addFilterFlags(analyzeCmd)
	addFileFlag(analyzeCmd)
}
