package main

import (
	"context"

	"github.com/spf13/cobra"
)

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List recorded model builds, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		builds, err := api.ListBuilds(context.Background(), limit)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(builds)
			return nil
		}
		printBuildsTable(builds)
		return nil
	},
}

func init() {
	buildsCmd.Flags().Int("limit", 0, "maximum builds to return (0 = server default)")
}
