package main

import (
	"context"

	"github.com/groblegark/waveplan/internal/engine"
	"github.com/groblegark/waveplan/internal/model"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a capacity-bounded wave schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := filterFromFlags(cmd)
		capacity, _ := cmd.Flags().GetInt("capacity")

		var schedule *model.PlanSchedule
		m, local, err := localModel(cmd, f)
		if err != nil {
			return err
		}
		if local {
			schedule = engine.Schedule(m, capacity)
		} else {
			resp, err := api.GetPlan(context.Background(), capacity, f)
			if err != nil {
				return err
			}
			schedule = resp.Schedule
		}

		if jsonOutput {
			printJSON(schedule)
			return nil
		}
		printSchedule(schedule)
		return nil
	},
}

func init() {
	planCmd.Flags().Int("capacity", 3, "maximum concurrent items per wave")
	addFilterFlags(planCmd)
	addFileFlag(planCmd)
}
