package main

import (
	"context"

	"github.com/spf13/cobra"
)

var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "List items with no incomplete blockers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := filterFromFlags(cmd)

		var ready []string
		m, local, err := localModel(cmd, f)
		if err != nil {
			return err
		}
		if local {
			ready = m.ReadyItems
		} else {
			ready, err = api.GetReady(context.Background(), f)
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			printJSON(ready)
			return nil
		}
		printReadyList(ready)
		return nil
	},
}

func init() {
	addFilterFlags(readyCmd)
	addFileFlag(readyCmd)
}
