package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := api.Health(context.Background())
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(map[string]string{"status": status})
			return nil
		}
		fmt.Printf("server: %s (%s)\n", serverURL, status)
		return nil
	},
}
