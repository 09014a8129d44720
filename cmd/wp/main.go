package main

import (
	"os"

	"github.com/groblegark/waveplan/internal/client"
	"github.com/groblegark/waveplan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	serverURL  string
	authToken  string
	jsonOutput bool
	noColor    bool

	api client.PlannerClient
)

func defaultServer() string {
	if s := os.Getenv("WAVEPLAN_SERVER"); s != "" {
		return s
	}
	if s := activeTrackerServer(); s != "" {
		return s
	}
	return "http://localhost:8080"
}

func defaultToken() string {
	if t := os.Getenv("WAVEPLAN_TOKEN"); t != "" {
		return t
	}
	return activeTrackerToken()
}

var rootCmd = &cobra.Command{
	Use:   "wp",
	Short: "Dependency-aware planning over issue tracker snapshots",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		api = client.NewHTTPClient(serverURL, authToken)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if api != nil {
			api.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "waveplan server URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", defaultToken(), "bearer token for the waveplan server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(readyCmd)
	rootCmd.AddCommand(criticalCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(buildsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(trackerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
