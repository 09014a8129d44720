package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var trackerCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Manage named tracker profiles",
}

var trackerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a named tracker profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		bin, _ := cmd.Flags().GetString("bin")
		binArgs, _ := cmd.Flags().GetStringSlice("arg")
		exportURL, _ := cmd.Flags().GetString("export-url")
		exportToken, _ := cmd.Flags().GetString("export-token")
		server, _ := cmd.Flags().GetString("server")
		token, _ := cmd.Flags().GetString("server-token")
		natsURL, _ := cmd.Flags().GetString("nats")

		if bin == "" && exportURL == "" {
			return fmt.Errorf("a tracker needs a snapshot source; set --bin or --export-url")
		}

		cfg, err := loadTrackersConfig()
		if err != nil {
			return err
		}
		cfg.Trackers[name] = Tracker{
			Bin:         bin,
			Args:        binArgs,
			ExportURL:   exportURL,
			ExportToken: exportToken,
			Server:      server,
			Token:       token,
			NATSURL:     natsURL,
		}
		if err := saveTrackersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("tracker %q added\n", name)
		return nil
	},
}

var trackerRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a named tracker profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadTrackersConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Trackers[name]; !ok {
			return fmt.Errorf("tracker %q not found", name)
		}
		delete(cfg.Trackers, name)
		if cfg.Active == name {
			cfg.Active = ""
		}
		if err := saveTrackersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("tracker %q removed\n", name)
		return nil
	},
}

var trackerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracker profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadTrackersConfig()
		if err != nil {
			return err
		}
		if len(cfg.Trackers) == 0 {
			fmt.Println("no trackers configured")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tSOURCE\tSERVER")
		for name, t := range cfg.Trackers {
			marker := "  "
			if name == cfg.Active {
				marker = "* "
			}
			source := t.ExportURL
			if t.Bin != "" {
				source = t.Bin
				if len(t.Args) > 0 {
					source += " " + strings.Join(t.Args, " ")
				}
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", marker, name, source, t.Server)
		}
		return w.Flush()
	},
}

var trackerUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active tracker profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadTrackersConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Trackers[name]; !ok {
			return fmt.Errorf("tracker %q not found", name)
		}
		cfg.Active = name
		if err := saveTrackersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("active tracker set to %q\n", name)
		return nil
	},
}

var trackerShowCmd = &cobra.Command{
	Use:   "show [<name>]",
	Short: "Show details for a tracker profile (defaults to active)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadTrackersConfig()
		if err != nil {
			return err
		}

		name := cfg.Active
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("no active tracker; specify a name or run 'wp tracker use <name>'")
		}

		t, ok := cfg.Trackers[name]
		if !ok {
			return fmt.Errorf("tracker %q not found", name)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		active := ""
		if name == cfg.Active {
			active = " (active)"
		}
		fmt.Fprintf(w, "name:\t%s%s\n", name, active)
		if t.Bin != "" {
			fmt.Fprintf(w, "bin:\t%s\n", t.Bin)
			if len(t.Args) > 0 {
				fmt.Fprintf(w, "args:\t%s\n", strings.Join(t.Args, " "))
			}
		}
		if t.ExportURL != "" {
			fmt.Fprintf(w, "export_url:\t%s\n", t.ExportURL)
		}
		if t.Server != "" {
			fmt.Fprintf(w, "server:\t%s\n", t.Server)
		}
		if t.Token != "" {
			masked := t.Token
			if len(masked) > 8 {
				masked = masked[:8] + strings.Repeat("*", len(masked)-8)
			}
			fmt.Fprintf(w, "token:\t%s\n", masked)
		}
		if t.NATSURL != "" {
			fmt.Fprintf(w, "nats_url:\t%s\n", t.NATSURL)
		}
		return w.Flush()
	},
}

func init() {
	trackerAddCmd.Flags().String("bin", "", "tracker CLI binary that prints snapshot JSON")
	trackerAddCmd.Flags().StringSlice("arg", nil, "argument for the tracker CLI (repeatable)")
	trackerAddCmd.Flags().String("export-url", "", "HTTP endpoint that serves snapshot JSON")
	trackerAddCmd.Flags().String("export-token", "", "bearer token for the export endpoint")
	trackerAddCmd.Flags().String("server", "", "waveplan server URL for this tracker")
	trackerAddCmd.Flags().String("server-token", "", "bearer token for the waveplan server")
	trackerAddCmd.Flags().String("nats", "", "NATS URL for event streaming")

	trackerCmd.AddCommand(trackerAddCmd)
	trackerCmd.AddCommand(trackerRemoveCmd)
	trackerCmd.AddCommand(trackerListCmd)
	trackerCmd.AddCommand(trackerUseCmd)
	trackerCmd.AddCommand(trackerShowCmd)
}
