package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/groblegark/waveplan/internal/events"
	"github.com/groblegark/waveplan/internal/model"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for items becoming ready",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		once, _ := cmd.Flags().GetBool("once")
		f := filterFromFlags(cmd)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		seen := make(map[string]bool)

		// Initial query.
		if err := queryAndPrint(ctx, f, seen); err != nil {
			return err
		}
		if once {
			return nil
		}

		// Event-driven when NATS is reachable, polling otherwise.
		natsURL := os.Getenv("WAVEPLAN_NATS_URL")
		if natsURL == "" {
			natsURL = activeTrackerNATSURL()
		}
		if natsURL != "" {
			return watchNATS(ctx, natsURL, f, seen)
		}
		return watchPoll(ctx, interval, f, seen)
	},
}

// watchNATS subscribes to server events and re-queries on changes with
// debounce.
func watchNATS(ctx context.Context, natsURL string, f model.Filter, seen map[string]bool) error {
	// reconnectCh receives a signal when the NATS client reconnects after
	// a disconnect, so we can immediately re-query for missed events.
	reconnectCh := make(chan struct{}, 1)

	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
			select {
			case reconnectCh <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("waveplan.>")
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	debounce := time.NewTimer(0)
	debounce.Stop()
	// Drain the timer channel in case it fired between NewTimer and Stop.
	select {
	case <-debounce.C:
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			debounce.Reset(200 * time.Millisecond)
		case <-reconnectCh:
			debounce.Reset(0) // immediate re-query
		case <-debounce.C:
			if err := queryAndPrint(ctx, f, seen); err != nil {
				return err
			}
		}
	}
}

// watchPoll polls for changes at the given interval.
func watchPoll(ctx context.Context, interval time.Duration, f model.Filter, seen map[string]bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
		if err := queryAndPrint(ctx, f, seen); err != nil {
			return err
		}
	}
}

// queryAndPrint fetches the ready set, diffs it against the seen set, and
// prints items that became ready since the last query.
func queryAndPrint(ctx context.Context, f model.Filter, seen map[string]bool) error {
	ready, err := api.GetReady(ctx, f)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	newlyReady := diffReady(ready, seen)
	if len(newlyReady) > 0 {
		if jsonOutput {
			printJSON(newlyReady)
		} else {
			printReadyList(newlyReady)
		}
	}
	return nil
}

// diffReady returns items in ready that were not seen before, and replaces
// the seen set so items that leave and re-enter the ready set are reported
// again.
func diffReady(ready []string, seen map[string]bool) []string {
	var newlyReady []string
	for _, id := range ready {
		if !seen[id] {
			newlyReady = append(newlyReady, id)
		}
	}
	for id := range seen {
		delete(seen, id)
	}
	for _, id := range ready {
		seen[id] = true
	}
	return newlyReady
}

func init() {
	watchCmd.Flags().Duration("interval", 5*time.Second, "polling interval")
	watchCmd.Flags().Bool("once", false, "exit after first query")
	addFilterFlags(watchCmd)
}
