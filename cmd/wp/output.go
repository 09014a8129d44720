package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/groblegark/waveplan/internal/model"
	"github.com/groblegark/waveplan/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func statusCell(s model.Status) string {
	if s.IsComplete() {
		return ui.RenderMuted(s.String())
	}
	if s == model.StatusBlocked {
		return ui.RenderBlocked(s.String())
	}
	return s.String()
}

func printModelSummary(m *model.BlockingModel) {
	fmt.Println(ui.RenderAccent("Model"))
	fmt.Printf("  issues: %d  edges: %d  ready: %d  phases: %d\n\n",
		len(m.Issues), len(m.Edges), len(m.ReadyItems), len(m.ParallelGroups))

	ready := make(map[string]bool, len(m.ReadyItems))
	for _, id := range m.ReadyItems {
		ready[id] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tID\tSTATUS\tPRIORITY\tFAN-OUT\tTITLE")
	for i, issue := range m.CompletionOrder {
		id := issue.ID
		if ready[id] {
			id = ui.RenderReady(id)
		}
		title := issue.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			i+1, id, statusCell(issue.Status), issue.Priority, m.FanOutCounts[issue.ID], title)
	}
	w.Flush()
}

func printReadyList(ready []string) {
	if len(ready) == 0 {
		fmt.Println("no ready items")
		return
	}
	fmt.Println(ui.RenderAccent("Ready"))
	for _, id := range ready {
		fmt.Printf("  %s\n", ui.RenderReady(id))
	}
}

func printCriticalPaths(paths [][]*model.Issue) {
	if len(paths) == 0 {
		fmt.Println("no critical paths")
		return
	}
	for i, path := range paths {
		ids := make([]string, 0, len(path))
		for _, issue := range path {
			ids = append(ids, issue.ID)
		}
		label := fmt.Sprintf("Path %d (%d items)", i+1, len(path))
		if i == 0 {
			label = fmt.Sprintf("Critical path (%d items)", len(path))
		}
		fmt.Println(ui.RenderAccent(label))
		fmt.Printf("  %s\n", strings.Join(ids, " -> "))
	}
}

func printPhases(groups [][]string) {
	if len(groups) == 0 {
		fmt.Println("no phases")
		return
	}
	for i, group := range groups {
		fmt.Printf("%s %s\n",
			ui.RenderAccent(fmt.Sprintf("Phase %d", i+1)),
			strings.Join(group, ", "))
	}
}

func printSchedule(s *model.PlanSchedule) {
	fmt.Println(ui.RenderAccent(fmt.Sprintf("Plan (capacity %d)", s.Capacity)))
	fmt.Printf("  waves: %d  items: %d  avg throughput: %.2f\n\n",
		s.TotalWaves, s.TotalItems, s.AverageThroughput)

	for i, wave := range s.Waves {
		ids := make([]string, 0, len(wave))
		for _, issue := range wave {
			ids = append(ids, issue.ID)
		}
		fmt.Printf("%s %s\n",
			ui.RenderAccent(fmt.Sprintf("Wave %d", i+1)),
			strings.Join(ids, ", "))
	}
}

func printBuildsTable(builds []*model.Build) {
	if len(builds) == 0 {
		fmt.Println("no builds recorded")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSNAPSHOT\tISSUES\tEDGES\tREADY\tPHASES\tCREATED")
	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			b.ID, b.SnapshotID, b.IssueCount, b.EdgeCount, b.ReadyCount, b.PhaseCount,
			b.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	fmt.Printf("\n%d builds\n", len(builds))
}
