package engine

import (
	"strings"

	"github.com/groblegark/waveplan/internal/model"
)

// ApplyFilters narrows ids to the issues matching every provided filter
// field. An empty filter is the identity. Filtering runs before any analysis
// so that all derived views describe the same issue subset.
func ApplyFilters(ids []string, issues map[string]*model.Issue, f model.Filter) []string {
	if f.IsZero() {
		return ids
	}

	var out []string
	for _, id := range ids {
		issue, ok := issues[id]
		if !ok {
			continue
		}
		if f.Priority != nil && issue.Priority != *f.Priority {
			continue
		}
		if f.Assignee != "" && !strings.Contains(issue.Assignee, f.Assignee) {
			continue
		}
		if f.Label != "" && !issue.HasLabel(f.Label) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// FilterEdges keeps only the edges whose both endpoints survived filtering.
func FilterEdges(edges []model.BlockingEdge, ids []string) []model.BlockingEdge {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	var out []model.BlockingEdge
	for _, e := range edges {
		if _, ok := keep[e.From]; !ok {
			continue
		}
		if _, ok := keep[e.To]; !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}
