package engine

import (
	"math"
	"sort"

	"github.com/groblegark/waveplan/internal/model"
)

// DefaultMaxPaths is the number of critical paths reported by a model build.
const DefaultMaxPaths = 3

// significanceFloor suppresses minor chains: a ranked path is only reported
// if its total weight is at least this fraction of the best path's weight.
const significanceFloor = 0.7

// issueWeights assigns a weight to every issue. If any issue in the active
// set carries a duration estimate, estimates are used directly (missing ones
// default to 1); otherwise weight is derived from priority as
// 3^(4-priority), giving critical work exponential preference over backlog
// when ranking chains by total weight rather than hop count.
func issueWeights(ids []string, issues map[string]*model.Issue) map[string]float64 {
	useEstimates := false
	for _, id := range ids {
		if issue, ok := issues[id]; ok && issue.EstimateMinutes != nil {
			useEstimates = true
			break
		}
	}

	weights := make(map[string]float64, len(ids))
	for _, id := range ids {
		issue, ok := issues[id]
		switch {
		case !ok:
			weights[id] = 1
		case useEstimates:
			if issue.EstimateMinutes != nil {
				weights[id] = *issue.EstimateMinutes
			} else {
				weights[id] = 1
			}
		default:
			p := issue.Priority
			if p < model.PriorityCritical {
				p = model.PriorityCritical
			}
			if p > model.PriorityBacklog {
				p = model.PriorityBacklog
			}
			weights[id] = math.Pow(3, float64(model.PriorityBacklog-p))
		}
	}
	return weights
}

// FindCriticalPaths returns up to maxPaths highest-weight blocking chains,
// each ordered blocker-first. Paths are extracted from a longest-weighted-
// path dynamic program over the completion order, ranked by terminal weight,
// and accepted only while node-disjoint from already accepted paths and
// within the significance floor of the best chain. Ties rank by id so the
// result is reproducible.
func FindCriticalPaths(ids []string, edges []model.BlockingEdge, issues map[string]*model.Issue, maxPaths int) [][]*model.Issue {
	if len(ids) == 0 || maxPaths <= 0 {
		return nil
	}

	weights := issueWeights(ids, issues)
	order := TopologicalSort(ids, edges)

	adj, _ := adjacency(ids, edges)
	dist := make(map[string]float64, len(ids))
	pred := make(map[string]string, len(ids))
	for _, id := range ids {
		dist[id] = weights[id]
	}
	for _, u := range order {
		for _, v := range adj[u] {
			if d := dist[u] + weights[v]; d > dist[v] {
				dist[v] = d
				pred[v] = u
			}
		}
	}

	ranked := make([]string, len(ids))
	copy(ranked, ids)
	sort.Slice(ranked, func(i, j int) bool {
		if dist[ranked[i]] != dist[ranked[j]] {
			return dist[ranked[i]] > dist[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	best := dist[ranked[0]]
	claimed := make(map[string]struct{}, len(ids))

	var paths [][]*model.Issue
	for _, end := range ranked {
		if len(paths) >= maxPaths {
			break
		}
		if dist[end] < best*significanceFloor {
			break
		}

		chain := reconstruct(end, pred)
		disjoint := true
		for _, id := range chain {
			if _, taken := claimed[id]; taken {
				disjoint = false
				break
			}
		}
		if !disjoint {
			continue
		}

		path := make([]*model.Issue, 0, len(chain))
		for _, id := range chain {
			claimed[id] = struct{}{}
			if issue, ok := issues[id]; ok {
				path = append(path, issue)
			}
		}
		paths = append(paths, path)
	}
	return paths
}

// FindCriticalPath returns only the single best chain. Retained for callers
// that render one path.
func FindCriticalPath(ids []string, edges []model.BlockingEdge, issues map[string]*model.Issue) []*model.Issue {
	paths := FindCriticalPaths(ids, edges, issues, 1)
	if len(paths) == 0 {
		return nil
	}
	return paths[0]
}

// reconstruct walks the predecessor chain from end back to its start and
// returns the ids blocker-first. The guard set stops predecessor loops that
// cycles can introduce.
func reconstruct(end string, pred map[string]string) []string {
	var rev []string
	seen := make(map[string]struct{})
	for id := end; ; {
		if _, ok := seen[id]; ok {
			break
		}
		seen[id] = struct{}{}
		rev = append(rev, id)
		prev, ok := pred[id]
		if !ok {
			break
		}
		id = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
