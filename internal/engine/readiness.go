package engine

import "github.com/groblegark/waveplan/internal/model"

// isComplete reports whether the issue for id is closed or done. Unknown ids
// count as complete so a stale reference never blocks anything.
func isComplete(id string, issues map[string]*model.Issue) bool {
	issue, ok := issues[id]
	if !ok {
		return true
	}
	return issue.Status.IsComplete()
}

// FindReadyItems returns the ids of issues that can be worked right now: not
// themselves complete, with every blocker complete. Issues without blockers
// are always ready. Result order follows input order.
func FindReadyItems(ids []string, edges []model.BlockingEdge, issues map[string]*model.Issue) []string {
	blockers := make(map[string][]string, len(ids))
	for _, e := range edges {
		blockers[e.To] = append(blockers[e.To], e.From)
	}

	var ready []string
	for _, id := range ids {
		if isComplete(id, issues) {
			continue
		}
		open := false
		for _, b := range blockers[id] {
			if !isComplete(b, issues) {
				open = true
				break
			}
		}
		if !open {
			ready = append(ready, id)
		}
	}
	return ready
}

// FindParallelGroups assigns every issue to a parallelizable phase and
// returns the phases in ascending order. Phase depth ignores edges whose
// source is already complete, so a finished blocker never pushes its
// dependents into a later phase than necessary. Nodes the layering cannot
// reach (cycle members) default to phase 0.
func FindParallelGroups(ids []string, edges []model.BlockingEdge, issues map[string]*model.Issue) [][]string {
	if len(ids) == 0 {
		return nil
	}

	// Active edges only: completed blockers do not count toward depth.
	adj := make(map[string][]string, len(ids))
	inDegree := make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, e := range edges {
		if isComplete(e.From, issues) {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		inDegree[e.To]++
	}

	phase := make(map[string]int, len(ids))
	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adj[id] {
			if phase[id]+1 > phase[next] {
				phase[next] = phase[id] + 1
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	maxPhase := 0
	for _, id := range ids {
		if phase[id] > maxPhase {
			maxPhase = phase[id]
		}
	}

	groups := make([][]string, maxPhase+1)
	for _, id := range ids {
		groups[phase[id]] = append(groups[phase[id]], id)
	}
	return groups
}
