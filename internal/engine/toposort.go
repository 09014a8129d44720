package engine

import "github.com/groblegark/waveplan/internal/model"

// adjacency builds forward adjacency and in-degree maps from canonical
// edges, preserving edge input order within each list.
func adjacency(ids []string, edges []model.BlockingEdge) (adj map[string][]string, inDegree map[string]int) {
	adj = make(map[string][]string, len(ids))
	inDegree = make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		inDegree[e.To]++
	}
	return adj, inDegree
}

// TopologicalSort orders ids so that every blocker precedes what it blocks,
// using Kahn's algorithm. Nodes trapped in cycles are appended afterward in
// their original input order, so the result always contains every input id
// exactly once and every caller can iterate it without termination checks.
// Within cycles the order is not a valid dependency order.
func TopologicalSort(ids []string, edges []model.BlockingEdge) []string {
	adj, inDegree := adjacency(ids, edges)

	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	placed := make(map[string]struct{}, len(ids))
	order := make([]string, 0, len(ids))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		placed[id] = struct{}{}

		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Cycle remainder: append in input order.
	for _, id := range ids {
		if _, ok := placed[id]; !ok {
			order = append(order, id)
		}
	}
	return order
}
