package engine

import "github.com/groblegark/waveplan/internal/model"

// visitState is the shared traversal guard used by the engine's depth-first
// walks: a node being visited is never re-entered, which is what makes every
// algorithm here cycle-tolerant.
type visitState uint8

const (
	unvisited visitState = iota
	visiting
	visited
)

// CalculateFanOut computes, for each issue, how many distinct issues its
// completion would transitively unblock by following outgoing blocking
// edges. Reachable sets are memoized so descendants are walked once, not
// once per ancestor; on a cycle the in-progress node contributes whatever
// partial set has been computed so far.
func CalculateFanOut(ids []string, edges []model.BlockingEdge) map[string]int {
	adj, _ := adjacency(ids, edges)

	state := make(map[string]visitState, len(ids))
	reach := make(map[string]map[string]struct{}, len(ids))

	var walk func(id string) map[string]struct{}
	walk = func(id string) map[string]struct{} {
		if state[id] == visited || state[id] == visiting {
			return reach[id]
		}
		state[id] = visiting

		set := make(map[string]struct{})
		reach[id] = set
		for _, next := range adj[id] {
			set[next] = struct{}{}
			for desc := range walk(next) {
				set[desc] = struct{}{}
			}
		}
		// A cycle through this node could have marked it reachable from
		// itself; it never unblocks itself.
		delete(set, id)

		state[id] = visited
		return set
	}

	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id] = len(walk(id))
	}
	return counts
}
