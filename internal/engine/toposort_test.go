package engine

import (
	"testing"

	"github.com/groblegark/waveplan/internal/model"
)

// indexOf returns the position of id in order, or -1.
func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

func TestTopologicalSort_BlockersPrecede(t *testing.T) {
	ids := []string{"d", "c", "b", "a"}
	edges := []model.BlockingEdge{
		edge("a", "b"), edge("a", "c"), edge("b", "d"), edge("c", "d"),
	}
	order := TopologicalSort(ids, edges)
	if len(order) != 4 {
		t.Fatalf("got %v", order)
	}
	for _, e := range edges {
		if indexOf(order, e.From) >= indexOf(order, e.To) {
			t.Errorf("edge %s->%s violated in %v", e.From, e.To, order)
		}
	}
}

func TestTopologicalSort_ReturnsEveryIDOnce(t *testing.T) {
	for _, tc := range []struct {
		name  string
		ids   []string
		edges []model.BlockingEdge
	}{
		{"no edges", []string{"c", "a", "b"}, nil},
		{"chain", []string{"a", "b", "c"}, []model.BlockingEdge{edge("a", "b"), edge("b", "c")}},
		{"full cycle", []string{"a", "b", "c"}, []model.BlockingEdge{edge("a", "b"), edge("b", "c"), edge("c", "a")}},
		{"self loop", []string{"a", "b"}, []model.BlockingEdge{edge("a", "a")}},
	} {
		order := TopologicalSort(tc.ids, tc.edges)
		if len(order) != len(tc.ids) {
			t.Errorf("%s: got %d ids, want %d", tc.name, len(order), len(tc.ids))
			continue
		}
		seen := make(map[string]bool)
		for _, id := range order {
			if seen[id] {
				t.Errorf("%s: duplicate %q in %v", tc.name, id, order)
			}
			seen[id] = true
		}
		for _, id := range tc.ids {
			if !seen[id] {
				t.Errorf("%s: missing %q in %v", tc.name, id, order)
			}
		}
	}
}

func TestTopologicalSort_CycleRemainderInInputOrder(t *testing.T) {
	// x is sortable, the b/c/a cycle is not and must trail in input order.
	ids := []string{"x", "b", "c", "a"}
	edges := []model.BlockingEdge{
		edge("b", "c"), edge("c", "a"), edge("a", "b"),
	}
	order := TopologicalSort(ids, edges)
	want := []string{"x", "b", "c", "a"}
	if !equalStrings(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	ids := []string{"e", "a", "c", "b", "d"}
	edges := []model.BlockingEdge{edge("a", "b"), edge("a", "c")}
	first := TopologicalSort(ids, edges)
	for range 5 {
		if got := TopologicalSort(ids, edges); !equalStrings(got, first) {
			t.Fatalf("order not reproducible: %v vs %v", got, first)
		}
	}
}

func TestTopologicalSort_Empty(t *testing.T) {
	if got := TopologicalSort(nil, nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
