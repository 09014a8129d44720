package engine

import "github.com/groblegark/waveplan/internal/model"

// BuildModel runs the full pipeline over one snapshot: normalize, filter,
// then the independent analyses (completion order, critical paths, ready
// set, phases, fan-out) over the same filtered issue subset. The result is
// assembled once and should be treated as immutable; rebuild it on every new
// snapshot or filter change.
func BuildModel(snap *model.Snapshot, f model.Filter) *model.BlockingModel {
	ids, issueMap, edges := Normalize(snap)
	ids = ApplyFilters(ids, issueMap, f)
	edges = FilterEdges(edges, ids)

	issues := make([]*model.Issue, 0, len(ids))
	for _, id := range ids {
		issues = append(issues, issueMap[id])
	}

	order := TopologicalSort(ids, edges)
	completionOrder := make([]*model.Issue, 0, len(order))
	for _, id := range order {
		completionOrder = append(completionOrder, issueMap[id])
	}

	m := &model.BlockingModel{
		Issues:          issues,
		Edges:           edges,
		CompletionOrder: completionOrder,
		CriticalPaths:   FindCriticalPaths(ids, edges, issueMap, DefaultMaxPaths),
		ReadyItems:      FindReadyItems(ids, edges, issueMap),
		ParallelGroups:  FindParallelGroups(ids, edges, issueMap),
		FanOutCounts:    CalculateFanOut(ids, edges),
	}
	if len(m.CriticalPaths) > 0 {
		m.CriticalPath = m.CriticalPaths[0]
	}

	// Callers render these directly; keep them non-nil so JSON output is
	// always well-formed arrays.
	if m.Edges == nil {
		m.Edges = []model.BlockingEdge{}
	}
	if m.CriticalPath == nil {
		m.CriticalPath = []*model.Issue{}
	}
	if m.CriticalPaths == nil {
		m.CriticalPaths = [][]*model.Issue{}
	}
	if m.ReadyItems == nil {
		m.ReadyItems = []string{}
	}
	if m.ParallelGroups == nil {
		m.ParallelGroups = [][]string{}
	}
	return m
}

// Schedule derives a capacity-bounded wave plan from an already built model.
func Schedule(m *model.BlockingModel, capacity int) *model.PlanSchedule {
	order := make([]string, 0, len(m.CompletionOrder))
	for _, issue := range m.CompletionOrder {
		order = append(order, issue.ID)
	}
	return BuildPlanSchedule(m.Issues, m.Edges, order, capacity)
}
