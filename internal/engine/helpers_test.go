package engine

import "github.com/groblegark/waveplan/internal/model"

// Test fixtures shared across the engine tests.

func openIssue(id string, priority int) *model.Issue {
	return &model.Issue{ID: id, Title: "Issue " + id, Status: model.StatusOpen, Priority: priority}
}

func issueWithStatus(id string, status model.Status) *model.Issue {
	return &model.Issue{ID: id, Title: "Issue " + id, Status: status, Priority: 2}
}

func estimated(id string, minutes float64) *model.Issue {
	i := openIssue(id, 2)
	i.EstimateMinutes = &minutes
	return i
}

func edge(from, to string) model.BlockingEdge {
	return model.BlockingEdge{From: from, To: to}
}

func canonicalDep(issueID, dependsOnID string, typ model.DependencyType) *model.RawDependency {
	return &model.RawDependency{IssueID: &issueID, DependsOnID: &dependsOnID, Type: typ}
}

func legacyDep(fromID, toID string, typ model.DependencyType) *model.RawDependency {
	return &model.RawDependency{FromID: fromID, ToID: toID, Type: typ}
}

func snapshotOf(issues []*model.Issue, deps []*model.RawDependency) *model.Snapshot {
	return &model.Snapshot{Components: []*model.Component{{Issues: issues, Dependencies: deps}}}
}

func issueMapOf(issues ...*model.Issue) (ids []string, m map[string]*model.Issue) {
	m = make(map[string]*model.Issue, len(issues))
	for _, i := range issues {
		ids = append(ids, i.ID)
		m[i.ID] = i
	}
	return ids, m
}

func pathIDs(path []*model.Issue) []string {
	ids := make([]string, 0, len(path))
	for _, i := range path {
		ids = append(ids, i.ID)
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
