// Package engine implements the dependency-graph scheduling engine: it turns
// a raw issue/dependency snapshot into a topological completion order,
// critical dependency chains, the ready set, parallel phases, fan-out counts,
// and a capacity-bounded wave schedule.
//
// Every function is pure and synchronous: no I/O, no shared state, no
// mutation of caller-supplied data. Given the same snapshot and parameters
// the output is bit-for-bit reproducible. Malformed records are skipped,
// cycles are tolerated, and empty input yields empty results; nothing here
// returns an error.
package engine

import "github.com/groblegark/waveplan/internal/model"

// Normalize flattens a multi-component snapshot into one issue lookup table
// and one canonical blocking-edge list. It recognizes both raw dependency
// shapes (canonical-origin issueId/dependsOnId and legacy fromId/toId) and
// emits only blocker-to-blocked edges for blocking relation types.
//
// The returned ids preserve first-seen input order; every tie-break
// downstream keys off that order. Records with a missing endpoint, and edges
// referencing issues absent from the snapshot, are dropped silently.
func Normalize(snap *model.Snapshot) (ids []string, issues map[string]*model.Issue, edges []model.BlockingEdge) {
	issues = make(map[string]*model.Issue)
	if snap == nil {
		return nil, issues, nil
	}

	for _, comp := range snap.Components {
		if comp == nil {
			continue
		}
		for _, issue := range comp.Issues {
			if issue == nil || issue.ID == "" {
				continue
			}
			if _, seen := issues[issue.ID]; seen {
				continue
			}
			issues[issue.ID] = issue
			ids = append(ids, issue.ID)
		}
	}

	for _, comp := range snap.Components {
		if comp == nil {
			continue
		}
		for _, dep := range comp.Dependencies {
			from, to, ok := canonicalEdge(dep)
			if !ok {
				continue
			}
			if _, ok := issues[from]; !ok {
				continue
			}
			if _, ok := issues[to]; !ok {
				continue
			}
			edges = append(edges, model.BlockingEdge{From: from, To: to})
		}
	}

	return ids, issues, edges
}

// canonicalEdge resolves a raw dependency record to a blocker-to-blocked
// edge. Non-blocking relation types and records missing either endpoint
// resolve to ok=false.
func canonicalEdge(dep *model.RawDependency) (from, to string, ok bool) {
	if dep == nil || !dep.Type.IsBlocking() {
		return "", "", false
	}

	if dep.IsCanonicalOrigin() {
		// The record always points from the blocked issue to its blocker,
		// regardless of type.
		var issueID, dependsOnID string
		if dep.IssueID != nil {
			issueID = *dep.IssueID
		}
		if dep.DependsOnID != nil {
			dependsOnID = *dep.DependsOnID
		}
		if issueID == "" || dependsOnID == "" {
			return "", "", false
		}
		return dependsOnID, issueID, true
	}

	if dep.FromID == "" || dep.ToID == "" {
		return "", "", false
	}
	if dep.Type == model.DepBlockedBy {
		return dep.ToID, dep.FromID, true
	}
	return dep.FromID, dep.ToID, true
}
