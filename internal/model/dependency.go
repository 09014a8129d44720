package model

import (
	"bytes"
	"encoding/json"
)

// DependencyType categorizes the relationship between two issues.
// Only blocking relations participate in scheduling; everything else
// (parent-child, related, relates-to, ...) is ignored by the engine.
type DependencyType string

const (
	DepBlocks      DependencyType = "blocks"
	DepBlockedBy   DependencyType = "blocked-by"
	DepParentChild DependencyType = "parent-child"
	DepRelated     DependencyType = "related"
)

// IsBlocking reports whether the dependency type participates in scheduling.
func (d DependencyType) IsBlocking() bool {
	return d == DepBlocks || d == DepBlockedBy
}

// RawDependency is a dependency record as supplied by a tracker. Two wire
// shapes exist and are both accepted:
//
//   - canonical-origin: issueId/dependsOnId keys; regardless of type the
//     record points from the blocked issue to its blocker
//   - legacy: fromId/toId keys; direction depends on type
//
// IssueID and DependsOnID are pointers so that key presence (not just
// emptiness) distinguishes the shapes.
type RawDependency struct {
	IssueID     *string        `json:"issueId,omitempty"`
	DependsOnID *string        `json:"dependsOnId,omitempty"`
	FromID      string         `json:"fromId,omitempty"`
	ToID        string         `json:"toId,omitempty"`
	Type        DependencyType `json:"type"`
}

// IsCanonicalOrigin reports whether the record uses the canonical-origin
// shape (either of the issueId/dependsOnId keys present).
func (d *RawDependency) IsCanonicalOrigin() bool {
	return d.IssueID != nil || d.DependsOnID != nil
}

// BlockingEdge is the single canonical edge type: From blocks To.
// Both endpoints are guaranteed to exist in the active issue set.
type BlockingEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Component is one (possibly disconnected) subgraph of a tracker snapshot.
type Component struct {
	Issues       []*Issue         `json:"issues"`
	Dependencies []*RawDependency `json:"dependencies"`
}

// Snapshot is a raw graph snapshot: a list of components as returned by the
// upstream tracker. The engine flattens all components into one graph.
type Snapshot struct {
	Components []*Component `json:"components"`
}

// UnmarshalJSON accepts either a bare JSON array of components or an object
// with a "components" field, since trackers emit both.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &s.Components)
	}
	type alias Snapshot
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	s.Components = a.Components
	return nil
}
