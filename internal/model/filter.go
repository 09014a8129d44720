package model

// Filter narrows the issue set before analysis. All provided fields combine
// with AND semantics; the zero value is the identity filter.
type Filter struct {
	Priority *int   `json:"priority,omitempty"` // exact match
	Assignee string `json:"assignee,omitempty"` // substring match, case-sensitive
	Label    string `json:"label,omitempty"`    // exact membership in the label set
}

// IsZero reports whether no filter fields are set.
func (f Filter) IsZero() bool {
	return f.Priority == nil && f.Assignee == "" && f.Label == ""
}
