package model

// Status represents the current state of an issue.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusClosed     Status = "closed"
	StatusDone       Status = "done"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusBlocked, StatusClosed, StatusDone:
		return true
	}
	return false
}

// IsComplete reports whether the status counts as finished work.
// closed and done are equivalent complete states; a complete issue never
// blocks anything and never occupies a wave slot.
func (s Status) IsComplete() bool {
	return s == StatusClosed || s == StatusDone
}

// Priority bounds. 0 is critical, 4 is backlog.
const (
	PriorityCritical = 0
	PriorityBacklog  = 4
)

// Issue is the work-item record supplied by an upstream tracker.
// Issues are read-only value objects; the engine never mutates them.
// JSON field names follow the tracker wire format (camelCase).
type Issue struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Status          Status   `json:"status"`
	Priority        int      `json:"priority"`
	Assignee        string   `json:"assignee,omitempty"`
	Labels          []string `json:"labels,omitempty"`
	EstimateMinutes *float64 `json:"estimateMinutes,omitempty"`
}

// HasLabel reports whether the issue carries the given label exactly.
func (i *Issue) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}
