package recording

import (
	"sort"

	"github.com/agentstation/gaze/pkg/errors"
)

// DiscreteEvent is one interval-valued gaze event: a saccade, fixation, or
// blink spanning the half-open time interval [Start, End), carrying
// kind-specific attributes (duration, amplitude, peak velocity, ...).
type DiscreteEvent struct {
	Start float64        `json:"stime" yaml:"stime"`                     // Event start time in seconds
	End   float64        `json:"etime" yaml:"etime"`                     // Event end time in seconds (exclusive)
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"` // Kind-specific attributes
}

// DiscreteTable holds all discrete events of one kind, ordered by start
// time as they occurred in the recording.
type DiscreteTable struct {
	Kind    string          `json:"kind" yaml:"kind"`                           // Discrete-event kind name
	Columns []string        `json:"columns,omitempty" yaml:"columns,omitempty"` // Attribute schema; derived from rows when empty
	Events  []DiscreteEvent `json:"events,omitempty" yaml:"events,omitempty"`
}

// NewDiscreteTable creates a table of the given kind.
func NewDiscreteTable(kind string, events []DiscreteEvent) *DiscreteTable {
	return &DiscreteTable{Kind: kind, Events: events}
}

// Len returns the number of events in the table.
func (t *DiscreteTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Events)
}

// Validate enforces the start < end precondition on every event.
func (t *DiscreteTable) Validate() error {
	for i, ev := range t.Events {
		if ev.Start >= ev.End {
			return errors.NewInvalidIntervalError(t.Kind, i, ev.Start, ev.End)
		}
	}
	return nil
}

// Schema returns the table's attribute columns. When Columns is unset the
// schema is discovered from the rows: the sorted union of attribute keys.
func (t *DiscreteTable) Schema() []string {
	if t == nil {
		return nil
	}
	if len(t.Columns) > 0 {
		return t.Columns
	}
	seen := make(map[string]struct{})
	for _, ev := range t.Events {
		for k := range ev.Attrs {
			seen[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}
