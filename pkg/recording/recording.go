// Package recording provides the in-memory representation of a continuous
// eye-tracking recording: a columnar sample table, per-kind tables of
// discrete gaze events (saccades, fixations, blinks), and session metadata.
//
// The package defines the Raw interface consumed by epoch extraction, plus
// a concrete Recording implementation. How samples get into a Recording is
// out of scope here; callers construct one from data they already loaded.
//
// Example usage:
//
//	rec, err := recording.New(info, samples,
//	    recording.NewDiscreteTable(recording.KindSaccades, saccades),
//	    recording.NewDiscreteTable(recording.KindBlinks, blinks),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx := rec.TimeAsIndex([]float64{1.5, 2.0})
package recording

import (
	"sort"

	"github.com/agentstation/gaze/pkg/errors"
)

// Canonical discrete-event kind names.
const (
	KindSaccades  = "saccades"
	KindFixations = "fixations"
	KindBlinks    = "blinks"
)

// Raw is the read-only view of a loaded recording that epoch extraction
// consumes. Implementations must be safe for concurrent readers.
type Raw interface {
	// Samples returns the continuous sample table.
	Samples() *Samples

	// TimeAsIndex converts absolute times in seconds to sample indices.
	// A time past the end of the recording maps to Samples().Len(), one
	// past the last valid index.
	TimeAsIndex(times []float64) []int

	// Info returns the recording metadata.
	Info() *Info

	// Discrete returns the table of discrete events for the given kind,
	// or nil if the recording has no such table.
	Discrete(kind string) *DiscreteTable
}

// Compile-time interface check.
var _ Raw = (*Recording)(nil)

// Recording is an in-memory Raw implementation.
type Recording struct {
	info     *Info
	samples  *Samples
	discrete map[string]*DiscreteTable
}

// New creates a Recording from metadata, a sample table, and zero or more
// discrete-event tables. Every discrete event is checked against the
// start < end precondition; a violation aborts construction.
func New(info *Info, samples *Samples, tables ...*DiscreteTable) (*Recording, error) {
	if info == nil {
		return nil, errors.NewValidationError("info", nil, "recording metadata is required")
	}
	if samples == nil || samples.Len() == 0 {
		return nil, errors.NewValidationError("samples", nil, "recording must contain at least one sample")
	}
	if err := samples.validate(); err != nil {
		return nil, err
	}

	rec := &Recording{
		info:     info,
		samples:  samples,
		discrete: make(map[string]*DiscreteTable, len(tables)),
	}
	for _, table := range tables {
		if table == nil {
			continue
		}
		if table.Kind == "" {
			return nil, errors.NewValidationError("kind", "", "discrete table kind is required")
		}
		if _, ok := rec.discrete[table.Kind]; ok {
			return nil, errors.NewValidationError("kind", table.Kind, "duplicate discrete table kind")
		}
		if err := table.Validate(); err != nil {
			return nil, err
		}
		rec.discrete[table.Kind] = table
	}

	// Derive the kind list when the caller did not spell it out.
	if len(info.EventTypes) == 0 {
		for _, table := range tables {
			if table != nil {
				info.EventTypes = append(info.EventTypes, table.Kind)
			}
		}
	}

	return rec, nil
}

// Samples returns the continuous sample table.
func (r *Recording) Samples() *Samples {
	return r.samples
}

// Info returns the recording metadata.
func (r *Recording) Info() *Info {
	return r.info
}

// Discrete returns the table for the given kind, or nil if absent.
func (r *Recording) Discrete(kind string) *DiscreteTable {
	return r.discrete[kind]
}

// TimeAsIndex converts absolute times to sample indices. The index for a
// time t is the first sample whose timestamp is >= t, so a half-open time
// window [a, b) maps to the half-open index range [idx(a), idx(b)).
func (r *Recording) TimeAsIndex(times []float64) []int {
	indices := make([]int, len(times))
	for i, t := range times {
		indices[i] = sort.SearchFloat64s(r.samples.Time, t)
	}
	return indices
}
