// Package gaze extracts fixed-length epochs of continuous eye-tracking
// sample data around discrete event markers and attributes the overlapping
// discrete gaze events (saccades, fixations, blinks) to the rows they
// cover.
//
// The library is organized as:
//
//   - pkg/recording: the in-memory recording: sample table, discrete-event
//     tables, metadata, and time-to-index conversion
//   - pkg/epochs: the epoch builder and the resulting collection
//   - pkg/errors: the error taxonomy shared across the library
//   - pkg/logging: structured logging via zerolog
//
// Example usage:
//
//	rec, err := recording.New(info, samples, saccades, blinks)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	collection, err := gaze.Epoch(rec, markers, epochs.Code(1), -0.1, 0.2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range collection.Epoch(0) {
//	    fmt.Println(row.RelTime, row.Values["xpos"])
//	}
package gaze

import (
	"github.com/agentstation/gaze/pkg/epochs"
	"github.com/agentstation/gaze/pkg/recording"
)

// Epoch builds an epoch collection from a recording, markers, an event-id
// spec, and a [tmin, tmax) window in seconds relative to each marker. It is
// a convenience wrapper around epochs.New.
func Epoch(raw recording.Raw, markers []epochs.Marker, id epochs.EventID, tmin, tmax float64, opts ...epochs.Option) (*epochs.Epochs, error) {
	return epochs.New(raw, markers, id, tmin, tmax, opts...)
}
