// Package epochs extracts fixed-length time windows of continuous samples
// around discrete event markers, producing one aligned, indexed table with
// a uniform per-epoch sample count and the overlapping discrete gaze events
// (saccades, fixations, blinks) attributed to the rows they cover.
//
// A collection is built in a single call and is read-only afterward:
//
//	markers := []epochs.Marker{{Sample: 100, Code: 1}, {Sample: 500, Code: 1}}
//	collection, err := epochs.New(rec, markers, epochs.Code(1), -0.1, 0.2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(collection) // <Epochs | 2 events | tmin: -0.1 tmax: 0.2>
//
// Construction either fully succeeds or returns an error from pkg/errors;
// no partial collection is ever produced. Because the source recording is
// only read, independent collections may be built from the same recording
// concurrently.
package epochs

import (
	"fmt"

	"github.com/agentstation/gaze/pkg/errors"
	"github.com/agentstation/gaze/pkg/recording"
)

// Attributes is one discrete event's attribute set as patched onto a row:
// the event's stime and etime plus its kind-specific attributes.
type Attributes map[string]any

// Row is one continuous sample of one epoch in the assembled table.
type Row struct {
	EpochIndex int                   // Zero-based epoch index, assigned in marker order
	RelTime    float64               // Time relative to the epoch's marker
	Time       float64               // Absolute time from the recording
	EventID    string                // Label (or decimal code) of the originating marker
	Values     map[string]float64    // Continuous channel values
	Overlays   map[string]Attributes // Per-kind discrete-event attributes; nil value = no overlap
}

// Epochs is the collection of equal-length epochs extracted from a
// recording. It is immutable after construction; accessors return internal
// state that must not be modified.
type Epochs struct {
	events     []Marker
	times      []float64
	info       *recording.Info
	tmin, tmax float64
	rows       []Row
	index      map[rowKey]int
	minSamples int
}

// New builds an epoch collection from a recording, a list of event markers,
// the admissible event-id spec, and a [tmin, tmax) window in seconds
// relative to each marker. Markers with inadmissible codes are skipped; a
// marker whose window reaches past the end of the recording stops marker
// processing entirely. Every returned epoch has the same number of samples.
func New(raw recording.Raw, markers []Marker, id EventID, tmin, tmax float64, opts ...Option) (*Epochs, error) {
	if raw == nil {
		return nil, errors.NewValidationError("recording", nil, "recording is required")
	}
	if id == nil {
		return nil, errors.NewValidationError("event_id", nil, "event id spec is required")
	}
	if tmin >= tmax {
		return nil, errors.NewValidationError("tmin", tmin, "tmin must be less than tmax")
	}
	codes := id.labels()

	o := epochsDefaults().apply(opts...)
	log := o.logger

	ext, err := extractWindows(raw, markers, codes, tmin, tmax, log)
	if err != nil {
		return nil, err
	}

	rows, index, err := assemble(raw, ext, codes)
	if err != nil {
		return nil, err
	}

	applyOverlays(raw, ext, rows)

	events := make([]Marker, len(ext.windows))
	for i, w := range ext.windows {
		events[i] = w.marker
	}

	log.Debug().
		Int("epochs", len(events)).
		Int("samples_per_epoch", ext.minSamples).
		Float64("tmin", tmin).
		Float64("tmax", tmax).
		Msg("Built epoch collection")

	return &Epochs{
		events:     events,
		times:      ext.times,
		info:       raw.Info().Copy(),
		tmin:       tmin,
		tmax:       tmax,
		rows:       rows,
		index:      index,
		minSamples: ext.minSamples,
	}, nil
}

// Events returns the accepted markers in epoch-index order.
func (e *Epochs) Events() []Marker {
	return e.events
}

// Times returns the relative time axis shared by all epochs.
func (e *Epochs) Times() []float64 {
	return e.times
}

// Info returns the collection's copy of the recording metadata.
func (e *Epochs) Info() *recording.Info {
	return e.info
}

// Tmin returns the window start offset in seconds.
func (e *Epochs) Tmin() float64 {
	return e.tmin
}

// Tmax returns the window end offset in seconds.
func (e *Epochs) Tmax() float64 {
	return e.tmax
}

// Data returns the assembled table in (epoch, time) order.
func (e *Epochs) Data() []Row {
	return e.rows
}

// Len returns the number of epochs.
func (e *Epochs) Len() int {
	return len(e.events)
}

// NumTimes returns the per-epoch sample count.
func (e *Epochs) NumTimes() int {
	return e.minSamples
}

// Epoch returns the contiguous rows of the i-th epoch.
func (e *Epochs) Epoch(i int) []Row {
	if i < 0 || i >= len(e.events) {
		return nil
	}
	return e.rows[i*e.minSamples : (i+1)*e.minSamples]
}

// At looks a row up by its compound key: epoch index and relative time.
// The relative time must be one of the values returned by Times.
func (e *Epochs) At(epoch int, relTime float64) (Row, bool) {
	i, ok := e.index[rowKey{epoch: epoch, time: relTime}]
	if !ok {
		return Row{}, false
	}
	return e.rows[i], true
}

// String implements fmt.Stringer.
func (e *Epochs) String() string {
	return fmt.Sprintf("<Epochs | %d events | tmin: %g tmax: %g>", len(e.events), e.tmin, e.tmax)
}
