package epochs

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gaze/pkg/errors"
	"github.com/agentstation/gaze/pkg/recording"
)

// window is one accepted marker with its sample-index range and, per
// discrete-event kind, the row indices of discrete events fully contained
// in the marker's time window.
type window struct {
	marker   Marker
	epoch    int
	lo, hi   int // half-open sample-index range, truncated to minSamples
	contains map[string][]int
}

// extraction is the immutable result of window extraction, consumed by
// table assembly and overlay attribution.
type extraction struct {
	windows    []window
	minSamples int
	times      []float64 // relative time axis, length minSamples
}

// extractWindows walks the markers in order and collects a window for every
// marker whose code is admissible and whose [t+tmin, t+tmax) range lies
// inside the recording. A window reaching past the end of the sample table
// stops processing entirely; markers after that point are never inspected,
// which keeps accepted epochs temporally ordered. Accepted windows are then
// truncated to the minimum raw sample count so every epoch has identical
// length.
func extractWindows(raw recording.Raw, markers []Marker, codes map[int]string, tmin, tmax float64, log *zerolog.Logger) (*extraction, error) {
	samples := raw.Samples()
	kinds := raw.Info().EventTypes

	// start < end precondition on every discrete table, checked before any
	// windows are built so a violation aborts with nothing half-done.
	for _, kind := range kinds {
		if table := raw.Discrete(kind); table != nil {
			if err := table.Validate(); err != nil {
				return nil, err
			}
		}
	}

	var windows []window
	for _, m := range markers {
		if _, ok := codes[m.Code]; !ok {
			log.Debug().Int("sample", m.Sample).Int("code", m.Code).Msg("Skipping marker with inadmissible code")
			continue
		}
		if m.Sample < 0 || m.Sample >= samples.Len() {
			return nil, errors.NewValidationError("markers", m.Sample, "marker sample index out of range")
		}

		t := samples.Time[m.Sample]
		wmin, wmax := t+tmin, t+tmax
		bounds := raw.TimeAsIndex([]float64{wmin, wmax})
		lo, hi := bounds[0], bounds[1]
		if max(lo, hi) >= samples.Len() {
			log.Warn().
				Int("sample", m.Sample).
				Float64("tmax", wmax).
				Int("accepted", len(windows)).
				Msg("Window exceeds recording bounds, dropping remaining markers")
			break
		}

		w := window{
			marker:   m,
			epoch:    len(windows),
			lo:       lo,
			hi:       hi,
			contains: make(map[string][]int, len(kinds)),
		}
		for _, kind := range kinds {
			w.contains[kind] = containedEvents(raw.Discrete(kind), wmin, wmax)
		}
		windows = append(windows, w)
	}

	if len(windows) == 0 {
		return nil, errors.NewNoEpochsError(sortedCodes(codes))
	}

	minSamples := windows[0].hi - windows[0].lo
	for _, w := range windows[1:] {
		if n := w.hi - w.lo; n < minSamples {
			minSamples = n
		}
	}
	if minSamples <= 0 {
		return nil, errors.NewNoEpochsError(sortedCodes(codes))
	}

	// Normalize: drop trailing samples so every epoch has minSamples rows.
	for i := range windows {
		windows[i].hi = windows[i].lo + minSamples
	}

	return &extraction{
		windows:    windows,
		minSamples: minSamples,
		times:      linspace(tmin, tmax, minSamples),
	}, nil
}

// containedEvents returns the indices of events whose [Start, End) interval
// lies entirely within [wmin, wmax).
func containedEvents(table *recording.DiscreteTable, wmin, wmax float64) []int {
	if table.Len() == 0 {
		return nil
	}
	var inside []int
	for i, ev := range table.Events {
		if ev.Start >= wmin && ev.End <= wmax {
			inside = append(inside, i)
		}
	}
	return inside
}

// linspace returns n evenly spaced points spanning [lo, hi] inclusive.
func linspace(lo, hi float64, n int) []float64 {
	points := make([]float64, n)
	if n == 1 {
		points[0] = lo
		return points
	}
	step := (hi - lo) / float64(n-1)
	for i := range points {
		points[i] = lo + float64(i)*step
	}
	points[n-1] = hi
	return points
}
