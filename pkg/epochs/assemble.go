package epochs

import (
	"sort"

	"github.com/agentstation/gaze/pkg/errors"
	"github.com/agentstation/gaze/pkg/recording"
)

// rowKey is the compound unique key of the assembled table.
type rowKey struct {
	epoch int
	time  float64 // relative time
}

// assemble materializes the accepted windows into the row-per-sample table:
// rows are gathered per event code, tagged with their label and epoch index,
// sorted into (epoch, time) order, given the tiled relative time axis, and
// verified against the uniform-length and unique-key invariants.
func assemble(raw recording.Raw, ext *extraction, codes map[int]string) ([]Row, map[rowKey]int, error) {
	samples := raw.Samples()
	kinds := raw.Info().EventTypes

	// Gather per code in ascending code order. Concatenation therefore
	// interleaves groups by code, not by epoch; the sort below restores
	// epoch-then-time order for downstream consumers.
	rows := make([]Row, 0, len(ext.windows)*ext.minSamples)
	for _, code := range sortedCodes(codes) {
		label := codes[code]
		for _, w := range ext.windows {
			if w.marker.Code != code {
				continue
			}
			for i := w.lo; i < w.hi; i++ {
				values := make(map[string]float64, len(samples.Channels))
				for name, col := range samples.Channels {
					values[name] = col[i]
				}
				rows = append(rows, Row{
					EpochIndex: w.epoch,
					Time:       samples.Time[i],
					EventID:    label,
					Values:     values,
				})
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EpochIndex != rows[j].EpochIndex {
			return rows[i].EpochIndex < rows[j].EpochIndex
		}
		return rows[i].Time < rows[j].Time
	})

	// Every epoch must have contributed exactly minSamples rows; anything
	// else means window truncation is broken.
	counts := make(map[int]int, len(ext.windows))
	for _, row := range rows {
		counts[row.EpochIndex]++
	}
	for _, w := range ext.windows {
		if got := counts[w.epoch]; got != ext.minSamples {
			return nil, nil, errors.NewInconsistentLengthError(w.epoch, ext.minSamples, got)
		}
	}

	// Tile the relative time axis across epochs and initialize the per-kind
	// overlay slots to null.
	index := make(map[rowKey]int, len(rows))
	for i := range rows {
		rows[i].RelTime = ext.times[i%ext.minSamples]
		rows[i].Overlays = make(map[string]Attributes, len(kinds))
		for _, kind := range kinds {
			rows[i].Overlays[kind] = nil
		}

		key := rowKey{epoch: rows[i].EpochIndex, time: rows[i].RelTime}
		if _, dup := index[key]; dup {
			return nil, nil, errors.NewDuplicateIndexError(key.epoch, key.time)
		}
		index[key] = i
	}

	return rows, index, nil
}

// sortedCodes returns the admissible codes in ascending order.
func sortedCodes(codes map[int]string) []int {
	out := make([]int, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}
