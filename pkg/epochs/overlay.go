package epochs

import (
	"github.com/agentstation/gaze/pkg/recording"
)

// applyOverlays patches discrete-event attributes onto the assembled rows.
// For every epoch and every discrete event contained in its window, each
// row whose absolute time falls in the event's [Start, End) interval gets
// that event's attribute set for the event's kind. When several events of
// one kind overlap a row, the last one in table order wins.
func applyOverlays(raw recording.Raw, ext *extraction, rows []Row) {
	kinds := raw.Info().EventTypes

	for _, w := range ext.windows {
		// Epoch blocks are contiguous in (epoch, time) sorted order.
		block := rows[w.epoch*ext.minSamples : (w.epoch+1)*ext.minSamples]

		for _, kind := range kinds {
			table := raw.Discrete(kind)
			if table.Len() == 0 {
				continue
			}
			for _, idx := range w.contains[kind] {
				ev := table.Events[idx]
				patch := make(Attributes, len(ev.Attrs)+2)
				patch["stime"] = ev.Start
				patch["etime"] = ev.End
				for k, v := range ev.Attrs {
					patch[k] = v
				}
				for i := range block {
					if block[i].Time >= ev.Start && block[i].Time < ev.End {
						block[i].Overlays[kind] = patch
					}
				}
			}
		}
	}
}
