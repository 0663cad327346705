package recording

import (
	"fmt"
	"strings"

	"github.com/agentstation/utc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info holds recording session metadata: acquisition parameters, the
// channel layout, and the discrete-event kinds present in the recording.
type Info struct {
	SampleRate float64           `json:"sample_rate" yaml:"sample_rate"`                     // Samples per second
	Channels   []string          `json:"channels,omitempty" yaml:"channels,omitempty"`       // Continuous channel names in column order
	EventTypes []string          `json:"event_types,omitempty" yaml:"event_types,omitempty"` // Discrete-event kinds present
	RecordedAt utc.Time          `json:"recorded_at,omitzero" yaml:"recorded_at,omitempty"`  // Session timestamp
	Meta       map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`               // Free-form metadata (tracker model, eye, ...)
}

// Copy returns a deep copy of the Info. Collections built from a recording
// hold their own copy so later mutation of the recording's metadata cannot
// reach them.
func (i *Info) Copy() *Info {
	if i == nil {
		return nil
	}
	infoCopy := *i
	if i.Channels != nil {
		infoCopy.Channels = append([]string(nil), i.Channels...)
	}
	if i.EventTypes != nil {
		infoCopy.EventTypes = append([]string(nil), i.EventTypes...)
	}
	if i.Meta != nil {
		infoCopy.Meta = make(map[string]string, len(i.Meta))
		for k, v := range i.Meta {
			infoCopy.Meta[k] = v
		}
	}
	return &infoCopy
}

// Describe returns a one-line human-readable summary of the metadata.
func (i *Info) Describe() string {
	titler := cases.Title(language.English)
	kinds := make([]string, len(i.EventTypes))
	for n, kind := range i.EventTypes {
		kinds[n] = titler.String(kind)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Recording | %g Hz", i.SampleRate)
	if len(i.Channels) > 0 {
		fmt.Fprintf(&b, " | channels: %s", strings.Join(i.Channels, ", "))
	}
	if len(kinds) > 0 {
		fmt.Fprintf(&b, " | events: %s", strings.Join(kinds, ", "))
	}
	return b.String()
}
