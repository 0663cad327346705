package epochs

import (
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/gaze/pkg/errors"
)

// Marker is one alignment point: the index of the sample an event occurred
// at, and the event code recorded there.
type Marker struct {
	Sample int `json:"sample" yaml:"sample"` // Sample index into the recording
	Code   int `json:"code" yaml:"code"`     // Event code
}

// EventID selects which marker codes produce epochs, and how rows of the
// assembled table are labeled. Use Code for a single admissible code, or
// Labels to admit several codes with human-readable names.
type EventID interface {
	// labels returns the normalized code -> label table.
	labels() map[int]string
}

type scalarID int

func (s scalarID) labels() map[int]string {
	return map[int]string{int(s): strconv.Itoa(int(s))}
}

// Code admits a single event code. Rows are labeled with the code's
// decimal string.
func Code(code int) EventID {
	return scalarID(code)
}

type labeledID map[int]string

func (l labeledID) labels() map[int]string {
	return l
}

// Labels admits the codes of the given label -> code mapping. Rows are
// labeled with the mapped name instead of the raw code.
func Labels(mapping map[string]int) (EventID, error) {
	normalized := make(labeledID, len(mapping))
	for label, code := range mapping {
		if prev, ok := normalized[code]; ok {
			return nil, errors.NewValidationError("event_id", code,
				"labels "+prev+" and "+label+" map to the same code")
		}
		normalized[code] = label
	}
	if len(normalized) == 0 {
		return nil, errors.NewValidationError("event_id", mapping, "mapping must contain at least one label")
	}
	return normalized, nil
}

// LabelsFromYAML parses a label -> code YAML mapping, e.g.:
//
//	target: 1
//	distractor: 2
func LabelsFromYAML(data []byte) (EventID, error) {
	var mapping map[string]int
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, errors.NewValidationError("event_id", string(data), err.Error())
	}
	return Labels(mapping)
}
