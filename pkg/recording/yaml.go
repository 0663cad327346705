package recording

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// recordingDoc is the YAML shape of a serialized recording. Used for test
// fixtures and small hand-authored recordings; real acquisition files are
// parsed elsewhere.
type recordingDoc struct {
	Info     *Info            `yaml:"info"`
	Samples  *Samples         `yaml:"samples"`
	Discrete []*DiscreteTable `yaml:"discrete,omitempty"`
}

// FromYAML builds a Recording from a YAML document of the form:
//
//	info:
//	  sample_rate: 500
//	  channels: [xpos, ypos, ps]
//	samples:
//	  time: [0.0, 0.002, 0.004]
//	  channels:
//	    xpos: [512.1, 513.0, 514.2]
//	discrete:
//	  - kind: saccades
//	    events:
//	      - {stime: 0.002, etime: 0.004, attrs: {ampl: 1.5}}
//
// The recording is validated exactly as by New.
func FromYAML(data []byte) (*Recording, error) {
	var doc recordingDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing recording yaml: %w", err)
	}
	return New(doc.Info, doc.Samples, doc.Discrete...)
}

// ToYAML serializes the recording into the FromYAML document shape.
func (r *Recording) ToYAML() ([]byte, error) {
	doc := recordingDoc{Info: r.info, Samples: r.samples}
	for _, kind := range r.info.EventTypes {
		if table := r.discrete[kind]; table != nil {
			doc.Discrete = append(doc.Discrete, table)
		}
	}
	return yaml.Marshal(doc)
}
