package recording

import (
	"github.com/agentstation/gaze/pkg/errors"
)

// Samples is the columnar table of continuous samples: one timestamp column
// plus one column per recorded channel (e.g. xpos, ypos, ps). All columns
// share the same length.
type Samples struct {
	Time     []float64            `json:"time" yaml:"time"`         // Absolute sample timestamps in seconds, nondecreasing
	Channels map[string][]float64 `json:"channels" yaml:"channels"` // Channel columns indexed by channel name
}

// NewSamples creates a sample table and validates its shape.
func NewSamples(time []float64, channels map[string][]float64) (*Samples, error) {
	s := &Samples{Time: time, Channels: channels}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of samples.
func (s *Samples) Len() int {
	return len(s.Time)
}

// validate checks that all columns share the time column's length and that
// timestamps are nondecreasing.
func (s *Samples) validate() error {
	for name, col := range s.Channels {
		if len(col) != len(s.Time) {
			return errors.NewValidationError(name, len(col), "channel length does not match time column")
		}
	}
	for i := 1; i < len(s.Time); i++ {
		if s.Time[i] < s.Time[i-1] {
			return errors.NewValidationError("time", s.Time[i], "sample timestamps must be nondecreasing")
		}
	}
	return nil
}
