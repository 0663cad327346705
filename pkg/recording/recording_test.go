package recording_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gaze/pkg/errors"
	"github.com/agentstation/gaze/pkg/recording"
)

// uniformSamples builds n samples at the given rate with a ramp channel.
func uniformSamples(t *testing.T, n int, rate float64) *recording.Samples {
	t.Helper()
	times := make([]float64, n)
	xpos := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / rate
		xpos[i] = float64(i)
	}
	s, err := recording.NewSamples(times, map[string][]float64{"xpos": xpos})
	require.NoError(t, err)
	return s
}

func TestNewSamples(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := recording.NewSamples(
			[]float64{0, 0.002, 0.004},
			map[string][]float64{"xpos": {1, 2, 3}},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("mismatched channel length", func(t *testing.T) {
		_, err := recording.NewSamples(
			[]float64{0, 0.002},
			map[string][]float64{"xpos": {1, 2, 3}},
		)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("decreasing time", func(t *testing.T) {
		_, err := recording.NewSamples([]float64{0, 0.004, 0.002}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestNewRecording(t *testing.T) {
	samples := uniformSamples(t, 10, 500)

	t.Run("nil info", func(t *testing.T) {
		_, err := recording.New(nil, samples)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("empty samples", func(t *testing.T) {
		empty, err := recording.NewSamples(nil, nil)
		require.NoError(t, err)
		_, err = recording.New(&recording.Info{SampleRate: 500}, empty)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid discrete interval", func(t *testing.T) {
		bad := recording.NewDiscreteTable(recording.KindSaccades, []recording.DiscreteEvent{
			{Start: 0.01, End: 0.01},
		})
		_, err := recording.New(&recording.Info{SampleRate: 500}, samples, bad)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidInterval(err))
	})

	t.Run("duplicate kind", func(t *testing.T) {
		a := recording.NewDiscreteTable(recording.KindBlinks, nil)
		b := recording.NewDiscreteTable(recording.KindBlinks, nil)
		_, err := recording.New(&recording.Info{SampleRate: 500}, samples, a, b)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("event types derived from tables", func(t *testing.T) {
		info := &recording.Info{SampleRate: 500}
		rec, err := recording.New(info, samples,
			recording.NewDiscreteTable(recording.KindSaccades, nil),
			recording.NewDiscreteTable(recording.KindFixations, nil),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"saccades", "fixations"}, rec.Info().EventTypes)
	})

	t.Run("absent kind returns nil", func(t *testing.T) {
		rec, err := recording.New(&recording.Info{SampleRate: 500}, samples)
		require.NoError(t, err)
		assert.Nil(t, rec.Discrete(recording.KindBlinks))
	})
}

func TestTimeAsIndex(t *testing.T) {
	rec, err := recording.New(&recording.Info{SampleRate: 500}, uniformSamples(t, 10, 500))
	require.NoError(t, err)

	// Samples at 0, 2, 4, ... 18 ms.
	idx := rec.TimeAsIndex([]float64{0, 0.002, 0.003, 0.018})
	assert.Equal(t, []int{0, 1, 2, 9}, idx)

	t.Run("past end maps one past last index", func(t *testing.T) {
		idx := rec.TimeAsIndex([]float64{0.020, 1.0})
		assert.Equal(t, []int{10, 10}, idx)
	})

	t.Run("before start maps to zero", func(t *testing.T) {
		idx := rec.TimeAsIndex([]float64{-0.5})
		assert.Equal(t, []int{0}, idx)
	})
}

func TestInfoCopy(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var info *recording.Info
		assert.Nil(t, info.Copy())
	})

	t.Run("mutation independence", func(t *testing.T) {
		info := &recording.Info{
			SampleRate: 500,
			Channels:   []string{"xpos", "ypos"},
			EventTypes: []string{recording.KindSaccades},
			Meta:       map[string]string{"eye": "left"},
		}
		cp := info.Copy()

		info.Channels[0] = "mutated"
		info.Meta["eye"] = "right"
		info.EventTypes[0] = "mutated"

		assert.Equal(t, "xpos", cp.Channels[0])
		assert.Equal(t, "left", cp.Meta["eye"])
		assert.Equal(t, recording.KindSaccades, cp.EventTypes[0])
	})
}

func TestInfoDescribe(t *testing.T) {
	info := &recording.Info{
		SampleRate: 500,
		Channels:   []string{"xpos", "ps"},
		EventTypes: []string{recording.KindSaccades, recording.KindBlinks},
	}
	got := info.Describe()
	assert.Equal(t, "Recording | 500 Hz | channels: xpos, ps | events: Saccades, Blinks", got)
}

func TestDiscreteTableSchema(t *testing.T) {
	t.Run("explicit columns win", func(t *testing.T) {
		table := &recording.DiscreteTable{
			Kind:    recording.KindSaccades,
			Columns: []string{"dur", "ampl"},
		}
		assert.Equal(t, []string{"dur", "ampl"}, table.Schema())
	})

	t.Run("derived from rows", func(t *testing.T) {
		table := recording.NewDiscreteTable(recording.KindSaccades, []recording.DiscreteEvent{
			{Start: 0, End: 0.1, Attrs: map[string]any{"dur": 0.1, "ampl": 2.4}},
			{Start: 0.2, End: 0.3, Attrs: map[string]any{"pvl": 301.0}},
		})
		assert.Equal(t, []string{"ampl", "dur", "pvl"}, table.Schema())
	})

	t.Run("nil table", func(t *testing.T) {
		var table *recording.DiscreteTable
		assert.Nil(t, table.Schema())
		assert.Equal(t, 0, table.Len())
	})
}

func TestFromYAML(t *testing.T) {
	doc := []byte(`
info:
  sample_rate: 500
  channels: [xpos]
samples:
  time: [0.0, 0.002, 0.004]
  channels:
    xpos: [512.1, 513.0, 514.2]
discrete:
  - kind: saccades
    events:
      - {stime: 0.001, etime: 0.003, attrs: {ampl: 1.5}}
`)
	rec, err := recording.FromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Samples().Len())
	assert.Equal(t, float64(500), rec.Info().SampleRate)

	saccades := rec.Discrete(recording.KindSaccades)
	require.NotNil(t, saccades)
	require.Equal(t, 1, saccades.Len())
	assert.Equal(t, 0.001, saccades.Events[0].Start)

	t.Run("invalid interval rejected", func(t *testing.T) {
		bad := []byte(`
info: {sample_rate: 500}
samples: {time: [0.0, 0.002]}
discrete:
  - kind: blinks
    events:
      - {stime: 0.5, etime: 0.1}
`)
		_, err := recording.FromYAML(bad)
		assert.True(t, errors.IsInvalidInterval(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := recording.FromYAML([]byte("samples: ["))
		assert.Error(t, err)
	})
}
