package epochs_test

import (
	"fmt"
	"log"

	"github.com/agentstation/gaze/pkg/epochs"
	"github.com/agentstation/gaze/pkg/recording"
)

// Example demonstrates extracting epochs around a single event code.
func Example() {
	// A 1-second recording at 100 Hz with one gaze channel.
	n, rate := 100, 100.0
	times := make([]float64, n)
	xpos := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / rate
		xpos[i] = 512 + float64(i%5)
	}
	samples, err := recording.NewSamples(times, map[string][]float64{"xpos": xpos})
	if err != nil {
		log.Fatal(err)
	}
	rec, err := recording.New(&recording.Info{SampleRate: rate, Channels: []string{"xpos"}}, samples)
	if err != nil {
		log.Fatal(err)
	}

	// One stimulus onset at sample 50, with a 100 ms window around it.
	markers := []epochs.Marker{{Sample: 50, Code: 1}}
	collection, err := epochs.New(rec, markers, epochs.Code(1), -0.05, 0.05)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(collection)
	fmt.Printf("epochs: %d, samples per epoch: %d\n", collection.Len(), collection.NumTimes())
	// Output:
	// <Epochs | 1 events | tmin: -0.05 tmax: 0.05>
	// epochs: 1, samples per epoch: 10
}

// Example_labels demonstrates labeling rows via an event-id mapping.
func Example_labels() {
	id, err := epochs.LabelsFromYAML([]byte("target: 1\ndistractor: 2\n"))
	if err != nil {
		log.Fatal(err)
	}

	n, rate := 200, 100.0
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / rate
	}
	samples, err := recording.NewSamples(times, nil)
	if err != nil {
		log.Fatal(err)
	}
	rec, err := recording.New(&recording.Info{SampleRate: rate}, samples)
	if err != nil {
		log.Fatal(err)
	}

	markers := []epochs.Marker{
		{Sample: 50, Code: 1},
		{Sample: 120, Code: 2},
	}
	collection, err := epochs.New(rec, markers, id, -0.1, 0.1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(collection.Epoch(0)[0].EventID)
	fmt.Println(collection.Epoch(1)[0].EventID)
	// Output:
	// target
	// distractor
}
