// Package trackers implements Trackers, which track and save data
// generated in an experiment
package trackers

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/samuelfneumann/gocab/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished. Experiments send every TimeStep to each
// registered Tracker through Track; a Tracker caches whatever it wants
// from the stream and writes it to disk when Save is called.
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// save gob-encodes data to the argument file. Trackers run inside
// long experiments, so an unwritable results file is fatal.
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		log.Fatalf("could not encode tracked data: %v", err)
	}
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}
