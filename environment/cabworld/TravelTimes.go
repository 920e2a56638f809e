package cabworld

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"gorgonia.org/tensor"
)

// TravelTimes is the read-only 4-dimensional table of trip durations,
// indexed by origin, destination, hour of day, and day of week.
// Durations are whole simulated hours. The table is immutable after
// construction, so any number of concurrent readers may call Lookup
// without synchronization.
//
// Diagonal entries (origin equal to destination) are never consulted
// by the environment and carry no meaning.
type TravelTimes struct {
	locations int
	durations *tensor.Dense
}

// NewTravelTimes builds a travel-time table for the argument number of
// locations from a flat backing slice in row-major
// (origin, destination, hour, day) order. The backing slice must have
// exactly locations * locations * 24 * 7 entries. Durations are whole
// hours: every entry must be a non-negative integer strictly less
// than a day, since a single trip segment may not span more than one
// day rollover. Fractional entries are a construction error, never
// rounded.
func NewTravelTimes(locations int, durations []float64) (*TravelTimes, error) {
	if locations < 2 {
		return nil, fmt.Errorf("newTravelTimes: need at least 2 locations, "+
			"have %d", locations)
	}

	want := locations * locations * HoursPerDay * DaysPerWeek
	if len(durations) != want {
		return nil, fmt.Errorf("newTravelTimes: table has %d entries, "+
			"want %d", len(durations), want)
	}

	for i, duration := range durations {
		if duration < 0 || duration >= float64(HoursPerDay) {
			return nil, fmt.Errorf("newTravelTimes: duration %v at entry "+
				"%d ∉ [0, %d)", duration, i, HoursPerDay)
		}
		if duration != math.Trunc(duration) {
			return nil, fmt.Errorf("newTravelTimes: duration %v at entry "+
				"%d is not a whole number of hours", duration, i)
		}
	}

	durationTensor := tensor.New(
		tensor.WithShape(locations, locations, HoursPerDay, DaysPerWeek),
		tensor.WithBacking(durations),
	)

	return &TravelTimes{locations, durationTensor}, nil
}

// UniformTravelTimes returns a table in which every trip takes the
// argument number of hours, regardless of origin, destination, or
// clock. Useful as a smoke-test fixture.
func UniformTravelTimes(locations, hours int) *TravelTimes {
	backing := make([]float64,
		locations*locations*HoursPerDay*DaysPerWeek)
	for i := range backing {
		backing[i] = float64(hours)
	}

	times, err := NewTravelTimes(locations, backing)
	if err != nil {
		panic(fmt.Sprintf("uniformTravelTimes: %v", err))
	}
	return times
}

// Locations returns the number of locations the table covers
func (t *TravelTimes) Locations() int {
	return t.locations
}

// Lookup returns the duration in whole hours of driving from one
// location to another, starting at the argument hour and day. An
// out-of-range index results in an error; in normal operation indices
// are produced by Clock arithmetic and the space builders and are
// never out of range.
func (t *TravelTimes) Lookup(from, to Location, hour, day int) (int, error) {
	if from < 1 || int(from) > t.locations {
		return 0, fmt.Errorf("lookup: origin %v ∉ [1, %d]", from,
			t.locations)
	}
	if to < 1 || int(to) > t.locations {
		return 0, fmt.Errorf("lookup: destination %v ∉ [1, %d]", to,
			t.locations)
	}
	if hour < 0 || hour >= HoursPerDay {
		return 0, fmt.Errorf("lookup: hour %v ∉ [0, %d)", hour,
			HoursPerDay)
	}
	if day < 0 || day >= DaysPerWeek {
		return 0, fmt.Errorf("lookup: day %v ∉ [0, %d)", day,
			DaysPerWeek)
	}

	duration, err := t.durations.At(int(from)-1, int(to)-1, hour, day)
	if err != nil {
		return 0, fmt.Errorf("lookup: %v", err)
	}

	return int(duration.(float64)), nil
}

// MaxDuration returns the longest duration anywhere in the table
func (t *TravelTimes) MaxDuration() int {
	max := 0.0
	for _, duration := range t.durations.Data().([]float64) {
		if duration > max {
			max = duration
		}
	}
	return int(max)
}

// travelTimesFile is the on-disk representation of a table
type travelTimesFile struct {
	Locations int
	Durations []float64
}

// Save writes the table to the argument file so that it can later be
// reloaded with LoadTravelTimes
func (t *TravelTimes) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %v", err)
	}
	defer file.Close()

	encoded := travelTimesFile{
		Locations: t.locations,
		Durations: t.durations.Data().([]float64),
	}

	if err := gob.NewEncoder(file).Encode(encoded); err != nil {
		return fmt.Errorf("save: could not encode travel times: %v", err)
	}
	return nil
}

// LoadTravelTimes reads a table previously written by Save. This is
// the single boundary between the environment and whatever external
// process estimates the travel times; the environment requires only
// the shape and value-range guarantees that NewTravelTimes enforces.
func LoadTravelTimes(filename string) (*TravelTimes, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadTravelTimes: could not open file: %v",
			err)
	}
	defer file.Close()

	var decoded travelTimesFile
	if err := gob.NewDecoder(file).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("loadTravelTimes: could not decode travel "+
			"times: %v", err)
	}

	return NewTravelTimes(decoded.Locations, decoded.Durations)
}
