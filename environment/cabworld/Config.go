package cabworld

import "fmt"

const (
	// HoursPerDay is the number of simulated hours in a day. Hours
	// take values in (0, 1, ... HoursPerDay-1).
	HoursPerDay int = 24

	// DaysPerWeek is the number of simulated days in a week. Days
	// take values in (0, 1, ... DaysPerWeek-1), with day 0 being
	// Monday.
	DaysPerWeek int = 7
)

// defaultRate is the Poisson request rate assigned to every location
// when a Config is built without an explicit rate table
const defaultRate float64 = 4.0

// Config holds the immutable parameters of a CabWorld environment.
// A Config is constructed once and never modified afterwards; every
// component reads the same value.
type Config struct {
	// Locations is the number of pickup/drop locations. Locations
	// take values in (1, 2, ... Locations).
	Locations int

	// CostPerHour is the fuel and maintenance cost incurred for every
	// hour of driving, paid or not, and for every hour spent idling
	CostPerHour float64

	// RevenuePerHour is the fare revenue earned per hour of driving
	// with a passenger
	RevenuePerHour float64

	// RequestRates holds the Poisson rate of incoming ride requests
	// for each location. RequestRates[i] is the rate at location i+1.
	RequestRates []float64
}

// DefaultRequestRates returns the default per-location request rates
// for the five-city default configuration
func DefaultRequestRates() []float64 {
	return []float64{2, 12, 4, 7, 8}
}

// DefaultConfig returns the canonical five-city configuration: cost of
// 5 per hour, revenue of 9 per hour, and the default request rates
func DefaultConfig() Config {
	config, err := NewConfig(5, 5, 9, DefaultRequestRates())
	if err != nil {
		panic(fmt.Sprintf("defaultConfig: %v", err))
	}
	return config
}

// NewConfig constructs and validates a Config. If requestRates is nil,
// every location is given the same default rate.
func NewConfig(locations int, costPerHour, revenuePerHour float64,
	requestRates []float64) (Config, error) {
	if requestRates == nil {
		requestRates = make([]float64, locations)
		for i := range requestRates {
			requestRates[i] = defaultRate
		}
	}

	config := Config{
		Locations:      locations,
		CostPerHour:    costPerHour,
		RevenuePerHour: revenuePerHour,
		RequestRates:   requestRates,
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate returns an error describing why the Config cannot be used
// to construct an environment, or nil if the Config is well formed
func (c Config) Validate() error {
	if c.Locations < 2 {
		return fmt.Errorf("config: need at least 2 locations, have %d",
			c.Locations)
	}
	if c.CostPerHour < 0 {
		return fmt.Errorf("config: cost per hour %v cannot be negative",
			c.CostPerHour)
	}
	if c.RevenuePerHour < 0 {
		return fmt.Errorf("config: revenue per hour %v cannot be negative",
			c.RevenuePerHour)
	}
	if len(c.RequestRates) != c.Locations {
		return fmt.Errorf("config: have %d request rates for %d locations",
			len(c.RequestRates), c.Locations)
	}
	for i, rate := range c.RequestRates {
		if rate < 0 {
			return fmt.Errorf("config: request rate %v at location %d "+
				"cannot be negative", rate, i+1)
		}
	}
	return nil
}
