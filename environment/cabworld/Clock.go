package cabworld

import "fmt"

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday", "Sunday"}

// Clock is an (hour, day) pair on the simulated week. Hour is in
// (0, 1, ... 23) and Day is in (0, 1, ... 6), with day 0 being Monday.
type Clock struct {
	Hour int
	Day  int
}

// Advance returns the clock hours simulated hours later, rolling the
// hour past 23 into the next day and the day past Sunday back to
// Monday. A single Advance never spans more than one day rollover:
// hours must be in [0, 24). Longer waits are modelled by sequential
// Advance calls. Advance panics on an out-of-range receiver or
// argument, since callers are required to keep both within domain.
func (c Clock) Advance(hours int) Clock {
	if c.Hour < 0 || c.Hour >= HoursPerDay {
		panic(fmt.Sprintf("advance: illegal hour %v ∉ [0, %v)", c.Hour,
			HoursPerDay))
	}
	if c.Day < 0 || c.Day >= DaysPerWeek {
		panic(fmt.Sprintf("advance: illegal day %v ∉ [0, %v)", c.Day,
			DaysPerWeek))
	}
	if hours < 0 || hours >= HoursPerDay {
		panic(fmt.Sprintf("advance: illegal wait %v ∉ [0, %v)", hours,
			HoursPerDay))
	}

	hour := c.Hour + hours
	day := c.Day
	if hour >= HoursPerDay {
		hour -= HoursPerDay
		day = (day + 1) % DaysPerWeek
	}
	return Clock{hour, day}
}

// String returns the clock formatted as, e.g., "Monday 08:00"
func (c Clock) String() string {
	return fmt.Sprintf("%v %02d:00", dayNames[c.Day], c.Hour)
}
