// Package clock provides the synthetic monotonic time source used to order
// and stamp ledger transactions. Time is counted in whole minutes since a
// fixed epoch and only moves forward; it has no relation to wall-clock time.
package clock

import (
	"fmt"
	"math/rand"
	"sync"
)

// DefaultEpochMinutes is the reading a freshly constructed clock starts from.
const DefaultEpochMinutes int64 = 1_048_000_000

// Calendar divisors for rendering a stamp: 360-day years, 30-day months.
const (
	minutesPerYear  = 518_400
	minutesPerMonth = 43_200
	minutesPerDay   = 1_440
)

// Stamp is a single clock reading, in minutes since the epoch.
type Stamp int64

// Before reports whether s reads earlier than other.
func (s Stamp) Before(other Stamp) bool {
	return s < other
}

// String renders the stamp as "Y-MM-DD HH:MM" on the synthetic calendar.
func (s Stamp) String() string {
	m := int64(s)
	years := m / minutesPerYear
	months := (m % minutesPerYear) / minutesPerMonth
	days := (m % minutesPerMonth) / minutesPerDay
	hours := (m % minutesPerDay) / 60
	minutes := m % 60
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d", years, months, days, hours, minutes)
}

// Clock is a process-local monotonic minute counter. Tick advances it by a
// pseudo-random number of minutes to simulate time passing between
// operations; Now reads it without advancing. All methods are safe for
// concurrent use.
type Clock struct {
	mu      sync.Mutex
	minutes int64
	rng     *rand.Rand
}

// New returns a clock starting at epochMinutes whose tick increments are
// drawn from a source seeded with seed. Equal seeds produce equal tick
// sequences, which the tests rely on.
func New(epochMinutes int64, seed int64) *Clock {
	return &Clock{
		minutes: epochMinutes,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Now returns the current reading without advancing the clock.
func (c *Clock) Now() Stamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stamp(c.minutes)
}

// Tick advances the clock by a random number of minutes in [1, 1000] and
// returns the new reading. Successive readings are strictly increasing.
func (c *Clock) Tick() Stamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minutes += 1 + c.rng.Int63n(1000)
	return Stamp(c.minutes)
}
