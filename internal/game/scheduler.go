package game

import "time"

// Default wrapping-clock parameters. The clock value is folded modulo a
// fixed period to bound counter growth; a remaining wait above the staleness
// limit means the schedule is stale (the process was suspended or fell
// behind) and is resynchronized to now.
const (
	DefaultClockModulusMS = 10000
	DefaultStaleLimitMS   = 1500
)

// Clock supplies milliseconds on a wrapping timescale.
type Clock interface {
	// NowMS returns the current time in milliseconds, already reduced
	// modulo the scheduler's clock modulus.
	NowMS() int
}

// WallClock folds the system clock into a modulus.
// A zero ModulusMS means DefaultClockModulusMS.
type WallClock struct {
	ModulusMS int
}

// NowMS implements Clock.
func (c WallClock) NowMS() int {
	m := c.ModulusMS
	if m <= 0 {
		m = DefaultClockModulusMS
	}
	return int(time.Now().UnixMilli() % int64(m))
}

// TickScheduler tracks the time of the next gravity tick under a wrapping
// clock and derives a bounded wait budget for the next input poll.
type TickScheduler struct {
	clock   Clock
	nextMS  int
	stepMS  int
	modulus int
	stale   int
}

// NewTickScheduler creates a scheduler with the given gravity interval.
// Non-positive modulus or staleness limits fall back to the defaults.
func NewTickScheduler(clock Clock, stepMS, modulusMS, staleMS int) *TickScheduler {
	if modulusMS <= 0 {
		modulusMS = DefaultClockModulusMS
	}
	if staleMS <= 0 {
		staleMS = DefaultStaleLimitMS
	}
	s := &TickScheduler{
		clock:   clock,
		stepMS:  stepMS,
		modulus: modulusMS,
		stale:   staleMS,
	}
	s.Resync()
	return s
}

// Resync schedules the next tick for right now.
func (s *TickScheduler) Resync() {
	s.nextMS = s.clock.NowMS() % s.modulus
}

// SetStepMS changes the gravity interval used by future Advance calls.
func (s *TickScheduler) SetStepMS(ms int) {
	s.stepMS = ms
}

// StepMS returns the current gravity interval.
func (s *TickScheduler) StepMS() int {
	return s.stepMS
}

// RemainingMS returns how long the next poll may block before the scheduled
// tick is due. A value beyond the staleness limit means the scheduled time
// has already passed (wrapped around); the schedule is resynchronized to now
// and 0 is returned so the caller polls with an immediate timeout.
func (s *TickScheduler) RemainingMS() int {
	remaining := (s.modulus + s.nextMS - s.clock.NowMS()%s.modulus) % s.modulus
	if remaining > s.stale {
		s.Resync()
		return 0
	}
	return remaining
}

// Advance moves the schedule forward by one gravity interval.
func (s *TickScheduler) Advance() {
	s.nextMS = (s.nextMS + s.stepMS) % s.modulus
}
