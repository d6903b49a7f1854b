package telemetry

import "github.com/pthm-cable/trichrome/components"

// Collector accumulates battle events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	battles int
	wins    [components.NumColors]int
}

// NewCollector creates a stats collector.
// windowDurationSec: window length in simulation seconds.
// dt: seconds per tick (used for tick-to-time conversion).
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordBattle records a resolved battle and its winning color.
func (c *Collector) RecordBattle(winner, loser components.Color) {
	c.battles++
	c.wins[winner]++
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Reset clears all counters for a fresh run.
func (c *Collector) Reset() {
	c.windowStartTick = 0
	c.battles = 0
	c.wins = [components.NumColors]int{}
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, counts [components.NumColors]int, speeds []float64) WindowStats {
	mean, std := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowEndTick: currentTick,
		SimTimeSec:    float64(currentTick) * float64(c.dt),

		RedCount:   counts[components.ColorRed],
		GreenCount: counts[components.ColorGreen],
		BlueCount:  counts[components.ColorBlue],

		Battles:   c.battles,
		RedWins:   c.wins[components.ColorRed],
		GreenWins: c.wins[components.ColorGreen],
		BlueWins:  c.wins[components.ColorBlue],

		SpeedMean: mean,
		SpeedStd:  std,
	}

	c.windowStartTick = currentTick
	c.battles = 0
	c.wins = [components.NumColors]int{}

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
