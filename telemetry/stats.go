// Package telemetry accumulates windowed run statistics and writes
// them to structured output.
package telemetry

import "gonum.org/v1/gonum/stat"

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Population counts at window end
	RedCount   int `csv:"red"`
	GreenCount int `csv:"green"`
	BlueCount  int `csv:"blue"`

	// Battle events during the window
	Battles   int `csv:"battles"`
	RedWins   int `csv:"red_wins"`
	GreenWins int `csv:"green_wins"`
	BlueWins  int `csv:"blue_wins"`

	// Agent speed distribution at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
}

// ComputeSpeedStats returns the mean and standard deviation of agent
// speeds. Returns zeros for an empty sample.
func ComputeSpeedStats(speeds []float64) (mean, std float64) {
	if len(speeds) == 0 {
		return 0, 0
	}
	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}
	return mean, std
}
