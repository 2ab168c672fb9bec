// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// RunMetrics captures the outcome of one benchmark run. The driver
// creates it when the submission loop ends and never mutates it again.
type RunMetrics struct {
	Requested uint64
	Succeeded uint64
	Failed    uint64
	Start     time.Time
	End       time.Time
	Elapsed   time.Duration

	latency *hdrhistogram.Histogram
}

func newRunMetrics(requested uint64) *RunMetrics {
	return &RunMetrics{
		Requested: requested,
		// 1us to 10min per submission, 3 significant figures
		latency: hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3),
	}
}

// recordLatency clamps to the histogram bounds so an out of range
// submission still shows up in the percentiles instead of vanishing.
func (m *RunMetrics) recordLatency(d time.Duration) {
	v := int64(d / time.Microsecond)
	if v < m.latency.LowestTrackableValue() {
		v = m.latency.LowestTrackableValue()
	} else if v > m.latency.HighestTrackableValue() {
		v = m.latency.HighestTrackableValue()
	}
	m.latency.RecordValue(v)
}

// TPS is the successful submission count divided by the elapsed wall
// clock seconds. It reports +Inf instead of dividing when the run
// attempted no submissions or the elapsed time is zero, since a rate
// over an empty or sub-measurable span is undefined.
func (m *RunMetrics) TPS() float64 {
	sec := m.Elapsed.Seconds()
	if sec <= 0 || m.Succeeded+m.Failed == 0 {
		return math.Inf(1)
	}
	return float64(m.Succeeded) / sec
}

func (m *RunMetrics) LatencyP50() time.Duration { return m.latencyAt(50) }

func (m *RunMetrics) LatencyP99() time.Duration { return m.latencyAt(99) }

func (m *RunMetrics) LatencyMax() time.Duration {
	return time.Duration(m.latency.Max()) * time.Microsecond
}

func (m *RunMetrics) latencyAt(q float64) time.Duration {
	return time.Duration(m.latency.ValueAtQuantile(q)) * time.Microsecond
}
