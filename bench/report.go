// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
)

// Report writes the human readable run summary to w. A failing sink only
// fails the write; callers still hold the metrics.
func (m *RunMetrics) Report(w io.Writer) error {
	bold := color.New(color.Bold)
	boldGreen := color.New(color.Bold, color.FgGreen)
	boldRed := color.New(color.Bold, color.FgRed)

	if _, err := bold.Fprintf(w, "Requested: %d\n", m.Requested); err != nil {
		return err
	}
	if _, err := boldGreen.Fprintf(w, "Succeeded: %d\n", m.Succeeded); err != nil {
		return err
	}
	failed := bold
	if m.Failed > 0 {
		failed = boldRed
	}
	if _, err := failed.Fprintf(w, "Failed:    %d\n", m.Failed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Elapsed:   %.3fs\n", m.Elapsed.Seconds()); err != nil {
		return err
	}
	if tps := m.TPS(); math.IsInf(tps, 1) {
		if _, err := bold.Fprintln(w, "TPS:       undefined"); err != nil {
			return err
		}
	} else {
		if _, err := bold.Fprintf(w, "TPS:       %.2f\n", tps); err != nil {
			return err
		}
	}
	if m.Succeeded+m.Failed == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Latency:   p50 %s  p99 %s  max %s\n",
		m.LatencyP50(), m.LatencyP99(), m.LatencyMax())
	return err
}
