// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/wooyang2018/kvbench/client"
	"github.com/wooyang2018/kvbench/core"
	"github.com/wooyang2018/kvbench/logger"
)

type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateRunning
	StateReporting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateRunning:
		return "running"
	case StateReporting:
		return "reporting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Driver orchestrates a benchmark run. It opens one session, drives the
// generator through it Count times back to back with a single
// outstanding request, and measures the wall clock span of the loop.
type Driver struct {
	config    Config
	transport client.Transport
	state     State
}

// NewDriver creates a driver. A nil transport selects the http transport
// with the configured per call timeout.
func NewDriver(config Config, transport client.Transport) *Driver {
	if transport == nil {
		transport = &client.HTTPTransport{Timeout: config.Timeout}
	}
	return &Driver{
		config:    config,
		transport: transport,
	}
}

func (d *Driver) State() State {
	return d.state
}

// Run executes the benchmark. The returned metrics are valid even when
// the run fails after the connection is established; they then cover the
// submissions up to the failure, so a broken reporting sink can never
// lose them.
func (d *Driver) Run(ctx context.Context) (*RunMetrics, error) {
	if err := d.config.Validate(); err != nil {
		d.state = StateFailed
		return nil, err
	}

	d.state = StateConnecting
	session, err := client.Open(ctx, d.transport, d.config.Addr, d.config.Credential)
	if err != nil {
		d.state = StateFailed
		return nil, fmt.Errorf("cannot open session, %w", err)
	}
	defer session.Close() // release on every exit path, Close is idempotent

	d.state = StateRunning
	logger.I().Infow("benchmark started",
		"addr", d.config.Addr,
		"count", d.config.Count,
		"namespace", d.config.Namespace,
		"policy", d.config.Policy)

	gen := core.NewGenerator(d.config.Namespace)
	metrics := newRunMetrics(d.config.Count)
	var runErr error
	metrics.Start = time.Now()
	for i := uint64(0); i < d.config.Count; i++ {
		kv := gen.KV(i)
		t0 := time.Now()
		err := session.Submit(ctx, kv.Key, kv.Value)
		metrics.recordLatency(time.Since(t0))
		if err == nil {
			metrics.Succeeded++
			continue
		}
		metrics.Failed++
		if d.config.Policy == PolicyAbort {
			runErr = fmt.Errorf("submit %d/%d failed, %w", i, d.config.Count, err)
			break
		}
		logger.I().Warnw("submit failed", "index", i, "error", err)
	}
	metrics.End = time.Now()
	metrics.Elapsed = metrics.End.Sub(metrics.Start)

	d.state = StateReporting
	if err := session.Close(); err != nil {
		logger.I().Warnw("close session failed", "error", err)
	}
	logger.I().Infow("benchmark finished",
		"succeeded", metrics.Succeeded,
		"failed", metrics.Failed,
		"elapsed", metrics.Elapsed,
		"tps", metrics.TPS())

	if runErr != nil {
		d.state = StateFailed
		return metrics, runErr
	}
	d.state = StateDone
	return metrics, nil
}
