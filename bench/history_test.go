// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMetrics(succeeded uint64, end time.Time) *RunMetrics {
	m := newRunMetrics(succeeded)
	m.Succeeded = succeeded
	m.Start = end.Add(-time.Second)
	m.End = end
	m.Elapsed = time.Second
	m.recordLatency(time.Millisecond)
	return m
}

func TestHistoryPutList(t *testing.T) {
	asrt := assert.New(t)

	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	base := time.Now()
	asrt.NoError(h.Put(makeMetrics(1, base.Add(-2*time.Hour))))
	asrt.NoError(h.Put(makeMetrics(2, base.Add(-time.Hour))))
	asrt.NoError(h.Put(makeMetrics(3, base)))

	recs, err := h.List(0)
	asrt.NoError(err)
	require.Equal(t, 3, len(recs))
	// newest first
	asrt.Equal(uint64(3), recs[0].Succeeded)
	asrt.Equal(uint64(2), recs[1].Succeeded)
	asrt.Equal(uint64(1), recs[2].Succeeded)
	asrt.InDelta(3.0, recs[0].TPS, 1e-9)

	recs, err = h.List(2)
	asrt.NoError(err)
	asrt.Equal(2, len(recs))
	asrt.Equal(uint64(3), recs[0].Succeeded)
}

func TestHistoryStoresInfiniteTPSAsZero(t *testing.T) {
	asrt := assert.New(t)

	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	m := makeMetrics(5, time.Now())
	m.Elapsed = 0
	asrt.NoError(h.Put(m))

	recs, err := h.List(1)
	asrt.NoError(err)
	require.Equal(t, 1, len(recs))
	asrt.Zero(recs[0].TPS)
	asrt.Equal(uint64(5), recs[0].Succeeded)
}
