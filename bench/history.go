// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package bench

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// data collection prefixes for different data collections
const (
	colRunByEndTime byte = iota + 1 // run record by end timestamp
)

// HistoryRecord is the stored form of RunMetrics. An infinite tps is
// stored as zero; the counts preserve enough to recompute.
type HistoryRecord struct {
	Requested uint64        `json:"requested"`
	Succeeded uint64        `json:"succeeded"`
	Failed    uint64        `json:"failed"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	Elapsed   time.Duration `json:"elapsed"`
	TPS       float64       `json:"tps"`
	P50       time.Duration `json:"p50"`
	P99       time.Duration `json:"p99"`
}

// History persists run records so past benchmark results stay comparable
// across invocations.
type History struct {
	db *leveldb.DB
}

func OpenHistory(path string) (*History, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot open history store, %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) Put(m *RunMetrics) error {
	tps := m.TPS()
	if math.IsInf(tps, 1) {
		tps = 0
	}
	rec := &HistoryRecord{
		Requested: m.Requested,
		Succeeded: m.Succeeded,
		Failed:    m.Failed,
		Start:     m.Start,
		End:       m.End,
		Elapsed:   m.Elapsed,
		TPS:       tps,
		P50:       m.LatencyP50(),
		P99:       m.LatencyP99(),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	key := make([]byte, 9)
	key[0] = colRunByEndTime
	binary.BigEndian.PutUint64(key[1:], uint64(m.End.UnixNano()))
	return h.db.Put(key, b, nil)
}

// List returns up to limit run records, newest first. A non positive
// limit returns everything.
func (h *History) List(limit int) ([]*HistoryRecord, error) {
	iter := h.db.NewIterator(util.BytesPrefix([]byte{colRunByEndTime}), nil)
	defer iter.Release()

	recs := make([]*HistoryRecord, 0)
	for ok := iter.Last(); ok; ok = iter.Prev() {
		if limit > 0 && len(recs) == limit {
			break
		}
		rec := new(HistoryRecord)
		if err := json.Unmarshal(iter.Value(), rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, iter.Error()
}

func (h *History) Close() error {
	return h.db.Close()
}
