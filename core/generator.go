// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package core

import "strconv"

// KV is a single key value write request produced by the generator.
type KV struct {
	Key   string
	Value string
}

// Generator produces the deterministic write sequence of a benchmark run.
// The i-th pair is the fixed namespace and the decimal string of i, so the
// value never outgrows its buffer no matter how large the run is.
type Generator struct {
	namespace string
}

func NewGenerator(namespace string) Generator {
	return Generator{namespace: namespace}
}

// KV returns the i-th request. It is a pure function of i.
func (g Generator) KV(i uint64) KV {
	return KV{
		Key:   g.namespace,
		Value: strconv.FormatUint(i, 10),
	}
}

func (g Generator) Namespace() string {
	return g.namespace
}
