// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wooyang2018/kvbench/bench"
	"github.com/wooyang2018/kvbench/client"
	"github.com/wooyang2018/kvbench/core"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	s := New(DefaultConfig)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestServerStatus(t *testing.T) {
	asrt := assert.New(t)
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	asrt.Equal(http.StatusOK, resp.StatusCode)

	var status Status
	asrt.NoError(json.NewDecoder(resp.Body).Decode(&status))
	asrt.Equal(int64(0), status.TxCount)
}

func TestServerPostTransaction(t *testing.T) {
	asrt := assert.New(t)
	s, ts := newTestServer(t)

	tx := core.NewTransaction().
		SetNonce(time.Now().UnixNano()).
		SetKey("ns").
		SetValue("0").
		Sign(core.GenerateKey(nil))
	b, err := json.Marshal(tx)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/transactions", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	resp.Body.Close()
	asrt.Equal(http.StatusOK, resp.StatusCode)
	asrt.Equal(int64(1), s.TxCount())

	// garbage payload is rejected
	resp, err = http.Post(ts.URL+"/transactions", "application/json", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	resp.Body.Close()
	asrt.Equal(http.StatusBadRequest, resp.StatusCode)
	asrt.Equal(int64(1), s.TxCount())
}

func TestServerRejectsTamperedTransaction(t *testing.T) {
	asrt := assert.New(t)
	s, ts := newTestServer(t)

	tx := core.NewTransaction().
		SetNonce(time.Now().UnixNano()).
		SetKey("ns").
		SetValue("0").
		Sign(core.GenerateKey(nil))
	b, err := json.Marshal(tx)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	raw["value"] = json.RawMessage(`"999"`)
	b, err = json.Marshal(raw)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/transactions", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	resp.Body.Close()
	asrt.Equal(http.StatusBadRequest, resp.StatusCode)
	asrt.Equal(int64(0), s.TxCount())
}

func TestBenchmarkEndToEnd(t *testing.T) {
	asrt := assert.New(t)
	s, ts := newTestServer(t)

	config := bench.DefaultConfig
	config.Addr = ts.URL
	config.Credential = core.GenerateKey(nil).Seed()
	config.Count = 25
	config.Namespace = "e2e"

	d := bench.NewDriver(config, &client.HTTPTransport{Timeout: 5 * time.Second})
	metrics, err := d.Run(context.Background())
	asrt.NoError(err)
	asrt.Equal(bench.StateDone, d.State())
	asrt.Equal(uint64(25), metrics.Succeeded)
	asrt.Equal(uint64(0), metrics.Failed)
	asrt.Equal(int64(25), s.TxCount())
	asrt.Greater(metrics.TPS(), 0.0)

	var buf bytes.Buffer
	asrt.NoError(metrics.Report(&buf))
	asrt.Contains(buf.String(), "Succeeded: 25")
}
