// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wooyang2018/kvbench/core"
)

// HTTPTransport submits transactions through the json api of a ledger
// node. Every write is signed with the key derived from the credential.
type HTTPTransport struct {
	// Timeout bounds each http call, zero means no bound. An expired
	// call surfaces as a submit error, never a hang.
	Timeout time.Duration
}

var _ Transport = (*HTTPTransport)(nil)

func (tp *HTTPTransport) Connect(ctx context.Context, addr, credential string) (Conn, error) {
	signer, err := core.NewPrivateKeyFromHex(credential)
	if err != nil {
		return nil, fmt.Errorf("cannot parse credential, %w", err)
	}
	conn := &httpConn{
		base:   normalizeAddr(addr),
		signer: signer,
		client: &http.Client{Timeout: tp.Timeout},
	}
	if err := conn.probe(ctx); err != nil {
		return nil, fmt.Errorf("cannot connect %s, %w", addr, err)
	}
	return conn, nil
}

func normalizeAddr(addr string) string {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return strings.TrimSuffix(addr, "/")
}

type httpConn struct {
	base   string
	signer *core.PrivateKey
	client *http.Client
}

func (conn *httpConn) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, conn.base+"/status", nil)
	if err != nil {
		return err
	}
	resp, err := conn.client.Do(req)
	if err := checkResponse(resp, err); err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (conn *httpConn) WriteKeyValue(ctx context.Context, key, value string) error {
	tx := core.NewTransaction().
		SetNonce(time.Now().UnixNano()).
		SetKey(key).
		SetValue(value).
		Sign(conn.signer)
	b, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		conn.base+"/transactions", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := conn.client.Do(req)
	if err := checkResponse(resp, err); err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (conn *httpConn) Close() error {
	conn.client.CloseIdleConnections()
	return nil
}

func checkResponse(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return fmt.Errorf("status code %d, %s", resp.StatusCode, string(msg))
	}
	return nil
}
