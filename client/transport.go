// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package client

import "context"

// Transport establishes authenticated connections to a ledger endpoint.
// Implementations own the wire format; the harness only depends on this
// contract.
type Transport interface {
	Connect(ctx context.Context, addr, credential string) (Conn, error)
}

// Conn is one live connection. WriteKeyValue blocks until the remote side
// acknowledges the write or reports a failure. Close is idempotent.
type Conn interface {
	WriteKeyValue(ctx context.Context, key, value string) error
	Close() error
}
