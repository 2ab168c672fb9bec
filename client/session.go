// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package client

import (
	"context"
	"errors"
	"fmt"
)

var ErrSessionClosed = errors.New("session closed")

// Session owns a single connection for the duration of a benchmark run.
// It is not safe for concurrent use; the driver is its only owner.
type Session struct {
	addr   string
	conn   Conn
	closed bool
}

// Open establishes an authenticated connection to addr and returns an
// open session.
func Open(ctx context.Context, tp Transport, addr, credential string) (*Session, error) {
	conn, err := tp.Connect(ctx, addr, credential)
	if err != nil {
		return nil, err
	}
	return &Session{addr: addr, conn: conn}, nil
}

func (s *Session) Addr() string {
	return s.addr
}

func (s *Session) IsOpen() bool {
	return !s.closed
}

// Submit sends one key value write and blocks until it is acknowledged.
// A failed submit leaves the session open; abort and retry decisions
// belong to the caller.
func (s *Session) Submit(ctx context.Context, key, value string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.conn.WriteKeyValue(ctx, key, value); err != nil {
		return fmt.Errorf("cannot submit %s=%s, %w", key, value, err)
	}
	return nil
}

// Close releases the connection exactly once. Calling it again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
