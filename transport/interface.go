/*
 * MIT License
 *
 * Copyright (c) 2026 ClipShare-Desktop Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package transport provides the blocking, all-or-fail byte I/O every
// protocol exchange is built on: a tagged Socket (plain TCP, TLS, or UDP),
// a big-endian 8-byte size codec, and the bounded-stall read_exact/
// write_exact loop that both framing layers share.
package transport

import (
	"net"
	"time"
)

// Kind tags which variant of Socket is live. Exactly one is valid at a time.
type Kind uint8

const (
	Invalid Kind = iota
	PlainTCP
	TLS
	UDP
)

const (
	connectTimeout = 5 * time.Second
	dataTimeout    = 500 * time.Millisecond
	udpTimeout     = 2 * time.Second

	maxStalls  = 10
	chunkBytes = 64 * 1024
)

// Socket is the tagged handle over a plain TCP, TLS, or UDP connection. It
// is safe to call Close multiple times; the second and later calls are
// no-ops.
type Socket interface {
	Kind() Kind

	// ReadExact blocks until exactly len(buf) bytes are read, or fails with
	// a terminal error. A fatal network error aborts immediately; anything
	// else counts toward the 11-stall retry budget.
	ReadExact(buf []byte) error
	// WriteExact blocks until exactly len(buf) bytes are written, under the
	// same stall/fatal-error policy as ReadExact.
	WriteExact(buf []byte) error

	// ReadSize reads the big-endian 8-byte signed length/sentinel codec.
	ReadSize() (int64, error)
	// WriteSize writes the big-endian 8-byte signed length/sentinel codec.
	WriteSize(v int64) error

	// Close performs best-effort TLS shutdown (if applicable) before
	// closing the underlying connection. Idempotent.
	Close() error
	// CloseNoWait closes immediately without the pre-close one-byte await.
	CloseNoWait() error

	// RemoteAddr returns the peer address, or nil for an invalid socket.
	RemoteAddr() net.Addr

	// PeerCommonName returns the verified peer certificate's Common Name
	// for a TLS socket, or "" otherwise.
	PeerCommonName() string
}

