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

package transport

import (
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/clipshare-desktop/clipshare/certificates"
)

type invalidSocket struct{}

func (invalidSocket) Kind() Kind                   { return Invalid }
func (invalidSocket) ReadExact(_ []byte) error      { return ErrorClosed.Error(nil) }
func (invalidSocket) WriteExact(_ []byte) error     { return ErrorClosed.Error(nil) }
func (invalidSocket) ReadSize() (int64, error)       { return 0, ErrorClosed.Error(nil) }
func (invalidSocket) WriteSize(_ int64) error        { return ErrorClosed.Error(nil) }
func (invalidSocket) Close() error                   { return nil }
func (invalidSocket) CloseNoWait() error             { return nil }
func (invalidSocket) RemoteAddr() net.Addr           { return nil }
func (invalidSocket) PeerCommonName() string         { return "" }

// InvalidSocket returns a Socket that fails every I/O operation; used as the
// zero-value return on connect failure.
func InvalidSocket() Socket { return invalidSocket{} }

type plainSocket struct {
	m    sync.Mutex
	conn net.Conn
}

func (o *plainSocket) Kind() Kind { return PlainTCP }

func (o *plainSocket) ReadExact(buf []byte) error {
	_ = o.conn.SetReadDeadline(time.Now().Add(dataTimeout))
	return readExact(o.conn, buf)
}

func (o *plainSocket) WriteExact(buf []byte) error {
	_ = o.conn.SetWriteDeadline(time.Now().Add(dataTimeout))
	return writeExact(o.conn, buf)
}

func (o *plainSocket) ReadSize() (int64, error) {
	_ = o.conn.SetReadDeadline(time.Now().Add(dataTimeout))
	return readSize(o.conn)
}

func (o *plainSocket) WriteSize(v int64) error {
	_ = o.conn.SetWriteDeadline(time.Now().Add(dataTimeout))
	return writeSize(o.conn, v)
}

func (o *plainSocket) awaitPeerHalfClose() {
	_ = o.conn.SetReadDeadline(time.Now().Add(dataTimeout))
	var b [1]byte
	_, _ = o.conn.Read(b[:])
}

func (o *plainSocket) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.conn == nil {
		return nil
	}

	o.awaitPeerHalfClose()

	e := o.conn.Close()
	o.conn = nil
	return e
}

func (o *plainSocket) CloseNoWait() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.conn == nil {
		return nil
	}

	e := o.conn.Close()
	o.conn = nil
	return e
}

func (o *plainSocket) RemoteAddr() net.Addr {
	if o.conn == nil {
		return nil
	}
	return o.conn.RemoteAddr()
}

func (o *plainSocket) PeerCommonName() string { return "" }

type tlsSocket struct {
	plainSocket
	state *tls.ConnectionState
}

func (o *tlsSocket) Kind() Kind { return TLS }

func (o *tlsSocket) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.conn == nil {
		return nil
	}

	if c, ok := o.conn.(*tls.Conn); ok {
		_ = c.CloseWrite()
	}

	o.awaitPeerHalfClose()

	e := o.conn.Close()
	o.conn = nil
	return e
}

func (o *tlsSocket) PeerCommonName() string {
	if o.state == nil || len(o.state.PeerCertificates) == 0 {
		return ""
	}
	return o.state.PeerCertificates[0].Subject.CommonName
}

type udpSock struct {
	m    sync.Mutex
	conn *net.UDPConn
	peer *net.UDPAddr
}

func (o *udpSock) Kind() Kind { return UDP }

func (o *udpSock) ReadExact(buf []byte) error {
	_ = o.conn.SetReadDeadline(time.Now().Add(udpTimeout))
	return readExact(o.conn, buf)
}

func (o *udpSock) WriteExact(buf []byte) error {
	_ = o.conn.SetWriteDeadline(time.Now().Add(udpTimeout))
	return writeExact(o.conn, buf)
}

func (o *udpSock) ReadSize() (int64, error) {
	_ = o.conn.SetReadDeadline(time.Now().Add(udpTimeout))
	return readSize(o.conn)
}

func (o *udpSock) WriteSize(v int64) error {
	_ = o.conn.SetWriteDeadline(time.Now().Add(udpTimeout))
	return writeSize(o.conn, v)
}

func (o *udpSock) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.conn == nil {
		return nil
	}

	e := o.conn.Close()
	o.conn = nil
	return e
}

func (o *udpSock) CloseNoWait() error { return o.Close() }

func (o *udpSock) RemoteAddr() net.Addr {
	if o.peer != nil {
		return o.peer
	}
	if o.conn != nil {
		return o.conn.RemoteAddr()
	}
	return nil
}

func (o *udpSock) PeerCommonName() string { return "" }

// Connect dials addr:port as plain TCP, or as TLS 1.2+ with mutual
// authentication when secure is true. On secure mode the client identity
// and trust roots come from tlsCfg; the peer's certificate Common Name
// must appear in trustedServers or the connection is closed. A single
// retry of the full connect (including the TLS handshake) is attempted on
// first failure.
func Connect(addr string, port uint16, secure bool, tlsCfg certificates.TLSConfig, trustedServers []string) (Socket, error) {
	dial := func() (Socket, error) {
		target := fmt.Sprintf("%s:%d", addr, port)

		d := net.Dialer{Timeout: connectTimeout}
		raw, err := d.Dial("tcp4", target)
		if err != nil {
			return nil, ErrorConnect.Error(err)
		}

		if !secure {
			return &plainSocket{conn: raw}, nil
		}

		cfg := tlsCfg.TLS(addr)
		cfg.InsecureSkipVerify = false

		tc := tls.Client(raw, cfg)
		_ = tc.SetDeadline(time.Now().Add(connectTimeout))

		if err = tc.Handshake(); err != nil {
			_ = raw.Close()
			return nil, ErrorHandshake.Error(err)
		}

		st := tc.ConnectionState()

		sock := &tlsSocket{plainSocket: plainSocket{conn: tc}, state: &st}

		if !trustedCommonName(sock.PeerCommonName(), trustedServers) {
			_ = sock.CloseNoWait()
			return nil, ErrorUntrustedPeer.Error(nil)
		}

		return sock, nil
	}

	sock, err := dial()
	if err != nil {
		sock, err = dial()
	}

	if err != nil {
		return InvalidSocket(), err
	}

	return sock, nil
}

func trustedCommonName(cn string, trusted []string) bool {
	for _, t := range trusted {
		if t == cn {
			return true
		}
	}

	return false
}

// NewUDPSocket opens a broadcast-enabled UDP socket bound to localAddr,
// with the 2 s timeout tier used for discovery probes.
func NewUDPSocket(localAddr *net.UDPAddr) (Socket, error) {
	conn, err := net.ListenUDP("udp4", localAddr)
	if err != nil {
		return InvalidSocket(), ErrorConnect.Error(err)
	}

	if err = EnableBroadcast(conn); err != nil {
		_ = conn.Close()
		return InvalidSocket(), ErrorConnect.Error(err)
	}

	return &udpSock{conn: conn}, nil
}
