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

import "github.com/clipshare-desktop/clipshare/errors"

const (
	ErrorConnect errors.CodeError = iota + errors.MinPkgClipTransport
	ErrorHandshake
	ErrorUntrustedPeer
	ErrorStalled
	ErrorClosed
	ErrorInvalidSize
	ErrorInvalidAddress
)

func init() {
	errors.RegisterIdFctMessage(ErrorConnect, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorConnect:
		return "transport: connect failed"
	case ErrorHandshake:
		return "transport: TLS handshake failed"
	case ErrorUntrustedPeer:
		return "transport: peer certificate common name is not trusted"
	case ErrorStalled:
		return "transport: read/write stalled past retry budget"
	case ErrorClosed:
		return "transport: socket is closed"
	case ErrorInvalidSize:
		return "transport: invalid size codec value"
	case ErrorInvalidAddress:
		return "transport: invalid IPv4 address"
	}
	return ""
}

// IsFatal reports whether err belongs to the fatal POSIX/WinSock/TLS error
// classes that must abort a session immediately instead of feeding the
// 11-stall retry counter: connection reset, shutdown, not-connected,
// protocol violation, and similar terminal conditions.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	return isFatalNetError(err)
}
