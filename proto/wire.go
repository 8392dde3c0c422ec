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

// Package proto implements the versioned request protocol: version
// negotiation, method dispatch, and each method's wire-level exchange.
package proto

// Version is the one-byte protocol version negotiated between client and
// server.
type Version uint8

const (
	V1 Version = 1
	V2 Version = 2
	V3 Version = 3
)

// ProtocolMin and ProtocolMax bound the versions this build supports;
// configuration clamps min_proto_version/max_proto_version into this
// range.
const (
	ProtocolMin = V1
	ProtocolMax = V3
)

// versionStatus is the one-byte status the server returns after the client
// offers its max_version.
type versionStatus uint8

const (
	statusSupported versionStatus = 1
	statusObsolete  versionStatus = 2
	statusUnknown   versionStatus = 3
)

// Method is the one-byte code selecting an action within a protocol
// version.
type Method uint8

const (
	GetText         Method = 1
	SendText        Method = 2
	GetFile         Method = 3
	SendFile        Method = 4
	GetImage        Method = 5
	GetCopiedImage  Method = 6
	GetScreenshot   Method = 7
	Info            Method = 125
)

// methodStatus is the one-byte status the server returns after the client
// sends a method code.
type methodStatus uint8

const (
	statusOK              methodStatus = 1
	statusNoData          methodStatus = 2
	statusUnknownMethod   methodStatus = 3
	statusNotImplemented  methodStatus = 4
)

// Args carries the small per-method argument variant: a display index (for
// GetScreenshot) or an auto-send flag, which the auto-send fan-out sets.
// The handlers in this package do not read the auto-send flag.
type Args struct {
	DisplayIndex uint16
	AutoSend     bool
}
