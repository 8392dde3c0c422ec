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

package proto

import (
	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/transport"
)

// Handler implements one method's wire-level exchange at a negotiated
// version.
type Handler func(sock transport.Socket, args Args, rep reporter.Reporter) error

// table maps (version, method) to its Handler, populated per version by
// registerV1/registerV2/registerV3.
type table map[Version]map[Method]Handler

func buildDispatch(b Bindings) table {
	t := table{
		V1: make(map[Method]Handler),
		V2: make(map[Method]Handler),
		V3: make(map[Method]Handler),
	}

	registerV1(t, b)
	registerV2(t, b)
	registerV3(t, b)

	return t
}

// HandleProto runs the client side of the negotiator state machine: version
// handshake, then method dispatch at the settled version. minVersion and
// maxVersion bound the client's offer per the configuration's
// [min_proto_version, max_proto_version]. b supplies the clipboard,
// filesystem, and size-limit collaborators the method bodies call through.
func HandleProto(sock transport.Socket, minVersion, maxVersion Version, method Method, args Args, rep reporter.Reporter, b Bindings) error {
	rep = reporter.New(rep)
	defer reporter.ReportIfUnset(rep)

	version, err := negotiateVersion(sock, minVersion, maxVersion, rep)
	if err != nil {
		return err
	}

	dispatch := buildDispatch(b)

	handlers, ok := dispatch[version]
	if !ok {
		rep.Report(reporter.ProtoMethodError, nil)
		return ErrorMethodNotAllowed.Error(nil)
	}

	h, ok := handlers[method]
	if !ok {
		rep.Report(reporter.ProtoMethodError, nil)
		return ErrorMethodNotAllowed.Error(nil)
	}

	return dispatchMethod(sock, method, h, args, rep)
}

func negotiateVersion(sock transport.Socket, minVersion, maxVersion Version, rep reporter.Reporter) (Version, error) {
	if err := sock.WriteExact([]byte{byte(maxVersion)}); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return 0, err
	}

	var status [1]byte
	if err := sock.ReadExact(status[:]); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return 0, err
	}

	switch versionStatus(status[0]) {
	case statusSupported:
		return maxVersion, nil
	case statusObsolete:
		rep.Report(reporter.ProtoVersionMismatch, nil)
		return 0, ErrorVersionMismatch.Error(nil)
	case statusUnknown:
		return negotiateUnknown(sock, minVersion, maxVersion, rep)
	default:
		rep.Report(reporter.ServerError, nil)
		return 0, ErrorServerStatus.Error(nil)
	}
}

func negotiateUnknown(sock transport.Socket, minVersion, maxVersion Version, rep reporter.Reporter) (Version, error) {
	var offered [1]byte
	if err := sock.ReadExact(offered[:]); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return 0, err
	}

	v := Version(offered[0])
	if v < minVersion || v > maxVersion {
		_ = sock.WriteExact([]byte{0})
		rep.Report(reporter.ProtoVersionMismatch, nil)
		return 0, ErrorVersionMismatch.Error(nil)
	}

	if err := sock.WriteExact([]byte{byte(v)}); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return 0, err
	}

	return v, nil
}

func dispatchMethod(sock transport.Socket, method Method, h Handler, args Args, rep reporter.Reporter) error {
	if err := sock.WriteExact([]byte{byte(method)}); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	var status [1]byte
	if err := sock.ReadExact(status[:]); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	switch methodStatus(status[0]) {
	case statusOK:
		return h(sock, args, rep)
	case statusNoData:
		rep.Report(reporter.NoData, nil)
		return nil
	case statusUnknownMethod, statusNotImplemented:
		rep.Report(reporter.MethodNotAllowed, nil)
		return ErrorMethodNotAllowed.Error(nil)
	default:
		rep.Report(reporter.ServerError, nil)
		return ErrorServerStatus.Error(nil)
	}
}
