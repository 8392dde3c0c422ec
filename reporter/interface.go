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

// Package reporter carries the at-most-once status/payload sink that every
// top-level request reports its outcome through, whether the caller is the
// CLI or the embedded web front-end.
package reporter

import "github.com/clipshare-desktop/clipshare/errors"

// Status is the outcome code surfaced to a Reporter.
type Status uint8

const (
	OK Status = iota + 1
	NoData
	DataError
	MethodNotAllowed
	ProtoMethodError
	ProtoVersionMismatch
	ServerError
	CommunicationFailure
	ConnectionFailure
	InvalidAddress
	LocalError
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case NoData:
		return "NO_DATA"
	case DataError:
		return "DATA_ERROR"
	case MethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case ProtoMethodError:
		return "PROTO_METHOD_ERROR"
	case ProtoVersionMismatch:
		return "PROTO_VERSION_MISMATCH"
	case ServerError:
		return "SERVER_ERROR"
	case CommunicationFailure:
		return "COMMUNICATION_FAILURE"
	case ConnectionFailure:
		return "CONNECTION_FAILURE"
	case InvalidAddress:
		return "INVALID_ADDRESS"
	case LocalError:
		return "LOCAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// ProgressFunc is an optional hook invoked as a streaming method makes
// incremental progress (e.g. file bytes transferred). It is never the
// terminal report; only Reporter.Report latches the at-most-once outcome.
type ProgressFunc func(transferred, total int64)

// Reporter is the caller-supplied, at-most-once outcome sink. A method
// implementation calls Report exactly once on its own behalf; the
// negotiator guarantees a final LOCAL_ERROR report if nothing else fired.
type Reporter interface {
	Report(status Status, payload []byte)
	Progress() ProgressFunc
}

const (
	ErrorAlreadyReported errors.CodeError = iota + errors.MinPkgClipReporter
)

func init() {
	errors.RegisterIdFctMessage(ErrorAlreadyReported, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorAlreadyReported:
		return "reporter: report already latched for this request"
	}
	return ""
}
