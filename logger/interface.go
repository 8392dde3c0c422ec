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

// Package logger provides the structured logging facade used throughout
// clipshare-desktop. It wraps github.com/sirupsen/logrus the way nabbar-golib's
// own logger package wraps it, but trimmed to a single backend: no syslog,
// hclog, or gorm hooks, since none of those collaborators exist in a LAN
// clipboard client.
package logger

import (
	"context"
	"io"
	"log"
)

// Fields carries structured key/value context attached to a single log entry.
type Fields map[string]interface{}

// FuncLog returns a Logger lazily; used for dependency injection where a
// concrete Logger may not yet be constructed.
type FuncLog func() Logger

// Logger is the minimal structured-logging surface the core depends on.
type Logger interface {
	io.Writer

	SetLevel(lvl Level)
	GetLevel() Level

	SetFields(f Fields)
	GetFields() Fields

	Clone() Logger

	GetStdLogger(lvl Level, flags int) *log.Logger

	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Warning(message string, fields Fields)
	Error(message string, err error, fields Fields)

	// CheckError logs err (if non-nil) at lvlKO and returns false; if err is
	// nil and lvlOK is not NilLevel, it logs message at lvlOK and returns true.
	CheckError(lvlKO, lvlOK Level, message string, err error) bool
}

// New returns a new Logger bound to ctx (used only for cancellation of any
// deferred flush, never read by the current implementation).
func New(ctx context.Context) Logger {
	return newLogrusLogger(ctx)
}
