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
	"io"
	"sync/atomic"
	"time"

	"github.com/clipshare-desktop/clipshare/ioutils/ioprogress"
	"github.com/clipshare-desktop/clipshare/logger"
	"github.com/clipshare-desktop/clipshare/reporter"
)

// throttledProgress wraps a reporter.ProgressFunc so it fires at most once
// per interval, plus unconditionally once transferred reaches total. A
// zero interval reports on every chunk.
func throttledProgress(fn reporter.ProgressFunc, total int64, interval time.Duration) reporter.ProgressFunc {
	if fn == nil {
		return nil
	}

	var last time.Time
	return func(transferred, _ int64) {
		now := time.Now()
		if transferred >= total || interval <= 0 || now.Sub(last) >= interval {
			last = now
			fn(transferred, total)
		}
	}
}

// newProgressReader wraps r (the local file being sent) with an
// ioprogress.Reader that drives rep's progress hook, throttled per
// interval, as the handler streams it onto the socket. RegisterFctIncrement
// reports the size of each chunk, not a running total, so the wrapper
// accumulates one itself before reporting.
func newProgressReader(r io.ReadCloser, size int64, rep reporter.Reporter, interval time.Duration) ioprogress.Reader {
	pr := ioprogress.NewReadCloser(r)

	progress := throttledProgress(rep.Progress(), size, interval)
	if progress != nil {
		var transferred int64
		pr.RegisterFctIncrement(func(n int64) {
			progress(atomic.AddInt64(&transferred, n), size)
		})
	}

	return pr
}

// checksumWriter wraps the destination file for a received stream with an
// ioprogress.Writer that drives rep's progress hook and accumulates a
// running byte-sum checksum, logged at debug level through log when the
// writer is closed.
type checksumWriter struct {
	ioprogress.Writer
	sum uint32
	log logger.Logger
	op  string
}

func newChecksumWriter(w io.WriteCloser, size int64, rep reporter.Reporter, interval time.Duration, log logger.Logger, op string) *checksumWriter {
	pw := ioprogress.NewWriteCloser(w)

	progress := throttledProgress(rep.Progress(), size, interval)
	if progress != nil {
		var transferred int64
		pw.RegisterFctIncrement(func(n int64) {
			progress(atomic.AddInt64(&transferred, n), size)
		})
	}

	return &checksumWriter{Writer: pw, log: log, op: op}
}

func (c *checksumWriter) Write(p []byte) (int, error) {
	n, err := c.Writer.Write(p)
	for _, b := range p[:n] {
		c.sum += uint32(b)
	}
	return n, err
}

func (c *checksumWriter) Close() error {
	err := c.Writer.Close()
	if c.log != nil {
		c.log.Debug("received file", logger.Fields{"op": c.op, "checksum": c.sum})
	}
	return err
}
