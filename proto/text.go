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
	"time"
	"unicode/utf8"

	"github.com/clipshare-desktop/clipshare/clipboard"
	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/logger"
	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/transport"
)

// Bindings carries the caller-supplied collaborators a Handler needs
// beyond the socket itself: the clipboard, the filesystem, and the
// size/count limits from configuration. Each registerVn closes its
// Handlers over one of these.
type Bindings struct {
	Clipboard clipboard.Adapter
	FS        fsadapter.FS
	// Logger receives the debug-level per-file checksum line once a
	// file/image transfer completes. A nil Logger disables it.
	Logger        logger.Logger
	MaxTextLength uint32
	MaxFileSize   int64
	MaxFileCount  uint32
	ConfigName    string
	// ProgressInterval throttles how often a streaming file/image transfer
	// invokes the reporter's progress hook. Zero reports on every chunk.
	ProgressInterval time.Duration
}

func getTextHandler(b Bindings) Handler {
	return func(sock transport.Socket, _ Args, rep reporter.Reporter) error {
		size, err := sock.ReadSize()
		if err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if size <= 0 || uint32(size) > b.MaxTextLength {
			rep.Report(reporter.DataError, nil)
			return ErrorDataInvalid.Error(nil)
		}

		buf := make([]byte, size)
		if err = sock.ReadExact(buf); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if !utf8.Valid(buf) {
			rep.Report(reporter.DataError, nil)
			return ErrorDataInvalid.Error(nil)
		}

		rep.Report(reporter.OK, buf)

		normalized := normalizeToHost(string(buf))

		if b.Clipboard != nil {
			return b.Clipboard.PutText(normalized)
		}

		return nil
	}
}

func sendTextHandler(b Bindings) Handler {
	return func(sock transport.Socket, _ Args, rep reporter.Reporter) error {
		var text string
		var ok bool

		if b.Clipboard != nil {
			text, ok = b.Clipboard.GetText()
		}

		if !ok || text == "" || uint32(len(text)) > b.MaxTextLength {
			rep.Report(reporter.NoData, nil)
			return nil
		}

		normalized := toLF(text)
		if len(normalized) == 0 {
			rep.Report(reporter.NoData, nil)
			return nil
		}

		if err := sock.WriteSize(int64(len(normalized))); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if err := sock.WriteExact([]byte(normalized)); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		rep.Report(reporter.OK, []byte(normalized))
		return nil
	}
}
