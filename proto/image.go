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
	"fmt"
	"os"
	"time"

	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/transport"
)

const screenshotStatusOK = 1

// imageHandler implements the shared GET_IMAGE / GET_COPIED_IMAGE body:
// a single-file receive into a wall-clock-named PNG under the working
// directory, followed by setting it as the clipboard's cut file.
func imageHandler(b Bindings) Handler {
	return func(sock transport.Socket, _ Args, rep reporter.Reporter) error {
		return receiveSingleImage(sock, b, rep)
	}
}

func getScreenshotHandler(b Bindings) Handler {
	return func(sock transport.Socket, args Args, rep reporter.Reporter) error {
		if err := sock.WriteSize(int64(args.DisplayIndex)); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		var status [1]byte
		if err := sock.ReadExact(status[:]); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if status[0] != screenshotStatusOK {
			rep.Report(reporter.NoData, nil)
			return nil
		}

		return receiveSingleImage(sock, b, rep)
	}
}

func receiveSingleImage(sock transport.Socket, b Bindings, rep reporter.Reporter) error {
	size, err := sock.ReadSize()
	if err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	if size < 0 || size > b.MaxFileSize {
		rep.Report(reporter.DataError, nil)
		return ErrorDataInvalid.Error(nil)
	}

	name := fmt.Sprintf("%x.png", time.Now().UnixMilli())

	wd, err := b.FS.Getwd()
	if err != nil {
		rep.Report(reporter.LocalError, nil)
		return err
	}

	dest, err := joinUnderRoot(wd, name)
	if err != nil {
		rep.Report(reporter.DataError, nil)
		return err
	}

	if err = streamToFile(sock, b, dest, size, rep, "get_image"); err != nil {
		return err
	}

	rep.Report(reporter.OK, nil)

	if b.Clipboard != nil {
		return b.Clipboard.SetCutFiles([]string{dest})
	}

	return nil
}

// streamToFile copies exactly size bytes from sock into dest in
// pieces of at most 64 KiB (see chunkSize), removing the partial file on failure. The
// received bytes drive both the progress hook and a running checksum,
// logged through b.Logger once the file is closed.
func streamToFile(sock transport.Socket, b Bindings, dest string, size int64, rep reporter.Reporter, op string) error {
	f, err := b.FS.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		rep.Report(reporter.LocalError, nil)
		return err
	}

	dst := newChecksumWriter(f, size, rep, b.ProgressInterval, b.Logger, op)

	remaining := size
	buf := make([]byte, chunkSize(remaining))

	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}

		if err = sock.ReadExact(buf[:n]); err != nil {
			_ = dst.Close()
			_ = b.FS.RemoveFile(dest)
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if _, err = dst.Write(buf[:n]); err != nil {
			_ = dst.Close()
			_ = b.FS.RemoveFile(dest)
			rep.Report(reporter.LocalError, nil)
			return err
		}

		remaining -= n
	}

	return dst.Close()
}

func chunkSize(remaining int64) int64 {
	const chunk = 64 * 1024
	if remaining < chunk {
		return remaining
	}
	return chunk
}
