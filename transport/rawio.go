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
	"encoding/binary"
	"io"
)

// readExact loops on rw.Read until buf is full, counting consecutive
// zero-progress/retryable returns and failing once that count exceeds
// maxStalls. A fatal error aborts immediately regardless of progress so far.
func readExact(rw io.Reader, buf []byte) error {
	var (
		off    int
		stalls int
	)

	for off < len(buf) {
		n, err := rw.Read(buf[off:])
		off += n

		if err != nil {
			if IsFatal(err) {
				return ErrorClosed.Error(err)
			}

			if n == 0 {
				stalls++
				if stalls > maxStalls {
					return ErrorStalled.Error(err)
				}
				continue
			}
		}

		if n == 0 && err == nil {
			stalls++
			if stalls > maxStalls {
				return ErrorStalled.Error(nil)
			}
		} else if n > 0 {
			stalls = 0
		}
	}

	return nil
}

// writeExact loops on rw.Write until buf is fully written, under the same
// stall/fatal-error policy as readExact.
func writeExact(rw io.Writer, buf []byte) error {
	var (
		off    int
		stalls int
	)

	for off < len(buf) {
		n, err := rw.Write(buf[off:])
		off += n

		if err != nil {
			if IsFatal(err) {
				return ErrorClosed.Error(err)
			}

			if n == 0 {
				stalls++
				if stalls > maxStalls {
					return ErrorStalled.Error(err)
				}
				continue
			}
		}

		if n == 0 {
			stalls++
			if stalls > maxStalls {
				return ErrorStalled.Error(nil)
			}
		} else {
			stalls = 0
		}
	}

	return nil
}

// readSize decodes the big-endian 8-byte signed length/sentinel codec.
func readSize(rw io.Reader) (int64, error) {
	var buf [8]byte

	if err := readExact(rw, buf[:]); err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// writeSize encodes v as the big-endian 8-byte signed length/sentinel codec.
func writeSize(rw io.Writer, v int64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(v))

	return writeExact(rw, buf[:])
}
