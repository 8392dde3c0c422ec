/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package ioprogress wraps an io.ReadCloser or io.WriteCloser with a single
// increment callback fired after every Read/Write, so a caller can drive a
// transfer progress hook without touching the underlying stream's code.
package ioprogress

import (
	"io"

	libatm "github.com/clipshare-desktop/clipshare/atomic"
	libfpg "github.com/clipshare-desktop/clipshare/file/progress"
)

// Reader extends io.ReadCloser with a registrable progress callback.
type Reader interface {
	io.ReadCloser
	RegisterFctIncrement(fct libfpg.FctIncrement)
}

// Writer extends io.WriteCloser with a registrable progress callback.
type Writer interface {
	io.WriteCloser
	RegisterFctIncrement(fct libfpg.FctIncrement)
}

// NewReadCloser wraps r so every Read reports the number of bytes read to
// the callback registered with RegisterFctIncrement.
func NewReadCloser(r io.ReadCloser) Reader {
	o := &rdr{r: r, fi: libatm.NewValue[libfpg.FctIncrement]()}
	o.RegisterFctIncrement(nil)
	return o
}

// NewWriteCloser wraps w so every Write reports the number of bytes written
// to the callback registered with RegisterFctIncrement.
func NewWriteCloser(w io.WriteCloser) Writer {
	o := &wrt{w: w, fi: libatm.NewValue[libfpg.FctIncrement]()}
	o.RegisterFctIncrement(nil)
	return o
}
