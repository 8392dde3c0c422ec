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

package ioprogress

import (
	"io"

	libatm "github.com/clipshare-desktop/clipshare/atomic"
	libfpg "github.com/clipshare-desktop/clipshare/file/progress"
)

// rdr implements Reader by wrapping an io.ReadCloser and reporting bytes
// read through an atomically-stored increment callback.
type rdr struct {
	r  io.ReadCloser
	fi libatm.Value[libfpg.FctIncrement]
}

func (r *rdr) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if f := r.fi.Load(); f != nil {
			f(int64(n))
		}
	}
	return n, err
}

func (r *rdr) Close() error {
	return r.r.Close()
}

// RegisterFctIncrement stores fct as the callback invoked after each Read.
// A nil fct is replaced with a no-op so Load never returns nil.
func (r *rdr) RegisterFctIncrement(fct libfpg.FctIncrement) {
	if fct == nil {
		fct = func(int64) {}
	}
	r.fi.Store(fct)
}
