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

// wrt implements Writer by wrapping an io.WriteCloser and reporting bytes
// written through an atomically-stored increment callback.
type wrt struct {
	w  io.WriteCloser
	fi libatm.Value[libfpg.FctIncrement]
}

func (w *wrt) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		if f := w.fi.Load(); f != nil {
			f(int64(n))
		}
	}
	return n, err
}

func (w *wrt) Close() error {
	return w.w.Close()
}

// RegisterFctIncrement stores fct as the callback invoked after each Write.
// A nil fct is replaced with a no-op so Load never returns nil.
func (w *wrt) RegisterFctIncrement(fct libfpg.FctIncrement) {
	if fct == nil {
		fct = func(int64) {}
	}
	w.fi.Store(fct)
}
