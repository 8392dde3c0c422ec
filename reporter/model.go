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

package reporter

import (
	"sync"

	"github.com/clipshare-desktop/clipshare/atomic"
)

// latch wraps a delegate Reporter and guarantees Report fires at most once,
// regardless of how many times a method implementation (or the negotiator's
// final safety-net) calls it.
type latch struct {
	m    sync.Mutex
	done atomic.Value[bool]
	fct  ProgressFunc
	dlg  Reporter
}

// New wraps an optional delegate into an at-most-once Reporter. A nil
// delegate is valid and simply discards every report; used by callers
// (such as tests) that do not need progress or outcome.
func New(delegate Reporter) Reporter {
	l := &latch{dlg: delegate, done: atomic.NewValue[bool]()}

	if delegate != nil {
		l.fct = delegate.Progress()
	}

	return l
}

func (l *latch) Report(status Status, payload []byte) {
	l.m.Lock()
	defer l.m.Unlock()

	if l.done.Load() {
		return
	}

	l.done.Store(true)

	if l.dlg != nil {
		l.dlg.Report(status, payload)
	}
}

func (l *latch) Progress() ProgressFunc {
	return l.fct
}

// ReportIfUnset issues a final LOCAL_ERROR report if nothing has reported
// yet, giving every caller the last-line guarantee described in §4.6.
func ReportIfUnset(r Reporter) {
	if r == nil {
		return
	}

	if l, ok := r.(*latch); ok {
		l.m.Lock()
		reported := l.done.Load()
		l.m.Unlock()

		if !reported {
			r.Report(LocalError, nil)
		}
		return
	}

	r.Report(LocalError, nil)
}

// Discard is a Reporter that drops every report; useful where the caller
// genuinely does not need an outcome (e.g. fire-and-forget auto-send, per
// peer, does not block the fan-out on caller inspection).
type Discard struct{}

func (Discard) Report(Status, []byte) {}
func (Discard) Progress() ProgressFunc { return nil }
