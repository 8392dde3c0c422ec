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

// Package clipboard declares the platform clipboard collaborator. Every
// concrete adapter (X11, Win32, NSPasteboard) lives outside this module;
// this package only fixes the contract the protocol methods and the
// auto-send loop call through.
package clipboard

// ContentType is what currently sits on the clipboard, as reported by
// CurrentType.
type ContentType uint8

const (
	None ContentType = iota
	Text
	Files
)

// Adapter is the black-box platform clipboard. Implementations are
// expected to be safe for concurrent use by the negotiator (one request
// at a time) and the auto-send listener goroutine.
type Adapter interface {
	// GetText returns the current clipboard text, or ok=false if the
	// clipboard holds no text.
	GetText() (text string, ok bool)
	// PutText replaces the clipboard content with text.
	PutText(text string) error

	// GetCopiedFiles returns the absolute paths of regular files
	// currently referenced by the clipboard (v1/v2 semantics: files
	// only, no directories).
	GetCopiedFiles() (paths []string, ok bool)
	// GetCopiedDirsFiles returns the absolute paths of files and
	// directories currently referenced by the clipboard, along with the
	// common path prefix length used to derive relative names (v3
	// directory-capable semantics).
	GetCopiedDirsFiles() (paths []string, commonPrefixLen int, ok bool)

	// SetCutFiles replaces the clipboard's file reference with paths,
	// marked as a cut (move) rather than a copy. Used after a
	// successful receive to hand the caller the saved files.
	SetCutFiles(paths []string) error

	// CurrentType reports what kind of content the clipboard currently
	// holds, without materializing it.
	CurrentType() ContentType

	// Subscribe registers a change-notification callback, invoked once
	// per clipboard content change. It returns an unsubscribe function.
	Subscribe(onChange func()) (unsubscribe func())

	// CheckAndDeleteOwnWriteSentinel reports whether the most recent
	// clipboard change was this process's own SetCutFiles/PutText call
	// (identified via a sentinel the adapter stamps on self-originated
	// writes), consuming the sentinel so the next genuine external
	// change is reported normally. The auto-send loop uses this to
	// avoid re-broadcasting content it just received.
	CheckAndDeleteOwnWriteSentinel() bool
}
