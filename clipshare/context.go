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

// Package clipshare ties the process-wide collaborators together behind a
// single ambient context.Context: configuration, the clipboard and
// filesystem adapters, and the logger.
package clipshare

import (
	stdctx "context"

	"github.com/clipshare-desktop/clipshare/appconfig"
	"github.com/clipshare-desktop/clipshare/clipboard"
	libctx "github.com/clipshare-desktop/clipshare/context"
	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/logger"
)

type key uint8

const (
	keyConfig key = iota
	keyClipboard
	keyFS
	keyLogger
)

// New builds a Context over parent (or context.Background if nil),
// carrying cfg, clip, fs, and log.
func New(parent stdctx.Context, cfg *appconfig.Config, clip clipboard.Adapter, fs fsadapter.FS, log logger.Logger) Context {
	c := Context{Config: libctx.New[key](parent)}

	c.Store(keyConfig, cfg)
	c.Store(keyClipboard, clip)
	c.Store(keyFS, fs)
	c.Store(keyLogger, log)

	return c
}

// Context is the ambient handle every top-level operation (CLI command,
// auto-send loop) is given. It is a context.Context in its own right, so
// it composes with anything that takes one for cancellation.
type Context struct {
	libctx.Config[key]
}

// Cfg returns the configuration carried by this Context.
func (c Context) Cfg() *appconfig.Config {
	v, _ := c.Load(keyConfig)
	cfg, _ := v.(*appconfig.Config)
	return cfg
}

// Clipboard returns the clipboard adapter carried by this Context.
func (c Context) Clipboard() clipboard.Adapter {
	v, _ := c.Load(keyClipboard)
	a, _ := v.(clipboard.Adapter)
	return a
}

// FS returns the filesystem adapter carried by this Context.
func (c Context) FS() fsadapter.FS {
	v, _ := c.Load(keyFS)
	f, _ := v.(fsadapter.FS)
	return f
}

// Logger returns the logger carried by this Context.
func (c Context) Logger() logger.Logger {
	v, _ := c.Load(keyLogger)
	l, _ := v.(logger.Logger)
	return l
}
