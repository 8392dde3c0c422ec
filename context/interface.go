/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package context

import (
	"context"

	libatm "github.com/clipshare-desktop/clipshare/atomic"
)

// MapManage is the storage surface a Config carries alongside its
// context.Context: every collaborator a Context value threads through the
// call tree (config, clipboard, filesystem, logger) is Stored once at
// construction and Loaded back out by a typed accessor.
type MapManage[T comparable] interface {
	Load(key T) (val interface{}, ok bool)
	Store(key T, cfg interface{})
}

// Config is a context.Context that also carries a small typed key/value
// store, so a single value can be passed anywhere a context.Context is
// expected while still handing back the collaborators a caller needs.
type Config[T comparable] interface {
	context.Context
	MapManage[T]
}

// New returns a new Config wrapping ctx (context.Background if nil) with
// an empty store.
func New[T comparable](ctx context.Context) Config[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &ccx[T]{
		m: libatm.NewMapAny[T](),
		x: ctx,
	}
}
