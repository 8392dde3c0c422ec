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

// Package atomic provides typed, lock-free value and map wrappers over
// sync/atomic and sync.Map for state a handful of packages here (reporter,
// context, console) need to read and write from concurrent goroutines
// without a mutex.
package atomic

import (
	"sync"
	"sync/atomic"
)

// Value is a typed wrapper around atomic.Value.
type Value[T any] interface {
	// Load returns the value currently stored, or the zero value of T if
	// nothing has been stored yet.
	Load() (val T)
	// Store sets the value atomically.
	Store(val T)
}

// Map is a typed-key wrapper around sync.Map.
type Map[K comparable] interface {
	// Load returns the value stored for key, and whether it was present.
	Load(key K) (value any, ok bool)
	// Store sets the value for key, overwriting any existing value.
	Store(key K, value any)
	// Delete removes the value stored for key, if any.
	Delete(key K)
	// Range calls f for every stored key, in no particular order, until f
	// returns false.
	Range(f func(key K, value any) bool)
}

// MapTyped is a typed-key, typed-value wrapper around sync.Map.
type MapTyped[K comparable, V any] interface {
	// Load returns the value stored for key, and whether it was present.
	Load(key K) (value V, ok bool)
	// Store sets the value for key, overwriting any existing value.
	Store(key K, value V)
	// Delete removes the value stored for key, if any.
	Delete(key K)
}

// NewValue returns an empty Value[T], backed by atomic.Value.
func NewValue[T any]() Value[T] {
	return &val[T]{av: new(atomic.Value)}
}

// NewMapAny returns an empty Map[K], backed by sync.Map.
func NewMapAny[K comparable]() Map[K] {
	return &ma[K]{m: sync.Map{}}
}

// NewMapTyped returns an empty MapTyped[K, V], backed by sync.Map.
func NewMapTyped[K comparable, V any]() MapTyped[K, V] {
	return &mt[K, V]{m: NewMapAny[K]()}
}
