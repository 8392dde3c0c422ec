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

import "github.com/clipshare-desktop/clipshare/errors"

const (
	ErrorVersionMismatch errors.CodeError = iota + errors.MinPkgClipProto
	ErrorMethodNotAllowed
	ErrorServerStatus
	ErrorDataInvalid
	ErrorPathUnsafe
)

func init() {
	errors.RegisterIdFctMessage(ErrorVersionMismatch, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorVersionMismatch:
		return "proto: version negotiation failed"
	case ErrorMethodNotAllowed:
		return "proto: method not allowed at negotiated version"
	case ErrorServerStatus:
		return "proto: server returned an undefined status byte"
	case ErrorDataInvalid:
		return "proto: malformed size, filename, or payload"
	case ErrorPathUnsafe:
		return "proto: destination path failed safety validation"
	}
	return ""
}
