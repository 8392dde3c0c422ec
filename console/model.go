/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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
 */

package console

import (
	"fmt"

	"github.com/fatih/color"
)

// Println prints the text to stdout with the ColorType's color, followed by a newline.
// Output goes directly to os.Stdout.
//
// Parameters:
//   - text: The text to print
//
// Example:
//
//	console.ColorPrint.Println("Hello, World!")
func (c ColorType) Println(text string) {
	_, _ = GetColor(c).Println(text)
}

// Print prints the text to stdout with the ColorType's color, without a newline.
// Output goes directly to os.Stdout.
//
// Parameters:
//   - text: The text to print
//
// Example:
//
//	console.ColorPrint.Print("Hello")
//	console.ColorPrint.Print(" World")
func (c ColorType) Print(text string) {
	_, _ = GetColor(c).Print(text)
}

// Printf prints formatted text to stdout with the ColorType's color, without a newline.
// Equivalent to Print(fmt.Sprintf(format, args...)).
//
// Parameters:
//   - format: Printf-style format string
//   - args: Arguments for format string
//
// Example:
//
//	console.ColorPrint.Printf("Hello %s", "World")
func (c ColorType) Printf(format string, args ...interface{}) {
	c.Print(fmt.Sprintf(format, args...))
}
