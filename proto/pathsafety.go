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

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen = 2048
)

// validateName enforces the §4.4 filename rules common to every version:
// valid UTF-8, no control bytes, bounded length, no doubled separator,
// and (for v1) no embedded separator at all. One trailing '/' is stripped
// from the returned name.
func validateName(name string, version Version) (string, error) {
	if name == "" || len(name) > maxNameLen {
		return "", ErrorDataInvalid.Error(nil)
	}

	if !utf8.ValidString(name) {
		return "", ErrorDataInvalid.Error(nil)
	}

	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 {
			return "", ErrorDataInvalid.Error(nil)
		}
	}

	clean := strings.TrimSuffix(name, "/")

	if version == V1 && strings.ContainsAny(clean, "/\\") {
		return "", ErrorPathUnsafe.Error(nil)
	}

	if strings.Contains(clean, "//") || strings.Contains(clean, "\\\\") {
		return "", ErrorPathUnsafe.Error(nil)
	}

	return clean, nil
}

// joinUnderRoot builds root/name using the host separator and asserts the
// fully assembled path never contains a "/../" escape, whether the escape
// arrived in name or was introduced by the join itself.
func joinUnderRoot(root, name string) (string, error) {
	hostName := filepath.FromSlash(name)
	dest := filepath.Join(root, hostName)

	rel, err := filepath.Rel(root, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrorPathUnsafe.Error(nil)
	}

	if strings.Contains(filepath.ToSlash(dest), "/../") {
		return "", ErrorPathUnsafe.Error(nil)
	}

	return dest, nil
}

// dedupedDestination finds a destination path that does not already exist,
// using the "<n>_<name>" collision rule (n from 2 to 999999). A name equal
// to a non-empty configName is shifted to "1_<name>" unconditionally to
// avoid the receiver silently overwriting its own running configuration
// file.
func dedupedDestination(dir, name string, exists func(path string) bool, configName string) (string, error) {
	first := name
	if configName != "" && name == configName {
		first = fmt.Sprintf("1_%s", name)
	}

	if full := filepath.Join(dir, first); !exists(full) {
		return full, nil
	}

	for n := 2; n <= 999999; n++ {
		full := filepath.Join(dir, fmt.Sprintf("%d_%s", n, name))
		if !exists(full) {
			return full, nil
		}
	}

	return "", ErrorPathUnsafe.Error(nil)
}
