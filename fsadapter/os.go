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

package fsadapter

import (
	"os"

	"github.com/clipshare-desktop/clipshare/file/perm"
)

// DefaultDirPerm is the mode scratch and destination directories are
// created with.
var DefaultDirPerm = perm.ParseFileMode(os.FileMode(0o755)).FileMode()

type osFS struct{}

// OS returns the FS backed directly by the standard library, used outside
// of tests.
func OS() FS { return osFS{} }

func (osFS) OpenFile(path string, flag int, mode os.FileMode) (File, error) {
	return os.OpenFile(path, flag, mode)
}

func (osFS) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

func (osFS) ListDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }

func (osFS) MkdirAll(path string, mode os.FileMode) error { return os.MkdirAll(path, mode) }

func (osFS) Rename(oldPath, newPath string) error { return os.Rename(oldPath, newPath) }

func (osFS) RemoveFile(path string) error { return os.Remove(path) }

func (osFS) RemoveDirectory(path string) error { return os.Remove(path) }

func (osFS) Getwd() (string, error) { return os.Getwd() }

func (osFS) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
