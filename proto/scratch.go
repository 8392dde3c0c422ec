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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/clipshare-desktop/clipshare/fsadapter"
)

// newScratchDir creates a fresh, uniquely-named scratch directory under
// the process working directory and returns its path.
func newScratchDir(fs fsadapter.FS) (string, error) {
	wd, err := fs.Getwd()
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < 8; attempt++ {
		name := scratchName()
		dir := filepath.Join(wd, name)

		if fs.IsDirectory(dir) {
			continue
		}
		if _, err = fs.Stat(dir); err == nil {
			continue
		}

		if err = fs.MkdirAll(dir, fsadapter.DefaultDirPerm); err != nil {
			return "", err
		}

		return dir, nil
	}

	return "", ErrorPathUnsafe.Error(nil)
}

func scratchName() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("%x%s", time.Now().UnixNano(), hex.EncodeToString(b[:]))
}

// relocateEntry is one file discovered under a scratch directory, named
// relative to that scratch root.
type relocateEntry struct {
	relPath string
	isDir   bool
}

// walkScratch lists every file and directory under dir, recursively,
// naming each relative to dir with '/'-separated components.
func walkScratch(fs fsadapter.FS, dir, relPrefix string) ([]relocateEntry, error) {
	entries, err := fs.ListDir(dir)
	if err != nil {
		return nil, err
	}

	var out []relocateEntry

	for _, e := range entries {
		rel := e.Name()
		if relPrefix != "" {
			rel = relPrefix + "/" + rel
		}

		if e.IsDir() {
			out = append(out, relocateEntry{relPath: rel, isDir: true})

			sub, err := walkScratch(fs, filepath.Join(dir, e.Name()), rel)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}

		out = append(out, relocateEntry{relPath: rel})
	}

	return out, nil
}

// relocate moves every entry discovered under scratch into destRoot,
// applying the §4.4 collision rule to each entry's final basename, and
// removes scratch once it is empty. It returns the absolute destination
// paths of every relocated regular file.
func relocate(fs fsadapter.FS, scratch, destRoot, configName string) ([]string, error) {
	entries, err := walkScratch(fs, scratch, "")
	if err != nil {
		return nil, err
	}

	var moved []string

	for _, e := range entries {
		destDir := destRoot
		base := e.relPath

		if idx := lastSlash(e.relPath); idx >= 0 {
			destDir = filepath.Join(destRoot, filepath.FromSlash(e.relPath[:idx]))
			base = e.relPath[idx+1:]
		}

		if e.isDir {
			if err = fs.MkdirAll(filepath.Join(destDir, base), fsadapter.DefaultDirPerm); err != nil {
				return nil, err
			}
			continue
		}

		if err = fs.MkdirAll(destDir, fsadapter.DefaultDirPerm); err != nil {
			return nil, err
		}

		exists := func(p string) bool {
			_, statErr := fs.Stat(p)
			return statErr == nil
		}

		dest, err := dedupedDestination(destDir, base, exists, configName)
		if err != nil {
			return nil, err
		}

		src := filepath.Join(scratch, filepath.FromSlash(e.relPath))
		if err = fs.Rename(src, dest); err != nil {
			return nil, err
		}

		moved = append(moved, dest)
	}

	_ = fs.RemoveDirectory(scratch)

	return moved, nil
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
