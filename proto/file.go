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
	"os"
	"path/filepath"
	"strings"

	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/transport"
)

const maxDirDepth = 256

// getFileHandler implements GET_FILE/GET_FILES per §4.3.5: a count-
// prefixed stream of named entries received into a scratch directory,
// then relocated under the working directory.
func getFileHandler(b Bindings, version Version) Handler {
	return func(sock transport.Socket, _ Args, rep reporter.Reporter) error {
		count, err := sock.ReadSize()
		if err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		if count <= 0 || count >= 1<<32 {
			rep.Report(reporter.NoData, nil)
			return nil
		}

		scratch, err := newScratchDir(b.FS)
		if err != nil {
			rep.Report(reporter.LocalError, nil)
			return err
		}

		for i := int64(0); i < count; i++ {
			if err = receiveOneFile(sock, b, scratch, version, rep); err != nil {
				_ = sock.CloseNoWait()
				return err
			}
		}

		_ = sock.CloseNoWait()

		moved, err := relocate(b.FS, scratch, mustWd(b.FS), b.ConfigName)
		if err != nil {
			rep.Report(reporter.LocalError, nil)
			return err
		}

		rep.Report(reporter.OK, nil)

		if b.Clipboard != nil {
			return b.Clipboard.SetCutFiles(moved)
		}

		return nil
	}
}

func mustWd(fs interface{ Getwd() (string, error) }) string {
	wd, err := fs.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func receiveOneFile(sock transport.Socket, b Bindings, scratch string, version Version, rep reporter.Reporter) error {
	nameLen, err := sock.ReadSize()
	if err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	if nameLen <= 0 || nameLen > maxNameLen {
		rep.Report(reporter.DataError, nil)
		return ErrorDataInvalid.Error(nil)
	}

	nameBuf := make([]byte, nameLen)
	if err = sock.ReadExact(nameBuf); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	name, err := validateName(string(nameBuf), version)
	if err != nil {
		rep.Report(reporter.DataError, nil)
		return err
	}

	dest, err := joinUnderRoot(scratch, name)
	if err != nil {
		rep.Report(reporter.DataError, nil)
		return err
	}

	if _, statErr := b.FS.Stat(dest); statErr == nil {
		rep.Report(reporter.DataError, nil)
		return ErrorPathUnsafe.Error(nil)
	}

	if err = b.FS.MkdirAll(filepath.Dir(dest), fsadapter.DefaultDirPerm); err != nil {
		rep.Report(reporter.LocalError, nil)
		return err
	}

	size, err := sock.ReadSize()
	if err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	if size == -1 && version == V3 {
		return b.FS.MkdirAll(dest, fsadapter.DefaultDirPerm)
	}

	if size < 0 || size > b.MaxFileSize {
		rep.Report(reporter.DataError, nil)
		return ErrorDataInvalid.Error(nil)
	}

	return streamToFile(sock, b, dest, size, rep, "get_file")
}

// sendFileHandler implements SEND_FILE/SEND_FILES per §4.3.6: the client
// enumerates local files (and, at v3, directories) and streams each under
// a name relative to their common prefix.
func sendFileHandler(b Bindings, version Version) Handler {
	return func(sock transport.Socket, args Args, rep reporter.Reporter) error {
		paths, prefixLen, ok := gatherSendList(b, version)
		if !ok || len(paths) == 0 {
			rep.Report(reporter.NoData, nil)
			return nil
		}

		if version != V1 {
			if err := sock.WriteSize(int64(len(paths))); err != nil {
				rep.Report(reporter.CommunicationFailure, nil)
				return err
			}
		}

		for _, p := range paths {
			if err := sendOneFile(sock, b, p, prefixLen, version, rep); err != nil {
				return err
			}
		}

		rep.Report(reporter.OK, nil)
		return nil
	}
}

func gatherSendList(b Bindings, version Version) (paths []string, prefixLen int, ok bool) {
	if b.Clipboard == nil {
		return nil, 0, false
	}

	if version == V1 {
		all, has := b.Clipboard.GetCopiedFiles()
		if !has || len(all) == 0 {
			return nil, 0, false
		}
		return all[:1], 0, true
	}

	if version == V2 {
		all, has := b.Clipboard.GetCopiedFiles()
		return all, commonPrefixLen(all), has
	}

	all, prefix, has := b.Clipboard.GetCopiedDirsFiles()
	return all, prefix, has
}

func commonPrefixLen(paths []string) int {
	if len(paths) == 0 {
		return 0
	}

	prefix := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		for !strings.HasPrefix(filepath.Dir(p), prefix) && prefix != "." && prefix != string(filepath.Separator) {
			prefix = filepath.Dir(prefix)
		}
	}

	return len(prefix) + 1
}

func sendOneFile(sock transport.Socket, b Bindings, absPath string, prefixLen int, version Version, rep reporter.Reporter) error {
	relName := filepath.Base(absPath)
	if version != V1 && prefixLen < len(absPath) {
		relName = absPath[prefixLen:]
	}

	wire := strings.ReplaceAll(filepath.ToSlash(relName), string(filepath.Separator), "/")

	isDir := version == V3 && b.FS.IsDirectory(absPath)

	if err := writeNamePrefix(sock, wire); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	if isDir {
		if err := sock.WriteSize(-1); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}
		return nil
	}

	info, err := b.FS.Stat(absPath)
	if err != nil {
		rep.Report(reporter.LocalError, nil)
		return err
	}

	size := info.Size()
	if size < 0 || size > b.MaxFileSize {
		rep.Report(reporter.DataError, nil)
		return ErrorDataInvalid.Error(nil)
	}

	if err = sock.WriteSize(size); err != nil {
		rep.Report(reporter.CommunicationFailure, nil)
		return err
	}

	f, err := b.FS.OpenFile(absPath, os.O_RDONLY, 0)
	if err != nil {
		rep.Report(reporter.LocalError, nil)
		return err
	}

	src := newProgressReader(f, size, rep, b.ProgressInterval)
	defer func() { _ = src.Close() }()

	remaining := size
	buf := make([]byte, chunkSize(remaining))

	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}

		if _, err = src.Read(buf[:n]); err != nil {
			rep.Report(reporter.LocalError, nil)
			return err
		}

		if err = sock.WriteExact(buf[:n]); err != nil {
			rep.Report(reporter.CommunicationFailure, nil)
			return err
		}

		remaining -= n
	}

	return nil
}

func writeNamePrefix(sock transport.Socket, name string) error {
	if err := sock.WriteSize(int64(len(name))); err != nil {
		return err
	}
	return sock.WriteExact([]byte(name))
}
