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

// Package autosend implements the clipboard-change-driven fan-out: on every
// local clipboard change that is not this process's own doing, the new
// content is pushed to every peer the discovery scan finds, one goroutine
// per peer. Changes are handled one at a time: every peer send of one
// change is joined before the next change is processed.
package autosend

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/clipshare-desktop/clipshare/appconfig"
	"github.com/clipshare-desktop/clipshare/certificates"
	"github.com/clipshare-desktop/clipshare/clipboard"
	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/logger"
	"github.com/clipshare-desktop/clipshare/proto"
	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/scanner"
	"github.com/clipshare-desktop/clipshare/transport"
)

// Listener owns the clipboard subscription and the in-flight fan-out it
// drives. A Listener is started once and stopped once; it is not meant to
// be restarted.
type Listener struct {
	cfg  *appconfig.Config
	clip clipboard.Adapter
	fs   fsadapter.FS
	tls  certificates.TLSConfig
	log  logger.Logger

	running atomic.Bool
	unsub   func()
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New builds a Listener over cfg, clip, and fs. tls may be nil when
// cfg.SecureModeEnabled is false. log may be nil, in which case the
// Listener runs silently.
func New(cfg *appconfig.Config, clip clipboard.Adapter, fs fsadapter.FS, tls certificates.TLSConfig, log logger.Logger) *Listener {
	return &Listener{cfg: cfg, clip: clip, fs: fs, tls: tls, log: log}
}

func (l *Listener) logf() logger.Logger {
	if l.log == nil {
		return logger.New(context.Background())
	}
	return l.log
}

// Start subscribes to clipboard changes and begins fanning each qualifying
// change out to every discovered peer. It returns ErrorAlreadyRunning if
// called twice without an intervening Stop.
func (l *Listener) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrorAlreadyRunning.Error(nil)
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	var serial sync.Mutex

	l.unsub = l.clip.Subscribe(func() {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			serial.Lock()
			defer serial.Unlock()
			l.onChange(runCtx)
		}()
	})

	l.logf().Info("auto-send listener started", nil)
	return nil
}

// Stop unsubscribes from clipboard changes, cancels any in-flight sends,
// and waits for them to unwind. It returns ErrorNotRunning if the Listener
// was never started or already stopped.
func (l *Listener) Stop() error {
	if !l.running.CompareAndSwap(true, false) {
		return ErrorNotRunning.Error(nil)
	}

	if l.unsub != nil {
		l.unsub()
	}
	if l.cancel != nil {
		l.cancel()
	}

	l.wg.Wait()
	l.logf().Info("auto-send listener stopped", nil)
	return nil
}

func (l *Listener) onChange(ctx context.Context) {
	if l.clip.CheckAndDeleteOwnWriteSentinel() {
		return
	}

	var method proto.Method

	switch l.clip.CurrentType() {
	case clipboard.Text:
		if !l.cfg.AutoSendText {
			return
		}
		method = proto.SendText
	case clipboard.Files:
		if !l.cfg.AutoSendFiles {
			return
		}
		method = proto.SendFile
	default:
		return
	}

	peers, err := scanner.Scan(ctx, l.cfg.UDPPort)
	if err != nil {
		l.logf().Warning("peer scan failed, skipping auto-send", logger.Fields{"error": err.Error()})
		return
	}
	if len(peers) == 0 {
		return
	}

	b := proto.Bindings{
		Clipboard:        l.clip,
		FS:               l.fs,
		Logger:           l.logf(),
		MaxTextLength:    l.cfg.MaxTextLength,
		MaxFileSize:      l.cfg.MaxFileSize,
		MaxFileCount:     l.cfg.MaxFileCount,
		ConfigName:       l.cfg.ConfigFilePath,
		ProgressInterval: l.cfg.ProgressReportInterval,
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, peer := range peers {
		peer := peer
		g.Go(func() error {
			return l.sendTo(gctx, peer.String(), method, b)
		})
	}

	_ = g.Wait()
}

func (l *Listener) sendTo(_ context.Context, addr string, method proto.Method, b proto.Bindings) error {
	port := l.cfg.PlaintextPort
	if l.cfg.SecureModeEnabled {
		port = l.cfg.TLSPort
	}

	sock, err := transport.Connect(addr, port, l.cfg.SecureModeEnabled, l.tls, l.cfg.TrustedServers)
	if err != nil {
		l.logf().Warning("auto-send connect failed", logger.Fields{"peer": addr, "error": err.Error()})
		return err
	}
	defer func() { _ = sock.Close() }()

	err = proto.HandleProto(
		sock,
		l.cfg.MinProtoVersion,
		l.cfg.MaxProtoVersion,
		method,
		proto.Args{AutoSend: true},
		reporter.Discard{},
		b,
	)
	l.logf().CheckError(logger.WarnLevel, logger.DebugLevel, "auto-send to "+addr, err)
	return err
}
