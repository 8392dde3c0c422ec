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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipshare-desktop/clipshare/autosend"
	"github.com/clipshare-desktop/clipshare/clipboard"
	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/logger"
)

// clipboardProvider is the platform clipboard adapter. It is nil until a
// platform-specific build links one in; the tray-icon UI and the embedded
// HTTP front-end that would normally surface results in a browser are
// likewise out of scope and not started here.
var clipboardProvider clipboard.Adapter

// runDaemon is what a flagless invocation runs: the auto-send listener,
// blocking until SIGINT/SIGTERM.
func runDaemon() error {
	if clipboardProvider == nil {
		fmt.Println("clipshare: no platform clipboard adapter linked into this build; nothing to run")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tls, err := cfg.TLSConfig()
	if err != nil {
		return err
	}

	log := logger.New(context.Background())
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	l := autosend.New(cfg, clipboardProvider, fsadapter.OS(), tls, log)
	if err = l.Start(context.Background()); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return l.Stop()
}
