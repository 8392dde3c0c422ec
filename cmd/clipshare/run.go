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
	"net"
	"strconv"

	"github.com/fatih/color"
	"github.com/clipshare-desktop/clipshare/appconfig"
	"github.com/clipshare-desktop/clipshare/clipshare"
	"github.com/clipshare-desktop/clipshare/console"
	"github.com/clipshare-desktop/clipshare/fsadapter"
	"github.com/clipshare-desktop/clipshare/logger"
	"github.com/clipshare-desktop/clipshare/proto"
	"github.com/clipshare-desktop/clipshare/reporter"
	"github.com/clipshare-desktop/clipshare/scanner"
	"github.com/clipshare-desktop/clipshare/transport"
)

// commandMethods maps every -c command word to the wire method it drives.
// "sc" (scan) has no method; it is handled before this table is consulted.
var commandMethods = map[string]proto.Method{
	"g":  proto.GetText,
	"s":  proto.SendText,
	"fg": proto.GetFile,
	"fs": proto.SendFile,
	"i":  proto.GetImage,
	"ic": proto.GetCopiedImage,
	"is": proto.GetScreenshot,
}

func runCommand(word string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printResult(word, false)
		return err
	}

	log := logger.New(context.Background())
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))
	ctx := clipshare.New(context.Background(), cfg, clipboardProvider, fsadapter.OS(), log)

	if word == "sc" {
		return runScan(ctx)
	}

	method, ok := commandMethods[word]
	if !ok {
		printResult(word, false)
		return ErrorUnknownCommand.Error(nil)
	}

	if len(args) == 0 {
		printResult(word, false)
		return ErrorInvalidAddress.Error(nil)
	}

	addr := args[0]
	if ip := net.ParseIP(addr); ip == nil || ip.To4() == nil {
		printResult(word, false)
		return ErrorInvalidAddress.Error(nil)
	}

	protoArgs := proto.Args{}
	if word == "is" && len(args) > 1 {
		if idx, e := strconv.ParseUint(args[1], 10, 16); e == nil {
			protoArgs.DisplayIndex = uint16(idx)
		}
	}

	ok2 := dispatch(ctx, addr, method, protoArgs)
	printResult(word, ok2)

	if !ok2 {
		return ErrorUnknownCommand.Error(nil)
	}
	return nil
}

func runScan(ctx clipshare.Context) error {
	peers, err := scanner.Scan(ctx, ctx.Cfg().UDPPort)
	if err != nil {
		ctx.Logger().Warning("scan failed", logger.Fields{"error": err.Error()})
		printResult("sc", false)
		return err
	}

	for _, p := range peers {
		console.ColorPrint.Println(p.String())
	}

	printResult("sc", true)
	return nil
}

func runStop() error {
	if instanceHandle == nil {
		printResult("stop", false)
		return ErrorNotRunning.Error(nil)
	}

	err := instanceHandle.Stop()
	printResult("stop", err == nil)
	return err
}

func loadConfig() (*appconfig.Config, error) {
	if flagConfig == "" {
		return appconfig.Default(), nil
	}
	return appconfig.Load(flagConfig)
}

func dispatch(ctx clipshare.Context, addr string, method proto.Method, args proto.Args) bool {
	cfg := ctx.Cfg()

	tlsCfg, err := cfg.TLSConfig()
	if err != nil {
		ctx.Logger().Error("building TLS config failed", err, nil)
		return false
	}

	port := cfg.PlaintextPort
	if cfg.SecureModeEnabled {
		port = cfg.TLSPort
	}

	sock, err := transport.Connect(addr, port, cfg.SecureModeEnabled, tlsCfg, cfg.TrustedServers)
	if err != nil {
		ctx.Logger().Warning("connect failed", logger.Fields{"peer": addr, "error": err.Error()})
		return false
	}
	defer func() { _ = sock.Close() }()

	b := proto.Bindings{
		Clipboard:        ctx.Clipboard(),
		FS:               ctx.FS(),
		Logger:           ctx.Logger(),
		MaxTextLength:    cfg.MaxTextLength,
		MaxFileSize:      cfg.MaxFileSize,
		MaxFileCount:     cfg.MaxFileCount,
		ConfigName:       cfg.ConfigFilePath,
		ProgressInterval: cfg.ProgressReportInterval,
	}

	rep := newCLIReporter()

	err = proto.HandleProto(sock, cfg.MinProtoVersion, cfg.MaxProtoVersion, method, args, reporter.New(rep), b)
	ctx.Logger().CheckError(logger.WarnLevel, logger.DebugLevel, "dispatch "+addr, err)
	return err == nil && rep.status == reporter.OK
}

type cliReporter struct {
	status reporter.Status
}

func newCLIReporter() *cliReporter { return &cliReporter{} }

func (r *cliReporter) Report(status reporter.Status, _ []byte) { r.status = status }

// Progress prints a running transferred/total line to stdout; the
// negotiator throttles how often it is actually called via
// appconfig.Config.ProgressReportInterval.
func (r *cliReporter) Progress() reporter.ProgressFunc {
	return func(transferred, total int64) {
		if total <= 0 {
			return
		}
		console.ColorPrint.Printf("\r%d%% (%d/%d bytes)", transferred*100/total, transferred, total)
	}
}

func printResult(action string, ok bool) {
	if ok {
		color.New(color.FgGreen).Printf("%s done!\n", action)
	} else {
		color.New(color.FgRed).Printf("%s failed!\n", action)
	}
}
