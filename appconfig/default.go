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

package appconfig

import "github.com/clipshare-desktop/clipshare/proto"

const (
	defaultPlaintextPort  = 19999
	defaultTLSPort        = 19998
	defaultUDPPort        = 19997
	defaultWebPort        = 19996
	defaultMaxTextLength  = 10 * 1024 * 1024
	defaultMaxFileSize    = 4 * 1024 * 1024 * 1024
	defaultMaxFileCount   = 4096
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

// Default returns a Config populated with the ClipShare-Desktop reference
// defaults, ready for struct-tag validation as-is.
func Default() *Config {
	return &Config{
		PlaintextPort:   defaultPlaintextPort,
		TLSPort:         defaultTLSPort,
		UDPPort:         defaultUDPPort,
		WebPort:         defaultWebPort,
		MaxTextLength:   defaultMaxTextLength,
		MaxFileSize:     defaultMaxFileSize,
		MaxFileCount:    defaultMaxFileCount,
		MinProtoVersion: proto.ProtocolMin,
		MaxProtoVersion: proto.ProtocolMax,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}
