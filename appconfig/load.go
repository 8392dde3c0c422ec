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

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Load reads path (YAML/JSON/TOML, detected by extension) via viper,
// applies Default() for every field the file leaves unset, clamps the
// protocol version bounds, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)

	for field, value := range defaultsMap(cfg) {
		v.SetDefault(field, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, ErrorConfigRead.Error(err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, ErrorConfigDecode.Error(err)
	}

	cfg.ConfigFilePath = filepath.Base(path)
	cfg.clampVersions()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultsMap(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"plaintextPort":   cfg.PlaintextPort,
		"tlsPort":         cfg.TLSPort,
		"udpPort":         cfg.UDPPort,
		"webPort":         cfg.WebPort,
		"maxTextLength":   cfg.MaxTextLength,
		"maxFileSize":     cfg.MaxFileSize,
		"maxFileCount":    cfg.MaxFileCount,
		"minProtoVersion": cfg.MinProtoVersion,
		"maxProtoVersion": cfg.MaxProtoVersion,
		"logLevel":        cfg.LogLevel,
		"logFormat":       cfg.LogFormat,
	}
}
