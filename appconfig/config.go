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
	"fmt"
	"time"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/clipshare-desktop/clipshare/errors"
	"github.com/clipshare-desktop/clipshare/proto"
)

// Config is the process-wide, read-only-after-startup configuration
// every component reads from. It is decoded from YAML/JSON/TOML by Load
// and validated with struct tags.
type Config struct {
	PlaintextPort uint16 `mapstructure:"plaintextPort" json:"plaintextPort" yaml:"plaintextPort" toml:"plaintextPort" validate:"gt=0"`
	TLSPort       uint16 `mapstructure:"tlsPort" json:"tlsPort" yaml:"tlsPort" toml:"tlsPort" validate:"gt=0"`
	UDPPort       uint16 `mapstructure:"udpPort" json:"udpPort" yaml:"udpPort" toml:"udpPort" validate:"gt=0"`
	WebPort       uint16 `mapstructure:"webPort" json:"webPort" yaml:"webPort" toml:"webPort" validate:"gt=0"`

	SecureModeEnabled bool `mapstructure:"secureModeEnabled" json:"secureModeEnabled" yaml:"secureModeEnabled" toml:"secureModeEnabled"`

	ClientCert []byte `mapstructure:"clientCert" json:"clientCert" yaml:"clientCert" toml:"clientCert" validate:"required_if=SecureModeEnabled true"`
	CACert     []byte `mapstructure:"caCert" json:"caCert" yaml:"caCert" toml:"caCert" validate:"required_if=SecureModeEnabled true"`

	TrustedServers []string `mapstructure:"trustedServers" json:"trustedServers" yaml:"trustedServers" toml:"trustedServers"`

	MaxTextLength uint32 `mapstructure:"maxTextLength" json:"maxTextLength" yaml:"maxTextLength" toml:"maxTextLength" validate:"gt=0"`
	MaxFileSize   int64  `mapstructure:"maxFileSize" json:"maxFileSize" yaml:"maxFileSize" toml:"maxFileSize" validate:"gt=0"`
	MaxFileCount  uint32 `mapstructure:"maxFileCount" json:"maxFileCount" yaml:"maxFileCount" toml:"maxFileCount" validate:"gt=0"`

	MinProtoVersion proto.Version `mapstructure:"minProtoVersion" json:"minProtoVersion" yaml:"minProtoVersion" toml:"minProtoVersion"`
	MaxProtoVersion proto.Version `mapstructure:"maxProtoVersion" json:"maxProtoVersion" yaml:"maxProtoVersion" toml:"maxProtoVersion"`

	AutoSendText  bool `mapstructure:"autoSendText" json:"autoSendText" yaml:"autoSendText" toml:"autoSendText"`
	AutoSendFiles bool `mapstructure:"autoSendFiles" json:"autoSendFiles" yaml:"autoSendFiles" toml:"autoSendFiles"`

	WorkingDir string `mapstructure:"workingDir" json:"workingDir" yaml:"workingDir" toml:"workingDir"`
	BindAddr   string `mapstructure:"bindAddr" json:"bindAddr" yaml:"bindAddr" toml:"bindAddr"`

	// LogLevel / LogFormat are validated against fixed name lists. LogLevel
	// goes through logger.ParseLevel, which maps "trace" to info; LogFormat
	// is not read by the logger.
	LogLevel  string `mapstructure:"logLevel" json:"logLevel" yaml:"logLevel" toml:"logLevel" validate:"oneof=panic fatal error warn info debug trace"`
	LogFormat string `mapstructure:"logFormat" json:"logFormat" yaml:"logFormat" toml:"logFormat" validate:"oneof=text json"`

	// ConfigFilePath is this process's own config filename, used by the
	// §4.4 self-overwrite collision shift during file receive.
	ConfigFilePath string `mapstructure:"-" json:"-" yaml:"-" toml:"-"`

	// ProgressReportInterval throttles the streaming progress hook;
	// zero means report every chunk.
	ProgressReportInterval time.Duration `mapstructure:"progressReportInterval" json:"progressReportInterval" yaml:"progressReportInterval" toml:"progressReportInterval"`
}

// clampVersions clamps MinProtoVersion/MaxProtoVersion individually into
// [proto.ProtocolMin, proto.ProtocolMax]. It never reorders the pair: an
// inverted MinProtoVersion > MaxProtoVersion is left for Validate to reject.
func (c *Config) clampVersions() {
	if c.MinProtoVersion < proto.ProtocolMin {
		c.MinProtoVersion = proto.ProtocolMin
	}
	if c.MaxProtoVersion > proto.ProtocolMax {
		c.MaxProtoVersion = proto.ProtocolMax
	}
}

// Validate runs struct-tag validation plus the cross-field checks struct
// tags can't express, and returns a typed Error wrapping every constraint
// violation found.
func (c *Config) Validate() liberr.Error {
	err := ErrorConfigValidate.Error(nil)

	if er := libval.New().Struct(c); er != nil {
		if e, ok := er.(*libval.InvalidValidationError); ok {
			err.Add(e)
		} else if ve, ok := er.(libval.ValidationErrors); ok {
			for _, fe := range ve {
				//nolint goerr113
				err.Add(fmt.Errorf("config field '%s' failed constraint '%s'", fe.StructNamespace(), fe.ActualTag()))
			}
		} else {
			err.Add(er)
		}
	}

	if c.MinProtoVersion > c.MaxProtoVersion {
		//nolint goerr113
		err.Add(fmt.Errorf("minProtoVersion (%d) must not exceed maxProtoVersion (%d)", c.MinProtoVersion, c.MaxProtoVersion))
	}

	if err.HasParent() {
		return err
	}

	return nil
}
