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
	"crypto/tls"

	"github.com/clipshare-desktop/clipshare/certificates"
)

// TLSConfig builds the mutual-auth TLS collaborator described by
// SecureModeEnabled/ClientCert/CACert. It returns nil, nil when secure mode
// is off; the returned config otherwise trusts only CACert and presents
// the PKCS#12 identity bundled in ClientCert.
func (c *Config) TLSConfig() (certificates.TLSConfig, error) {
	if !c.SecureModeEnabled {
		return nil, nil
	}

	tc := certificates.New()
	tc.SetClientAuth(tls.RequireAndVerifyClientCert)

	if len(c.CACert) > 0 {
		tc.AddRootCAString(string(c.CACert))
		tc.AddClientCAString(string(c.CACert))
	}

	if err := tc.AddClientIdentityPKCS12(c.ClientCert); err != nil {
		return nil, ErrorConfigValidate.Error(err)
	}

	return tc, nil
}
