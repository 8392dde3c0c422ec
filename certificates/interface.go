/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package certificates builds the mutual-auth TLS collaborator ClipShare
// dials peers with. It only covers what a client ever needs: a trust root
// for the peer's certificate, a client identity to present, and the
// resulting *tls.Config. There is no server-side certificate issuance here
// and no support for cipher/curve/version tuning the client never exercises.
package certificates

import "crypto/tls"

// TLSConfig accumulates trust roots and a client identity, then renders a
// *tls.Config for a given peer name. All methods are safe for concurrent
// use; ClipShare builds one TLSConfig per run and reuses it across dials.
type TLSConfig interface {
	// AddRootCAString registers a PEM encoded certificate as a root the
	// client will trust when verifying the peer it dials. It reports
	// whether the PEM block decoded into a usable certificate.
	AddRootCAString(pem string) bool

	// AddClientCAString registers a PEM encoded certificate as one the
	// server may use to verify this client's presented identity. ClipShare
	// trusts the same CA on both sides of a mutual-auth handshake.
	AddClientCAString(pem string) bool

	// SetClientAuth sets the client authentication requirement the server
	// side of this handshake is expected to enforce; TLS() copies it, with
	// the client CA pool, into the rendered config. TLS() does not check
	// that a client identity has been loaded.
	SetClientAuth(a tls.ClientAuthType)

	// AddClientIdentityPKCS12 decodes a PKCS#12 bundle containing the
	// client's private key, leaf certificate, and optional CA chain, and
	// registers the decoded pair (and any CA certificates) on this config.
	AddClientIdentityPKCS12(p12 []byte) error

	// LenCertificatePair reports how many client certificate pairs are
	// currently registered.
	LenCertificatePair() int

	// TLS renders a *tls.Config for dialing serverName, built from the
	// trust roots and client identity accumulated so far.
	TLS(serverName string) *tls.Config
}

// New returns an empty TLSConfig ready to be populated by a config loader.
func New() TLSConfig {
	return &config{}
}
