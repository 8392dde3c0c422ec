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

package certificates

import (
	"crypto/tls"
	"crypto/x509"
	"sync"
)

type config struct {
	mu         sync.Mutex
	caRoot     *x509.CertPool
	clientCA   *x509.CertPool
	clientAuth tls.ClientAuthType
	certs      []tls.Certificate
}

func (o *config) AddRootCAString(pem string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.caRoot == nil {
		o.caRoot = x509.NewCertPool()
	}

	return o.caRoot.AppendCertsFromPEM([]byte(pem))
}

func (o *config) AddClientCAString(pem string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.clientCA == nil {
		o.clientCA = x509.NewCertPool()
	}

	return o.clientCA.AppendCertsFromPEM([]byte(pem))
}

func (o *config) SetClientAuth(a tls.ClientAuthType) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.clientAuth = a
}

// addCertificatePairString parses a PEM encoded key/certificate pair and
// registers it as the client identity. Only pkcs12.go calls this; ClipShare
// never loads a bare PEM pair directly from config.
func (o *config) addCertificatePairString(key, crt string) error {
	pair, err := tls.X509KeyPair([]byte(crt), []byte(key))
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.certs = append(o.certs, pair)
	return nil
}

func (o *config) LenCertificatePair() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.certs)
}

// TLS renders the accumulated trust roots and client identity into a
// *tls.Config for dialing serverName. TLS 1.2 is the floor; ClipShare has
// no need to negotiate anything older.
func (o *config) TLS(serverName string) *tls.Config {
	o.mu.Lock()
	defer o.mu.Unlock()

	cnf := &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}

	if o.caRoot != nil {
		cnf.RootCAs = o.caRoot
	}

	if len(o.certs) > 0 {
		cnf.Certificates = append([]tls.Certificate(nil), o.certs...)
	}

	if o.clientAuth != tls.NoClientCert {
		cnf.ClientAuth = o.clientAuth
		if o.clientCA != nil {
			cnf.ClientCAs = o.clientCA
		}
	}

	return cnf
}
