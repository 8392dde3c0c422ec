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
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/pkcs12"
)

// AddClientIdentityPKCS12 decodes a PKCS#12 bundle (client private key, leaf
// certificate, and any intermediate CA certificates) using an empty
// passphrase, as ClipShare servers ship their client identity, and registers
// the resulting pair as a certificate pair on this TLSConfig.
//
// Any CA certificates found in the bundle are added to the client CA pool so
// the server's verification of the client chain does not require them to be
// supplied separately.
func (o *config) AddClientIdentityPKCS12(p12 []byte) error {
	key, leaf, caCerts, err := pkcs12.DecodeChain(p12, "")
	if err != nil {
		return fmt.Errorf("pkcs12: decode client identity: %w", err)
	}

	keyPEM, err := marshalPKCS12Key(key)
	if err != nil {
		return fmt.Errorf("pkcs12: marshal client private key: %w", err)
	}

	certPEM := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: leaf.Raw}))

	if err = o.addCertificatePairString(keyPEM, certPEM); err != nil {
		return fmt.Errorf("pkcs12: register client certificate pair: %w", err)
	}

	for _, ca := range caCerts {
		o.AddClientCAString(string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: ca.Raw})))
	}

	return nil
}

func marshalPKCS12Key(key interface{}) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), nil
}
