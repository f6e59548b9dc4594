// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var certificateData struct {
	sync.Once
	certificate string
	key         string
}

// Certificate - a self-signed PEM certificate and key for 127.0.0.1
//
// generated once per test binary
func Certificate() (string, string) {
	certificateData.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("linktreed test", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificateData.certificate = string(cert)
		certificateData.key = string(key)
	})
	return certificateData.certificate, certificateData.key
}
