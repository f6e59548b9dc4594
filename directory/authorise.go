// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/record"
)

// Authorise - succeeds only if caller is the owner of the record
//
// caller must already be verified, e.g. as the signer of a request
func Authorise(r *record.Record, caller *account.Account) error {
	if nil == r || !r.Owner.Equal(caller) {
		return fault.NotOwner
	}
	return nil
}
