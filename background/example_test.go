// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/linktreed/background"
)

// a process that reports once then waits to be stopped
type reporter struct {
	name  string
	ready chan struct{}
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	prefix := args.(string)
	fmt.Printf("%s%s: running\n", prefix, r.name)
	close(r.ready)

	<-shutdown
}

func Example() {

	r := &reporter{
		name:  "stats",
		ready: make(chan struct{}),
	}

	p := background.Start(background.Processes{r}, "linktreed/")
	<-r.ready
	p.Stop()

	fmt.Printf("stopped\n")

	// Output:
	// linktreed/stats: running
	// stopped
}
