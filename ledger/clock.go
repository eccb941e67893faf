// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"
)

// Clock - source of the wall clock time given to programs
type Clock interface {
	UnixTimestamp() int64
}

type systemClock struct{}

// SystemClock - the host wall clock
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) UnixTimestamp() int64 {
	return time.Now().Unix()
}
