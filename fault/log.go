// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
)

// time for the logger to write out the last message
const flushDelay = 100 * time.Millisecond

var log *logger.L

// Initialise - setup the panic log channel
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panic - log then panic
func Panic(message string) {
	critical(message)
	panic(message)
}

// PanicIfError - panic only when err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panic(fmt.Sprintf("%s failed with error: %s", message, err))
}

// before Initialise the message goes to stdout
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
	time.Sleep(flushDelay)
}
