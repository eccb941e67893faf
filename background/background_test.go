// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialstore/background"
	"github.com/bitmark-inc/socialstore/counter"
)

type ticker struct {
	ticks   counter.Counter
	stopped bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			state.ticks.Increment()
		}
	}
	state.stopped = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.stopped, "first process still running")
	assert.True(t, proc2.stopped, "second process still running")
	assert.NotEqual(t, uint64(0), proc1.ticks.Uint64(), "first process never ran")

	ticks := proc1.ticks.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, proc1.ticks.Uint64(), "ticked after stop")

	// repeated stop only waits
	p.Stop()
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
