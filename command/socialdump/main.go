// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/chain"
	"github.com/bitmark-inc/socialstore/configuration"
	"github.com/bitmark-inc/socialstore/inventory"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/storage"
	"github.com/bitmark-inc/socialstore/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type entry struct {
	Address  account.Identity `json:"address"`
	Owner    account.Identity `json:"owner"`
	Lamports uint64           `json:"lamports"`
	Length   int              `json:"length"`
	Kind     string           `json:"kind"`
	Record   interface{}      `json:"record,omitempty"`
	Data     string           `json:"data,omitempty"`
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "program", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "kind", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--program=IDENTITY] [--kind=KIND]... [--count=N] --file=FILE", program)
	}

	verbose := len(options["verbose"]) > 0

	programText := configuration.DefaultProgram
	if len(options["program"]) > 0 {
		programText = options["program"][0]
	}
	socialProgram, err := account.IdentityFromBase58(programText)
	if nil != err {
		exitwithstatus.Message("%s: program: %q error: %s", program, programText, err)
	}

	// zero is unlimited
	count := 0
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	kinds := make(map[string]bool)
	for _, k := range options["kind"] {
		if !inventory.Valid(k) {
			exitwithstatus.Message("%s: invalid kind: %q", program, k)
		}
		kinds[k] = true
	}

	filename := options["file"][0]
	if !util.EnsureFileExists(filename) {
		exitwithstatus.Message("%s: database: %q does not exist", program, filename)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "dump: %q  program: %s\n", filename, socialProgram)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "socialdump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	// chain only affects airdrop which is never called here
	l, err := ledger.New(db, ledger.Configuration{Chain: chain.Local})
	if nil != err {
		exitwithstatus.Message("%s: ledger setup failed with error: %s", program, err)
	}

	encoder := json.NewEncoder(os.Stdout)
	n := 0
	err = l.Accounts(func(id account.Identity, a *ledger.Account) error {
		e := classify(socialProgram, id, a)
		if len(kinds) > 0 && !kinds[e.Kind] {
			return nil
		}
		if err := encoder.Encode(e); nil != err {
			return err
		}
		n += 1
		if 0 != count && n >= count {
			return errStop
		}
		return nil
	})
	if nil != err && errStop != err {
		exitwithstatus.Message("%s: dump failed with error: %s", program, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "accounts: %d\n", n)
	}
}

type stopError string

func (e stopError) Error() string { return string(e) }

const errStop = stopError("stop")

func classify(socialProgram account.Identity, id account.Identity, a *ledger.Account) entry {
	kind, record := inventory.Classify(socialProgram, a)
	e := entry{
		Address:  id,
		Owner:    a.Owner,
		Lamports: a.Lamports,
		Length:   len(a.Data),
		Kind:     kind,
		Record:   record,
	}
	if nil == record && len(a.Data) > 0 {
		e.Data = hex.EncodeToString(a.Data)
	}
	return e
}
