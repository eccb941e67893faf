// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/chain"
	"github.com/bitmark-inc/socialstore/counter"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/metrics"
	"github.com/bitmark-inc/socialstore/storage"
)

// Configuration - ledger parameters
type Configuration struct {
	Chain string
	Rent  Rent
	Clock Clock
}

// Ledger - executes transactions against a slot database
type Ledger struct {
	sync.Mutex

	log      *logger.L
	db       *storage.Database
	chain    string
	rent     Rent
	clock    Clock
	programs map[account.Identity]Program

	transactions counter.Counter
	failures     counter.Counter
}

// Receipt - the observable result of one transaction
type Receipt struct {
	TxId       string           `json:"txId,omitempty"`
	Program    account.Identity `json:"program"`
	Timestamp  int64            `json:"timestamp"`
	Logs       []string         `json:"logs"`
	ReturnData []byte           `json:"returnData,omitempty"`
	Allocated  uint64           `json:"allocated"`
}

// New - create a ledger over an open database
func New(db *storage.Database, configuration Configuration) (*Ledger, error) {
	if nil == db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if !chain.Valid(configuration.Chain) {
		return nil, fault.ErrInvalidChain
	}

	rent := configuration.Rent
	if 0 == rent.LamportsPerByteYear || 0 == rent.ExemptionThreshold {
		rent = DefaultRent
	}
	clock := configuration.Clock
	if nil == clock {
		clock = SystemClock()
	}

	l := &Ledger{
		log:      logger.New("ledger"),
		db:       db,
		chain:    configuration.Chain,
		rent:     rent,
		clock:    clock,
		programs: make(map[account.Identity]Program),
	}
	l.log.Infof("chain: %s  rent: %+v", l.chain, l.rent)
	return l, nil
}

// Register - make a program callable at an identity
func (l *Ledger) Register(id account.Identity, program Program) error {
	l.Lock()
	defer l.Unlock()

	if SystemProgram == id {
		return fault.ErrIncorrectProgram
	}
	if _, ok := l.programs[id]; ok {
		return fault.ErrAlreadyInitialised
	}
	l.programs[id] = program
	l.log.Infof("registered program: %s", id)
	return nil
}

// Rent - the rent parameters
func (l *Ledger) Rent() Rent {
	return l.rent
}

// Chain - the chain name
func (l *Ledger) Chain() string {
	return l.chain
}

// TransactionCount - successful and failed executions since start
func (l *Ledger) TransactionCount() (uint64, uint64) {
	return l.transactions.Uint64(), l.failures.Uint64()
}

// GetAccount - committed state of an address
//
// an unknown address is returned as an empty system owned account
func (l *Ledger) GetAccount(id account.Identity) (*Account, error) {
	buffer := l.db.Pool.Accounts.Get(id[:])
	if nil == buffer {
		return &Account{Owner: SystemProgram}, nil
	}
	return UnpackAccount(buffer)
}

// Accounts - call f for every stored account in address order
func (l *Ledger) Accounts(f func(id account.Identity, a *Account) error) error {
	cursor := l.db.Pool.Accounts.NewFetchCursor()
	return cursor.Map(func(key []byte, value []byte) error {
		id, err := account.IdentityFromBytes(key)
		if nil != err {
			return err
		}
		a, err := UnpackAccount(value)
		if nil != err {
			return err
		}
		return f(id, a)
	})
}

// Balance - lamports held by an address
func (l *Ledger) Balance(id account.Identity) (uint64, error) {
	a, err := l.GetAccount(id)
	if nil != err {
		return 0, err
	}
	return a.Lamports, nil
}

// Airdrop - create lamports in an account, not available on the live chain
func (l *Ledger) Airdrop(id account.Identity, lamports uint64) error {
	if !chain.CanAirdrop(l.chain) {
		return fault.ErrUnsupportedAirdrop
	}

	l.Lock()
	defer l.Unlock()

	tx, err := l.db.Begin()
	if nil != err {
		return err
	}

	a, err := l.GetAccount(id)
	if nil != err {
		tx.Abort()
		return err
	}
	a.Lamports += lamports
	tx.Put(l.db.Pool.Accounts, id[:], a.Pack())

	err = tx.Commit()
	if nil != err {
		return err
	}
	l.log.Infof("airdrop: %s  lamports: %d  balance: %d", id, lamports, a.Lamports)
	return nil
}

// a loaded account with its state before the program ran
type loaded struct {
	info     *AccountInfo
	original *Account
}

// Execute - run one transaction, committing all of its effects or none
//
// the receipt is returned even on failure so the program logs are visible
func (l *Ledger) Execute(transaction *Transaction) (receipt *Receipt, err error) {
	l.Lock()
	defer l.Unlock()

	start := time.Now()
	message := &transaction.Message

	receipt = &Receipt{
		Program:   message.Program,
		Timestamp: l.clock.UnixTimestamp(),
	}
	if id := transaction.ID(); nil != id {
		receipt.TxId = hex.EncodeToString(id)
	}

	defer func() {
		metrics.Transaction(err, time.Since(start))
		if nil != err {
			l.failures.Increment()
			l.log.Warnf("tx: %s  program: %s  error: %s", receipt.TxId, message.Program, err)
		} else {
			l.transactions.Increment()
			l.log.Debugf("tx: %s  program: %s  ok", receipt.TxId, message.Program)
		}
	}()

	err = transaction.Verify()
	if nil != err {
		return receipt, err
	}

	program, ok := l.programs[message.Program]
	if !ok {
		return receipt, fault.ErrProgramNotFound
	}

	tx, err := l.db.Begin()
	if nil != err {
		return receipt, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Abort()
		}
	}()

	txId := transaction.ID()
	if nil != txId && tx.Has(l.db.Pool.Signatures, txId) {
		return receipt, fault.ErrAlreadyProcessed
	}

	infos, accounts, err := l.load(tx, message)
	if nil != err {
		return receipt, err
	}

	inv := &invocation{
		log:       l.log,
		program:   message.Program,
		rent:      l.rent,
		timestamp: receipt.Timestamp,
	}

	err = program.Process(inv, infos, message.Data)
	receipt.Logs = inv.logs
	if nil != err {
		return receipt, err
	}

	err = check(message.Program, accounts)
	if nil != err {
		return receipt, err
	}

	for _, item := range accounts {
		if !item.info.IsWritable {
			continue
		}
		tx.Put(l.db.Pool.Accounts, item.info.Address[:], item.info.account().Pack())
	}
	if nil != txId {
		when := make([]byte, 8)
		binary.BigEndian.PutUint64(when, uint64(receipt.Timestamp))
		tx.Put(l.db.Pool.Signatures, txId, when)
	}

	err = tx.Commit()
	committed = true
	if nil != err {
		return receipt, err
	}

	receipt.ReturnData = inv.returnData
	receipt.Allocated = inv.allocated
	metrics.Allocated(inv.allocated)
	return receipt, nil
}

// build the handle list, repeated addresses share one AccountInfo
func (l *Ledger) load(tx storage.Transaction, message *Message) ([]*AccountInfo, []loaded, error) {
	infos := make([]*AccountInfo, 0, len(message.Accounts))
	accounts := make([]loaded, 0, len(message.Accounts))
	byAddress := make(map[account.Identity]*AccountInfo)

	for _, meta := range message.Accounts {
		if info, ok := byAddress[meta.Address]; ok {
			info.IsSigner = info.IsSigner || meta.Signer
			info.IsWritable = info.IsWritable || meta.Writable
			infos = append(infos, info)
			continue
		}

		current := &Account{Owner: SystemProgram}
		if buffer := tx.Get(l.db.Pool.Accounts, meta.Address[:]); nil != buffer {
			a, err := UnpackAccount(buffer)
			if nil != err {
				return nil, nil, err
			}
			current = a
		}

		original := &Account{
			Lamports: current.Lamports,
			Owner:    current.Owner,
			Data:     make([]byte, len(current.Data)),
		}
		copy(original.Data, current.Data)

		info := NewAccountInfo(meta.Address, meta.Signer, meta.Writable, current)
		byAddress[meta.Address] = info
		infos = append(infos, info)
		accounts = append(accounts, loaded{info: info, original: original})
	}
	return infos, accounts, nil
}

// post execution invariants
func check(program account.Identity, accounts []loaded) error {
	before := uint64(0)
	after := uint64(0)

	for _, item := range accounts {
		current := item.info.account()
		original := item.original

		before += original.Lamports
		after += current.Lamports

		dataChanged := !bytes.Equal(original.Data, current.Data)
		changed := dataChanged || original.Lamports != current.Lamports || original.Owner != current.Owner

		if changed && !item.info.IsWritable {
			return fault.ErrReadonlyModified
		}
		if dataChanged && current.Owner != program {
			return fault.ErrExternalDataModified
		}
		if original.Owner != current.Owner && SystemProgram != original.Owner {
			return fault.ErrIllegalOwner
		}
	}
	if before != after {
		return fault.ErrLamportsNotConserved
	}
	return nil
}
