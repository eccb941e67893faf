// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/util"
)

// AccountMeta - one handle in the order the program expects
type AccountMeta struct {
	Address  account.Identity `json:"address"`
	Signer   bool             `json:"signer"`
	Writable bool             `json:"writable"`
}

// Message - the signed part of a transaction
type Message struct {
	Program  account.Identity `json:"program"`
	Accounts []AccountMeta    `json:"accounts"`
	Data     []byte           `json:"data"`
	Nonce    uint64           `json:"nonce"`
}

// Transaction - a message and one signature per distinct signer
type Transaction struct {
	Message    Message             `json:"message"`
	Signatures []account.Signature `json:"signatures"`
}

// Signer - anything that can sign for an identity
type Signer interface {
	Identity() account.Identity
	Sign(message []byte) account.Signature
}

// flag bits of a packed account meta
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// ReadonlySigner - read-only signer handle
func ReadonlySigner(address account.Identity) AccountMeta {
	return AccountMeta{Address: address, Signer: true}
}

// Writable - writable handle, optionally a signer
func Writable(address account.Identity, signer bool) AccountMeta {
	return AccountMeta{Address: address, Signer: signer, Writable: true}
}

// Readonly - plain read-only handle
func Readonly(address account.Identity) AccountMeta {
	return AccountMeta{Address: address}
}

// Pack - the bytes covered by the signatures
//
// program ++ Varint64(n) ++ n * (address ++ flags) ++
// Varint64(len) ++ data ++ Varint64(nonce)
func (m *Message) Pack() []byte {
	buffer := make([]byte, 0, account.IdentitySize+len(m.Accounts)*(account.IdentitySize+1)+len(m.Data)+3*util.Varint64MaximumBytes)
	buffer = append(buffer, m.Program[:]...)
	buffer = append(buffer, util.ToVarint64(uint64(len(m.Accounts)))...)
	for _, meta := range m.Accounts {
		flags := byte(0)
		if meta.Signer {
			flags |= signerFlag
		}
		if meta.Writable {
			flags |= writableFlag
		}
		buffer = append(buffer, meta.Address[:]...)
		buffer = append(buffer, flags)
	}
	buffer = append(buffer, util.ToVarint64(uint64(len(m.Data)))...)
	buffer = append(buffer, m.Data...)
	return append(buffer, util.ToVarint64(m.Nonce)...)
}

// Signers - distinct signer addresses in order of first appearance
func (m *Message) Signers() []account.Identity {
	signers := make([]account.Identity, 0, len(m.Accounts))
	seen := make(map[account.Identity]struct{})
	for _, meta := range m.Accounts {
		if !meta.Signer {
			continue
		}
		if _, ok := seen[meta.Address]; ok {
			continue
		}
		seen[meta.Address] = struct{}{}
		signers = append(signers, meta.Address)
	}
	return signers
}

// Sign - create a transaction signed by the given signers
//
// the signers must be supplied in the order of Message.Signers
func Sign(message Message, signers ...Signer) (*Transaction, error) {
	required := message.Signers()
	if len(required) != len(signers) {
		return nil, fault.ErrWrongNumberOfSignature
	}

	packed := message.Pack()
	tx := &Transaction{
		Message:    message,
		Signatures: make([]account.Signature, len(signers)),
	}
	for i, signer := range signers {
		if required[i] != signer.Identity() {
			return nil, fault.ErrMissingSigner
		}
		tx.Signatures[i] = signer.Sign(packed)
	}
	return tx, nil
}

// Verify - check every required signature
func (tx *Transaction) Verify() error {
	required := tx.Message.Signers()
	if len(required) != len(tx.Signatures) {
		return fault.ErrWrongNumberOfSignature
	}

	packed := tx.Message.Pack()
	for i, identity := range required {
		err := identity.CheckSignature(packed, tx.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}

// ID - replay protection key, nil for an unsigned transaction
func (tx *Transaction) ID() []byte {
	if 0 == len(tx.Signatures) {
		return nil
	}
	digest := sha3.Sum256(tx.Signatures[0])
	return digest[:]
}
