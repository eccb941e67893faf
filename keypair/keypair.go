// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/util"
)

// seed layout: header ++ 32 random bytes ++ sha3 checksum prefix
var seedHeader = []byte{0x5a, 0xfe, 0x02}

const (
	seedLength     = 32
	checksumLength = 4
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	PublicKey  []byte
	PrivateKey []byte
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string           `json:"seed"`
	Identity   account.Identity `json:"identity"`
	PublicKey  string           `json:"public_key"`
	PrivateKey string           `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed() (string, error) {
	seedCore := make([]byte, seedLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if seedLength != n {
		fault.Panic("too few random bytes")
	}
	return packSeed(seedCore), nil
}

func packSeed(seedCore []byte) string {
	packedSeed := make([]byte, 0, len(seedHeader)+seedLength+checksumLength)
	packedSeed = append(packedSeed, seedHeader...)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:checksumLength]...)
	return util.ToBase58(packedSeed)
}

// FromSeed - regenerate the key pair from a Base58 seed
func FromSeed(seed string) (*KeyPair, error) {
	packedSeed := util.FromBase58(seed)
	if len(seedHeader)+seedLength+checksumLength != len(packedSeed) {
		return nil, fault.ErrKeyLength
	}
	if !bytes.Equal(seedHeader, packedSeed[:len(seedHeader)]) {
		return nil, fault.ErrInvalidSeed
	}

	checksumStart := len(packedSeed) - checksumLength
	checksum := sha3.Sum256(packedSeed[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], packedSeed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	privateKey := ed25519.NewKeyFromSeed(packedSeed[len(seedHeader):checksumStart])
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return &KeyPair{
		Seed:       seed,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// MakeKeyPair - create new seed and generate public/private keys from it
func MakeKeyPair() (*KeyPair, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// Identity - the public identity of the key pair
func (keyPair *KeyPair) Identity() account.Identity {
	var identity account.Identity
	copy(identity[:], keyPair.PublicKey)
	return identity
}

// Sign - produce an ed25519 signature of the message
func (keyPair *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(ed25519.PrivateKey(keyPair.PrivateKey), message)
}

// Raw - the text form for display
func (keyPair *KeyPair) Raw() RawKeyPair {
	return RawKeyPair{
		Seed:       keyPair.Seed,
		Identity:   keyPair.Identity(),
		PublicKey:  hex.EncodeToString(keyPair.PublicKey),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
}
