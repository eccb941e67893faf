// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// AccountStorageOverhead - bytes charged for every account in addition to its data
const AccountStorageOverhead = 128

// Rent - pricing of slot storage
type Rent struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// DefaultRent - standard rent parameters
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2,
}

// MinimumBalance - lamports a slot of dataLength bytes must hold
// to be exempt from reclamation
func (rent Rent) MinimumBalance(dataLength int) uint64 {
	return (AccountStorageOverhead + uint64(dataLength)) * rent.LamportsPerByteYear * rent.ExemptionThreshold
}
