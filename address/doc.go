// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic slot addresses
//
// A slot address is the SHA3-256 digest of the seeds, a one byte
// bump, the program identity and a fixed marker.  The bump is
// searched downwards from 255 until the digest does not decode as an
// ed25519 point, so no private key can ever sign for the address and
// only the program that knows the seeds can authorise its creation.
package address
