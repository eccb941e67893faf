// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/chain"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/keypair"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "socialctl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	// DefaultProgram - identity the social program is registered at
	DefaultProgram = "29d2S7vB453rNYFdR5Ycwt7y9haRT5fwVwL9zTmBhfV2"
)

// a fresh map each time as the mapper merges into it
func defaultLogLevels() map[string]string {
	return map[string]string{
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - location of the slot database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - socialctl settings
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Chain           string               `gluamapper:"chain" json:"chain"`
	Database        DatabaseType         `gluamapper:"database" json:"database"`
	Program         string               `gluamapper:"program" json:"program"`
	Rent            ledger.Rent          `gluamapper:"rent" json:"rent"`
	DefaultIdentity string               `gluamapper:"default_identity" json:"default_identity"`
	Identities      map[string]string    `gluamapper:"identities" json:"-"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Chain:         chain.Local,
		Program:       DefaultProgram,
		Rent:          ledger.DefaultRent,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// if the database file was not specified switch to the
	// appropriate default.  Abort if the chain name is not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("chain: %s no default database setting", options.Chain)
		}
	}

	if program, err := account.IdentityFromBase58(options.Program); nil != err {
		return nil, fmt.Errorf("program: %q is not an identity: %s", options.Program, err)
	} else if program.IsZero() {
		return nil, fmt.Errorf("program: %q is the system program", options.Program)
	}

	if "" != options.DefaultIdentity {
		if _, ok := options.Identities[options.DefaultIdentity]; !ok {
			return nil, fmt.Errorf("default identity: %q is not configured", options.DefaultIdentity)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	options.Database.Directory = util.EnsureAbsolute(options.DataDirectory, options.Database.Directory)
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	err = util.MakeDirectories(options.Database.Directory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// ProgramIdentity - decoded program identity
func (c *Configuration) ProgramIdentity() account.Identity {
	id, _ := account.IdentityFromBase58(c.Program)
	return id
}

// Identity - key pair for a configured name, blank selects the default
func (c *Configuration) Identity(name string) (*keypair.KeyPair, error) {
	if "" == name {
		name = c.DefaultIdentity
	}
	seed, ok := c.Identities[name]
	if !ok {
		return nil, fault.ErrNotFoundIdentity
	}
	return keypair.FromSeed(seed)
}

// IdentityNames - configured names in sorted order
func (c *Configuration) IdentityNames() []string {
	names := lo.Keys(c.Identities)
	sort.Strings(names)
	return names
}
