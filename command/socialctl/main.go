// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/client"
	"github.com/bitmark-inc/socialstore/configuration"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/social"
	"github.com/bitmark-inc/socialstore/storage"
)

type metadata struct {
	config   *configuration.Configuration
	db       *storage.Database
	ledger   *ledger.Ledger
	social   *client.Social
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that run without a configuration file
var standalone = map[string]bool{
	"":         true,
	"generate": true,
	"help":     true,
	"h":        true,
	"version":  true,
}

func main() {

	app := cli.NewApp()
	app.Name = "socialctl"
	app.Usage = "follow lists and posts held in program derived slots"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "socialctl.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringSliceFlag{
			Name:  "define, d",
			Usage: " set a configuration global `NAME=VALUE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new seed and identity, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display configuration and configured identities",
			Action: runInfo,
		},
		{
			Name:      "airdrop",
			Usage:     "create lamports in an account (local and testing chains)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity `NAME` or base58 identity [default identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: defaultAirdrop,
					Usage: " `LAMPORTS` to create",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:  "balance",
			Usage: "display lamports held by an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity `NAME` or base58 identity [default identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "init",
			Usage: "allocate the profile and post counter slots of the identity",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed-type, s",
					Value: "",
					Usage: " only initialise `TYPE` [profile|post]",
				},
			},
			Action: runInit,
		},
		{
			Name:      "follow",
			Usage:     "follow another identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*identity `NAME` or base58 identity to follow",
				},
			},
			Action: runFollow,
		},
		{
			Name:      "unfollow",
			Usage:     "stop following an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*identity `NAME` or base58 identity to unfollow",
				},
			},
			Action: runUnfollow,
		},
		{
			Name:  "follows",
			Usage: "list followed identities",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity `NAME` or base58 identity [default identity]",
				},
			},
			Action: runFollows,
		},
		{
			Name:      "post",
			Usage:     "append a post",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, m",
					Value: "",
					Usage: "*post `TEXT`",
				},
			},
			Action: runPost,
		},
		{
			Name:  "posts",
			Usage: "display posts",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity `NAME` or base58 identity [default identity]",
				},
				cli.Uint64Flag{
					Name:  "id, n",
					Value: 0,
					Usage: " only post `NUMBER` [all posts]",
				},
			},
			Action: runPosts,
		},
		{
			Name:  "address",
			Usage: "display the derived slot addresses of an identity",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity `NAME` or base58 identity [default identity]",
				},
				cli.Uint64Flag{
					Name:  "id, n",
					Value: 0,
					Usage: " also derive post `NUMBER`",
				},
			},
			Action: runAddress,
		},
		{
			Name:   "stats",
			Usage:  "scan the database and print metrics in text exposition format",
			Action: runStats,
		},
		{
			Name:  "monitor",
			Usage: "serve metrics over HTTP and rescan the database periodically",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "listen, l",
					Value: defaultListen,
					Usage: " `HOST:PORT` of the metrics endpoint",
				},
				cli.DurationFlag{
					Name:  "interval",
					Value: defaultInterval,
					Usage: " `DURATION` between database scans",
				},
			},
			Action: runMonitor,
		},
		{
			Name:  "version",
			Usage: "display socialctl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			identity: c.GlobalString("identity"),
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if standalone[command] {
			return nil
		}

		variables, err := parseDefines(c.GlobalStringSlice("define"))
		if nil != err {
			return err
		}

		file := os.ExpandEnv(c.GlobalString("config"))
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.GetConfiguration(file, variables)
		if nil != err {
			return err
		}

		err = logger.Initialise(m.config.Logging)
		if nil != err {
			return err
		}
		err = fault.Initialise()
		if nil != err {
			return fmt.Errorf("fault setup failed with error: %s", err)
		}

		m.db, err = storage.Open(m.config.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}

		m.ledger, err = ledger.New(m.db, ledger.Configuration{
			Chain: m.config.Chain,
			Rent:  m.config.Rent,
		})
		if nil != err {
			return err
		}

		program := m.config.ProgramIdentity()
		err = m.ledger.Register(program, social.New())
		if nil != err {
			return err
		}
		m.social = client.New(program, m.ledger)

		if verbose {
			fmt.Fprintf(e, "chain: %s  program: %s  database: %s\n", m.config.Chain, program, m.config.Database.Name)
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		if nil != m.ledger && m.verbose {
			transactions, failures := m.ledger.TransactionCount()
			fmt.Fprintf(m.e, "transactions: %d  failures: %d\n", transactions, failures)
		}
		if nil != m.db {
			m.db.Close()
		}
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// NAME=VALUE pairs to configuration globals
func parseDefines(defines []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range defines {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("define: %q is not NAME=VALUE", d)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}
