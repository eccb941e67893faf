// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/background"
	"github.com/bitmark-inc/socialstore/inventory"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/metrics"
)

const (
	defaultListen   = "127.0.0.1:9420"
	defaultInterval = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// periodic database scan
type scanner struct {
	log      *logger.L
	ledger   *ledger.Ledger
	program  account.Identity
	interval time.Duration
}

func (s *scanner) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		s.scan()
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}
	}
	s.log.Info("stopped")
}

func (s *scanner) scan() {
	tallies, err := inventory.Scan(s.ledger, s.program)
	if nil != err {
		s.log.Errorf("scan error: %s", err)
		return
	}
	s.log.Debugf("tallies: %+v", tallies)
}

// metrics endpoint
type server struct {
	log    *logger.L
	server *http.Server
}

func (s *server) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Infof("listening on: %s", s.server.Addr)

	go func() {
		<-shutdown
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = s.server.Shutdown(ctx)
	}()

	err := s.server.ListenAndServe()
	if nil != err && http.ErrServerClosed != err {
		s.log.Criticalf("listen error: %s", err)
	}
	s.log.Info("stopped")
}

func runMonitor(c *cli.Context) error {

	m := getMetadata(c)

	interval := c.Duration("interval")
	if interval <= 0 {
		return fmt.Errorf("invalid interval: %s", interval)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	processes := background.Processes{
		&scanner{
			log:      logger.New("scanner"),
			ledger:   m.ledger,
			program:  m.social.Program(),
			interval: interval,
		},
		&server{
			log: logger.New("monitor"),
			server: &http.Server{
				Addr:    c.String("listen"),
				Handler: mux,
			},
		},
	}
	p := background.Start(processes, nil)

	fmt.Fprintf(m.w, "serving metrics on: http://%s/metrics\n", c.String("listen"))

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	signal.Stop(ch)

	if m.verbose {
		fmt.Fprintf(m.e, "\nreceived signal: %v\n", sig)
		fmt.Fprintf(m.e, "shutting down…\n")
	}
	p.Stop()
	return nil
}
