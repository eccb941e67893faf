// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for the ledger and the social program
//
// everything is registered on a private registry so embedding
// programs do not collide with the default one
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// transaction results
const (
	Success = "success"
	Failure = "failure"
)

var registry = prometheus.NewRegistry()

var (
	transactions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "socialstore",
		Subsystem: "ledger",
		Name:      "transactions_total",
		Help:      "Transactions executed by the ledger segmented by result.",
	}, []string{"result"})

	lamportsAllocated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "socialstore",
		Subsystem: "ledger",
		Name:      "lamports_allocated_total",
		Help:      "Lamports transferred into newly created slots.",
	})

	executeSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "socialstore",
		Subsystem: "ledger",
		Name:      "execute_seconds",
		Help:      "Time taken to execute one transaction.",
		Buckets:   prometheus.DefBuckets,
	})

	operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "socialstore",
		Subsystem: "social",
		Name:      "operations_total",
		Help:      "Social program instructions segmented by operation and result.",
	}, []string{"operation", "result"})

	slots = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "socialstore",
		Subsystem: "storage",
		Name:      "slots",
		Help:      "Stored accounts segmented by decoded kind, set by a database scan.",
	}, []string{"kind"})

	slotLamports = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "socialstore",
		Subsystem: "storage",
		Name:      "lamports",
		Help:      "Lamports held by stored accounts segmented by decoded kind.",
	}, []string{"kind"})
)

func init() {
	registry.MustRegister(
		transactions,
		lamportsAllocated,
		executeSeconds,
		operations,
		slots,
		slotLamports,
	)
}

func result(err error) string {
	if nil == err {
		return Success
	}
	return Failure
}

// Transaction - record the outcome and duration of one execution
func Transaction(err error, duration time.Duration) {
	transactions.WithLabelValues(result(err)).Inc()
	executeSeconds.Observe(duration.Seconds())
}

// Allocated - record lamports moved into a new slot
func Allocated(lamports uint64) {
	lamportsAllocated.Add(float64(lamports))
}

// Operation - record one social instruction
func Operation(operation string, err error) {
	operations.WithLabelValues(operation, result(err)).Inc()
}

// Slots - record the result of a scan for one kind of account
func Slots(kind string, count int, lamports uint64) {
	slots.WithLabelValues(kind).Set(float64(count))
	slotLamports.WithLabelValues(kind).Set(float64(lamports))
}

// Gather - snapshot of all metric families
func Gather() ([]*dto.MetricFamily, error) {
	return registry.Gather()
}

// Handler - serve the private registry over HTTP
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
