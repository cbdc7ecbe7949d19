// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "midas_commands_total",
			Help: "Commands exchanged with the unit, by opcode.",
		},
		[]string{"opcode"},
	)

	commandErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "midas_command_errors_total",
			Help: "Failed command exchanges, by error kind.",
		},
		[]string{"kind"},
	)
)

// RegisterMetrics registers the package collectors with the given registry.
// The library never registers anything on its own; call this once from the
// host program if metrics are wanted.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{commandsTotal, commandErrorsTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// observeError counts a failed exchange under its error kind.
func observeError(err error) {
	kind := "transport"
	switch {
	case errors.Is(err, ErrEncode):
		kind = "encode"
	case errors.Is(err, ErrDecode):
		kind = "decode"
	case errors.Is(err, ErrTimeout):
		kind = "timeout"
	case errors.Is(err, ErrBadCommand), errors.Is(err, ErrMissingData):
		kind = "rejected"
	case errors.Is(err, ErrUnknownCombination):
		kind = "validation"
	}
	commandErrorsTotal.WithLabelValues(kind).Inc()
}
