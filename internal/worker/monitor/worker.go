// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package monitor runs reconciliation cycles on a fixed interval until it
// is killed.
package monitor

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/catacomb"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/reconciler"
)

// DefaultInterval is the time between the end of one cycle and the start
// of the next.
const DefaultInterval = 15 * time.Second

// Engine runs a single reconciliation cycle.
type Engine interface {
	RunOnce(ctx context.Context) reconciler.Report
}

// Logger represents the methods used by the worker to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
}

// Config holds the configuration and dependencies for a monitor worker.
type Config struct {
	Engine   Engine
	Interval time.Duration
	Clock    clock.Clock
	Logger   Logger

	// Reports, if set, receives the report of every cycle. Sends are
	// abandoned when the worker is killed.
	Reports chan<- reconciler.Report
}

// Validate returns an error if the config cannot be expected to drive a
// functional worker.
func (config Config) Validate() error {
	if config.Engine == nil {
		return errors.NotValidf("nil Engine")
	}
	if config.Interval <= 0 {
		return errors.NotValidf("non-positive Interval")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Worker runs a cycle as soon as it starts and then once per interval.
// Cycles never overlap: the interval is counted from the end of the
// previous cycle.
type Worker struct {
	catacomb catacomb.Catacomb
	config   Config
}

// NewWorker returns a Worker running the configured engine.
func NewWorker(config Config) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	w := &Worker{config: config}
	if err := catacomb.Invoke(catacomb.Plan{
		Site: &w.catacomb,
		Work: w.loop,
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return w, nil
}

// Kill is part of the worker.Worker interface.
func (w *Worker) Kill() {
	w.catacomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (w *Worker) Wait() error {
	return w.catacomb.Wait()
}

func (w *Worker) loop() error {
	// Killing the worker cancels the cycle in flight; the engine stops
	// between reassignments.
	ctx := w.catacomb.Context(context.Background())

	for {
		report := w.config.Engine.RunOnce(ctx)
		w.logReport(report)
		if w.config.Reports != nil {
			select {
			case w.config.Reports <- report:
			case <-w.catacomb.Dying():
				return w.catacomb.ErrDying()
			}
		}

		select {
		case <-w.catacomb.Dying():
			return w.catacomb.ErrDying()
		case <-w.config.Clock.After(w.config.Interval):
		}
	}
}

func (w *Worker) logReport(report reconciler.Report) {
	logger := w.config.Logger
	moved, failed := 0, 0
	for _, m := range report.Moves {
		if m.Err != nil {
			failed++
		} else {
			moved++
		}
	}
	summary := "cycle finished in %v: %d resources moved, %d moves failed, %d errors"
	if report.Failed() {
		logger.Warningf(summary, report.Duration, moved, failed, len(report.Errors))
	} else if moved > 0 {
		logger.Infof(summary, report.Duration, moved, failed, len(report.Errors))
	} else {
		logger.Debugf(summary, report.Duration, moved, failed, len(report.Errors))
	}
	if report.SkippedReason != "" {
		logger.Debugf("cycle stopped early: %s", report.SkippedReason)
	}
}
