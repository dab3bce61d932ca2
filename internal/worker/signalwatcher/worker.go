// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package signalwatcher stops the monitor when its init system asks it
// to. Shutdown signals kill the worker with ErrShutdown, which the
// caller treats as a clean exit.
package signalwatcher

import (
	"os"
	"syscall"

	"github.com/juju/errors"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/catacomb"
)

// ErrShutdown is the worker's error after a shutdown signal. The process
// should exit zero.
const ErrShutdown = errors.ConstError("shutdown requested")

// ShutdownSignals are the signals the monitor stops on.
var ShutdownSignals = []os.Signal{syscall.SIGTERM, os.Interrupt}

// Logger is the logging used by the watcher.
type Logger interface {
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
}

// Config holds the watcher's dependencies.
type Config struct {
	// Signals delivers the signals the process was notified of.
	Signals <-chan os.Signal
	Logger  Logger
}

// Validate returns an error if the config cannot drive a watcher.
func (config Config) Validate() error {
	if config.Signals == nil {
		return errors.NotValidf("nil Signals")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

type signalWatcher struct {
	catacomb catacomb.Catacomb
	config   Config
}

// NewWorker returns a worker that runs until it receives one of
// ShutdownSignals. Any other signal is logged and ignored.
func NewWorker(config Config) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	w := &signalWatcher{config: config}
	if err := catacomb.Invoke(catacomb.Plan{
		Site: &w.catacomb,
		Work: w.loop,
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return w, nil
}

// Kill is part of the worker.Worker interface.
func (w *signalWatcher) Kill() {
	w.catacomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (w *signalWatcher) Wait() error {
	return w.catacomb.Wait()
}

func (w *signalWatcher) loop() error {
	for {
		select {
		case <-w.catacomb.Dying():
			return w.catacomb.ErrDying()
		case sig, ok := <-w.config.Signals:
			if !ok {
				return errors.New("signal channel closed unexpectedly")
			}
			if isShutdown(sig) {
				w.config.Logger.Infof("received %v, shutting down", sig)
				return ErrShutdown
			}
			w.config.Logger.Warningf("ignoring %v", sig)
		}
	}
}

func isShutdown(sig os.Signal) bool {
	for _, s := range ShutdownSignals {
		if s == sig {
			return true
		}
	}
	return false
}
