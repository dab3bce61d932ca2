// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"fmt"

	"github.com/juju/errors"
)

// Logger represents the methods used by the supervisor to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

// SupervisorConfig holds the dependencies of a Supervisor.
type SupervisorConfig struct {
	Manager    Manager
	Dependents map[string][]string
	Logger     Logger
}

// Validate returns an error if the config cannot be used.
func (config SupervisorConfig) Validate() error {
	if config.Manager == nil {
		return errors.NotValidf("nil Manager")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	for name, deps := range config.Dependents {
		for _, dep := range deps {
			if dep == name {
				return errors.NotValidf("service %q depending on itself", name)
			}
		}
	}
	return nil
}

// Supervisor restarts stopped services and their dependents.
type Supervisor struct {
	config SupervisorConfig
}

// NewSupervisor returns a Supervisor. A nil Dependents in config means
// DefaultDependents.
func NewSupervisor(config SupervisorConfig) (*Supervisor, error) {
	if config.Dependents == nil {
		config.Dependents = DefaultDependents
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Supervisor{config: config}, nil
}

// EnsureRunning restarts each named service that is not running, followed
// by its dependents. A service whose state cannot be read is treated as
// stopped. Failures are logged and reported, never returned.
func (s *Supervisor) EnsureRunning(ctx context.Context, names ...string) []Restart {
	var restarts []Restart
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		running, err := s.config.Manager.Running(ctx, name)
		if err != nil {
			s.config.Logger.Errorf("checking service %s: %v", name, err)
		}
		if running {
			continue
		}
		s.config.Logger.Infof("service %s is not running", name)
		restarts = append(restarts, s.restart(ctx, name, "stopped")...)
	}
	return restarts
}

// Restart restarts a service and then its dependents, regardless of
// whether it was running.
func (s *Supervisor) Restart(ctx context.Context, name, reason string) []Restart {
	return s.restart(ctx, name, reason)
}

func (s *Supervisor) restart(ctx context.Context, name, reason string) []Restart {
	result := Restart{Service: name, Reason: reason}
	s.config.Logger.Infof("restarting service %s (%s)", name, reason)
	if err := s.config.Manager.Restart(ctx, name); err != nil {
		result.Err = errors.WithType(errors.Annotatef(err, "restarting %s", name), ErrRestart)
		s.config.Logger.Errorf("%v", result.Err)
		// Dependents are left alone while their dependency is down.
		return []Restart{result}
	}

	restarts := []Restart{result}
	for _, dep := range s.config.Dependents[name] {
		restarts = append(restarts, s.restart(ctx, dep, fmt.Sprintf("dependent of %s", name))...)
	}
	return restarts
}

// Errors returns the failed restarts' errors.
func Errors(restarts []Restart) []error {
	var errs []error
	for _, r := range restarts {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
