// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package command runs the external tools the monitor shells out to,
// such as ovs-vsctl and crm.
package command

import (
	"context"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/utils/v4"
	"github.com/juju/utils/v4/exec"
)

// Runner runs shell commands.
type Runner interface {
	RunCommands(ctx context.Context, run exec.RunParams) (*exec.ExecResponse, error)
}

// DefaultRunner runs commands on the local machine. A command is killed
// when its context is done or, if Timeout is set, once it has run for
// longer than Timeout.
type DefaultRunner struct {
	Clock   clock.Clock
	Timeout time.Duration
}

// RunCommands is part of the Runner interface.
func (r DefaultRunner) RunCommands(ctx context.Context, run exec.RunParams) (*exec.ExecResponse, error) {
	clk := r.Clock
	if clk == nil {
		clk = clock.WallClock
	}
	run.Clock = clk
	if err := run.Run(); err != nil {
		return nil, errors.Trace(err)
	}

	var expired <-chan time.Time
	if r.Timeout > 0 {
		timer := clk.NewTimer(r.Timeout)
		defer timer.Stop()
		expired = timer.Chan()
	}

	cancel := make(chan struct{})
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
		case <-expired:
		case <-finished:
			return
		}
		close(cancel)
	}()
	return run.WaitWithCancel(cancel)
}

// Executor runs single commands through a Runner and returns their
// trimmed standard output.
type Executor struct {
	Runner Runner
}

// NewExecutor returns an Executor running commands locally with the
// given timeout.
func NewExecutor(clk clock.Clock, timeout time.Duration) *Executor {
	return &Executor{
		Runner: DefaultRunner{Clock: clk, Timeout: timeout},
	}
}

// Output runs args as one command. A non-zero exit status is an error
// carrying the command's stderr.
func (e *Executor) Output(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.NotValidf("empty command")
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Trace(err)
	}

	result, err := e.Runner.RunCommands(ctx, exec.RunParams{
		Commands: utils.CommandString(args...),
	})
	if errors.Is(err, exec.ErrCancelled) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.Annotatef(ctxErr, "running %s", args[0])
		}
		return "", errors.Errorf("%s timed out", args[0])
	}
	if err != nil {
		return "", errors.Annotatef(err, "running %s", args[0])
	}
	if result.Code != 0 {
		stderr := strings.TrimSpace(string(result.Stderr))
		if stderr == "" {
			stderr = strings.TrimSpace(string(result.Stdout))
		}
		return "", errors.Errorf("%s exited %d: %s", args[0], result.Code, stderr)
	}
	return strings.TrimSpace(string(result.Stdout)), nil
}
