// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"context"
	"os/signal"
	"time"

	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/reconciler"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/worker/signalwatcher"
)

const reconcileDoc = `
reconcile runs a single cycle of the monitor and prints what it found and
did. The command fails when anything in the cycle went wrong.
`

// ReconcileCommand runs one reconciliation cycle.
type ReconcileCommand struct {
	cmd.CommandBase
	configFlags

	factory Factory
	out     cmd.Output
}

// NewReconcileCommand returns a command that runs one cycle.
func NewReconcileCommand(factory Factory) cmd.Command {
	return &ReconcileCommand{factory: factory}
}

// Info implements cmd.Command.
func (c *ReconcileCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "reconcile",
		Purpose: "Run one reconciliation cycle.",
		Doc:     reconcileDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *ReconcileCommand) SetFlags(f *gnuflag.FlagSet) {
	c.configFlags.SetFlags(f)
	c.out.AddFlags(f, "yaml", map[string]cmd.Formatter{
		"yaml": cmd.FormatYaml,
		"json": cmd.FormatJson,
	})
}

// Init implements cmd.Command.
func (c *ReconcileCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *ReconcileCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.load()
	if err != nil {
		return errors.Trace(err)
	}
	engine, err := c.factory.NewEngine(cfg, nil)
	if err != nil {
		return errors.Annotate(err, "creating reconciler")
	}

	cycleCtx, stop := signal.NotifyContext(context.Background(), signalwatcher.ShutdownSignals...)
	defer stop()
	report := engine.RunOnce(cycleCtx)

	if err := c.out.Write(ctx, formatReport(report)); err != nil {
		return errors.Trace(err)
	}
	if report.Failed() {
		return cmd.ErrSilent
	}
	return nil
}

type reportOutput struct {
	Host       string                `yaml:"host" json:"host"`
	Started    time.Time             `yaml:"started" json:"started"`
	Duration   string                `yaml:"duration" json:"duration"`
	Designated *bool                 `yaml:"designated,omitempty" json:"designated,omitempty"`
	Skipped    string                `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Kinds      map[string]kindOutput `yaml:"kinds,omitempty" json:"kinds,omitempty"`
	Moves      []moveOutput          `yaml:"moves,omitempty" json:"moves,omitempty"`
	Cleanups   []cleanupOutput       `yaml:"cleanups,omitempty" json:"cleanups,omitempty"`
	Restarts   []restartOutput       `yaml:"restarts,omitempty" json:"restarts,omitempty"`
	Errors     []string              `yaml:"errors,omitempty" json:"errors,omitempty"`
}

type kindOutput struct {
	Alive   []string          `yaml:"alive,omitempty" json:"alive,omitempty"`
	Dead    []string          `yaml:"dead,omitempty" json:"dead,omitempty"`
	Orphans map[string]string `yaml:"orphans,omitempty" json:"orphans,omitempty"`
	Skipped string            `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}

type moveOutput struct {
	Kind     string `yaml:"kind" json:"kind"`
	Resource string `yaml:"resource" json:"resource"`
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

type cleanupOutput struct {
	Kind    string            `yaml:"kind" json:"kind"`
	Removed []string          `yaml:"removed,omitempty" json:"removed,omitempty"`
	Skipped []string          `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Failed  map[string]string `yaml:"failed,omitempty" json:"failed,omitempty"`
}

type restartOutput struct {
	Service string `yaml:"service" json:"service"`
	Reason  string `yaml:"reason" json:"reason"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func formatReport(report reconciler.Report) reportOutput {
	out := reportOutput{
		Host:     report.Host,
		Started:  report.Started,
		Duration: report.Duration.String(),
		Skipped:  report.SkippedReason,
	}
	if report.DesignatedChecked {
		designated := report.Designated
		out.Designated = &designated
	}
	for _, kr := range report.Kinds {
		if out.Kinds == nil {
			out.Kinds = make(map[string]kindOutput)
		}
		ko := kindOutput{
			Alive:   kr.Alive,
			Dead:    kr.Dead,
			Skipped: kr.Skipped,
		}
		if kr.Orphans != nil && !kr.Orphans.IsEmpty() {
			ko.Orphans = kr.Orphans.Owners()
		}
		out.Kinds[string(kr.Kind)] = ko
	}
	for _, m := range report.Moves {
		out.Moves = append(out.Moves, moveOutput{
			Kind:     string(m.Kind),
			Resource: m.ResourceID,
			From:     m.From,
			To:       m.To,
			Error:    errorString(m.Err),
		})
	}
	for _, cleanup := range report.Cleanups {
		co := cleanupOutput{
			Kind:    string(cleanup.Kind),
			Removed: cleanup.Removed,
			Skipped: cleanup.Skipped,
		}
		for ns, err := range cleanup.Failed {
			if co.Failed == nil {
				co.Failed = make(map[string]string)
			}
			co.Failed[ns] = errorString(err)
		}
		out.Cleanups = append(out.Cleanups, co)
	}
	for _, r := range report.Restarts {
		out.Restarts = append(out.Restarts, restartOutput{
			Service: r.Service,
			Reason:  r.Reason,
			Error:   errorString(r.Err),
		})
	}
	for _, err := range report.Errors {
		out.Errors = append(out.Errors, err.Error())
	}
	return out
}
