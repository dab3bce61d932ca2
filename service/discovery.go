// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/errors"

	"github.com/openstack-charmers/neutron-ha-monitor/service/systemd"
)

// These are the names of the supported init systems.
const (
	InitSystemSystemd = "systemd"
	InitSystemSysV    = "sysvinit"
)

// Commander runs a command and returns its output.
type Commander interface {
	Output(ctx context.Context, args ...string) (string, error)
}

type discoveryCheck struct {
	name      string
	isRunning func() bool
}

var discoveryFuncs = []discoveryCheck{
	{InitSystemSystemd, systemd.Available},
}

// DiscoverInitSystem returns the name of the local init system. Hosts
// without systemd fall back to the service(8) wrapper.
func DiscoverInitSystem() string {
	for _, check := range discoveryFuncs {
		if check.isRunning() {
			return check.name
		}
	}
	return InitSystemSysV
}

// NewManager returns a Manager for the named init system.
func NewManager(initSystem string, commander Commander) (Manager, error) {
	switch initSystem {
	case InitSystemSystemd:
		return systemd.NewManager(systemd.NewDBusAPI), nil
	case InitSystemSysV:
		if commander == nil {
			return nil, errors.NotValidf("nil commander")
		}
		return NewCommandManager(commander), nil
	}
	return nil, errors.NotSupportedf("init system %q", initSystem)
}

// CommandManager implements Manager with the service(8) command.
type CommandManager struct {
	commander Commander
}

// NewCommandManager returns a CommandManager running commands through
// commander.
func NewCommandManager(commander Commander) *CommandManager {
	return &CommandManager{commander: commander}
}

// Running is part of the Manager interface. A non-zero exit from the
// status command means the service is stopped.
func (m *CommandManager) Running(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Trace(err)
	}
	_, err := m.commander.Output(ctx, "service", name, "status")
	return err == nil, nil
}

// Restart is part of the Manager interface.
func (m *CommandManager) Restart(ctx context.Context, name string) error {
	_, err := m.commander.Output(ctx, "service", name, "restart")
	return errors.Trace(err)
}
