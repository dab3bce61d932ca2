// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/errors"
)

// ErrRestart is returned when a service could not be restarted.
const ErrRestart = errors.ConstError("service restart failed")

// Well known gateway services.
const (
	VSwitch           = "openvswitch-switch"
	VSwitchAgent      = "neutron-openvswitch-agent"
	DHCPAgent         = "neutron-dhcp-agent"
	MetadataAgent     = "neutron-metadata-agent"
	L3Agent           = "neutron-l3-agent"
	LoadBalancerAgent = "neutron-lbaasv2-agent"
)

// DefaultDependents lists, for each service, the services that must be
// restarted after it. A fresh virtual switch drops the agent's flows,
// and the L3 agent loses its metadata proxies when the metadata agent
// goes away.
var DefaultDependents = map[string][]string{
	VSwitch:       {VSwitchAgent},
	MetadataAgent: {L3Agent},
}

// Manager queries and restarts services in the local init system.
type Manager interface {
	// Running reports whether the named service is active.
	Running(ctx context.Context, name string) (bool, error)

	// Restart restarts the named service and waits for the job to
	// finish.
	Restart(ctx context.Context, name string) error
}

// Restart records one restart attempt.
type Restart struct {
	Service string
	// Reason is why the restart happened: "stopped", "dependent of X" or
	// a caller supplied reason.
	Reason string
	Err    error
}
