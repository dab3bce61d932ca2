// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v4"

	"github.com/openstack-charmers/neutron-ha-monitor/cmd/neutron-ha-monitor/commands"
)

const doc = `
neutron-ha-monitor watches the Neutron DHCP and L3 agents from a network
gateway host and moves the networks and routers of dead agents onto live
ones.
`

func main() {
	os.Exit(Main(os.Args))
}

// Main runs the command named by args and returns the exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(NewSuperCommand(commands.DefaultFactory{}), ctx, args[1:])
}

// NewSuperCommand returns the top level command with every subcommand
// registered.
func NewSuperCommand(factory commands.Factory) cmd.Command {
	super := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "neutron-ha-monitor",
		Purpose: "Reschedule Neutron resources away from dead agents.",
		Doc:     doc,
	})
	super.Register(commands.NewRunCommand(factory))
	super.Register(commands.NewReconcileCommand(factory))
	super.Register(commands.NewShowRoutersCommand(factory))
	super.Register(commands.NewShowDHCPNetworksCommand(factory))
	super.Register(commands.NewShowLoadBalancersCommand(factory))
	super.Register(commands.NewCacheEnvCommand())
	return super
}
