// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"context"
	"fmt"

	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

// resourceAttributes are the attributes shown for each kind.
var resourceAttributes = map[neutron.ResourceKind][]string{
	neutron.Router:       {"id", "status", "ha", "name"},
	neutron.Network:      {"id", "status", "name"},
	neutron.LoadBalancer: {"id", "status", "name"},
}

// ShowResourcesCommand lists the resources hosted by this host's agents
// of one kind.
type ShowResourcesCommand struct {
	cmd.CommandBase
	configFlags

	factory Factory
	kind    neutron.ResourceKind
	name    string
	out     cmd.Output
}

// NewShowRoutersCommand returns the show-routers command.
func NewShowRoutersCommand(factory Factory) cmd.Command {
	return &ShowResourcesCommand{factory: factory, kind: neutron.Router, name: "show-routers"}
}

// NewShowDHCPNetworksCommand returns the show-dhcp-networks command.
func NewShowDHCPNetworksCommand(factory Factory) cmd.Command {
	return &ShowResourcesCommand{factory: factory, kind: neutron.Network, name: "show-dhcp-networks"}
}

// NewShowLoadBalancersCommand returns the show-loadbalancers command.
func NewShowLoadBalancersCommand(factory Factory) cmd.Command {
	return &ShowResourcesCommand{factory: factory, kind: neutron.LoadBalancer, name: "show-loadbalancers"}
}

// Info implements cmd.Command.
func (c *ShowResourcesCommand) Info() *cmd.Info {
	agentType := c.kind.AgentType()
	return &cmd.Info{
		Name:    c.name,
		Purpose: fmt.Sprintf("List the %ss hosted by this host's %ss.", c.kind, agentType),
		Doc: fmt.Sprintf(`
%s asks the control plane for the %ss running on this host and prints
the %ss they host, keyed by id.
`, c.name, agentType, c.kind),
	}
}

// SetFlags implements cmd.Command.
func (c *ShowResourcesCommand) SetFlags(f *gnuflag.FlagSet) {
	c.configFlags.SetFlags(f)
	c.out.AddFlags(f, "yaml", map[string]cmd.Formatter{
		"yaml": cmd.FormatYaml,
		"json": cmd.FormatJson,
	})
}

// Init implements cmd.Command.
func (c *ShowResourcesCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *ShowResourcesCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.load()
	if err != nil {
		return errors.Trace(err)
	}
	host, err := c.factory.Hostname()
	if err != nil {
		return errors.Annotate(err, "resolving local hostname")
	}

	stdctx := context.Background()
	querier, err := c.factory.NewQuerier(stdctx, cfg)
	if err != nil {
		return errors.Trace(err)
	}
	agents, err := querier.ListHostAgents(stdctx, c.kind.AgentType(), host)
	if err != nil {
		return errors.Trace(err)
	}

	result := make(map[string]map[string]interface{})
	for _, agent := range agents {
		resources, err := querier.ListResources(stdctx, agent.ID, c.kind)
		if err != nil {
			return errors.Trace(err)
		}
		for _, res := range resources {
			result[res.ID] = selectAttributes(res, resourceAttributes[c.kind])
		}
	}
	return c.out.Write(ctx, result)
}

func selectAttributes(res neutron.Resource, attributes []string) map[string]interface{} {
	values := make(map[string]interface{}, len(attributes))
	for _, attr := range attributes {
		switch attr {
		case "id":
			values[attr] = res.ID
		case "status":
			values[attr] = res.Status
		case "ha":
			values[attr] = res.HA
		case "name":
			values[attr] = res.Name
		}
	}
	return values
}
