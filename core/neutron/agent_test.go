// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

type agentSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&agentSuite{})

func (s *agentSuite) TestPartitionAgents(c *gc.C) {
	agents := []neutron.Agent{
		{ID: "a1", Alive: false},
		{ID: "a2", Alive: true},
		{ID: "a3", Alive: false},
		{ID: "a4", Alive: true},
	}
	alive, dead := neutron.PartitionAgents(agents)
	c.Check(alive, jc.DeepEquals, []neutron.Agent{agents[1], agents[3]})
	c.Check(dead, jc.DeepEquals, []neutron.Agent{agents[0], agents[2]})
}

func (s *agentSuite) TestOnHostComparesShortNames(c *gc.C) {
	agent := neutron.Agent{Host: "node1.maas"}
	c.Check(agent.OnHost("node1"), jc.IsTrue)
	c.Check(agent.OnHost("node1.other"), jc.IsTrue)
	c.Check(agent.OnHost(" node1 "), jc.IsTrue)
	c.Check(agent.OnHost("node10"), jc.IsFalse)
}

func (s *agentSuite) TestKindAgentType(c *gc.C) {
	c.Check(neutron.Network.AgentType(), gc.Equals, neutron.DHCPAgent)
	c.Check(neutron.Router.AgentType(), gc.Equals, neutron.L3Agent)
	c.Check(neutron.LoadBalancer.AgentType(), gc.Equals, neutron.LoadBalancerAgent)
}

func (s *agentSuite) TestKindValidate(c *gc.C) {
	c.Check(neutron.Router.Validate(), jc.ErrorIsNil)
	err := neutron.ResourceKind("subnet").Validate()
	c.Check(errors.Is(err, errors.NotValid), jc.IsTrue)
}

func (s *agentSuite) TestNamespaceNames(c *gc.C) {
	c.Check(neutron.NamespaceName(neutron.Network, "n1"), gc.Equals, "qdhcp-n1")
	c.Check(neutron.NamespaceName(neutron.Router, "r1"), gc.Equals, "qrouter-r1")
	c.Check(neutron.NamespaceName(neutron.LoadBalancer, "lb"), gc.Equals, "")

	id, ok := neutron.ResourceIDFromNamespace(neutron.Router, "qrouter-r1")
	c.Check(ok, jc.IsTrue)
	c.Check(id, gc.Equals, "r1")
	_, ok = neutron.ResourceIDFromNamespace(neutron.Router, "qdhcp-n1")
	c.Check(ok, jc.IsFalse)
	_, ok = neutron.ResourceIDFromNamespace(neutron.Network, "qdhcp-")
	c.Check(ok, jc.IsFalse)
}
