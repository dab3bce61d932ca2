// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import (
	"strings"

	"github.com/juju/errors"
)

// AgentType is the agent_type value Neutron reports for an agent.
type AgentType string

const (
	DHCPAgent         AgentType = "DHCP agent"
	L3Agent           AgentType = "L3 agent"
	LoadBalancerAgent AgentType = "Loadbalancerv2 agent"
)

// ResourceKind identifies the kind of resource an agent hosts.
type ResourceKind string

const (
	Network      ResourceKind = "network"
	Router       ResourceKind = "router"
	LoadBalancer ResourceKind = "loadbalancer"
)

// ReschedulableKinds are the kinds the monitor moves between agents, in the
// order a reconciliation cycle processes them.
var ReschedulableKinds = []ResourceKind{Network, Router}

// Validate returns an error if the kind is not known.
func (k ResourceKind) Validate() error {
	switch k {
	case Network, Router, LoadBalancer:
		return nil
	}
	return errors.NotValidf("resource kind %q", string(k))
}

// AgentType returns the type of agent hosting resources of this kind.
func (k ResourceKind) AgentType() AgentType {
	switch k {
	case Network:
		return DHCPAgent
	case Router:
		return L3Agent
	case LoadBalancer:
		return LoadBalancerAgent
	}
	return ""
}

// Agent is a point-in-time snapshot of a Neutron agent as reported by the
// control plane. Alive is heartbeat based and may lag reality.
type Agent struct {
	ID           string
	Type         AgentType
	Host         string
	Alive        bool
	AdminStateUp bool
}

// OnHost reports whether the agent runs on the named host. Both names are
// compared by their short form, so "node1" matches "node1.maas".
func (a Agent) OnHost(host string) bool {
	return ShortHostname(a.Host) == ShortHostname(host)
}

// Resource is a resource hosted by an agent. Only the attributes the
// monitor reports on are kept.
type Resource struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	HA     bool   `json:"ha,omitempty" yaml:"ha,omitempty"`
}

// ShortHostname strips any domain part from host.
func ShortHostname(host string) string {
	host = strings.TrimSpace(host)
	if i := strings.Index(host, "."); i >= 0 {
		return host[:i]
	}
	return host
}

// PartitionAgents splits agents into those reported alive and those
// reported dead, preserving their order.
func PartitionAgents(agents []Agent) (alive, dead []Agent) {
	for _, agent := range agents {
		if agent.Alive {
			alive = append(alive, agent)
		} else {
			dead = append(dead, agent)
		}
	}
	return alive, dead
}
