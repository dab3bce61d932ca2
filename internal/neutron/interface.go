// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import (
	"context"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

// ControlPlane is the part of the Neutron API the reconciler needs.
type ControlPlane interface {
	// ListAgents returns every agent of the given type. Failures satisfy
	// ErrConnectivity (or ErrAuth); an empty result is not an error.
	ListAgents(ctx context.Context, agentType neutron.AgentType) ([]neutron.Agent, error)

	// ListResources returns the resources of kind hosted by agentID.
	ListResources(ctx context.Context, agentID string, kind neutron.ResourceKind) ([]neutron.Resource, error)

	// Reassign moves a resource from one agent to another. Reissuing a
	// move that already happened is harmless.
	Reassign(ctx context.Context, move neutron.Move) error
}

// HostQuerier lists the agents running on a single host.
type HostQuerier interface {
	ListHostAgents(ctx context.Context, agentType neutron.AgentType, host string) ([]neutron.Agent, error)
	ListResources(ctx context.Context, agentID string, kind neutron.ResourceKind) ([]neutron.Resource, error)
}

// Connector hands out an authenticated control plane client.
type Connector interface {
	// Connect returns a client, authenticating if needed. Missing or
	// rejected credentials satisfy ErrAuth.
	Connect(ctx context.Context) (ControlPlane, error)

	// Invalidate drops any cached session, so the next Connect
	// authenticates again. It is called when the control plane rejects
	// a session that Connect handed out.
	Invalidate()
}
