// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import (
	"context"
	"net/http"
	"time"

	"github.com/gophercloud/gophercloud"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/agents"
	"github.com/gophercloud/gophercloud/pagination"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

const (
	defaultScheduleAttempts = 3
	defaultScheduleDelay    = time.Second
)

// Logger represents the methods used by the client to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
}

// Client talks to the Neutron agent scheduler API.
type Client struct {
	network *gophercloud.ServiceClient
	clock   clock.Clock
	logger  Logger

	scheduleAttempts int
	scheduleDelay    time.Duration
}

var (
	_ ControlPlane = (*Client)(nil)
	_ HostQuerier  = (*Client)(nil)
)

// NewClient wraps an authenticated network service client.
func NewClient(network *gophercloud.ServiceClient, clk clock.Clock, logger Logger) *Client {
	return &Client{
		network:          network,
		clock:            clk,
		logger:           logger,
		scheduleAttempts: defaultScheduleAttempts,
		scheduleDelay:    defaultScheduleDelay,
	}
}

// ListAgents is part of the ControlPlane interface.
func (c *Client) ListAgents(ctx context.Context, agentType neutron.AgentType) ([]neutron.Agent, error) {
	return c.listAgents(ctx, agents.ListOpts{AgentType: string(agentType)})
}

// ListHostAgents is part of the HostQuerier interface.
func (c *Client) ListHostAgents(ctx context.Context, agentType neutron.AgentType, host string) ([]neutron.Agent, error) {
	return c.listAgents(ctx, agents.ListOpts{AgentType: string(agentType), Host: host})
}

func (c *Client) listAgents(ctx context.Context, opts agents.ListOpts) ([]neutron.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithType(err, ErrConnectivity)
	}
	var result []neutron.Agent
	err := agents.List(c.network, opts).EachPage(func(page pagination.Page) (bool, error) {
		found, err := agents.ExtractAgents(page)
		if err != nil {
			return false, err
		}
		for _, a := range found {
			result = append(result, neutron.Agent{
				ID:           a.ID,
				Type:         neutron.AgentType(a.AgentType),
				Host:         a.Host,
				Alive:        a.Alive,
				AdminStateUp: a.AdminStateUp,
			})
		}
		return true, nil
	})
	if err != nil {
		return nil, queryError(err, "listing %q agents", opts.AgentType)
	}
	return result, nil
}

// ListResources is part of the ControlPlane interface.
func (c *Client) ListResources(ctx context.Context, agentID string, kind neutron.ResourceKind) ([]neutron.Resource, error) {
	if err := kind.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithType(err, ErrConnectivity)
	}

	switch kind {
	case neutron.Network:
		nets, err := agents.ListDHCPNetworks(c.network, agentID).Extract()
		if err != nil {
			return nil, queryError(err, "listing networks on DHCP agent %q", agentID)
		}
		result := make([]neutron.Resource, len(nets))
		for i, n := range nets {
			result[i] = neutron.Resource{ID: n.ID, Name: n.Name, Status: n.Status}
		}
		return result, nil
	case neutron.Router:
		var body struct {
			Routers []hostedResource `json:"routers"`
		}
		if err := c.get(&body, "agents", agentID, "l3-routers"); err != nil {
			return nil, queryError(err, "listing routers on L3 agent %q", agentID)
		}
		return toResources(body.Routers), nil
	default:
		var body struct {
			LoadBalancers []hostedResource `json:"loadbalancers"`
		}
		if err := c.get(&body, "agents", agentID, "loadbalancers"); err != nil {
			return nil, queryError(err, "listing load balancers on agent %q", agentID)
		}
		return toResources(body.LoadBalancers), nil
	}
}

// hostedResource is the subset of router and load balancer attributes the
// monitor reports. The typed gophercloud structs drop the "ha" flag.
type hostedResource struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	ProvisioningStatus string `json:"provisioning_status"`
	HA                 bool   `json:"ha"`
}

func toResources(in []hostedResource) []neutron.Resource {
	result := make([]neutron.Resource, len(in))
	for i, r := range in {
		status := r.Status
		if status == "" {
			status = r.ProvisioningStatus
		}
		result[i] = neutron.Resource{ID: r.ID, Name: r.Name, Status: status, HA: r.HA}
	}
	return result
}

func (c *Client) get(body interface{}, parts ...string) error {
	_, err := c.network.Get(c.network.ServiceURL(parts...), body, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	})
	return err
}

// Reassign is part of the ControlPlane interface. The resource is first
// removed from the old agent and then added to the new one; the operation
// is not atomic, so the resource may briefly be hosted by neither.
func (c *Client) Reassign(ctx context.Context, move neutron.Move) error {
	if move.From == move.To {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.WithType(err, ErrReassign)
	}
	if err := c.remove(move); err != nil {
		return errors.WithType(errors.Annotatef(err, "removing %s %s from agent %s", move.Kind, move.ResourceID, move.From), ErrReassign)
	}

	err := retry.Call(retry.CallArgs{
		Func: func() error { return c.schedule(move) },
		IsFatalError: func(err error) bool {
			return isAuthFailure(err) || isStatus(err, http.StatusBadRequest, http.StatusNotFound)
		},
		NotifyFunc: func(lastErr error, attempt int) {
			c.logger.Warningf("attempt %d scheduling %s %s on agent %s: %v", attempt, move.Kind, move.ResourceID, move.To, lastErr)
		},
		Attempts: c.scheduleAttempts,
		Delay:    c.scheduleDelay,
		Clock:    c.clock,
		Stop:     ctx.Done(),
	})
	if err != nil {
		return errors.WithType(errors.Annotatef(retry.LastError(err), "adding %s %s to agent %s", move.Kind, move.ResourceID, move.To), ErrReassign)
	}
	return nil
}

func (c *Client) remove(move neutron.Move) error {
	var err error
	switch move.Kind {
	case neutron.Network:
		err = agents.RemoveDHCPNetwork(c.network, move.From, move.ResourceID).ExtractErr()
	case neutron.Router:
		err = agents.RemoveL3Router(c.network, move.From, move.ResourceID).ExtractErr()
	default:
		return errors.NotSupportedf("moving %s resources", move.Kind)
	}
	if isStatus(err, http.StatusNotFound, http.StatusConflict) {
		// Already gone from the dead agent.
		c.logger.Debugf("%s %s not hosted by agent %s: %v", move.Kind, move.ResourceID, move.From, err)
		return nil
	}
	return err
}

func (c *Client) schedule(move neutron.Move) error {
	var err error
	switch move.Kind {
	case neutron.Network:
		err = agents.ScheduleDHCPNetwork(c.network, move.To, agents.ScheduleDHCPNetworkOpts{
			NetworkID: move.ResourceID,
		}).ExtractErr()
	case neutron.Router:
		err = agents.ScheduleL3Router(c.network, move.To, agents.ScheduleL3RouterOpts{
			RouterID: move.ResourceID,
		}).ExtractErr()
	default:
		return errors.NotSupportedf("moving %s resources", move.Kind)
	}
	if isStatus(err, http.StatusConflict) {
		// Already hosted by the target agent.
		c.logger.Debugf("%s %s already hosted by agent %s", move.Kind, move.ResourceID, move.To)
		return nil
	}
	return err
}
