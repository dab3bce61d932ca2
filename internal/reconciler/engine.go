// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package reconciler detects dead Neutron agents and moves their networks
// and routers onto live agents, cleaning up what the dead agents left on
// this host.
package reconciler

import (
	"context"
	"runtime/debug"

	"github.com/juju/clock"
	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/netns"
	controlplane "github.com/openstack-charmers/neutron-ha-monitor/internal/neutron"
	"github.com/openstack-charmers/neutron-ha-monitor/service"
)

// HostIdentity tells the engine who it is and whether it may act.
type HostIdentity interface {
	LocalName() string
	IsLocal(host string) bool
	IsDesignatedActor(ctx context.Context) (bool, error)
	// Partners returns the short names of the cluster members. Only
	// agents on these hosts receive moved resources. An empty set means
	// there is no cluster.
	Partners(ctx context.Context) (set.Strings, error)
}

// Cleaner removes stale local namespaces.
type Cleaner interface {
	Cleanup(ctx context.Context, kind neutron.ResourceKind, ids []string) (netns.CleanupResult, error)
	Sweep(ctx context.Context, kind neutron.ResourceKind) (netns.CleanupResult, error)
}

// ServiceSupervisor keeps local services running.
type ServiceSupervisor interface {
	EnsureRunning(ctx context.Context, names ...string) []service.Restart
	Restart(ctx context.Context, name, reason string) []service.Restart
}

// Logger represents the methods used by the engine to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
	Errorf(string, ...interface{})
}

// Config holds the dependencies of an Engine.
type Config struct {
	Hosts     HostIdentity
	Connector controlplane.Connector
	Cleaner   Cleaner
	Services  ServiceSupervisor

	// LocalServices are checked at the end of every cycle.
	LocalServices []string
	// VSwitchService is restarted after routers move, so the new L3
	// hosts build their tunnels.
	VSwitchService string

	// Metrics is optional.
	Metrics *Collector
	Clock   clock.Clock
	Logger  Logger
}

// Validate returns an error if the config cannot be used.
func (config Config) Validate() error {
	if config.Hosts == nil {
		return errors.NotValidf("nil Hosts")
	}
	if config.Connector == nil {
		return errors.NotValidf("nil Connector")
	}
	if config.Cleaner == nil {
		return errors.NotValidf("nil Cleaner")
	}
	if config.Services == nil {
		return errors.NotValidf("nil Services")
	}
	if config.VSwitchService == "" {
		return errors.NotValidf("empty VSwitchService")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Engine runs reconciliation cycles. It keeps no state between cycles.
type Engine struct {
	config Config
}

// NewEngine returns an Engine.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Engine{config: config}, nil
}

// RunOnce runs a single reconciliation cycle. It never fails; everything
// that went wrong is logged and recorded in the returned report.
func (e *Engine) RunOnce(ctx context.Context) Report {
	start := e.config.Clock.Now()
	report := Report{
		Started: start,
		Host:    e.config.Hosts.LocalName(),
	}

	e.guard(&report, "reconciling agents", func() {
		e.reconcile(ctx, &report)
	})
	e.guard(&report, "checking local services", func() {
		if len(e.config.LocalServices) > 0 {
			report.addRestarts(e.config.Services.EnsureRunning(ctx, e.config.LocalServices...))
		}
	})

	report.Duration = e.config.Clock.Now().Sub(start)
	if e.config.Metrics != nil {
		e.config.Metrics.Observe(report)
	}
	return report
}

// guard runs f, turning a panic into a report error.
func (e *Engine) guard(report *Report, what string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("panic while %s: %v", what, r)
			e.config.Logger.Errorf("%v\n%s", err, debug.Stack())
			report.addError(err)
		}
	}()
	f()
}

// kindState is what a cycle learned about one resource kind.
type kindState struct {
	kind    neutron.ResourceKind
	alive   []neutron.Agent
	orphans *neutron.OrphanSet
}

func (e *Engine) reconcile(ctx context.Context, report *Report) {
	logger := e.config.Logger

	cp, err := e.config.Connector.Connect(ctx)
	if err != nil {
		report.addError(err)
		if errors.Is(err, controlplane.ErrAuth) {
			logger.Warningf("unable to re-assign resources at this time: %v", err)
			report.SkippedReason = SkipAuth
			return
		}
		e.failSafe(ctx, report, err)
		return
	}

	var states []kindState
	for _, kind := range neutron.ReschedulableKinds {
		state, err := e.inspect(ctx, cp, kind, report)
		if errors.Is(err, controlplane.ErrAuth) {
			report.addError(err)
			logger.Warningf("unable to re-assign resources at this time: %v", err)
			e.config.Connector.Invalidate()
			report.SkippedReason = SkipAuth
			return
		} else if err != nil {
			report.addError(err)
			e.failSafe(ctx, report, err)
			return
		}
		states = append(states, state)
	}

	orphaned := 0
	for _, state := range states {
		orphaned += state.orphans.Len()
	}
	if orphaned == 0 {
		logger.Infof("no networks or routers hosted on failed agents")
		report.SkippedReason = SkipNoOrphans
		return
	}

	var movable []kindState
	for i, state := range states {
		if state.orphans.IsEmpty() {
			continue
		}
		if len(state.alive) == 0 {
			logger.Errorf("unable to relocate %d %ss: there are no alive %ss",
				state.orphans.Len(), state.kind, state.kind.AgentType())
			report.Kinds[i].Skipped = SkipNoAliveAgents
			continue
		}
		movable = append(movable, state)
	}
	if len(movable) == 0 {
		report.SkippedReason = SkipNoAliveAgents
		return
	}

	designated, err := e.config.Hosts.IsDesignatedActor(ctx)
	report.DesignatedChecked = true
	report.Designated = designated
	if err != nil {
		logger.Warningf("cannot determine designated actor: %v", err)
		report.addError(err)
	}
	if !designated {
		logger.Infof("leaving %d orphaned resources to the designated actor", orphaned)
		report.SkippedReason = SkipNotDesignated
		return
	}

	partners, err := e.config.Hosts.Partners(ctx)
	if err != nil {
		logger.Warningf("cannot list cluster members, moving onto any alive agent: %v", err)
		report.addError(err)
	}

	routerMoved := false
moves:
	for _, state := range movable {
		targets := partnerAgents(state.alive, partners)
		if len(targets) == 0 {
			logger.Errorf("unable to relocate %d %ss: no alive %ss on cluster members %v",
				state.orphans.Len(), state.kind, state.kind.AgentType(), partners.SortedValues())
			report.skipKind(state.kind, SkipNoAliveAgents)
			continue
		}
		for _, move := range neutron.PlanMoves(state.orphans, targets) {
			if ctx.Err() != nil {
				logger.Warningf("cycle cancelled, leaving remaining resources orphaned")
				report.SkippedReason = SkipCancelled
				report.addError(ctx.Err())
				break moves
			}
			logger.Infof("moving %s", move)
			err := cp.Reassign(ctx, move)
			report.Moves = append(report.Moves, MoveResult{Move: move, Err: err})
			if err != nil {
				logger.Errorf("cannot move %s: %v", move, err)
				report.addError(err)
				continue
			}
			if move.Kind == neutron.Router {
				routerMoved = true
			}
		}
	}

	if len(report.Moves) == 0 && report.SkippedReason == "" {
		report.SkippedReason = SkipNoAliveAgents
	}

	if routerMoved {
		// New L3 hosts only build their overlay tunnels when the virtual
		// switch starts.
		report.addRestarts(e.config.Services.Restart(ctx, e.config.VSwitchService, "routers reassigned"))
	}
}

// inspect lists the agents of one kind, records the orphans of its dead
// agents and cleans up after local agents. Only a failure to list the
// agents is returned.
func (e *Engine) inspect(
	ctx context.Context, cp controlplane.ControlPlane, kind neutron.ResourceKind, report *Report,
) (kindState, error) {
	logger := e.config.Logger

	agents, err := cp.ListAgents(ctx, kind.AgentType())
	if err != nil {
		return kindState{}, errors.Trace(err)
	}
	alive, dead := neutron.PartitionAgents(agents)
	state := kindState{
		kind:    kind,
		alive:   alive,
		orphans: neutron.NewOrphanSet(kind),
	}

	for _, agent := range dead {
		logger.Infof("%s %s on %s is down", kind.AgentType(), agent.ID, agent.Host)
		resources, err := cp.ListResources(ctx, agent.ID, kind)
		if err != nil {
			logger.Errorf("cannot list %ss on dead agent %s: %v", kind, agent.ID, err)
			report.addError(err)
			continue
		}
		ids := make([]string, len(resources))
		for i, res := range resources {
			ids[i] = res.ID
			state.orphans.Add(res.ID, agent.ID)
		}
		if len(ids) > 0 && e.config.Hosts.IsLocal(agent.Host) {
			logger.Infof("cleaning up %d %s namespaces left by local agent %s", len(ids), kind, agent.ID)
			report.addCleanup(e.config.Cleaner.Cleanup(ctx, kind, ids))
		}
	}

	for _, agent := range alive {
		logger.Debugf("alive %s: %s on %s", kind.AgentType(), agent.ID, agent.Host)
		if !e.config.Hosts.IsLocal(agent.Host) {
			continue
		}
		resources, err := cp.ListResources(ctx, agent.ID, kind)
		if err != nil {
			logger.Errorf("cannot list %ss on local agent %s: %v", kind, agent.ID, err)
			report.addError(err)
			continue
		}
		if len(resources) == 0 {
			logger.Infof("local %s %s hosts no %ss, sweeping stale namespaces", kind.AgentType(), agent.ID, kind)
			report.addCleanup(e.config.Cleaner.Sweep(ctx, kind))
		}
	}

	report.Kinds = append(report.Kinds, KindReport{
		Kind:    kind,
		Alive:   agentIDs(alive),
		Dead:    agentIDs(dead),
		Orphans: state.orphans,
	})
	return state, nil
}

// failSafe assumes the control plane is gone and every local namespace
// may be orphaned.
func (e *Engine) failSafe(ctx context.Context, report *Report, cause error) {
	e.config.Logger.Errorf("failed to get neutron agent list, cleaning up local resources: %v", cause)
	report.SkippedReason = SkipUnavailable
	for _, kind := range neutron.ReschedulableKinds {
		report.addCleanup(e.config.Cleaner.Sweep(ctx, kind))
	}
}

// partnerAgents returns the agents running on cluster members, keeping
// their order. Every agent qualifies when there is no cluster.
func partnerAgents(agents []neutron.Agent, partners set.Strings) []neutron.Agent {
	if partners.IsEmpty() {
		return agents
	}
	var result []neutron.Agent
	for _, agent := range agents {
		if partners.Contains(neutron.ShortHostname(agent.Host)) {
			result = append(result, agent)
		}
	}
	return result
}

func agentIDs(agents []neutron.Agent) []string {
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	return ids
}
