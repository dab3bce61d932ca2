// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package reconciler

import (
	"time"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/netns"
	"github.com/openstack-charmers/neutron-ha-monitor/service"
)

// Reasons a cycle stopped before reassigning anything.
const (
	SkipAuth          = "control plane authentication failed"
	SkipUnavailable   = "control plane unavailable"
	SkipNoOrphans     = "no resources hosted on dead agents"
	SkipNoAliveAgents = "no alive agents to take orphaned resources"
	SkipNotDesignated = "not the designated actor"
	SkipCancelled     = "cycle cancelled"
)

// KindReport describes what one cycle saw for one resource kind.
type KindReport struct {
	Kind neutron.ResourceKind
	// Alive and Dead hold agent ids in the order the control plane
	// listed them.
	Alive   []string
	Dead    []string
	Orphans *neutron.OrphanSet
	// Skipped says why the kind's orphans were not moved, if they
	// were not.
	Skipped string
}

// MoveResult is the outcome of one reassignment.
type MoveResult struct {
	neutron.Move
	Err error
}

// Report is the outcome of one reconciliation cycle.
type Report struct {
	Started  time.Time
	Duration time.Duration
	Host     string

	// DesignatedChecked is true when the cycle had to ask whether this
	// host may move resources; Designated holds the answer.
	DesignatedChecked bool
	Designated        bool

	// SkippedReason is set when the cycle stopped before step
	// reassignment; see the Skip constants.
	SkippedReason string

	Kinds    []KindReport
	Moves    []MoveResult
	Cleanups []netns.CleanupResult
	Restarts []service.Restart
	Errors   []error
}

// Kind returns the report for kind, if the cycle got as far as listing
// its agents.
func (r *Report) Kind(kind neutron.ResourceKind) (KindReport, bool) {
	for _, kr := range r.Kinds {
		if kr.Kind == kind {
			return kr, true
		}
	}
	return KindReport{}, false
}

// Failed reports whether anything went wrong during the cycle.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// MovesFor returns the moves made for kind.
func (r *Report) MovesFor(kind neutron.ResourceKind) []MoveResult {
	var moves []MoveResult
	for _, m := range r.Moves {
		if m.Kind == kind {
			moves = append(moves, m)
		}
	}
	return moves
}

func (r *Report) skipKind(kind neutron.ResourceKind, reason string) {
	for i := range r.Kinds {
		if r.Kinds[i].Kind == kind {
			r.Kinds[i].Skipped = reason
		}
	}
}

func (r *Report) addError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
}

func (r *Report) addCleanup(result netns.CleanupResult, err error) {
	r.addError(err)
	if err == nil {
		r.Cleanups = append(r.Cleanups, result)
		r.addError(result.Err())
	}
}

func (r *Report) addRestarts(restarts []service.Restart) {
	r.Restarts = append(r.Restarts, restarts...)
	for _, err := range service.Errors(restarts) {
		r.addError(err)
	}
}
