// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import "fmt"

// OrphanSet maps resources of a single kind to the dead agent that used to
// host them. Iteration follows the order resources were discovered in.
type OrphanSet struct {
	kind   ResourceKind
	ids    []string
	owners map[string]string
}

// NewOrphanSet returns an empty set for the given kind.
func NewOrphanSet(kind ResourceKind) *OrphanSet {
	return &OrphanSet{
		kind:   kind,
		owners: make(map[string]string),
	}
}

// Kind returns the resource kind held in the set.
func (s *OrphanSet) Kind() ResourceKind {
	return s.kind
}

// Add records that resourceID was hosted by the dead agent agentID. A
// resource already in the set keeps its first owner; Add reports whether
// the resource was newly added.
func (s *OrphanSet) Add(resourceID, agentID string) bool {
	if _, ok := s.owners[resourceID]; ok {
		return false
	}
	s.owners[resourceID] = agentID
	s.ids = append(s.ids, resourceID)
	return true
}

// Owner returns the dead agent that hosted resourceID.
func (s *OrphanSet) Owner(resourceID string) (string, bool) {
	owner, ok := s.owners[resourceID]
	return owner, ok
}

// IDs returns the orphaned resource ids in discovery order.
func (s *OrphanSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of orphaned resources.
func (s *OrphanSet) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether the set holds no resources.
func (s *OrphanSet) IsEmpty() bool {
	return len(s.ids) == 0
}

// Owners returns a copy of the resource to dead agent mapping.
func (s *OrphanSet) Owners() map[string]string {
	out := make(map[string]string, len(s.owners))
	for k, v := range s.owners {
		out[k] = v
	}
	return out
}

// Move describes reassigning one resource from a dead agent to a live one.
type Move struct {
	Kind       ResourceKind
	ResourceID string
	From       string
	To         string
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return fmt.Sprintf("%s %s from %s to %s", m.Kind, m.ResourceID, m.From, m.To)
}

// PlanMoves assigns every orphan to a live agent, round-robin over the
// alive agents in the order given, and the orphans in discovery order.
// No moves are planned when there are no live agents.
func PlanMoves(orphans *OrphanSet, alive []Agent) []Move {
	if orphans == nil || orphans.IsEmpty() || len(alive) == 0 {
		return nil
	}
	moves := make([]Move, 0, orphans.Len())
	for i, id := range orphans.ids {
		moves = append(moves, Move{
			Kind:       orphans.kind,
			ResourceID: id,
			From:       orphans.owners[id],
			To:         alive[i%len(alive)].ID,
		})
	}
	return moves
}
