// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hostidentity

import (
	"context"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// Peer source names accepted by NewPeerSource.
const (
	SourceNone   = "none"
	SourceStatic = "static"
	SourceCRM    = "crm"
)

// NewPeerSource returns the PeerSource named by source.
func NewPeerSource(source, self string, peers []string, commander Commander) (PeerSource, error) {
	switch source {
	case SourceNone, "":
		return NoPeers{}, nil
	case SourceStatic:
		return NewStaticPeers(self, peers), nil
	case SourceCRM:
		if commander == nil {
			return nil, errors.NotValidf("crm peer source without commander")
		}
		return NewCRMPeers(commander), nil
	}
	return nil, errors.NotValidf("peer source %q", source)
}

// NoPeers is a PeerSource for a host that acts alone.
type NoPeers struct{}

// Peers is part of the PeerSource interface.
func (NoPeers) Peers(context.Context) ([]Peer, error) {
	return nil, nil
}

// StaticPeers is a PeerSource over a fixed host list. Members are
// ordered by name, with the local host included, and all are online.
type StaticPeers struct {
	members []Peer
}

// NewStaticPeers returns a StaticPeers over self and peers. Duplicates
// and blank names are dropped.
func NewStaticPeers(self string, peers []string) *StaticPeers {
	names := set.NewStrings()
	for _, name := range append([]string{self}, peers...) {
		if name = strings.TrimSpace(name); name != "" {
			names.Add(name)
		}
	}
	sorted := names.SortedValues()
	members := make([]Peer, len(sorted))
	for i, name := range sorted {
		members[i] = Peer{Name: name, Online: true}
	}
	return &StaticPeers{members: members}
}

// Peers is part of the PeerSource interface.
func (s *StaticPeers) Peers(context.Context) ([]Peer, error) {
	result := make([]Peer, len(s.members))
	copy(result, s.members)
	return result, nil
}

// Commander runs a command and returns its output.
type Commander interface {
	Output(ctx context.Context, args ...string) (string, error)
}

// CRMPeers reads the membership of the pacemaker cluster.
type CRMPeers struct {
	commander Commander
}

// NewCRMPeers returns a PeerSource backed by "crm node list".
func NewCRMPeers(commander Commander) *CRMPeers {
	return &CRMPeers{commander: commander}
}

// Peers is part of the PeerSource interface. Offline nodes are left out,
// and an empty cluster is an error.
func (c *CRMPeers) Peers(ctx context.Context) ([]Peer, error) {
	out, err := c.commander.Output(ctx, "crm", "node", "list")
	if err != nil {
		return nil, errors.Annotate(err, "listing crm nodes")
	}
	peers := ParseCRMNodes(out)
	if len(peers) == 0 {
		return nil, errors.NotFoundf("crm nodes")
	}
	return peers, nil
}

// ParseCRMNodes extracts the online node names from "crm node list"
// output, keeping the order pacemaker reports them in.
func ParseCRMNodes(out string) []Peer {
	var peers []Peer
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" || strings.Contains(line, "offline") {
			continue
		}
		// Node attributes are indented under their node.
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		name := strings.SplitN(line, ":", 2)[0]
		name = strings.TrimSpace(strings.SplitN(name, "(", 2)[0])
		if name == "" {
			continue
		}
		peers = append(peers, Peer{Name: name, Online: true})
	}
	return peers
}
