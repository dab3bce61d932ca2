// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hostidentity knows which host the monitor runs on and whether
// that host is the one allowed to move resources between agents.
package hostidentity

import (
	"context"
	"os"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

// Peer is one member of the gateway cluster.
type Peer struct {
	Name   string
	Online bool
}

// PeerSource returns the ordered cluster membership. The first online
// member is the designated actor. A source with no peers returns an
// empty slice.
type PeerSource interface {
	Peers(ctx context.Context) ([]Peer, error)
}

// Logger represents the methods used by the resolver to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Warningf(string, ...interface{})
}

// Config holds the dependencies of a Resolver.
type Config struct {
	// Hostname returns the local host name. It is called once.
	Hostname func() (string, error)
	Peers    PeerSource
	Logger   Logger
}

// Validate returns an error if the config cannot be used.
func (config Config) Validate() error {
	if config.Peers == nil {
		return errors.NotValidf("nil Peers")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Resolver answers host identity questions for the reconciler.
type Resolver struct {
	name   string
	peers  PeerSource
	logger Logger
}

// NewResolver resolves the local host name and returns a Resolver. A
// nil Hostname in config means os.Hostname.
func NewResolver(config Config) (*Resolver, error) {
	if config.Hostname == nil {
		config.Hostname = os.Hostname
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	name, err := config.Hostname()
	if err != nil {
		return nil, errors.Annotate(err, "resolving local hostname")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NotValidf("empty local hostname")
	}
	return &Resolver{
		name:   name,
		peers:  config.Peers,
		logger: config.Logger,
	}, nil
}

// LocalName returns the local host name as resolved at construction.
func (r *Resolver) LocalName() string {
	return r.name
}

// IsLocal reports whether host names this machine.
func (r *Resolver) IsLocal(host string) bool {
	return neutron.ShortHostname(host) == neutron.ShortHostname(r.name)
}

// IsDesignatedActor reports whether this host should perform
// reassignments. With no peers the host always acts. When the peers
// cannot be determined the host does not act and the error says why.
func (r *Resolver) IsDesignatedActor(ctx context.Context) (bool, error) {
	peers, err := r.peers.Peers(ctx)
	if err != nil {
		return false, errors.Annotate(err, "listing cluster peers")
	}
	if len(peers) == 0 {
		return true, nil
	}
	for _, peer := range peers {
		if !peer.Online {
			continue
		}
		if r.IsLocal(peer.Name) {
			return true, nil
		}
		r.logger.Debugf("only the first cluster member %q may reschedule", peer.Name)
		return false, nil
	}
	return false, errors.NotFoundf("online cluster member")
}

// Partners returns the short names of every cluster member, this host
// included. It is empty when the host has no peers.
func (r *Resolver) Partners(ctx context.Context) (set.Strings, error) {
	peers, err := r.peers.Peers(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "listing cluster peers")
	}
	partners := set.NewStrings()
	if len(peers) == 0 {
		return partners, nil
	}
	partners.Add(neutron.ShortHostname(r.name))
	for _, peer := range peers {
		partners.Add(neutron.ShortHostname(peer.Name))
	}
	return partners, nil
}
