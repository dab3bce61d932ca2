// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hostidentity_test

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/hostidentity"
)

type resolverSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&resolverSuite{})

type fakePeers struct {
	peers []hostidentity.Peer
	err   error
	calls int
}

func (f *fakePeers) Peers(context.Context) ([]hostidentity.Peer, error) {
	f.calls++
	return f.peers, f.err
}

func (s *resolverSuite) newResolver(c *gc.C, hostname string, peers hostidentity.PeerSource) *hostidentity.Resolver {
	r, err := hostidentity.NewResolver(hostidentity.Config{
		Hostname: func() (string, error) { return hostname, nil },
		Peers:    peers,
		Logger:   loggo.GetLogger("test"),
	})
	c.Assert(err, jc.ErrorIsNil)
	return r
}

func (s *resolverSuite) TestHostnameResolvedOnce(c *gc.C) {
	calls := 0
	r, err := hostidentity.NewResolver(hostidentity.Config{
		Hostname: func() (string, error) {
			calls++
			return "juju-gw-0\n", nil
		},
		Peers:  hostidentity.NoPeers{},
		Logger: loggo.GetLogger("test"),
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.LocalName(), gc.Equals, "juju-gw-0")
	c.Check(r.LocalName(), gc.Equals, "juju-gw-0")
	c.Check(calls, gc.Equals, 1)
}

func (s *resolverSuite) TestHostnameFailure(c *gc.C) {
	_, err := hostidentity.NewResolver(hostidentity.Config{
		Hostname: func() (string, error) { return "", errors.New("uname failed") },
		Peers:    hostidentity.NoPeers{},
		Logger:   loggo.GetLogger("test"),
	})
	c.Assert(err, gc.ErrorMatches, "resolving local hostname: uname failed")
}

func (s *resolverSuite) TestValidate(c *gc.C) {
	_, err := hostidentity.NewResolver(hostidentity.Config{
		Logger: loggo.GetLogger("test"),
	})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *resolverSuite) TestIsLocalComparesShortNames(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0.maas", hostidentity.NoPeers{})
	c.Check(r.IsLocal("juju-gw-0"), jc.IsTrue)
	c.Check(r.IsLocal("juju-gw-0.other"), jc.IsTrue)
	c.Check(r.IsLocal(" juju-gw-0 "), jc.IsTrue)
	c.Check(r.IsLocal("juju-gw-1"), jc.IsFalse)
}

func (s *resolverSuite) TestNoPeersAlwaysDesignated(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0", hostidentity.NoPeers{})
	designated, err := r.IsDesignatedActor(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(designated, jc.IsTrue)
}

func (s *resolverSuite) TestFirstOnlineMemberIsDesignated(c *gc.C) {
	peers := &fakePeers{peers: []hostidentity.Peer{
		{Name: "juju-gw-2", Online: false},
		{Name: "juju-gw-0", Online: true},
		{Name: "juju-gw-1", Online: true},
	}}

	r := s.newResolver(c, "juju-gw-0", peers)
	designated, err := r.IsDesignatedActor(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(designated, jc.IsTrue)

	r = s.newResolver(c, "juju-gw-1", peers)
	designated, err = r.IsDesignatedActor(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(designated, jc.IsFalse)
}

func (s *resolverSuite) TestPeerLookupFailureMeansNotDesignated(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0", &fakePeers{err: errors.New("crm not installed")})
	designated, err := r.IsDesignatedActor(context.Background())
	c.Assert(err, gc.ErrorMatches, "listing cluster peers: crm not installed")
	c.Check(designated, jc.IsFalse)
}

func (s *resolverSuite) TestNoOnlineMember(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0", &fakePeers{peers: []hostidentity.Peer{
		{Name: "juju-gw-0", Online: false},
	}})
	designated, err := r.IsDesignatedActor(context.Background())
	c.Assert(err, jc.ErrorIs, errors.NotFound)
	c.Check(designated, jc.IsFalse)
}

func (s *resolverSuite) TestPartnersWithoutPeers(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0.maas", hostidentity.NoPeers{})
	partners, err := r.Partners(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(partners.IsEmpty(), jc.IsTrue)
}

func (s *resolverSuite) TestPartnersIncludeSelfAndOfflinePeers(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0.maas", &fakePeers{peers: []hostidentity.Peer{
		{Name: "juju-gw-1.maas", Online: true},
		{Name: "juju-gw-2", Online: false},
	}})
	partners, err := r.Partners(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(partners.SortedValues(), jc.DeepEquals, []string{"juju-gw-0", "juju-gw-1", "juju-gw-2"})
}

func (s *resolverSuite) TestPartnersFailure(c *gc.C) {
	r := s.newResolver(c, "juju-gw-0", &fakePeers{err: errors.New("crm: not found")})
	_, err := r.Partners(context.Background())
	c.Assert(err, gc.ErrorMatches, "listing cluster peers: crm: not found")
}
