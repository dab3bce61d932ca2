// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hostidentity_test

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/hostidentity"
)

type peersSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&peersSuite{})

type fakeCommander struct {
	args []string
	out  string
	err  error
}

func (f *fakeCommander) Output(_ context.Context, args ...string) (string, error) {
	f.args = args
	return f.out, f.err
}

const crmNodeList = `juju-gw-1(1000): member
	standby=off
juju-gw-0(1001): member
juju-gw-2(1002): member (offline)
juju-gw-3: normal
`

func (s *peersSuite) TestParseCRMNodes(c *gc.C) {
	c.Check(hostidentity.ParseCRMNodes(crmNodeList), jc.DeepEquals, []hostidentity.Peer{
		{Name: "juju-gw-1", Online: true},
		{Name: "juju-gw-0", Online: true},
		{Name: "juju-gw-3", Online: true},
	})
}

func (s *peersSuite) TestParseCRMNodesEmpty(c *gc.C) {
	c.Check(hostidentity.ParseCRMNodes("\n\n"), gc.HasLen, 0)
}

func (s *peersSuite) TestCRMPeers(c *gc.C) {
	commander := &fakeCommander{out: crmNodeList}
	peers, err := hostidentity.NewCRMPeers(commander).Peers(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(commander.args, jc.DeepEquals, []string{"crm", "node", "list"})
	c.Check(peers, gc.HasLen, 3)
	c.Check(peers[0].Name, gc.Equals, "juju-gw-1")
}

func (s *peersSuite) TestCRMPeersCommandFails(c *gc.C) {
	commander := &fakeCommander{err: errors.New("crm exited 1: not running")}
	_, err := hostidentity.NewCRMPeers(commander).Peers(context.Background())
	c.Assert(err, gc.ErrorMatches, "listing crm nodes: crm exited 1: not running")
}

func (s *peersSuite) TestCRMPeersAllOffline(c *gc.C) {
	commander := &fakeCommander{out: "juju-gw-0: member (offline)\n"}
	_, err := hostidentity.NewCRMPeers(commander).Peers(context.Background())
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *peersSuite) TestStaticPeersSortedWithSelf(c *gc.C) {
	peers, err := hostidentity.NewStaticPeers("juju-gw-1", []string{"juju-gw-2", " juju-gw-0 ", "", "juju-gw-2"}).Peers(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(peers, jc.DeepEquals, []hostidentity.Peer{
		{Name: "juju-gw-0", Online: true},
		{Name: "juju-gw-1", Online: true},
		{Name: "juju-gw-2", Online: true},
	})
}

func (s *peersSuite) TestNewPeerSource(c *gc.C) {
	source, err := hostidentity.NewPeerSource("none", "gw", nil, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(source, gc.FitsTypeOf, hostidentity.NoPeers{})

	source, err = hostidentity.NewPeerSource("static", "gw", []string{"other"}, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(source, gc.FitsTypeOf, &hostidentity.StaticPeers{})

	source, err = hostidentity.NewPeerSource("crm", "gw", nil, &fakeCommander{})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(source, gc.FitsTypeOf, &hostidentity.CRMPeers{})

	_, err = hostidentity.NewPeerSource("corosync", "gw", nil, nil)
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}
