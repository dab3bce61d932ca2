// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netns_test

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/netns"
)

type ovsSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&ovsSuite{})

type fakeCommander struct {
	calls [][]string
	out   string
	err   error
}

func (f *fakeCommander) Output(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.out, f.err
}

func (s *ovsSuite) TestBridgeForPort(c *gc.C) {
	commander := &fakeCommander{out: "br-int\n"}
	bridge, err := netns.NewVSwitchCtl(commander).BridgeForPort(context.Background(), "tap1")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(bridge, gc.Equals, "br-int")
	c.Check(commander.calls, jc.DeepEquals, [][]string{{"ovs-vsctl", "--timeout=10", "port-to-br", "tap1"}})
}

func (s *ovsSuite) TestBridgeForUnknownPort(c *gc.C) {
	commander := &fakeCommander{err: errors.New("ovs-vsctl exited 1: ovs-vsctl: no port named tap1")}
	bridge, err := netns.NewVSwitchCtl(commander).BridgeForPort(context.Background(), "tap1")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(bridge, gc.Equals, "")
}

func (s *ovsSuite) TestBridgeForPortFailure(c *gc.C) {
	commander := &fakeCommander{err: errors.New("ovs-vsctl exited 1: database connection failed")}
	_, err := netns.NewVSwitchCtl(commander).BridgeForPort(context.Background(), "tap1")
	c.Assert(err, gc.ErrorMatches, ".*database connection failed")
}

func (s *ovsSuite) TestDeletePort(c *gc.C) {
	commander := &fakeCommander{}
	err := netns.NewVSwitchCtl(commander).DeletePort(context.Background(), "br-int", "tap1")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(commander.calls, jc.DeepEquals, [][]string{
		{"ovs-vsctl", "--timeout=10", "--", "--if-exists", "del-port", "br-int", "tap1"},
	})
}
