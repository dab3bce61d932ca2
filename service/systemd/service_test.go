// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd_test

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/service/systemd"
)

type managerSuite struct {
	testing.IsolationSuite

	stub *testing.Stub
	dbus *StubDbusAPI
}

var _ = gc.Suite(&managerSuite{})

func (s *managerSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.stub = &testing.Stub{}
	s.dbus = &StubDbusAPI{Stub: s.stub, JobResult: "done"}
}

func (s *managerSuite) newManager() *systemd.Manager {
	return systemd.NewManager(func(context.Context) (systemd.DBusAPI, error) {
		s.stub.AddCall("newDBus")
		return s.dbus, s.stub.NextErr()
	})
}

func (s *managerSuite) TestUnitName(c *gc.C) {
	c.Check(systemd.UnitName("neutron-l3-agent"), gc.Equals, "neutron-l3-agent.service")
	c.Check(systemd.UnitName("ovs-vswitchd.service"), gc.Equals, "ovs-vswitchd.service")
}

func (s *managerSuite) TestRunning(c *gc.C) {
	s.dbus.AddUnit("neutron-l3-agent.service", "L3 agent", "active")

	running, err := s.newManager().Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(running, jc.IsTrue)
	s.stub.CheckCallNames(c, "newDBus", "ListUnitsByNames", "Close")
	s.stub.CheckCall(c, 1, "ListUnitsByNames", []string{"neutron-l3-agent.service"})
}

func (s *managerSuite) TestRunningInactive(c *gc.C) {
	s.dbus.AddUnit("neutron-l3-agent.service", "L3 agent", "failed")

	running, err := s.newManager().Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(running, jc.IsFalse)
}

func (s *managerSuite) TestRunningNotLoaded(c *gc.C) {
	s.dbus.AddUnit("neutron-l3-agent.service", "L3 agent", "error")

	running, err := s.newManager().Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(running, jc.IsFalse)
}

func (s *managerSuite) TestRunningQueryFails(c *gc.C) {
	s.stub.SetErrors(nil, errors.New("bus gone"))

	_, err := s.newManager().Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, gc.ErrorMatches, "querying unit neutron-l3-agent.service: bus gone")
	s.stub.CheckCallNames(c, "newDBus", "ListUnitsByNames", "Close")
}

func (s *managerSuite) TestRunningNoDBus(c *gc.C) {
	s.stub.SetErrors(errors.New("no socket"))

	_, err := s.newManager().Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, gc.ErrorMatches, "connecting to systemd: no socket")
}

func (s *managerSuite) TestRestart(c *gc.C) {
	err := s.newManager().Restart(context.Background(), "openvswitch-switch")
	c.Assert(err, jc.ErrorIsNil)
	s.stub.CheckCallNames(c, "newDBus", "RestartUnit", "Close")
	s.stub.CheckCall(c, 1, "RestartUnit", "openvswitch-switch.service", "replace")
}

func (s *managerSuite) TestRestartJobFailed(c *gc.C) {
	s.dbus.JobResult = "failed"

	err := s.newManager().Restart(context.Background(), "openvswitch-switch")
	c.Assert(err, gc.ErrorMatches, "restarting openvswitch-switch.service: job failed")
}

func (s *managerSuite) TestRestartRequestFails(c *gc.C) {
	s.stub.SetErrors(nil, errors.New("access denied"))

	err := s.newManager().Restart(context.Background(), "openvswitch-switch")
	c.Assert(err, gc.ErrorMatches, "dbus restart request for openvswitch-switch.service: access denied")
}

func (s *managerSuite) TestRestartCancelled(c *gc.C) {
	s.dbus.JobResult = ""
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	err := s.newManager().Restart(ctx, "openvswitch-switch")
	c.Assert(err, jc.ErrorIs, context.DeadlineExceeded)
}
