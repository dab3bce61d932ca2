// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service_test

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/service"
	"github.com/openstack-charmers/neutron-ha-monitor/service/mocks"
)

type supervisorSuite struct {
	testing.IsolationSuite

	manager *mocks.MockManager
}

var _ = gc.Suite(&supervisorSuite{})

func (s *supervisorSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.manager = mocks.NewMockManager(ctrl)
	return ctrl
}

func (s *supervisorSuite) newSupervisor(c *gc.C) *service.Supervisor {
	supervisor, err := service.NewSupervisor(service.SupervisorConfig{
		Manager: s.manager,
		Logger:  loggo.GetLogger("test"),
	})
	c.Assert(err, jc.ErrorIsNil)
	return supervisor
}

func (s *supervisorSuite) TestValidate(c *gc.C) {
	_, err := service.NewSupervisor(service.SupervisorConfig{Logger: loggo.GetLogger("test")})
	c.Assert(err, gc.ErrorMatches, "nil Manager not valid")

	_, err = service.NewSupervisor(service.SupervisorConfig{
		Manager:    service.NewCommandManager(nil),
		Dependents: map[string][]string{"a": {"a"}},
		Logger:     loggo.GetLogger("test"),
	})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *supervisorSuite) TestEnsureRunningAllRunning(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.manager.EXPECT().Running(gomock.Any(), "openvswitch-switch").Return(true, nil)
	s.manager.EXPECT().Running(gomock.Any(), "neutron-dhcp-agent").Return(true, nil)

	restarts := s.newSupervisor(c).EnsureRunning(context.Background(), "openvswitch-switch", "neutron-dhcp-agent")
	c.Check(restarts, gc.HasLen, 0)
}

func (s *supervisorSuite) TestEnsureRunningRestartsDependents(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.manager.EXPECT().Running(gomock.Any(), "openvswitch-switch").Return(false, nil),
		s.manager.EXPECT().Restart(gomock.Any(), "openvswitch-switch").Return(nil),
		s.manager.EXPECT().Restart(gomock.Any(), "neutron-openvswitch-agent").Return(nil),
		s.manager.EXPECT().Running(gomock.Any(), "neutron-metadata-agent").Return(false, nil),
		s.manager.EXPECT().Restart(gomock.Any(), "neutron-metadata-agent").Return(nil),
		s.manager.EXPECT().Restart(gomock.Any(), "neutron-l3-agent").Return(nil),
		s.manager.EXPECT().Running(gomock.Any(), "neutron-dhcp-agent").Return(false, nil),
		s.manager.EXPECT().Restart(gomock.Any(), "neutron-dhcp-agent").Return(nil),
	)

	restarts := s.newSupervisor(c).EnsureRunning(context.Background(),
		"openvswitch-switch", "neutron-metadata-agent", "neutron-dhcp-agent")
	c.Check(restarts, jc.DeepEquals, []service.Restart{
		{Service: "openvswitch-switch", Reason: "stopped"},
		{Service: "neutron-openvswitch-agent", Reason: "dependent of openvswitch-switch"},
		{Service: "neutron-metadata-agent", Reason: "stopped"},
		{Service: "neutron-l3-agent", Reason: "dependent of neutron-metadata-agent"},
		{Service: "neutron-dhcp-agent", Reason: "stopped"},
	})
	c.Check(service.Errors(restarts), gc.HasLen, 0)
}

func (s *supervisorSuite) TestEnsureRunningQueryFailureRestarts(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.manager.EXPECT().Running(gomock.Any(), "neutron-dhcp-agent").Return(false, errors.New("bus gone"))
	s.manager.EXPECT().Restart(gomock.Any(), "neutron-dhcp-agent").Return(nil)

	restarts := s.newSupervisor(c).EnsureRunning(context.Background(), "neutron-dhcp-agent")
	c.Check(restarts, gc.HasLen, 1)
}

func (s *supervisorSuite) TestEnsureRunningFailureSkipsDependentsAndContinues(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.manager.EXPECT().Running(gomock.Any(), "openvswitch-switch").Return(false, nil)
	s.manager.EXPECT().Restart(gomock.Any(), "openvswitch-switch").Return(errors.New("unit masked"))
	s.manager.EXPECT().Running(gomock.Any(), "neutron-dhcp-agent").Return(false, nil)
	s.manager.EXPECT().Restart(gomock.Any(), "neutron-dhcp-agent").Return(nil)

	restarts := s.newSupervisor(c).EnsureRunning(context.Background(), "openvswitch-switch", "neutron-dhcp-agent")
	c.Assert(restarts, gc.HasLen, 2)
	c.Check(restarts[0].Err, jc.ErrorIs, service.ErrRestart)
	c.Check(restarts[0].Err, gc.ErrorMatches, "restarting openvswitch-switch: unit masked")
	c.Check(restarts[1].Err, jc.ErrorIsNil)
	c.Check(service.Errors(restarts), gc.HasLen, 1)
}

func (s *supervisorSuite) TestRestartWithDependents(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.manager.EXPECT().Restart(gomock.Any(), "openvswitch-switch").Return(nil)
	s.manager.EXPECT().Restart(gomock.Any(), "neutron-openvswitch-agent").Return(nil)

	restarts := s.newSupervisor(c).Restart(context.Background(), "openvswitch-switch", "routers moved")
	c.Check(restarts, jc.DeepEquals, []service.Restart{
		{Service: "openvswitch-switch", Reason: "routers moved"},
		{Service: "neutron-openvswitch-agent", Reason: "dependent of openvswitch-switch"},
	})
}

type fakeCommander struct {
	calls [][]string
	err   error
}

func (f *fakeCommander) Output(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return "", f.err
}

func (s *supervisorSuite) TestCommandManager(c *gc.C) {
	commander := &fakeCommander{}
	manager := service.NewCommandManager(commander)

	running, err := manager.Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(running, jc.IsTrue)

	c.Assert(manager.Restart(context.Background(), "neutron-l3-agent"), jc.ErrorIsNil)
	c.Check(commander.calls, jc.DeepEquals, [][]string{
		{"service", "neutron-l3-agent", "status"},
		{"service", "neutron-l3-agent", "restart"},
	})

	commander.err = errors.New("service exited 3: stopped")
	running, err = manager.Running(context.Background(), "neutron-l3-agent")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(running, jc.IsFalse)
}

func (s *supervisorSuite) TestNewManager(c *gc.C) {
	manager, err := service.NewManager(service.InitSystemSysV, &fakeCommander{})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(manager, gc.FitsTypeOf, &service.CommandManager{})

	_, err = service.NewManager("upstart", &fakeCommander{})
	c.Assert(err, jc.ErrorIs, errors.NotSupported)
}
