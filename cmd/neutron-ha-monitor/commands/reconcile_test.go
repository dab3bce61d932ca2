// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands_test

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/juju/cmd/v4"
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/openstack-charmers/neutron-ha-monitor/cmd/neutron-ha-monitor/commands"
	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/config"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/hostidentity"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/netns"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/reconciler"
)

type reconcileSuite struct {
	testing.IsolationSuite

	factory    *fakeFactory
	configPath string
}

var _ = gc.Suite(&reconcileSuite{})

func (s *reconcileSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.factory = newFakeFactory()
	s.configPath = filepath.Join(c.MkDir(), "missing.yaml")
}

func (s *reconcileSuite) orphanedReport() reconciler.Report {
	orphans := neutron.NewOrphanSet(neutron.Router)
	orphans.Add("R1", "A1")
	return reconciler.Report{
		Host:              "node1",
		Started:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:          1500 * time.Millisecond,
		DesignatedChecked: true,
		Designated:        true,
		Kinds: []reconciler.KindReport{{
			Kind:    neutron.Router,
			Alive:   []string{"A2"},
			Dead:    []string{"A1"},
			Orphans: orphans,
		}},
		Moves: []reconciler.MoveResult{{
			Move: neutron.Move{Kind: neutron.Router, ResourceID: "R1", From: "A1", To: "A2"},
		}},
		Cleanups: []netns.CleanupResult{{
			Kind:   neutron.Router,
			Failed: map[string]error{"qrouter-R9": errors.New("devices remain: qr-1")},
		}},
	}
}

func (s *reconcileSuite) TestInitRejectsArgs(c *gc.C) {
	err := cmdtesting.InitCommand(commands.NewReconcileCommand(s.factory), []string{"extra"})
	c.Assert(err, gc.ErrorMatches, `unrecognized args: \["extra"\]`)
}

func (s *reconcileSuite) TestRunPrintsReport(c *gc.C) {
	s.factory.report = s.orphanedReport()

	ctx, err := cmdtesting.RunCommand(c, commands.NewReconcileCommand(s.factory),
		"--config", s.configPath, "--format", "json")
	c.Assert(err, jc.ErrorIsNil)

	var out map[string]interface{}
	err = json.Unmarshal([]byte(cmdtesting.Stdout(ctx)), &out)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out["host"], gc.Equals, "node1")
	c.Check(out["designated"], gc.Equals, true)
	c.Check(out["duration"], gc.Equals, "1.5s")
	c.Check(out["kinds"], jc.DeepEquals, map[string]interface{}{
		"router": map[string]interface{}{
			"alive":   []interface{}{"A2"},
			"dead":    []interface{}{"A1"},
			"orphans": map[string]interface{}{"R1": "A1"},
		},
	})
	c.Check(out["moves"], jc.DeepEquals, []interface{}{
		map[string]interface{}{"kind": "router", "resource": "R1", "from": "A1", "to": "A2"},
	})
	c.Check(out["cleanups"], jc.DeepEquals, []interface{}{
		map[string]interface{}{
			"kind":   "router",
			"failed": map[string]interface{}{"qrouter-R9": "devices remain: qr-1"},
		},
	})

	s.factory.CheckCallNames(c, "NewEngine", "RunOnce")
}

func (s *reconcileSuite) TestRunAppliesFlags(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, commands.NewReconcileCommand(s.factory),
		"--config", s.configPath,
		"--envrc", "/tmp/envrc",
		"--peer-source", "static",
		"--peers", "node1, node2",
		"--interval", "30",
	)
	c.Assert(err, jc.ErrorIsNil)

	cfg := s.factory.Calls()[0].Args[0].(config.Config)
	c.Check(cfg.EnvrcPath, gc.Equals, "/tmp/envrc")
	c.Check(cfg.PeerSource, gc.Equals, hostidentity.SourceStatic)
	c.Check(cfg.Peers, jc.DeepEquals, []string{"node1", "node2"})
	c.Check(cfg.CheckInterval, gc.Equals, 30)
	c.Check(s.factory.Calls()[0].Args[1], gc.IsNil)
}

func (s *reconcileSuite) TestRunRejectsBadPeerSource(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, commands.NewReconcileCommand(s.factory),
		"--config", s.configPath, "--peer-source", "corosync")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	s.factory.CheckNoCalls(c)
}

func (s *reconcileSuite) TestRunFailsWhenCycleFailed(c *gc.C) {
	s.factory.report = reconciler.Report{
		Host:          "node1",
		SkippedReason: reconciler.SkipUnavailable,
		Errors:        []error{errors.New("connection refused")},
	}

	ctx, err := cmdtesting.RunCommand(c, commands.NewReconcileCommand(s.factory), "--config", s.configPath)
	c.Assert(err, gc.Equals, cmd.ErrSilent)
	c.Check(cmdtesting.Stdout(ctx), gc.Matches, `(?s).*skipped: control plane unavailable\n.*errors:\n- connection refused\n.*`)
}

func (s *reconcileSuite) TestRunEngineError(c *gc.C) {
	s.factory.SetErrors(errors.New("no dbus"))

	_, err := cmdtesting.RunCommand(c, commands.NewReconcileCommand(s.factory), "--config", s.configPath)
	c.Assert(err, gc.ErrorMatches, "creating reconciler: no dbus")
}
