// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package commands holds the commands of the neutron-ha-monitor binary.
package commands

import (
	"context"
	"os"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/command"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/config"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/envrc"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/hostidentity"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/netns"
	controlplane "github.com/openstack-charmers/neutron-ha-monitor/internal/neutron"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/reconciler"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/worker/monitor"
	"github.com/openstack-charmers/neutron-ha-monitor/service"
)

var logger = loggo.GetLogger("neutron.ha.cmd")

// commandTimeout bounds every crm, ovs-vsctl and service invocation.
const commandTimeout = 60 * time.Second

// Factory builds the collaborators of the commands from a configuration.
type Factory interface {
	// NewEngine returns an engine wired to this host.
	NewEngine(cfg config.Config, metrics *reconciler.Collector) (monitor.Engine, error)

	// NewQuerier returns an authenticated control plane client.
	NewQuerier(ctx context.Context, cfg config.Config) (controlplane.HostQuerier, error)

	// Hostname returns the name the control plane knows this host by.
	Hostname() (string, error)
}

// DefaultFactory builds everything against the real host.
type DefaultFactory struct{}

var _ Factory = DefaultFactory{}

// Hostname is part of the Factory interface.
func (DefaultFactory) Hostname() (string, error) {
	return os.Hostname()
}

// NewEngine is part of the Factory interface.
func (f DefaultFactory) NewEngine(cfg config.Config, metrics *reconciler.Collector) (monitor.Engine, error) {
	executor := command.NewExecutor(clock.WallClock, commandTimeout)

	hostname, err := f.Hostname()
	if err != nil {
		return nil, errors.Annotate(err, "resolving local hostname")
	}
	peers, err := hostidentity.NewPeerSource(cfg.PeerSource, hostname, cfg.Peers, executor)
	if err != nil {
		return nil, errors.Trace(err)
	}
	hosts, err := hostidentity.NewResolver(hostidentity.Config{
		Hostname: func() (string, error) { return hostname, nil },
		Peers:    peers,
		Logger:   loggo.GetLogger("neutron.ha.hostidentity"),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	connector, err := newConnector(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}

	cleaner, err := netns.NewCleaner(netns.Config{
		Namespaces: netns.NewLocalNamespaces(),
		OVS:        netns.NewVSwitchCtl(executor),
		Logger:     loggo.GetLogger("neutron.ha.netns"),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	initSystem := service.DiscoverInitSystem()
	logger.Debugf("managing services with %s", initSystem)
	manager, err := service.NewManager(initSystem, executor)
	if err != nil {
		return nil, errors.Trace(err)
	}
	supervisor, err := service.NewSupervisor(service.SupervisorConfig{
		Manager: manager,
		Logger:  loggo.GetLogger("neutron.ha.service"),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	engine, err := reconciler.NewEngine(reconciler.Config{
		Hosts:          hosts,
		Connector:      connector,
		Cleaner:        cleaner,
		Services:       supervisor,
		LocalServices:  cfg.LocalServices,
		VSwitchService: service.VSwitch,
		Metrics:        metrics,
		Clock:          clock.WallClock,
		Logger:         loggo.GetLogger("neutron.ha.reconciler"),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return engine, nil
}

// NewQuerier is part of the Factory interface.
func (DefaultFactory) NewQuerier(ctx context.Context, cfg config.Config) (controlplane.HostQuerier, error) {
	connector, err := newConnector(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	client, err := connector.Client(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return client, nil
}

func newConnector(cfg config.Config) (*controlplane.SessionConnector, error) {
	return controlplane.NewConnector(controlplane.ConnectorConfig{
		Credentials: envrc.NewSource(cfg.EnvrcPath),
		Timeout:     cfg.APITimeout,
		Clock:       clock.WallClock,
		Logger:      loggo.GetLogger("neutron.ha.neutron"),
	})
}

// configFlags are the flags shared by commands that load the daemon
// configuration. Set flags override the file.
type configFlags struct {
	path       string
	envrcPath  string
	timeout    time.Duration
	interval   int
	peerSource string
	peers      string
}

func (f *configFlags) SetFlags(fs *gnuflag.FlagSet) {
	fs.StringVar(&f.path, "config", config.DefaultPath, "path to the daemon configuration file")
	fs.StringVar(&f.envrcPath, "envrc", "", "path to the cached control plane credentials")
	fs.DurationVar(&f.timeout, "api-timeout", 0, "timeout for each control plane request")
	fs.IntVar(&f.interval, "interval", 0, "seconds between reconciliation cycles")
	fs.StringVar(&f.peerSource, "peer-source", "", "where cluster peers come from: none, static or crm")
	fs.StringVar(&f.peers, "peers", "", "comma separated cluster peers, for the static peer source")
}

// load reads the configuration file and applies the flags.
func (f *configFlags) load() (config.Config, error) {
	cfg, err := config.Read(f.path)
	if err != nil {
		return config.Config{}, errors.Trace(err)
	}
	if f.envrcPath != "" {
		cfg.EnvrcPath = f.envrcPath
	}
	if f.timeout != 0 {
		cfg.APITimeout = f.timeout
	}
	if f.interval != 0 {
		cfg.CheckInterval = f.interval
	}
	if f.peerSource != "" {
		cfg.PeerSource = f.peerSource
	}
	if f.peers != "" {
		cfg.Peers = config.SplitList(f.peers)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Trace(err)
	}
	return cfg, nil
}
