// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/juju/lumberjack/v2"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/catacomb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/config"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/reconciler"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/worker/monitor"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/worker/signalwatcher"
)

const runDoc = `
run starts the monitor in the foreground. Every interval it looks for dead
DHCP and L3 agents, moves their networks and routers onto live agents and
removes the namespaces they left on this host. It also restarts any local
agent service that has stopped.

The monitor stops cleanly on SIGTERM or SIGINT.
`

// RunCommand runs the monitor until it is signalled to stop.
type RunCommand struct {
	cmd.CommandBase
	configFlags

	factory Factory
	clock   clock.Clock
	signals func(chan<- os.Signal)

	metricsAddress string
	logFile        string
	loggingConfig  string
}

// NewRunCommand returns a command that runs the monitor.
func NewRunCommand(factory Factory) cmd.Command {
	return &RunCommand{
		factory: factory,
		clock:   clock.WallClock,
		signals: func(ch chan<- os.Signal) {
			signal.Notify(ch, signalwatcher.ShutdownSignals...)
		},
	}
}

// Info implements cmd.Command.
func (c *RunCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "run",
		Purpose: "Run the monitor.",
		Doc:     runDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *RunCommand) SetFlags(f *gnuflag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.metricsAddress, "metrics-address", "", "serve prometheus metrics on this address")
	f.StringVar(&c.logFile, "log-file", "", "write logs to this rotated file instead of stderr")
	f.StringVar(&c.loggingConfig, "logging-config", "", "loggo configuration, e.g. <root>=DEBUG")
}

// Init implements cmd.Command.
func (c *RunCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *RunCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.load()
	if err != nil {
		return errors.Trace(err)
	}
	if c.metricsAddress != "" {
		cfg.MetricsAddress = c.metricsAddress
	}
	if c.logFile != "" {
		cfg.LogFile = c.logFile
	}
	if c.loggingConfig != "" {
		cfg.LoggingConfig = c.loggingConfig
	}
	if err := setupLogging(cfg); err != nil {
		return errors.Trace(err)
	}

	// Signals are caught before the first cycle can start.
	sigCh := make(chan os.Signal, 1)
	c.signals(sigCh)
	defer signal.Stop(sigCh)
	signalWatcher, err := signalwatcher.NewWorker(signalwatcher.Config{
		Signals: sigCh,
		Logger:  loggo.GetLogger("neutron.ha.signals"),
	})
	if err != nil {
		return errors.Trace(err)
	}

	collector := reconciler.NewMetricsCollector()
	if cfg.MetricsAddress != "" {
		server, err := serveMetrics(cfg.MetricsAddress, collector)
		if err != nil {
			_ = worker.Stop(signalWatcher)
			return errors.Trace(err)
		}
		defer server.Close()
	}

	engine, err := c.factory.NewEngine(cfg, collector)
	if err != nil {
		_ = worker.Stop(signalWatcher)
		return errors.Annotate(err, "creating reconciler")
	}
	monitorWorker, err := monitor.NewWorker(monitor.Config{
		Engine:   engine,
		Interval: cfg.Interval(),
		Clock:    c.clock,
		Logger:   loggo.GetLogger("neutron.ha.monitor"),
	})
	if err != nil {
		_ = worker.Stop(signalWatcher)
		return errors.Trace(err)
	}

	logger.Infof("monitoring agents every %v", cfg.Interval())
	err = runWorkers(signalWatcher, monitorWorker)
	if errors.Is(err, signalwatcher.ErrShutdown) {
		logger.Infof("monitor stopped")
		return nil
	}
	return errors.Trace(err)
}

// runWorkers runs until one of the workers stops, then stops the rest
// and returns the first error.
func runWorkers(workers ...worker.Worker) error {
	var site catacomb.Catacomb
	if err := catacomb.Invoke(catacomb.Plan{
		Site: &site,
		Work: func() error {
			<-site.Dying()
			return site.ErrDying()
		},
		Init: workers,
	}); err != nil {
		for _, w := range workers {
			_ = worker.Stop(w)
		}
		return errors.Trace(err)
	}
	return site.Wait()
}

func setupLogging(cfg config.Config) error {
	if cfg.LogFile != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			Compress:   true,
		}
		if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(writer, loggo.DefaultFormatter)); err != nil {
			return errors.Annotate(err, "configuring log file")
		}
	}
	if cfg.LoggingConfig != "" {
		if err := loggo.ConfigureLoggers(cfg.LoggingConfig); err != nil {
			return errors.Annotatef(err, "logging config %q", cfg.LoggingConfig)
		}
	}
	return nil
}

func serveMetrics(address string, collector prometheus.Collector) (*http.Server, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collector); err != nil {
		return nil, errors.Annotate(err, "registering metrics")
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("serving metrics on %s: %v", address, err)
		}
	}()
	return server, nil
}
