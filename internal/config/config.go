// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package config holds the settings the monitor reads at process start.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/envrc"
	"github.com/openstack-charmers/neutron-ha-monitor/internal/hostidentity"
	"github.com/openstack-charmers/neutron-ha-monitor/service"
)

// DefaultPath is the config file the charm renders for the monitor.
const DefaultPath = "/etc/neutron/neutron-ha-monitor.yaml"

const (
	// DefaultCheckInterval is how often, in seconds, agents are checked.
	DefaultCheckInterval = 15

	// DefaultAPITimeout bounds every control plane request.
	DefaultAPITimeout = 30 * time.Second
)

// DefaultLocalServices are the agent services expected on a gateway host.
var DefaultLocalServices = []string{
	service.VSwitch,
	service.DHCPAgent,
	service.MetadataAgent,
	service.L3Agent,
}

// Config holds the monitor settings.
type Config struct {
	// CheckInterval is the number of seconds between reconciliation cycles.
	CheckInterval int `yaml:"check_interval"`

	// EnvrcPath is the credentials file written by the charm.
	EnvrcPath string `yaml:"envrc"`

	// APITimeout bounds each request to the control plane.
	APITimeout time.Duration `yaml:"api_timeout"`

	// PeerSource selects how cluster membership is discovered.
	PeerSource string `yaml:"peer_source"`

	// Peers lists the hostnames of cooperating gateway nodes when
	// PeerSource is static.
	Peers []string `yaml:"peers"`

	// LocalServices are checked and restarted every cycle.
	LocalServices []string `yaml:"local_services"`

	// MetricsAddress, when set, serves prometheus metrics.
	MetricsAddress string `yaml:"metrics_address"`

	// LogFile, when set, receives log output with rotation.
	LogFile string `yaml:"log_file"`

	// LoggingConfig is a loggo configuration specification.
	LoggingConfig string `yaml:"logging_config"`
}

// Default returns a Config populated with the defaults.
func Default() Config {
	return Config{
		CheckInterval: DefaultCheckInterval,
		EnvrcPath:     envrc.DefaultPath,
		APITimeout:    DefaultAPITimeout,
		PeerSource:    hostidentity.SourceNone,
		LocalServices: append([]string(nil), DefaultLocalServices...),
		LoggingConfig: "<root>=INFO",
	}
}

// Interval returns CheckInterval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.CheckInterval) * time.Second
}

// Validate returns an error if the config cannot drive the monitor.
func (c Config) Validate() error {
	if c.CheckInterval <= 0 {
		return errors.NotValidf("check_interval %d", c.CheckInterval)
	}
	if c.EnvrcPath == "" {
		return errors.NotValidf("empty envrc path")
	}
	if c.APITimeout <= 0 {
		return errors.NotValidf("api_timeout %v", c.APITimeout)
	}
	switch c.PeerSource {
	case hostidentity.SourceNone, hostidentity.SourceCRM:
	case hostidentity.SourceStatic:
		if len(c.Peers) == 0 {
			return errors.NotValidf("static peer source without peers")
		}
	default:
		return errors.NotValidf("peer_source %q", c.PeerSource)
	}
	seen := set.NewStrings()
	for _, svc := range c.LocalServices {
		if strings.TrimSpace(svc) == "" {
			return errors.NotValidf("empty local service name")
		}
		if seen.Contains(svc) {
			return errors.NotValidf("duplicate local service %q", svc)
		}
		seen.Add(svc)
	}
	return nil
}

// Read loads the config at path over the defaults. A missing file yields
// the defaults.
func Read(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return Config{}, errors.Annotatef(err, "reading %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Annotatef(err, "parsing %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Annotatef(err, "config %q", path)
	}
	return cfg, nil
}

// SplitList splits a comma separated flag value, dropping empty items.
func SplitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
