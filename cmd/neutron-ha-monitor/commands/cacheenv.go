// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/utils/v4/keyvalues"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/envrc"
)

const cacheEnvDoc = `
cache-env writes the control plane credentials the monitor reads. The file
is only rewritten when its contents change, so the monitor does not
authenticate again needlessly.

Keys are auth_protocol, keystone_host, auth_port, service_username,
service_password, service_tenant and region, with optional api_version
and service_domain.
`

// CacheEnvCommand writes the credentials cache.
type CacheEnvCommand struct {
	cmd.CommandBase

	path   string
	values map[string]string
}

// NewCacheEnvCommand returns the cache-env command.
func NewCacheEnvCommand() cmd.Command {
	return &CacheEnvCommand{}
}

// Info implements cmd.Command.
func (c *CacheEnvCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "cache-env",
		Args:     "<key>=<value> ...",
		Purpose:  "Cache the control plane credentials.",
		Doc:      cacheEnvDoc,
		Examples: "\n    cache-env auth_protocol=http keystone_host=10.0.0.10 auth_port=5000 ...\n",
	}
}

// SetFlags implements cmd.Command.
func (c *CacheEnvCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.path, "envrc", envrc.DefaultPath, "path to the credentials cache")
}

// Init implements cmd.Command.
func (c *CacheEnvCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no credentials specified")
	}
	values, err := keyvalues.Parse(args, false)
	if err != nil {
		return errors.Trace(err)
	}
	c.values = values
	return nil
}

// Run implements cmd.Command.
func (c *CacheEnvCommand) Run(ctx *cmd.Context) error {
	written, err := envrc.Write(ctx.AbsPath(c.path), c.values)
	if err != nil {
		return errors.Trace(err)
	}
	if written {
		ctx.Infof("credentials written to %s", c.path)
	} else {
		ctx.Infof("credentials in %s unchanged", c.path)
	}
	return nil
}
