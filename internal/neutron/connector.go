// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gophercloud/gophercloud"
	"github.com/gophercloud/gophercloud/openstack"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/openstack-charmers/neutron-ha-monitor/internal/envrc"
)

const defaultDomain = "default"

// CredentialSource yields the current service credentials. changed is
// true when they differ from the previous call.
type CredentialSource interface {
	Credentials() (creds envrc.Credentials, changed bool, err error)
}

// AuthenticateFunc opens an authenticated network service client.
type AuthenticateFunc func(creds envrc.Credentials, timeout time.Duration) (*gophercloud.ServiceClient, error)

// ConnectorConfig holds the dependencies of a SessionConnector.
type ConnectorConfig struct {
	Credentials  CredentialSource
	Timeout      time.Duration
	Clock        clock.Clock
	Logger       Logger
	Authenticate AuthenticateFunc
}

// Validate returns an error if the config cannot be used.
func (config ConnectorConfig) Validate() error {
	if config.Credentials == nil {
		return errors.NotValidf("nil Credentials")
	}
	if config.Timeout <= 0 {
		return errors.NotValidf("non-positive Timeout")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	if config.Authenticate == nil {
		return errors.NotValidf("nil Authenticate")
	}
	return nil
}

// SessionConnector caches an authenticated client between cycles and
// authenticates again when the credentials change or are rejected.
type SessionConnector struct {
	config ConnectorConfig

	mu     sync.Mutex
	client *Client
}

var _ Connector = (*SessionConnector)(nil)

// NewConnector returns a SessionConnector. A zero Authenticate in config
// is replaced by the gophercloud implementation.
func NewConnector(config ConnectorConfig) (*SessionConnector, error) {
	if config.Authenticate == nil {
		config.Authenticate = Authenticate
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &SessionConnector{config: config}, nil
}

// Connect is part of the Connector interface.
func (c *SessionConnector) Connect(ctx context.Context) (ControlPlane, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Client returns the cached client, authenticating first when there is
// none or the credentials have changed.
func (c *SessionConnector) Client(ctx context.Context) (*Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	creds, changed, err := c.config.Credentials.Credentials()
	if err != nil {
		c.client = nil
		return nil, errors.WithType(errors.Annotate(err, "loading credentials"), ErrAuth)
	}
	if changed && c.client != nil {
		c.config.Logger.Infof("credentials changed, authenticating again")
		c.client = nil
	}
	if c.client != nil {
		return c.client, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithType(err, ErrConnectivity)
	}

	c.config.Logger.Debugf("authenticating as %s", creds)
	network, err := c.config.Authenticate(creds, c.config.Timeout)
	if err != nil {
		return nil, queryError(err, "authenticating with %s", creds.AuthURL())
	}
	c.client = NewClient(network, c.config.Clock, c.config.Logger)
	return c.client, nil
}

// Invalidate is part of the Connector interface.
func (c *SessionConnector) Invalidate() {
	c.mu.Lock()
	c.client = nil
	c.mu.Unlock()
}

// Authenticate logs in to keystone and returns a network service client
// for the credentials' region. The identity version is chosen from the
// credentials' API version.
func Authenticate(creds envrc.Credentials, timeout time.Duration) (*gophercloud.ServiceClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, errors.WithType(err, ErrAuth)
	}
	provider, err := openstack.NewClient(creds.AuthURL())
	if err != nil {
		return nil, errors.Trace(err)
	}
	provider.HTTPClient = http.Client{Timeout: timeout}

	if err := openstack.Authenticate(provider, authOptions(creds)); err != nil {
		return nil, errors.Trace(err)
	}
	network, err := openstack.NewNetworkV2(provider, gophercloud.EndpointOpts{
		Region: creds.Region,
	})
	if err != nil {
		return nil, errors.Annotate(err, "locating network endpoint")
	}
	return network, nil
}

func authOptions(creds envrc.Credentials) gophercloud.AuthOptions {
	opts := gophercloud.AuthOptions{
		IdentityEndpoint: creds.AuthURL(),
		Username:         creds.Username,
		Password:         creds.Password,
		AllowReauth:      true,
	}
	if !creds.IsV3() {
		opts.TenantName = creds.Tenant
		return opts
	}
	domain := creds.Domain
	if domain == "" {
		domain = defaultDomain
	}
	opts.DomainName = domain
	opts.Scope = &gophercloud.AuthScope{
		ProjectName: creds.Tenant,
		DomainName:  domain,
	}
	return opts
}
