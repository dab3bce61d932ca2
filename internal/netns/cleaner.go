// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package netns removes the local network namespaces left behind by
// Neutron agents that have died.
package netns

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/juju/errors"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

// ErrCleanup is returned when one or more namespaces could not be
// removed.
const ErrCleanup = errors.ConstError("namespace cleanup failed")

// Link is a network device inside a namespace.
type Link struct {
	Name     string
	Loopback bool
}

// Namespaces gives access to the host's named network namespaces.
type Namespaces interface {
	// List returns the names of all named namespaces.
	List() ([]string, error)

	// Exists reports whether the named namespace exists.
	Exists(name string) (bool, error)

	// Links returns the devices inside the namespace.
	Links(name string) ([]Link, error)

	// DeleteLink deletes a device inside the namespace.
	DeleteLink(namespace, link string) error

	// Delete removes the named namespace.
	Delete(name string) error
}

// OVS manipulates Open vSwitch ports.
type OVS interface {
	// BridgeForPort returns the bridge a port is attached to, or "" if it
	// is not attached to any bridge.
	BridgeForPort(ctx context.Context, port string) (string, error)

	// DeletePort removes a port from a bridge.
	DeletePort(ctx context.Context, bridge, port string) error
}

// Logger represents the methods used by the cleaner to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
	Errorf(string, ...interface{})
}

// Config holds the dependencies of a Cleaner.
type Config struct {
	Namespaces Namespaces
	OVS        OVS
	Logger     Logger
}

// Validate returns an error if the config cannot be used.
func (config Config) Validate() error {
	if config.Namespaces == nil {
		return errors.NotValidf("nil Namespaces")
	}
	if config.OVS == nil {
		return errors.NotValidf("nil OVS")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// CleanupResult records what happened to each namespace in a batch.
type CleanupResult struct {
	Kind    neutron.ResourceKind
	Removed []string
	Skipped []string
	Failed  map[string]error
}

// Err returns nil when nothing failed, and otherwise an error satisfying
// ErrCleanup that names every failed namespace.
func (r CleanupResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Failed))
	for name := range r.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = fmt.Sprintf("%s: %v", name, r.Failed[name])
	}
	return errors.WithType(errors.New(strings.Join(msgs, "; ")), ErrCleanup)
}

func (r *CleanupResult) fail(namespace string, err error) {
	if r.Failed == nil {
		r.Failed = make(map[string]error)
	}
	r.Failed[namespace] = err
}

// Cleaner tears down the namespaces backing networks and routers.
type Cleaner struct {
	config Config
}

// NewCleaner returns a Cleaner.
func NewCleaner(config Config) (*Cleaner, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Cleaner{config: config}, nil
}

// Cleanup removes the namespaces backing the given resources. Missing
// namespaces are skipped. A failure on one namespace does not stop the
// others.
func (c *Cleaner) Cleanup(ctx context.Context, kind neutron.ResourceKind, ids []string) (CleanupResult, error) {
	result := CleanupResult{Kind: kind}
	if neutron.NamespacePrefix(kind) == "" {
		return result, errors.NotSupportedf("cleaning up %s namespaces", kind)
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			result.fail(neutron.NamespaceName(kind, id), ctx.Err())
			continue
		}
		c.destroy(ctx, neutron.NamespaceName(kind, id), &result)
	}
	return result, nil
}

// Sweep removes every local namespace belonging to kind.
func (c *Cleaner) Sweep(ctx context.Context, kind neutron.ResourceKind) (CleanupResult, error) {
	if neutron.NamespacePrefix(kind) == "" {
		return CleanupResult{Kind: kind}, errors.NotSupportedf("cleaning up %s namespaces", kind)
	}
	ids, err := c.LocalResources(kind)
	if err != nil {
		return CleanupResult{Kind: kind}, errors.Trace(err)
	}
	if len(ids) == 0 {
		c.config.Logger.Debugf("no %s namespaces to sweep", kind)
		return CleanupResult{Kind: kind}, nil
	}
	c.config.Logger.Infof("sweeping %d %s namespaces", len(ids), kind)
	return c.Cleanup(ctx, kind, ids)
}

// LocalResources returns the ids of the resources of kind that have a
// namespace on this host.
func (c *Cleaner) LocalResources(kind neutron.ResourceKind) ([]string, error) {
	names, err := c.config.Namespaces.List()
	if err != nil {
		return nil, errors.Annotate(err, "listing namespaces")
	}
	var ids []string
	for _, name := range names {
		if id, ok := neutron.ResourceIDFromNamespace(kind, name); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *Cleaner) destroy(ctx context.Context, namespace string, result *CleanupResult) {
	logger := c.config.Logger

	exists, err := c.config.Namespaces.Exists(namespace)
	if err != nil {
		logger.Errorf("checking namespace %s: %v", namespace, err)
		result.fail(namespace, errors.Trace(err))
		return
	}
	if !exists {
		logger.Debugf("namespace %s not present", namespace)
		result.Skipped = append(result.Skipped, namespace)
		return
	}

	logger.Infof("destroying namespace %s", namespace)
	links, err := c.config.Namespaces.Links(namespace)
	if err != nil {
		logger.Errorf("listing devices in namespace %s: %v", namespace, err)
		result.fail(namespace, errors.Annotate(err, "listing devices"))
		return
	}
	for _, link := range links {
		if link.Loopback {
			continue
		}
		if err := c.unplug(ctx, namespace, link.Name); err != nil {
			logger.Warningf("unplugging %s from namespace %s: %v", link.Name, namespace, err)
		}
	}

	// Only garbage-collect a namespace once nothing but loopback remains.
	remaining, err := c.config.Namespaces.Links(namespace)
	if err != nil {
		result.fail(namespace, errors.Annotate(err, "listing devices"))
		return
	}
	var left []string
	for _, link := range remaining {
		if !link.Loopback {
			left = append(left, link.Name)
		}
	}
	if len(left) > 0 {
		logger.Errorf("namespace %s still holds devices %s", namespace, strings.Join(left, ", "))
		result.fail(namespace, errors.Errorf("devices remain: %s", strings.Join(left, ", ")))
		return
	}
	if err := c.config.Namespaces.Delete(namespace); err != nil {
		logger.Errorf("deleting namespace %s: %v", namespace, err)
		result.fail(namespace, errors.Annotate(err, "deleting namespace"))
		return
	}
	result.Removed = append(result.Removed, namespace)
}

// unplug deletes a device. Devices that refuse deletion are assumed to be
// Open vSwitch ports and are removed from their bridge instead.
func (c *Cleaner) unplug(ctx context.Context, namespace, device string) error {
	linkErr := c.config.Namespaces.DeleteLink(namespace, device)
	if linkErr == nil {
		return nil
	}
	bridge, err := c.config.OVS.BridgeForPort(ctx, device)
	if err != nil {
		return errors.Annotatef(err, "deleting link failed (%v), finding bridge", linkErr)
	}
	if bridge == "" {
		c.config.Logger.Debugf("unable to find bridge for device %s", device)
		return errors.Annotate(linkErr, "deleting link")
	}
	c.config.Logger.Debugf("removing port %s from bridge %s", device, bridge)
	return errors.Trace(c.config.OVS.DeletePort(ctx, bridge, device))
}
