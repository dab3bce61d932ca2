// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

//go:build linux

package netns

import (
	"net"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
)

// DefaultNamespaceDir is where iproute2 bind-mounts named namespaces.
const DefaultNamespaceDir = "/var/run/netns"

// LocalNamespaces implements Namespaces with netlink.
type LocalNamespaces struct {
	dir string
}

// NewLocalNamespaces returns the named namespaces of this host.
func NewLocalNamespaces() *LocalNamespaces {
	return &LocalNamespaces{dir: DefaultNamespaceDir}
}

// List is part of the Namespaces interface.
func (n *LocalNamespaces) List() ([]string, error) {
	entries, err := os.ReadDir(n.dir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Trace(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Exists is part of the Namespaces interface.
func (n *LocalNamespaces) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(n.dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, errors.Trace(err)
}

// Links is part of the Namespaces interface.
func (n *LocalNamespaces) Links(name string) ([]Link, error) {
	var result []Link
	err := n.withHandle(name, func(h *netlink.Handle) error {
		links, err := h.LinkList()
		if err != nil {
			return errors.Trace(err)
		}
		result = make([]Link, len(links))
		for i, link := range links {
			result[i] = toLink(link)
		}
		return nil
	})
	return result, errors.Trace(err)
}

// DeleteLink is part of the Namespaces interface.
func (n *LocalNamespaces) DeleteLink(namespace, name string) error {
	return n.withHandle(namespace, func(h *netlink.Handle) error {
		link, err := h.LinkByName(name)
		if err != nil {
			return errors.Annotatef(err, "finding %s", name)
		}
		return errors.Trace(h.LinkDel(link))
	})
}

// Delete is part of the Namespaces interface.
func (n *LocalNamespaces) Delete(name string) error {
	return errors.Trace(netns.DeleteNamed(name))
}

func (n *LocalNamespaces) withHandle(name string, f func(*netlink.Handle) error) error {
	ns, err := netns.GetFromPath(filepath.Join(n.dir, name))
	if err != nil {
		return errors.Annotatef(err, "opening namespace %s", name)
	}
	defer ns.Close()

	h, err := netlink.NewHandleAt(ns)
	if err != nil {
		return errors.Annotatef(err, "opening netlink handle in %s", name)
	}
	defer h.Delete()
	return f(h)
}

func toLink(link netlink.Link) Link {
	attrs := link.Attrs()
	return Link{
		Name:     attrs.Name,
		Loopback: attrs.Flags&net.FlagLoopback != 0 || link.Type() == "loopback",
	}
}
