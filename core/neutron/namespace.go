// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import "strings"

const (
	dhcpNamespacePrefix   = "qdhcp-"
	routerNamespacePrefix = "qrouter-"
)

// NamespacePrefix returns the prefix Neutron agents use when naming the
// local network namespace backing a resource of the given kind. Kinds that
// are not backed by a namespace return "".
func NamespacePrefix(kind ResourceKind) string {
	switch kind {
	case Network:
		return dhcpNamespacePrefix
	case Router:
		return routerNamespacePrefix
	}
	return ""
}

// NamespaceName returns the namespace backing resource id of the given kind.
func NamespaceName(kind ResourceKind, id string) string {
	prefix := NamespacePrefix(kind)
	if prefix == "" {
		return ""
	}
	return prefix + id
}

// ResourceIDFromNamespace returns the resource id encoded in a namespace
// name, if the namespace belongs to the given kind.
func ResourceIDFromNamespace(kind ResourceKind, namespace string) (string, bool) {
	prefix := NamespacePrefix(kind)
	if prefix == "" || !strings.HasPrefix(namespace, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(namespace, prefix)
	return id, id != ""
}
