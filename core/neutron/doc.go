// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package neutron holds the pure domain concepts the monitor reasons about:
// network agents, the resources they host, the orphans left behind when an
// agent dies, and the local namespace naming convention.
//
// Nothing in here talks to the network or the local OS.
package neutron
