// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netns

import (
	"context"
	"strings"

	"github.com/juju/errors"
)

// Commander runs a command and returns its output.
type Commander interface {
	Output(ctx context.Context, args ...string) (string, error)
}

// VSwitchCtl implements OVS with ovs-vsctl.
type VSwitchCtl struct {
	commander Commander
}

// NewVSwitchCtl returns an OVS driving ovs-vsctl through commander.
func NewVSwitchCtl(commander Commander) *VSwitchCtl {
	return &VSwitchCtl{commander: commander}
}

// BridgeForPort is part of the OVS interface.
func (v *VSwitchCtl) BridgeForPort(ctx context.Context, port string) (string, error) {
	out, err := v.commander.Output(ctx, "ovs-vsctl", "--timeout=10", "port-to-br", port)
	if err != nil {
		// ovs-vsctl exits non-zero for ports on no bridge.
		if strings.Contains(err.Error(), "no port named") {
			return "", nil
		}
		return "", errors.Trace(err)
	}
	return strings.TrimSpace(out), nil
}

// DeletePort is part of the OVS interface.
func (v *VSwitchCtl) DeletePort(ctx context.Context, bridge, port string) error {
	_, err := v.commander.Output(ctx, "ovs-vsctl", "--timeout=10", "--", "--if-exists", "del-port", bridge, port)
	return errors.Trace(err)
}
