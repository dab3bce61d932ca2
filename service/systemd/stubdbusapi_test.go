// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd_test

import (
	"context"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/juju/testing"
)

type StubDbusAPI struct {
	*testing.Stub

	Units     []dbus.UnitStatus
	JobResult string
}

func (fda *StubDbusAPI) AddUnit(name, desc, status string) {
	active := ""
	load := "loaded"
	if status == "error" {
		load = status
	} else {
		active = status
	}

	unit := dbus.UnitStatus{
		Name:        name,
		Description: desc,
		ActiveState: active,
		LoadState:   load,
	}
	fda.Units = append(fda.Units, unit)
}

func (fda *StubDbusAPI) ListUnitsByNamesContext(_ context.Context, names []string) ([]dbus.UnitStatus, error) {
	fda.Stub.AddCall("ListUnitsByNames", names)

	return fda.Units, fda.NextErr()
}

func (fda *StubDbusAPI) RestartUnitContext(_ context.Context, name string, mode string, ch chan<- string) (int, error) {
	fda.Stub.AddCall("RestartUnit", name, mode)

	if err := fda.NextErr(); err != nil {
		return 0, err
	}
	if fda.JobResult != "" {
		ch <- fda.JobResult
	}
	return 1, nil
}

func (fda *StubDbusAPI) Close() {
	fda.Stub.AddCall("Close")

	fda.Stub.NextErr() // We don't return the error (just pop it off).
}
