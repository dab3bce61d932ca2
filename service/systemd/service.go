// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd

import (
	"context"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/coreos/go-systemd/v22/util"
	"github.com/juju/errors"
)

// Available reports whether systemd is managing this host.
func Available() bool {
	return util.IsRunningSystemd()
}

// DBusAPI is the subset of the systemd D-Bus connection the manager uses.
type DBusAPI interface {
	Close()
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]dbus.UnitStatus, error)
	RestartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
}

// DBusAPIFactory opens a D-Bus connection to systemd.
type DBusAPIFactory = func(ctx context.Context) (DBusAPI, error)

// NewDBusAPI connects to the system instance of systemd.
var NewDBusAPI = func(ctx context.Context) (DBusAPI, error) {
	return dbus.NewWithContext(ctx)
}

var newChan = func() chan string {
	return make(chan string, 1)
}

// Manager controls services through systemd.
type Manager struct {
	newDBus DBusAPIFactory
}

// NewManager returns a Manager that opens a fresh D-Bus connection per
// call, so a systemd restart between cycles does not break it.
func NewManager(newDBus DBusAPIFactory) *Manager {
	return &Manager{newDBus: newDBus}
}

// UnitName returns the systemd unit for a service name.
func UnitName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".service"
}

func (m *Manager) newConn(ctx context.Context) (DBusAPI, error) {
	conn, err := m.newDBus(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "connecting to systemd")
	}
	return conn, nil
}

// Running reports whether the service's unit is loaded and active.
func (m *Manager) Running(ctx context.Context, name string) (bool, error) {
	conn, err := m.newConn(ctx)
	if err != nil {
		return false, errors.Trace(err)
	}
	defer conn.Close()

	unitName := UnitName(name)
	units, err := conn.ListUnitsByNamesContext(ctx, []string{unitName})
	if err != nil {
		return false, errors.Annotatef(err, "querying unit %s", unitName)
	}
	for _, unit := range units {
		if unit.Name == unitName {
			running := unit.LoadState == "loaded" && unit.ActiveState == "active"
			return running, nil
		}
	}
	return false, nil
}

// Restart restarts the service's unit and waits for the job to complete.
func (m *Manager) Restart(ctx context.Context, name string) error {
	conn, err := m.newConn(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer conn.Close()

	unitName := UnitName(name)
	statusCh := newChan()
	if _, err := conn.RestartUnitContext(ctx, unitName, "replace", statusCh); err != nil {
		return errors.Annotatef(err, "dbus restart request for %s", unitName)
	}

	select {
	case status := <-statusCh:
		// See https://pkg.go.dev/github.com/coreos/go-systemd/v22/dbus#Conn.StartUnitContext
		// for the other job results.
		if status != "done" {
			return errors.Errorf("restarting %s: job %s", unitName, status)
		}
		return nil
	case <-ctx.Done():
		return errors.Annotatef(ctx.Err(), "waiting for %s", unitName)
	}
}
