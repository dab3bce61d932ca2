// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// The service package keeps the gateway's local agent services running,
// restarting any that have stopped together with the services that
// depend on them.
package service
