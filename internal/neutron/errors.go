// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import (
	"net/http"

	"github.com/gophercloud/gophercloud"
	"github.com/juju/errors"
)

const (
	// ErrAuth is returned when credentials are missing, incomplete or
	// rejected by keystone.
	ErrAuth = errors.ConstError("control plane authentication failed")

	// ErrConnectivity is returned when the control plane cannot be reached
	// or does not answer a query sensibly.
	ErrConnectivity = errors.ConstError("control plane unavailable")

	// ErrReassign is returned when moving a resource between agents fails.
	ErrReassign = errors.ConstError("resource reassignment failed")
)

// statusCode returns the HTTP status carried by a gophercloud error, or 0.
func statusCode(err error) int {
	var coded gophercloud.StatusCodeError
	if errors.As(err, &coded) {
		return coded.GetStatusCode()
	}
	return 0
}

func isStatus(err error, codes ...int) bool {
	got := statusCode(err)
	for _, code := range codes {
		if got == code {
			return true
		}
	}
	return false
}

// isAuthFailure reports whether err is keystone or neutron refusing the
// credentials.
func isAuthFailure(err error) bool {
	return isStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// queryError classifies a failed read against the control plane.
func queryError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	errType := ErrConnectivity
	if isAuthFailure(err) {
		errType = ErrAuth
	}
	return errors.WithType(errors.Annotatef(err, format, args...), errType)
}
