// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

//go:build !linux

package netns

import "github.com/juju/errors"

// LocalNamespaces is unavailable off Linux; every call fails.
type LocalNamespaces struct{}

// NewLocalNamespaces returns a Namespaces that always fails.
func NewLocalNamespaces() *LocalNamespaces {
	return &LocalNamespaces{}
}

func (*LocalNamespaces) List() ([]string, error) {
	return nil, errors.NotSupportedf("network namespaces")
}

func (*LocalNamespaces) Exists(string) (bool, error) {
	return false, errors.NotSupportedf("network namespaces")
}

func (*LocalNamespaces) Links(string) ([]Link, error) {
	return nil, errors.NotSupportedf("network namespaces")
}

func (*LocalNamespaces) DeleteLink(string, string) error {
	return errors.NotSupportedf("network namespaces")
}

func (*LocalNamespaces) Delete(string) error {
	return errors.NotSupportedf("network namespaces")
}
