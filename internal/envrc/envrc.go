// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package envrc reads and writes the key=value file the charm uses to hand
// control plane credentials to the monitor.
package envrc

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/juju/errors"
	"gopkg.in/ini.v1"
)

// DefaultPath is where the charm caches the credentials.
const DefaultPath = "/etc/legacy_ha_envrc"

// Keys understood in the envrc file.
const (
	KeyAuthProtocol = "auth_protocol"
	KeyKeystoneHost = "keystone_host"
	KeyAuthPort     = "auth_port"
	KeyUsername     = "service_username"
	KeyPassword     = "service_password"
	KeyTenant       = "service_tenant"
	KeyRegion       = "region"
	KeyDomain       = "service_domain"
	KeyAPIVersion   = "api_version"
)

var requiredKeys = []string{
	KeyAuthProtocol,
	KeyKeystoneHost,
	KeyAuthPort,
	KeyUsername,
	KeyPassword,
	KeyTenant,
	KeyRegion,
}

// Credentials holds what is needed to authenticate against keystone and
// reach the network endpoint.
type Credentials struct {
	Protocol   string
	Host       string
	Port       string
	Username   string
	Password   string
	Tenant     string
	Region     string
	Domain     string
	APIVersion string
}

// Validate returns an error naming the first required field that is empty.
func (c Credentials) Validate() error {
	for _, field := range []struct {
		key, value string
	}{
		{KeyAuthProtocol, c.Protocol},
		{KeyKeystoneHost, c.Host},
		{KeyAuthPort, c.Port},
		{KeyUsername, c.Username},
		{KeyPassword, c.Password},
		{KeyTenant, c.Tenant},
		{KeyRegion, c.Region},
	} {
		if strings.TrimSpace(field.value) == "" {
			return errors.NotValidf("empty %s", field.key)
		}
	}
	return nil
}

// IsV3 reports whether the identity v3 API should be used.
func (c Credentials) IsV3() bool {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.APIVersion)), "v")
	return v == "3" || strings.HasPrefix(v, "3.")
}

// AuthURL returns the keystone endpoint for the configured API version.
func (c Credentials) AuthURL() string {
	version := "v2.0"
	if c.IsV3() {
		version = "v3"
	}
	return fmt.Sprintf("%s://%s:%s/%s", c.Protocol, c.Host, c.Port, version)
}

// String implements fmt.Stringer without leaking the password.
func (c Credentials) String() string {
	return fmt.Sprintf("%s@%s (tenant %q, region %q)", c.Username, c.AuthURL(), c.Tenant, c.Region)
}

// Parse reads credentials from key=value data.
func Parse(data []byte) (Credentials, error) {
	values, err := parseValues(data)
	if err != nil {
		return Credentials{}, errors.Trace(err)
	}
	return fromValues(values), nil
}

// ReadFile reads and validates credentials from path.
func ReadFile(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Credentials{}, errors.NotFoundf("credentials file %q", path)
	} else if err != nil {
		return Credentials{}, errors.Annotatef(err, "reading %q", path)
	}
	creds, err := Parse(data)
	if err != nil {
		return Credentials{}, errors.Annotatef(err, "parsing %q", path)
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, errors.Annotatef(err, "credentials in %q", path)
	}
	return creds, nil
}

func parseValues(data []byte) (map[string]string, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, data)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return f.Section("").KeysHash(), nil
}

func fromValues(values map[string]string) Credentials {
	return Credentials{
		Protocol:   values[KeyAuthProtocol],
		Host:       values[KeyKeystoneHost],
		Port:       values[KeyAuthPort],
		Username:   values[KeyUsername],
		Password:   values[KeyPassword],
		Tenant:     values[KeyTenant],
		Region:     values[KeyRegion],
		Domain:     values[KeyDomain],
		APIVersion: values[KeyAPIVersion],
	}
}

// Write caches values in the file at path. The file is only rewritten when
// its current contents differ from values; Write reports whether it wrote.
func Write(path string, values map[string]string) (bool, error) {
	for _, key := range requiredKeys {
		if values[key] == "" {
			return false, errors.NotValidf("missing %s", key)
		}
	}

	if data, err := os.ReadFile(path); err == nil {
		current, err := parseValues(data)
		if err == nil && sameValues(current, values) {
			return false, nil
		}
	} else if !os.IsNotExist(err) {
		return false, errors.Annotatef(err, "reading %q", path)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f := ini.Empty(ini.LoadOptions{KeyValueDelimiters: "="})
	section := f.Section("")
	for _, key := range keys {
		if _, err := section.NewKey(key, values[key]); err != nil {
			return false, errors.Annotatef(err, "adding %q", key)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return false, errors.Trace(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return false, errors.Annotatef(err, "writing %q", path)
	}
	return true, nil
}

func sameValues(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
