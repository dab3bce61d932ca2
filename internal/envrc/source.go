// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package envrc

import (
	"os"
	"sync"
	"time"

	"github.com/juju/errors"
)

// Source hands out the credentials in an envrc file, re-reading the file
// whenever its modification time changes.
type Source struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	size    int64
	creds   Credentials
	err     error
	loaded  bool
}

// NewSource returns a Source reading from path. The file is not read
// until Credentials is first called; a missing file is not an error
// until then.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Credentials returns the current credentials. changed is true when the
// returned value differs from the previous call, including the first
// successful read.
func (s *Source) Credentials() (creds Credentials, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, statErr := os.Stat(s.path)
	if statErr != nil {
		s.loaded = false
		s.creds = Credentials{}
		if os.IsNotExist(statErr) {
			s.err = errors.NotFoundf("credentials file %q", s.path)
		} else {
			s.err = errors.Annotatef(statErr, "checking %q", s.path)
		}
		return Credentials{}, false, s.err
	}

	if s.loaded && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.creds, false, s.err
	}

	previous := s.creds
	s.creds, s.err = ReadFile(s.path)
	s.modTime = info.ModTime()
	s.size = info.Size()
	s.loaded = true
	if s.err != nil {
		return Credentials{}, false, s.err
	}
	return s.creds, s.creds != previous, nil
}
