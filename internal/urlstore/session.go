// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package urlstore

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/uhctl/uhctl/internal/cacheutil"
	"github.com/uhctl/uhctl/internal/log"
)

// DefaultSession is used when no session name is given.
const DefaultSession = "default"

var sessionDir = []string{"sessions"}

// Session is a Store persisted in the uhctl cache directory so that the
// location survives between CLI invocations. Local, non-shareable values (the
// app name) are kept in a sibling entry.
type Session struct {
	Name string
}

// NewSession returns the session called name, or DefaultSession when name is
// blank.
func NewSession(name string) *Session {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSession
	}
	return &Session{Name: name}
}

func (s *Session) queryKey() string { return s.Name + "/query" }
func (s *Session) localKey() string { return s.Name + "/appname" }

// Read returns the stored query. A missing or unreadable entry reads as an
// empty query, which loads as the default selection.
func (s *Session) Read() url.Values {
	entry, ok := cacheutil.Read(sessionDir, s.queryKey())
	if !ok {
		return url.Values{}
	}
	q, err := url.ParseQuery(strings.TrimSpace(string(entry.Data)))
	if err != nil {
		log.Warnf("session %s: ignoring malformed stored query: %v", s.Name, err)
	}
	if q == nil {
		q = url.Values{}
	}
	return q
}

// Write persists q.
func (s *Session) Write(q url.Values) error {
	if err := cacheutil.Write(sessionDir, s.queryKey(), []byte(q.Encode())); err != nil {
		return fmt.Errorf("session %s: %w", s.Name, err)
	}
	log.Debugf("session %s: wrote query %q", s.Name, q.Encode())
	return nil
}

// AppName returns the stored app name input, surrounding spaces included.
func (s *Session) AppName() string {
	entry, ok := cacheutil.Read(sessionDir, s.localKey())
	if !ok {
		return ""
	}
	return string(entry.Data)
}

// SetAppName persists the app name input. An empty name removes the entry.
func (s *Session) SetAppName(name string) error {
	if name == "" {
		return cacheutil.Remove(sessionDir, s.localKey())
	}
	if err := cacheutil.Write(sessionDir, s.localKey(), []byte(name)); err != nil {
		return fmt.Errorf("session %s: %w", s.Name, err)
	}
	return nil
}

// LastWrite is the time the query was last written, or the zero time.
func (s *Session) LastWrite() time.Time {
	entry, ok := cacheutil.Read(sessionDir, s.queryKey())
	if !ok {
		return time.Time{}
	}
	return entry.ModTime
}

// Reset forgets the session entirely.
func (s *Session) Reset() error {
	if err := cacheutil.Remove(sessionDir, s.queryKey()); err != nil {
		return err
	}
	return cacheutil.Remove(sessionDir, s.localKey())
}

// Purge removes session entries not written for more than hours. hours <= 0
// keeps everything.
func Purge(hours int) error {
	return cacheutil.Purge(sessionDir, hours)
}
