// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package urlstore

import (
	"net/url"
	"sync"
)

// Store reads and writes the location query.
type Store interface {
	Read() url.Values
	Write(q url.Values) error
}

// Memory is an in-process Store. It keeps every write for inspection.
type Memory struct {
	mu      sync.Mutex
	current url.Values
	writes  []url.Values
}

// NewMemory returns a Memory store whose location starts at initial.
func NewMemory(initial url.Values) *Memory {
	return &Memory{current: clone(initial)}
}

func (m *Memory) Read() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.current)
}

func (m *Memory) Write(q url.Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = clone(q)
	m.writes = append(m.writes, clone(q))
	return nil
}

// Writes returns a copy of every query written so far, oldest first.
func (m *Memory) Writes() []url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]url.Values, len(m.writes))
	for i, w := range m.writes {
		out[i] = clone(w)
	}
	return out
}

func clone(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
