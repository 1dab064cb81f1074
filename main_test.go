// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhctl/uhctl/internal/config"
)

func useConfig(t *testing.T) {
	t.Helper()
	saved := config.Config
	t.Cleanup(func() { config.Config = saved })

	_, err := config.Load(filepath.Join("testdata", "uhctl.yaml"))
	require.NoError(t, err)
}

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"uhctl", "show"},
			expected: []string{"uhctl", "show"},
		},
		{
			name:     "no duplicates",
			args:     []string{"uhctl", "show", "--output", "text", "--titles"},
			expected: []string{"uhctl", "show", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"uhctl", "show", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"uhctl", "show", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"uhctl", "show", "--titles", "--schema", "--titles"},
			expected: []string{"uhctl", "show", "--schema", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"uhctl", "show", "--output=json", "--titles", "--output=text"},
			expected: []string{"uhctl", "show", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"uhctl", "show", "--output=json", "--output", "text"},
			expected: []string{"uhctl", "show", "--output", "text"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"uhctl", "range", "0.70.0", "--output", "json", "0.71.0", "--output", "text"},
			expected: []string{"uhctl", "range", "0.70.0", "0.71.0", "--output", "text"},
		},
		{
			name:     "bool flag does not swallow a positional",
			args:     []string{"uhctl", "range", "--color", "0.70.0", "--color", "0.71.0"},
			expected: []string{"uhctl", "range", "0.70.0", "--color", "0.71.0"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"uhctl", "show", "-o", "json", "-o", "text"},
			expected: []string{"uhctl", "show", "-o", "text"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"uhctl", "show", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"uhctl", "show", "--output", "c"},
		},
		{
			name:     "everything after -- is kept",
			args:     []string{"uhctl", "settings", "--", "-x", "-x"},
			expected: []string{"uhctl", "settings", "--", "-x", "-x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	useConfig(t)

	tests := []struct {
		name      string
		args      []string
		key       string
		insertIdx int
		expected  []string
	}{
		{
			name:      "missing key returns args unchanged",
			args:      []string{"uhctl", "show", "--titles"},
			key:       "show.nope",
			insertIdx: 2,
			expected:  []string{"uhctl", "show", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"uhctl", "show", "--titles"},
			key:       "show.defaults",
			insertIdx: 2,
			expected:  []string{"uhctl", "show", "--output", "yaml", "--titles"},
		},
		{
			name:      "multiple entries at index 3",
			args:      []string{"uhctl", "range", "0.70.0", "0.71.0"},
			key:       "range.fancy",
			insertIdx: 3,
			expected:  []string{"uhctl", "range", "0.70.0", "--titles", "--output", "json", "0.71.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.key, tt.insertIdx))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	useConfig(t)

	assert.Equal(t,
		[]string{"uhctl", "range", "--titles", "0.70.0", "0.71.0"},
		processSetOnly([]string{"uhctl", "range", "--titles", "@rn70"}))

	assert.Equal(t,
		[]string{"uhctl", "show", "--output", "yaml", "--titles"},
		processSetOnly([]string{"uhctl", "show", "--titles"}),
		"defaults are injected without an explicit set")

	assert.Equal(t,
		[]string{"uhctl", "show", "--output", "json"},
		processCommandArgs([]string{"uhctl", "show", "--output", "json"}),
		"command line flags override defaults")
}

func TestProcessCommandArgs_Completion(t *testing.T) {
	args := []string{"uhctl", "completion", "bash"}
	assert.Equal(t, args, processCommandArgs(args))
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"uhctl", "--help"}, handleNakedCommand([]string{"uhctl"}))
	assert.Equal(t, []string{"uhctl", "show"}, handleNakedCommand([]string{"uhctl", "show"}))
}
