// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		spec string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.spec))
		})
	}
}

func TestLineHandler_Fields(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "debug")
	t.Cleanup(func() { InitLoggerTo(&bytes.Buffer{}, "") })

	WithFields(log.Fields{"package": "react-native"}).Debug("selection loaded")

	out := buf.String()
	assert.Contains(t, out, " D selection loaded")
	assert.Contains(t, out, "package=react-native")
}

func TestTracef_OnlyWhenTraceEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "debug")
	t.Cleanup(func() { InitLoggerTo(&bytes.Buffer{}, "") })

	Tracef("hidden %d", 1)
	assert.Empty(t, buf.String())

	InitLoggerTo(&buf, "trace")
	Tracef("shown %d", 2)
	assert.Contains(t, buf.String(), " T shown 2")
}
