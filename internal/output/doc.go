// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders selections, version lists, links and settings as
// text tables, JSON, YAML or raw values.
package output
