// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package picker is the interactive terminal front end. It turns key presses
// into controller transitions: package and language switches, version range
// selection, app name edits and setting toggles.
package picker
