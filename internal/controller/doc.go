// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package controller owns the current selection and keeps the URL store in
// step with it. Each accepted transition is followed by exactly one
// synchronous URL write; rejected transitions and app name edits write
// nothing.
package controller
