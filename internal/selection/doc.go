// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package selection models what an upgrade-helper user has picked: the
// package being upgraded, its native language, the from/to versions, the app
// name and the display settings. It also maps a Selection to and from the
// shareable URL query.
//
// Every operation here is a pure function over an immutable Selection value.
// Side effects (writing the URL) belong to package controller.
package selection
