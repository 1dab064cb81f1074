// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package urlstore holds the current location query. The controller is its
// only writer.
package urlstore
