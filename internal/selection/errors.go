// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import "errors"

var (
	// ErrInvalidVersionPairing is returned when a version range cannot be
	// active (equal or missing endpoints). Callers treat it as a no-op.
	ErrInvalidVersionPairing = errors.New("invalid version pairing")

	// ErrUnrecognizedURLParameter marks a query key that is not part of the
	// URL representation.
	ErrUnrecognizedURLParameter = errors.New("unrecognized url parameter")

	// ErrUnsupportedPackageLanguage marks a language the package does not
	// support. It is corrected to the package default, never surfaced.
	ErrUnsupportedPackageLanguage = errors.New("unsupported package/language combination")

	ErrUnknownPackage  = errors.New("unknown package")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownSetting  = errors.New("unknown setting")
	ErrInvalidVersion  = errors.New("invalid version")
)
