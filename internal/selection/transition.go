// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import "fmt"

// SetPackageAndLanguage switches to pkg. lang is optional ("" means not
// supplied) and only honored when pkg supports more than one language:
//   - a supported lang is used as is;
//   - no lang keeps the current language when pkg is already selected,
//     otherwise pkg's default;
//   - an unsupported lang falls back to pkg's default.
//
// The version pair is always cleared, so the result is Inactive.
func SetPackageAndLanguage(s Selection, pkg Package, lang Language) Selection {
	if !pkg.Valid() {
		pkg = PrimaryPackage
	}

	next := s
	next.Package = pkg
	next.Language = resolveLanguage(s, pkg, lang)
	next.From, next.To = "", ""
	return next
}

func resolveLanguage(s Selection, pkg Package, lang Language) Language {
	if !pkg.MultiLanguage() {
		return pkg.DefaultLanguage()
	}
	if lang == "" {
		if s.Package == pkg && pkg.Supports(s.Language) {
			return s.Language
		}
		return pkg.DefaultLanguage()
	}
	if pkg.Supports(lang) {
		return lang
	}
	return pkg.DefaultLanguage()
}

// SetVersionRange selects the from/to pair. Equal or missing endpoints leave s
// untouched and return ErrInvalidVersionPairing. An endpoint that would not
// survive a reload from the URL returns ErrInvalidVersion.
func SetVersionRange(s Selection, from, to string) (Selection, error) {
	if from == "" || to == "" || sameVersion(from, to) {
		return s, ErrInvalidVersionPairing
	}
	for _, v := range []string{from, to} {
		if !ValidVersion(v) {
			return s, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
		}
	}
	next := s
	next.From, next.To = from, to
	return next, nil
}

// SetAppName stores the raw input value. See Selection.DisplayAppName for the
// empty-name fallback.
func SetAppName(s Selection, name string) Selection {
	next := s
	next.AppName = name
	return next
}

// SetSettingFlags replaces the enabled flags with exactly flags.
func SetSettingFlags(s Selection, flags []SettingFlag) Selection {
	next := s
	next.Settings = NewSettings(flags...)
	return next
}
