// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"fmt"
	"strings"
)

// Package identifies the native platform repository being upgraded.
type Package string

const (
	ReactNative        Package = "react-native"
	ReactNativeWindows Package = "react-native-windows"
	ReactNativeMacOS   Package = "react-native-macos"
)

// PrimaryPackage is used whenever the URL does not name a known package.
const PrimaryPackage = ReactNative

// Language is the native language variant of a package's template app.
type Language string

const (
	Cpp    Language = "cpp"
	CSharp Language = "cs"
)

// packageLanguages lists the supported languages per package, default first.
var packageLanguages = map[Package][]Language{
	ReactNative:        {Cpp},
	ReactNativeWindows: {Cpp, CSharp},
	ReactNativeMacOS:   {Cpp},
}

// Packages returns every supported package, primary first.
func Packages() []Package {
	return []Package{ReactNative, ReactNativeWindows, ReactNativeMacOS}
}

// ParsePackage maps a package name onto a known Package. Matching is case
// insensitive and accepts the short aliases rn, rnw and rnm.
func ParsePackage(s string) (Package, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "react-native", "rn":
		return ReactNative, nil
	case "react-native-windows", "rnw":
		return ReactNativeWindows, nil
	case "react-native-macos", "rnm":
		return ReactNativeMacOS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPackage, s)
}

// ParseLanguage maps a language name onto a known Language. "c#" and "c++"
// are accepted as aliases.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpp", "c++":
		return Cpp, nil
	case "cs", "c#":
		return CSharp, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Languages returns the languages p supports, default first. Unknown packages
// report the primary package's languages.
func (p Package) Languages() []Language {
	langs, ok := packageLanguages[p]
	if !ok {
		langs = packageLanguages[PrimaryPackage]
	}
	out := make([]Language, len(langs))
	copy(out, langs)
	return out
}

// DefaultLanguage is the language used when none (or an unsupported one) is
// given for p.
func (p Package) DefaultLanguage() Language {
	return p.Languages()[0]
}

// MultiLanguage reports whether the language choice is meaningful for p.
func (p Package) MultiLanguage() bool {
	return len(p.Languages()) > 1
}

// Supports reports whether lang is one of p's languages.
func (p Package) Supports(lang Language) bool {
	for _, l := range p.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// Valid reports whether p is a known package.
func (p Package) Valid() bool {
	_, ok := packageLanguages[p]
	return ok
}

func (p Package) String() string { return string(p) }

func (l Language) String() string { return string(l) }

// Label is the human name of the language.
func (l Language) Label() string {
	switch l {
	case Cpp:
		return "C++"
	case CSharp:
		return "C#"
	}
	return string(l)
}
