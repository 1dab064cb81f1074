// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import "github.com/hashicorp/go-version"

// DefaultAppName is shown in the diff when the user leaves the app name empty.
const DefaultAppName = "RnDiffApp"

// DiffState tells whether a concrete version pair has been chosen.
type DiffState int

const (
	Inactive DiffState = iota
	Active
)

func (d DiffState) String() string {
	if d == Active {
		return "active"
	}
	return "inactive"
}

// Selection is the complete user selection. Treat it as immutable: the
// transition functions return modified copies.
type Selection struct {
	Package  Package  `json:"package" yaml:"package"`
	Language Language `json:"language" yaml:"language"`
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`

	// AppName is the raw input field value. It is never written to the URL.
	AppName  string   `json:"appName" yaml:"appName"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// Default is the selection of a fresh page with no query.
func Default() Selection {
	return Selection{
		Package:  PrimaryPackage,
		Language: PrimaryPackage.DefaultLanguage(),
	}
}

// DiffState reports whether s has a distinct, complete version pair.
func (s Selection) DiffState() DiffState {
	if s.From != "" && s.To != "" && !sameVersion(s.From, s.To) {
		return Active
	}
	return Inactive
}

// DisplayAppName is the app name used when rendering a diff.
func (s Selection) DisplayAppName() string {
	if s.AppName == "" {
		return DefaultAppName
	}
	return s.AppName
}

// ShareEqual reports whether a and b produce the same shareable URL, i.e.
// they are equal ignoring AppName.
func ShareEqual(a, b Selection) bool {
	a.AppName, b.AppName = "", ""
	return a == b
}

// sameVersion reports whether a and b name the same version, so "0.70" and
// "0.70.0" match. Strings that do not parse are compared as is.
func sameVersion(a, b string) bool {
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}
