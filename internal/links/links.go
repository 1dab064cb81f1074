// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package links derives the URLs a selection points at: the shareable page
// link and the diff, release list and binary file locations in the
// upgrade-helper diff repositories.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/uhctl/uhctl/internal/selection"
)

// DefaultBaseURL is the public upgrade-helper page.
const DefaultBaseURL = "https://react-native-community.github.io/upgrade-helper/"

const (
	rawHost    = "https://raw.githubusercontent.com"
	githubHost = "https://github.com"
)

// ErrDiffInactive is returned for links that need a version pair.
var ErrDiffInactive = errors.New("no version range selected")

// Repository returns the GitHub repository holding the diffs for pkg.
func Repository(pkg selection.Package) string {
	switch pkg {
	case selection.ReactNativeWindows, selection.ReactNativeMacOS:
		return "acoates-ms/rnw-diff"
	default:
		return "react-native-community/rn-diff-purge"
	}
}

// pathPrefix is the per-package directory inside the diff repository.
func pathPrefix(pkg selection.Package, lang selection.Language) string {
	switch pkg {
	case selection.ReactNativeWindows:
		return fmt.Sprintf("%s/%s/", pkg, lang)
	case selection.ReactNativeMacOS:
		return fmt.Sprintf("%s/", pkg)
	default:
		return ""
	}
}

// ShareURL is base with the selection's query attached. An empty base uses
// DefaultBaseURL.
func ShareURL(base string, s selection.Selection) (string, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	u.RawQuery = s.Query()
	return u.String(), nil
}

// DiffURL is the raw unified diff between the selected versions.
func DiffURL(s selection.Selection) (string, error) {
	if s.DiffState() != selection.Active {
		return "", ErrDiffInactive
	}
	return fmt.Sprintf("%s/%s/diffs/diffs/%s%s..%s.diff",
		rawHost, Repository(s.Package), pathPrefix(s.Package, s.Language), s.From, s.To), nil
}

// ReleasesURL is the RELEASES file listing every version the diff repository
// knows for pkg/lang.
func ReleasesURL(pkg selection.Package, lang selection.Language) string {
	return fmt.Sprintf("%s/%s/master/%sRELEASES", rawHost, Repository(pkg), pathPrefix(pkg, lang))
}

// BinaryFileURL points at a binary file of the generated app at version.
// path is relative to the app root, as it appears in the diff.
func BinaryFileURL(pkg selection.Package, lang selection.Language, ver, path string) string {
	branch := ver
	if prefix := pathPrefix(pkg, lang); prefix != "" {
		branch = prefix + ver
	}
	return fmt.Sprintf("%s/%s/raw/release/%s/%s",
		githubHost, Repository(pkg), branch, strings.TrimPrefix(path, "/"))
}

// Set bundles every link for s. Diff is empty while the diff is inactive.
type Set struct {
	Share    string `json:"share" yaml:"share" attr:"share"`
	Diff     string `json:"diff,omitempty" yaml:"diff,omitempty" attr:"diff"`
	Releases string `json:"releases" yaml:"releases" attr:"releases"`
}

// For builds the Set for s against base.
func For(base string, s selection.Selection) (Set, error) {
	share, err := ShareURL(base, s)
	if err != nil {
		return Set{}, err
	}
	set := Set{
		Share:    share,
		Releases: ReleasesURL(s.Package, s.Language),
	}
	if diff, err := DiffURL(s); err == nil {
		set.Diff = diff
	}
	return set, nil
}
