// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/selection"
)

//go:embed releases.json
var defaultReleases []byte

// ErrNoVersions is returned when the catalog has nothing for a package and
// language.
var ErrNoVersions = errors.New("no versions known")

// Provider supplies ordered version lists.
type Provider interface {
	// Versions returns the known versions of pkg/lang, oldest first. Release
	// candidates are only included when showRCs is set.
	Versions(pkg selection.Package, lang selection.Language, showRCs bool) ([]string, error)
}

type key struct {
	pkg  selection.Package
	lang selection.Language
}

// Static is a Provider over a parsed releases document.
type Static struct {
	Source   string
	releases map[key]version.Collection
}

// Default returns the catalog compiled into the binary.
func Default() *Static {
	s, err := Parse(defaultReleases)
	if err != nil {
		// The embedded document is validated by tests.
		panic(fmt.Sprintf("embedded releases document: %v", err))
	}
	s.Source = "builtin"
	return s
}

// Load reads the releases document at path. An empty path gives Default.
func Load(path string) (*Static, error) {
	if path == "" {
		return Default(), nil
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	s, err := Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse builds a Static from a releases document. Entries that do not parse
// as versions are skipped; unknown packages are ignored.
func Parse(doc []byte) (*Static, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("releases document is not valid JSON")
	}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, errors.New("releases document must be a JSON object")
	}

	s := &Static{releases: map[key]version.Collection{}}
	for _, pkg := range selection.Packages() {
		node := root.Get(gjson.Escape(pkg.String()))
		if !node.Exists() {
			continue
		}
		for _, lang := range pkg.Languages() {
			list := node
			if node.IsObject() {
				list = node.Get(lang.String())
			}
			if vs := parseList(pkg, list); len(vs) > 0 {
				s.releases[key{pkg, lang}] = vs
			}
		}
	}
	return s, nil
}

func parseList(pkg selection.Package, list gjson.Result) version.Collection {
	var out version.Collection
	seen := map[string]bool{}
	for _, item := range list.Array() {
		raw := item.String()
		v, err := version.NewVersion(raw)
		if err != nil {
			log.Debugf("catalog: skipping %s version %q: %v", pkg, raw, err)
			continue
		}
		if seen[v.Original()] {
			continue
		}
		seen[v.Original()] = true
		out = append(out, v)
	}
	sort.Sort(out)
	return out
}

// Versions implements Provider. With showRCs, only release candidates newer
// than the latest stable release are added; older candidates are superseded.
func (s *Static) Versions(pkg selection.Package, lang selection.Language, showRCs bool) ([]string, error) {
	all := s.releases[key{pkg, lang}]
	if len(all) == 0 {
		return nil, fmt.Errorf("%w for %s/%s", ErrNoVersions, pkg, lang)
	}

	var latestStable *version.Version
	for _, v := range all {
		if v.Prerelease() == "" {
			latestStable = v
		}
	}

	var out []string
	for _, v := range all {
		if v.Prerelease() != "" {
			if !showRCs || (latestStable != nil && !v.GreaterThan(latestStable)) {
				continue
			}
		}
		out = append(out, v.Original())
	}
	return out, nil
}

// Contains reports whether v is a known version of pkg/lang, release
// candidates included.
func (s *Static) Contains(pkg selection.Package, lang selection.Language, v string) bool {
	for _, known := range s.releases[key{pkg, lang}] {
		if known.Original() == v {
			return true
		}
	}
	return false
}

// Latest returns the newest version Versions would list.
func (s *Static) Latest(pkg selection.Package, lang selection.Language, showRCs bool) (string, error) {
	vs, err := s.Versions(pkg, lang, showRCs)
	if err != nil {
		return "", err
	}
	return vs[len(vs)-1], nil
}
