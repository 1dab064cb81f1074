// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/uhctl/uhctl/internal/links"
	"github.com/uhctl/uhctl/internal/selection"
)

// SelectionView is what the show command prints.
type SelectionView struct {
	Package  selection.Package  `json:"package" yaml:"package" attr:"package"`
	Language selection.Language `json:"language" yaml:"language" attr:"language"`
	From     string             `json:"from" yaml:"from" attr:"from"`
	To       string             `json:"to" yaml:"to" attr:"to"`
	Diff     string             `json:"diff" yaml:"diff" attr:"diff"`
	AppName  string             `json:"appName" yaml:"appName" attr:"appName"`
	Settings selection.Settings `json:"settings" yaml:"settings" attr:"settings"`
	Query    string             `json:"query" yaml:"query" attr:"query"`
	Updated  *time.Time         `json:"updated,omitempty" yaml:"updated,omitempty" attr:"updated"`
}

// NewSelectionView builds the view of s. updated may be zero.
func NewSelectionView(s selection.Selection, updated time.Time) SelectionView {
	v := SelectionView{
		Package:  s.Package,
		Language: s.Language,
		From:     s.From,
		To:       s.To,
		Diff:     s.DiffState().String(),
		AppName:  s.DisplayAppName(),
		Settings: s.Settings,
		Query:    s.Query(),
	}
	if !updated.IsZero() {
		v.Updated = &updated
	}
	return v
}

func (v SelectionView) Headers() []string { return []string{"field", "value"} }

func (v SelectionView) Rows() [][]string {
	rows := [][]string{
		{"package", v.Package.String()},
		{"language", v.Language.Label()},
		{"from", InterfaceToString(v.From, "-")},
		{"to", InterfaceToString(v.To, "-")},
		{"diff", v.Diff},
		{"app name", v.AppName},
		{"settings", InterfaceToString(v.Settings.Names(), "-")},
	}
	if v.Updated != nil {
		rows = append(rows, []string{"updated", humanize.Time(*v.Updated)})
	}
	return rows
}

// Raw is the shareable query string.
func (v SelectionView) Raw() string { return v.Query }

// VersionsView lists catalog versions, marking the selected endpoints.
type VersionsView struct {
	Package  selection.Package  `json:"package" yaml:"package" attr:"package"`
	Language selection.Language `json:"language" yaml:"language" attr:"language"`
	Versions []string           `json:"versions" yaml:"versions" attr:"versions"`
	From     string             `json:"from,omitempty" yaml:"from,omitempty" attr:"from"`
	To       string             `json:"to,omitempty" yaml:"to,omitempty" attr:"to"`
}

func (v VersionsView) Headers() []string { return []string{"version", "mark"} }

func (v VersionsView) Rows() [][]string {
	rows := make([][]string, 0, len(v.Versions))
	for _, ver := range v.Versions {
		mark := ""
		switch ver {
		case v.From:
			mark = "from"
		case v.To:
			mark = "to"
		}
		rows = append(rows, []string{ver, mark})
	}
	return rows
}

func (v VersionsView) Raw() string { return strings.Join(v.Versions, "\n") }

// LinksView wraps links.Set.
type LinksView struct {
	links.Set
}

func (v LinksView) Headers() []string { return []string{"link", "url"} }

func (v LinksView) Rows() [][]string {
	rows := [][]string{{"share", v.Share}}
	if v.Diff != "" {
		rows = append(rows, []string{"diff", v.Diff})
	}
	return append(rows, []string{"releases", v.Releases})
}

// Raw is the share link alone.
func (v LinksView) Raw() string { return v.Share }

// MarshalYAML flattens the embedded Set.
func (v LinksView) MarshalYAML() (interface{}, error) { return v.Set, nil }

// SettingsView lists every known setting and whether it is enabled.
type SettingsView struct {
	Enabled   []string `json:"enabled" yaml:"enabled"`
	Available []string `json:"available" yaml:"available"`
}

// NewSettingsView builds the view of s.
func NewSettingsView(s selection.Settings) SettingsView {
	v := SettingsView{Enabled: s.Names()}
	if v.Enabled == nil {
		v.Enabled = []string{}
	}
	for _, f := range selection.SettingFlags() {
		v.Available = append(v.Available, f.String())
	}
	return v
}

func (v SettingsView) Headers() []string { return []string{"setting", "enabled"} }

func (v SettingsView) Rows() [][]string {
	enabled := map[string]bool{}
	for _, n := range v.Enabled {
		enabled[n] = true
	}
	var rows [][]string
	for _, n := range v.Available {
		rows = append(rows, []string{n, InterfaceToString(enabled[n], "false")})
	}
	return rows
}

func (v SettingsView) Raw() string { return strings.Join(v.Enabled, "\n") }
