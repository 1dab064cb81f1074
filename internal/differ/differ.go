// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/selection"
)

// Result is the outcome of a comparison.
type Result struct {
	Left, Right selection.Selection
	Modified    bool
	Text        string
}

// Compare loads both queries and diffs the resulting selections. App name is
// never part of a link, so it never shows up as a difference.
func Compare(left, right url.Values, coloring bool) (Result, error) {
	res := Result{
		Left:  selection.LoadInitialSelection(left),
		Right: selection.LoadInitialSelection(right),
	}

	lj, err := marshal(res.Left)
	if err != nil {
		return res, err
	}
	rj, err := marshal(res.Right)
	if err != nil {
		return res, err
	}
	log.Tracef("compare: %s <> %s", lj, rj)

	delta, err := gojsondiff.New().Compare(lj, rj)
	if err != nil {
		return res, fmt.Errorf("failed to compare selections: %w", err)
	}
	if !delta.Modified() {
		return res, nil
	}
	res.Modified = true

	var ldoc map[string]interface{}
	if err := json.Unmarshal(lj, &ldoc); err != nil {
		return res, fmt.Errorf("failed to unmarshal selection: %w", err)
	}

	f := formatter.NewAsciiFormatter(ldoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	})
	text, err := f.Format(delta)
	if err != nil {
		return res, err
	}
	res.Text = text
	return res, nil
}

// marshal renders s with its diff state and without the app name.
func marshal(s selection.Selection) ([]byte, error) {
	doc := struct {
		selection.Selection
		AppName string `json:"appName,omitempty"`
		Diff    string `json:"diff"`
	}{
		Selection: s,
		Diff:      s.DiffState().String(),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selection: %w", err)
	}
	return b, nil
}
