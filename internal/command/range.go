// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/selection"
)

// rangeCommandAction selects the from/to pair and so activates the diff. With
// a single argument the newest catalog version is the target. Equal versions
// leave the session untouched and are not an error.
func rangeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if err := requireArgs(cmd, 1, 2); err != nil {
		return err
	}

	session, ctrl := OpenSession(cmd)
	cur := ctrl.Selection()

	cat, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	from, to := cmd.Args().Get(0), cmd.Args().Get(1)
	if to == "" {
		showRCs := cur.Settings.Enabled(selection.ShowLatestRCs)
		if to, err = cat.Latest(cur.Package, cur.Language, showRCs); err != nil {
			return fmt.Errorf("failed to find latest version: %w", err)
		}
	}

	for _, v := range []string{from, to} {
		if !selection.ValidVersion(v) {
			return fmt.Errorf("%w: %q", selection.ErrInvalidVersion, v)
		}
		if !cat.Contains(cur.Package, cur.Language, v) {
			log.Warnf("%s is not a known %s (%s) release", v, cur.Package, cur.Language.Label())
		}
	}

	s, err := ctrl.SetVersionRange(from, to)
	if errors.Is(err, selection.ErrInvalidVersionPairing) {
		log.Warnf("from and to are both %s, selection unchanged", from)
	} else if err != nil {
		return fmt.Errorf("failed to set range: %w", err)
	}

	return EmitSelection(cmd, session, s)
}

func rangeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "range",
		Usage:     "select the from and to versions",
		UsageText: "uhctl range <from> [<to>] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewGlobalFlags(meta), NewCatalogFlag(meta)),
		Action: rangeCommandAction,
	}
}
