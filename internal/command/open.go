// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/selection"
)

// openCommandAction replaces the session selection with whatever the given
// link loads as. Unparseable pieces are dropped with a warning.
func openCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if err := requireArgs(cmd, 1, 1); err != nil {
		return err
	}

	raw := cmd.Args().First()
	q, err := selection.ParseQuery(raw)
	if err != nil {
		log.Warnf("using what parsed of %q: %v", raw, err)
	}

	session, ctrl := OpenSession(cmd)
	s, err := ctrl.Open(q)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", raw, err)
	}

	return EmitSelection(cmd, session, s)
}

func openCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "load a share link or query into the session",
		UsageText: "uhctl open <url-or-query> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags(meta),
		Action: openCommandAction,
	}
}
