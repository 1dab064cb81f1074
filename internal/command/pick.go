// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/picker"
)

// ErrNotATerminal is returned when pick runs without an interactive terminal.
var ErrNotATerminal = errors.New("pick needs an interactive terminal")

// isTerminal is swapped out in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func pickCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if !isTerminal() {
		return ErrNotATerminal
	}

	cat, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	session, ctrl := OpenSession(cmd)
	if err := picker.Run(ctrl, cat); err != nil {
		return err
	}

	return EmitSelection(cmd, session, ctrl.Selection())
}

func pickCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "pick",
		Usage:     "interactive package and version picker",
		UsageText: "uhctl pick [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewGlobalFlags(meta), NewCatalogFlag(meta)),
		Action: pickCommandAction,
	}
}
