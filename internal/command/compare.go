// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/differ"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/selection"
)

// compareCommandAction diffs the selections two links load as. A single
// argument is compared against the session.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if err := requireArgs(cmd, 1, 2); err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 1 {
		_, ctrl := OpenSession(cmd)
		args = []string{ctrl.Selection().Query(), args[0]}
	}

	left, err := selection.ParseQuery(args[0])
	if err != nil {
		log.Warnf("using what parsed of %q: %v", args[0], err)
	}
	right, err := selection.ParseQuery(args[1])
	if err != nil {
		log.Warnf("using what parsed of %q: %v", args[1], err)
	}

	res, err := differ.Compare(left, right, cmd.Bool("color"))
	if err != nil {
		return fmt.Errorf("failed to compare: %w", err)
	}

	w := Writer(cmd)
	if !res.Modified {
		_, err = fmt.Fprintln(w, "no differences")
		return err
	}
	text := res.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = fmt.Fprint(w, text)
	return err
}

func compareCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "show how two links differ",
		UsageText: "uhctl compare <url> [<url>] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			},
			NewSessionFlag(meta),
		},
		Action: compareCommandAction,
	}
}
