// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
)

// appnameCommandAction prints or sets the app name the diff is rendered for.
// The app name stays out of share links.
func appnameCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if err := requireArgs(cmd, 0, 1); err != nil {
		return err
	}

	session, ctrl := OpenSession(cmd)

	if cmd.Args().Len() == 0 && !cmd.Bool("reset") {
		_, err := fmt.Fprintln(Writer(cmd), ctrl.Selection().DisplayAppName())
		return err
	}

	s, err := ctrl.SetAppName(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("failed to set app name: %w", err)
	}

	return EmitSelection(cmd, session, s)
}

func appnameCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "appname",
		Usage:     "show or set the app name",
		UsageText: "uhctl appname [<name>] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "go back to the default app name",
			},
		}, NewGlobalFlags(meta)...),
		Action: appnameCommandAction,
	}
}
