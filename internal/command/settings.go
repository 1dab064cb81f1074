// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/output"
	"github.com/uhctl/uhctl/internal/selection"
)

// settingsCommandAction replaces the enabled settings with exactly the named
// ones. Without names it lists the settings; --clear disables them all.
func settingsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	session, ctrl := OpenSession(cmd)
	names := cmd.Args().Slice()

	if len(names) == 0 && !cmd.Bool("clear") {
		return Emit(cmd, output.NewSettingsView(ctrl.Selection().Settings), "session "+session.Name)
	}

	flags, err := selection.ParseSettingFlags(names)
	if err != nil {
		return err
	}

	s, err := ctrl.SetSettingFlags(flags)
	if err != nil {
		return fmt.Errorf("failed to set settings: %w", err)
	}

	return EmitSelection(cmd, session, s)
}

func settingsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "settings",
		Usage:     "list or set the enabled settings",
		UsageText: `uhctl settings ["<setting>"...] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "clear",
				Usage: "disable every setting",
			},
		}, NewGlobalFlags(meta)...),
		Action: settingsCommandAction,
	}
}
