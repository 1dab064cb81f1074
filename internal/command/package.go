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

// packageCommandAction switches package and language. Any selected version
// range is cleared.
func packageCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if err := requireArgs(cmd, 1, 1); err != nil {
		return err
	}

	pkg, err := selection.ParsePackage(cmd.Args().First())
	if err != nil {
		return err
	}

	var lang selection.Language
	if l := cmd.String("language"); l != "" {
		if lang, err = selection.ParseLanguage(l); err != nil {
			return err
		}
		if !pkg.Supports(lang) {
			log.Warnf("%s does not support %s, using %s", pkg, lang.Label(), pkg.DefaultLanguage().Label())
		}
	}

	session, ctrl := OpenSession(cmd)
	s, err := ctrl.SetPackageAndLanguage(pkg, lang)
	if err != nil {
		return fmt.Errorf("failed to set package: %w", err)
	}

	return EmitSelection(cmd, session, s)
}

func packageCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "package",
		Usage:     "select the package and language",
		UsageText: "uhctl package <react-native|react-native-windows|react-native-macos> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "project language (cpp or cs) for packages that have several",
			},
		}, NewGlobalFlags(meta)...),
		Action: packageCommandAction,
	}
}
