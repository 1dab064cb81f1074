// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/config"
	"github.com/uhctl/uhctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the uhctl
	// subcommand and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	meta := meta.Meta{
		Args:      args,
		Config:    config.Config,
		Context:   ctx,
		Namespace: ns,
	}

	app := &cli.Command{
		Name:  "uhctl",
		Usage: "React Native Upgrade Helper Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "uhctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		appnameCommandBuilder(meta),
		compareCommandBuilder(meta),
		linkCommandBuilder(meta),
		openCommandBuilder(meta),
		packageCommandBuilder(meta),
		pickCommandBuilder(meta),
		rangeCommandBuilder(meta),
		releasesCommandBuilder(meta),
		resetCommandBuilder(meta),
		settingsCommandBuilder(meta),
		showCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
