// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/filters"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/output"
	"github.com/uhctl/uhctl/internal/selection"
)

// releasesCommandAction lists the catalog versions of the selected package and
// language, marking the selected range.
func releasesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	session, ctrl := OpenSession(cmd)
	s := ctrl.Selection()

	cat, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	showRCs := s.Settings.Enabled(selection.ShowLatestRCs)
	if cmd.IsSet("rc") {
		showRCs = cmd.Bool("rc")
	}

	versions, err := cat.Versions(s.Package, s.Language, showRCs)
	if err != nil {
		return fmt.Errorf("failed to list releases: %w", err)
	}
	versions = filters.FilterVersions(versions, cmd.String("filter"))
	if cmd.Bool("latest") && len(versions) > 0 {
		versions = versions[len(versions)-1:]
	}

	v := output.VersionsView{
		Package:  s.Package,
		Language: s.Language,
		Versions: versions,
		From:     s.From,
		To:       s.To,
	}
	return Emit(cmd, v, fmt.Sprintf("%s (%s), session %s", s.Package, s.Language.Label(), session.Name))
}

func releasesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "releases",
		Usage:     "list the known versions of the selected package",
		UsageText: "uhctl releases [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags(meta),
			NewCatalogFlag(meta),
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated list of filters to apply to the versions",
			},
			&cli.BoolFlag{
				Name:  "latest",
				Usage: "only show the newest version",
			},
			&cli.BoolFlag{
				Name:  "rc",
				Usage: "include release candidates, overriding the session setting",
			},
		),
		Action: releasesCommandAction,
	}
}
