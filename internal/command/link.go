// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/links"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/output"
	"github.com/uhctl/uhctl/internal/selection"
)

// linkCommandAction prints the share, diff and releases links of the session.
// With --file it prints the raw URL of one file at the target version instead.
func linkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(links.Set{})) {
		return nil
	}

	_, ctrl := OpenSession(cmd)
	s := ctrl.Selection()

	if path := cmd.String("file"); path != "" {
		if s.DiffState() != selection.Active {
			return links.ErrDiffInactive
		}
		_, err := fmt.Fprintln(Writer(cmd), links.BinaryFileURL(s.Package, s.Language, s.To, path))
		return err
	}

	set, err := links.For(cmd.String("base-url"), s)
	if err != nil {
		return fmt.Errorf("failed to build links: %w", err)
	}

	return Emit(cmd, output.LinksView{Set: set}, "")
}

func linkCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "link",
		Usage:     "print the links for the session selection",
		UsageText: "uhctl link [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags(meta),
			NewBaseURLFlag(meta),
			&cli.StringFlag{
				Name:  "file",
				Usage: "print the raw URL of this app file at the target version",
			},
			NewSchemaFlag(),
		),
		Action: linkCommandAction,
	}
}
