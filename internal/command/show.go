// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/output"
)

func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(output.SelectionView{})) {
		return nil
	}

	session, ctrl := OpenSession(cmd)
	return EmitSelection(cmd, session, ctrl.Selection())
}

func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show the session selection and diff state",
		UsageText: "uhctl show [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewGlobalFlags(meta), NewSchemaFlag()),
		Action: showCommandAction,
	}
}
