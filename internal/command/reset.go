// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/urlstore"
)

// resetCommandAction forgets everything stored for the session, app name
// included, so the next command starts from the default selection.
func resetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	session := urlstore.NewSession(cmd.String("session"))
	if err := session.Reset(); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", session.Name, err)
	}

	_, ctrl := OpenSession(cmd)
	return EmitSelection(cmd, session, ctrl.Selection())
}

func resetCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "reset the session to the default selection",
		UsageText: "uhctl reset [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags(meta),
		Action: resetCommandAction,
	}
}
