// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/catalog"
	"github.com/uhctl/uhctl/internal/config"
	"github.com/uhctl/uhctl/internal/controller"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/output"
	"github.com/uhctl/uhctl/internal/selection"
	"github.com/uhctl/uhctl/internal/urlstore"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenSession loads the session named by --session and puts a controller in
// front of it. Sessions idle for longer than cache.clean hours are dropped
// first.
func OpenSession(cmd *cli.Command) (*urlstore.Session, *controller.Controller) {
	cleanHours, _ := config.GetInt("cache.clean")
	if err := urlstore.Purge(cleanHours); err != nil {
		log.Warnf("failed to purge stale sessions: %v", err)
	}

	session := urlstore.NewSession(cmd.String("session"))
	ctrl := controller.New(session, controller.WithObserver(func(prev, next selection.Selection) {
		log.Debugf("session %s: %q -> %q", session.Name, prev.Query(), next.Query())
	}))
	return session, ctrl
}

// LoadCatalog loads the catalog named by --catalog, or the built-in one.
func LoadCatalog(cmd *cli.Command) (*catalog.Static, error) {
	cat, err := catalog.Load(cmd.String("catalog"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Debugf("catalog: %s", cat.Source)
	return cat, nil
}

// Writer is where command output goes.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// Emit renders v per the --output, --color and --titles flags.
func Emit(cmd *cli.Command, v output.Renderable, header string) error {
	opts := output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
		Header: header,
	}
	return output.Spit(Writer(cmd), v, opts)
}

// EmitSelection renders s as the current state of session.
func EmitSelection(cmd *cli.Command, session *urlstore.Session, s selection.Selection) error {
	return Emit(cmd, output.NewSelectionView(s, session.LastWrite()), "session "+session.Name)
}

// DumpSchemaIfRequested writes the field list for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(t, Writer(cmd))
		return true
	}
	return false
}

// requireArgs fails unless cmd got between min and max positional args.
func requireArgs(cmd *cli.Command, min, max int) error {
	n := cmd.Args().Len()
	if n < min || n > max {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	return nil
}
