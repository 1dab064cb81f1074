// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/uhctl/uhctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded configuration and context, and the subcommand name used as the
// config namespace.
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	Namespace string
}

// ConfigFile is the path of the loaded config file, or "" when none was found.
func (m Meta) ConfigFile() string {
	return m.Config.Source
}
