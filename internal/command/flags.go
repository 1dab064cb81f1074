// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	toml "github.com/urfave/cli-altsrc/v3/toml"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/config"
	"github.com/uhctl/uhctl/internal/links"
	"github.com/uhctl/uhctl/internal/meta"
	"github.com/uhctl/uhctl/internal/urlstore"
)

// NewSchemaFlag constructs the "schema" flag. Flags keep parse state, so
// every command gets its own.
func NewSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}
}

// NewGlobalFlags returns the flags every session command takes. Values not
// given on the command line come from the environment and then from the
// config file, namespaced to the subcommand first.
func NewGlobalFlags(m meta.Meta) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		NewConfigFlag(m, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		NewSessionFlag(m),
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewSessionFlag constructs the "session" flag naming the persisted selection
// to act on.
func NewSessionFlag(m meta.Meta) *cli.StringFlag {
	return NewConfigFlag(m, &cli.StringFlag{
		Name:  "session",
		Usage: "named session holding the current selection",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("UHCTL_SESSION"),
		),
		Value: urlstore.DefaultSession,
		Validator: func(value string) error {
			return FlagValidators(value, SessionValidator)
		},
	})
}

// NewCatalogFlag constructs the "catalog" flag pointing at a releases JSON
// document. Empty means the built-in catalog.
func NewCatalogFlag(m meta.Meta) *cli.StringFlag {
	return NewConfigFlag(m, &cli.StringFlag{
		Name:  "catalog",
		Usage: "releases JSON file to list versions from",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("UHCTL_CATALOG"),
		),
	})
}

// NewBaseURLFlag constructs the "base-url" flag used for share links.
func NewBaseURLFlag(m meta.Meta) *cli.StringFlag {
	return NewConfigFlag(m, &cli.StringFlag{
		Name:  "base-url",
		Usage: "upgrade helper address share links point at",
		Value: links.DefaultBaseURL,
	})
}

// NewConfigFlag chains the loaded config file, if any, onto flag's sources.
func NewConfigFlag(m meta.Meta, flag *cli.StringFlag) *cli.StringFlag {
	if m.ConfigFile() == "" {
		return flag
	}
	return NameSpacedValueChainFlagFromConfigFile(m.Namespace, m.ConfigFile(), flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	source := yaml.YAML
	if config.IsTOML(path) {
		source = toml.TOML
	}

	if ns != "" {
		src := source(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := source(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
