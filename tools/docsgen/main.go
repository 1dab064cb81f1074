// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a markdown page per uhctl subcommand, built from the
// live command tree plus the examples in <docs>/examples.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/uhctl/uhctl/internal/command"
	"github.com/uhctl/uhctl/internal/version"
)

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	ID       string
	Short    string
	Usage    string
	Flags    []Flag
	Examples []Example
	Date     string
	Version  string
}

const page = `# uhctl {{ .ID }}

{{ .Short }}

    {{ .Usage }}

## Flags
{{ range .Flags }}
- ` + "`{{ .Syntax }}`" + ` {{ .Description }}{{ if .Default }} (default: {{ .Default }}){{ end }}
{{- end }}
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}
_uhctl {{ .Version }}, {{ .Date }}_
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	examples := map[string][]Example{}
	if data, err := os.ReadFile(filepath.Join(docs, "examples.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &examples); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"uhctl"})
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(page))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		data := TemplateData{
			ID:       sub.Name,
			Short:    sub.Usage,
			Usage:    sub.UsageText,
			Flags:    flags(sub),
			Examples: examples[sub.Name],
			Date:     time.Now().Format("January 2, 2006"),
			Version:  version.String(),
		}

		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, data); err != nil {
			panic(err)
		}
		file.Close()
	}
}

func flags(cmd *cli.Command) []Flag {
	var out []Flag
	for _, f := range cmd.Flags {
		names := f.Names()
		var syntax []string
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		fl := Flag{Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			fl.Description = df.GetUsage()
			fl.Default = df.GetValue()
		}
		out = append(out, fl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Syntax < out[j].Syntax })
	return out
}
