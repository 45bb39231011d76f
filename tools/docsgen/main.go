// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a markdown page per tblsel subcommand, built from the
// live command tree so flags and usage never drift from the binary.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/command"
	"github.com/tfctl/tblsel/internal/version"
)

type Flag struct {
	Names       string
	Description string
	TakesValue  bool
}

type TemplateData struct {
	ID      string
	Short   string
	Usage   string
	Flags   []Flag
	Date    string
	Version string
}

const pageTemplate = `# tblsel {{ .ID }}

{{ .Short }}

## Usage

` + "```" + `
{{ .Usage }}
` + "```" + `
{{- if .Flags }}

## Flags

| Flag | Description |
| ---- | ----------- |
{{- range .Flags }}
| ` + "`{{ .Names }}{{ if .TakesValue }} VALUE{{ end }}`" + ` | {{ .Description }} |
{{- end }}
{{- end }}

_Generated {{ .Date }} for tblsel {{ .Version }}._
`

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	if err := generate(filepath.Join(docs, "commands")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate renders one page per subcommand into folder.
func generate(folder string) error {
	app, err := command.InitApp(context.Background(), []string{"tblsel"}, nil)
	if err != nil {
		return err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(folder, 0o755); err != nil { //nolint:mnd
		return err
	}

	for _, sub := range app.Commands {
		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			return err
		}

		err = tmpl.Execute(file, pageData(sub))
		file.Close()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
	}

	return nil
}

func pageData(sub *cli.Command) TemplateData {
	data := TemplateData{
		ID:      sub.Name,
		Short:   sub.Usage,
		Usage:   sub.UsageText,
		Date:    time.Now().Format("January 2, 2006"),
		Version: version.Version,
	}
	if data.Usage == "" {
		data.Usage = "tblsel " + sub.Name
	}

	for _, f := range sub.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}
		df, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}

		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		data.Flags = append(data.Flags, Flag{
			Names:       strings.Join(names, ", "),
			Description: df.GetUsage(),
			TakesValue:  df.TakesValue(),
		})
	}

	return data
}
