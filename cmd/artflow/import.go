// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/artflow/document"
	"cogentcore.org/artflow/svg"
	"cogentcore.org/artflow/templates"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var output, name, design string
	cmd := &cobra.Command{
		Use:   "import [template.svg]",
		Short: "Import a markup template onto a canvas and save it as a project file",
		Long: "Import a markup template file, or with --template a design from the template\n" +
			"library, onto the canvas and save it as a project file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (design != "") {
				return errors.New("import needs either a template file or --template")
			}
			doc, err := a.newDocument()
			if err != nil {
				return err
			}
			var base string
			if design != "" {
				t, ok := a.library.Find(design)
				if !ok || t.Kind != templates.Design {
					return fmt.Errorf("no design template matches %q", design)
				}
				if err := importDesign(doc, t); err != nil {
					return err
				}
				base = t.ID
				if name == "" {
					name = t.Name
				}
			} else {
				if err := importFile(doc, args[0]); err != nil {
					return err
				}
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				if name == "" {
					name = filepath.Base(base)
				}
			}
			if output == "" {
				output = base + ".json"
			}
			if err := saveDocument(doc, nil, name, output); err != nil {
				return err
			}
			c := doc.Canvas()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d elements on %s (%gx%g)\n", output, doc.Len(), c.ID, c.Width, c.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (default: template name with .json)")
	cmd.Flags().StringVar(&name, "name", "", "project name (default: template name)")
	cmd.Flags().StringVarP(&design, "template", "t", "", "id or name of a design in the template library")
	return cmd
}

// importDesign loads the library design into the document.
func importDesign(doc *document.Document, t templates.Template) error {
	return logImportProblems(doc.LoadDesign(t.ID), t.ID)
}

// importFile loads the template into the document. Per-node import
// problems are logged and do not fail the import.
func importFile(doc *document.Document, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return logImportProblems(doc.LoadTemplate(string(b)), filename)
}

// logImportProblems logs the per-node problems of an import and drops them.
func logImportProblems(err error, source string) error {
	var ie *svg.ImportError
	if errors.As(err, &ie) {
		slog.Warn("template imported with problems", "template", source, "skipped", ie.Skipped(), "problems", len(ie.Nodes))
		for _, ne := range ie.Nodes {
			slog.Info(ne.Error())
		}
		return nil
	}
	return err
}
