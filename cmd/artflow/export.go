// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Export a project file as markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.openDocument(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return doc.WriteXML(cmd.OutOrStdout(), a.cfg.Indent)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := doc.WriteXML(f, a.cfg.Indent); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "markup file to write (default: standard output)")
	return cmd
}
