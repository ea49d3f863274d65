// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/artflow/templates"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	var category string
	var stickers bool
	cmd := &cobra.Command{
		Use:   "templates [search]",
		Short: "List the designs of the template library, or the stickers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := templates.Design
			if stickers {
				kind = templates.Sticker
			}
			search := ""
			if len(args) == 1 {
				search = args[0]
			}
			list := a.library.Filter(kind, category, search)
			if len(list) == 0 {
				return fmt.Errorf("no %s matches %q in category %q", kind, search, category)
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			for _, t := range list {
				fmt.Fprintf(out, "%-14s %-12s %s\n", out.String(t.ID).Bold(), t.Category, t.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", templates.AllCategories, "category to list")
	cmd.Flags().BoolVarP(&stickers, "stickers", "s", false, "list stickers instead of designs")
	return cmd
}

func newStickerCmd(a *app) *cobra.Command {
	var output string
	var x, y float32
	cmd := &cobra.Command{
		Use:   "sticker <project.json> <sticker>",
		Short: "Add a sticker from the template library to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, rec, err := a.openDocument(args[0])
			if err != nil {
				return err
			}
			t, ok := a.library.Find(args[1])
			if !ok || t.Kind != templates.Sticker {
				return fmt.Errorf("no sticker matches %q", args[1])
			}
			id, err := doc.AddSticker(t.ID, x, y)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}
			if err := saveDocument(doc, rec, "", output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: added %s as %s\n", output, t.Name, id)
			return nil
		},
	}
	cmd.Flags().Float32Var(&x, "x", 100, "horizontal position of the sticker")
	cmd.Flags().Float32Var(&y, "y", 100, "vertical position of the sticker")
	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (default: overwrite the input)")
	return cmd
}
