// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/artflow/scene"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [query]",
		Short: "List the canvas presets, or show the one best matching the query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := termenv.NewOutput(cmd.OutOrStdout())
			if len(args) == 1 {
				c, ok := a.catalog.Find(args[0])
				if !ok {
					return fmt.Errorf("no preset matches %q", args[0])
				}
				printPreset(out, c, true)
				return nil
			}
			for _, c := range a.catalog.All() {
				printPreset(out, c, false)
			}
			return nil
		},
	}
}

func printPreset(out *termenv.Output, c scene.Canvas, areas bool) {
	fmt.Fprintf(out, "%-16s %5gx%-5g %-10s %s\n", out.String(c.ID).Bold(), c.Width, c.Height, c.Category, c.Name)
	if !areas {
		return
	}
	for _, sa := range c.SafeAreas {
		fmt.Fprintf(out, "  %-18s %g,%g %gx%g %s\n", sa.ID, sa.X, sa.Y, sa.Width, sa.Height,
			out.String(sa.Label).Foreground(out.Color(sa.Stroke)))
	}
}
