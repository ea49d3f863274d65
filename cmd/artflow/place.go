// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/artflow/place"
	"github.com/spf13/cobra"
)

func newPlaceCmd(a *app) *cobra.Command {
	var selected, output string
	mode := place.Soft
	cmd := &cobra.Command{
		Use:   "place <project.json> <image>",
		Short: "Place an image into a project, replacing the selected or largest image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, rec, err := a.openDocument(args[0])
			if err != nil {
				return err
			}
			p, err := place.PayloadFromFile(args[1])
			if err != nil {
				return err
			}
			if selected != "" {
				if err := doc.Select(selected); err != nil {
					return err
				}
			}
			d := doc.PlaceImage(p, mode)
			if output == "" {
				output = args[0]
			}
			if err := saveDocument(doc, rec, "", output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", output, d)
			return nil
		},
	}
	cmd.Flags().StringVar(&selected, "select", "", "id of the element to treat as selected")
	cmd.Flags().Var(modeValue{&mode}, "mode", "placement mode: soft or strict")
	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (default: overwrite the input)")
	return cmd
}

// modeValue adapts [place.Mode] to a [pflag.Value].
type modeValue struct{ m *place.Mode }

func (v modeValue) String() string     { return v.m.String() }
func (v modeValue) Set(s string) error { return v.m.SetString(s) }
func (v modeValue) Type() string       { return "mode" }
