// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"cogentcore.org/artflow/suggest"
	"github.com/spf13/cobra"
)

func newSuggestCmd(a *app) *cobra.Command {
	var (
		fa     suggest.FileAdvisor
		kind   string
		prompt string
		accept bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "suggest <project.json>",
		Short: "Apply an advisor proposal from local files to a project",
		Long: `Suggest runs a layout, style or image request against an advisor that
answers from local files: --updates is a JSON array of {"id", "changes"}
objects merged over the matching elements, and --image is an image placed
over the whole canvas, replacing the largest image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var k suggest.Kinds
			if err := k.SetString(kind); err != nil {
				return err
			}
			doc, rec, err := a.openDocument(args[0])
			if err != nil {
				return err
			}
			r := suggest.NewRunner(&fa, 1)
			r.Start(cmd.Context(), suggest.NewRequest(k, prompt, doc))
			res, ok := <-r.Results()
			r.Close()
			if !ok {
				return errors.New("suggest: canceled")
			}
			if _, err := res.Deliver(doc); err != nil {
				return err
			}
			if k != suggest.Image {
				if !accept {
					fmt.Fprintf(cmd.OutOrStdout(), "%d elements proposed; use --accept to apply\n", len(doc.Suggestion()))
					return nil
				}
				doc.AcceptSuggestion()
			}
			if output == "" {
				output = args[0]
			}
			if err := saveDocument(doc, rec, "", output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s applied\n", output, k)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "layout", "request kind: layout, style or image")
	f.StringVar(&prompt, "prompt", "", "prompt passed to the advisor")
	f.StringVar(&fa.UpdatesFile, "updates", "", "JSON file of element updates")
	f.StringVar(&fa.ImageFile, "image", "", "image file returned for image requests")
	f.BoolVar(&accept, "accept", false, "accept the proposal and save the project")
	f.StringVarP(&output, "output", "o", "", "project file to write (default: overwrite the input)")
	return cmd
}
