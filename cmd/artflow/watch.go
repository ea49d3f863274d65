// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cogentcore.org/artflow/document"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch <template.svg>",
		Short: "Re-import a template whenever it changes and write the normalized markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.newDocument()
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".out.svg"
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchTemplate(ctx, doc, args[0], func(doc *document.Document) error {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := doc.WriteXML(f, a.cfg.Indent); err != nil {
					f.Close()
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d elements\n", output, doc.Len())
				return f.Close()
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "markup file to write (default: <template>.out.svg)")
	return cmd
}

// watchTemplate imports the template into the document, calls updated,
// and repeats that every time the file is written or replaced, until
// ctx is done. The directory is watched so that editors that save by
// renaming are followed. Import errors are logged and watching goes on.
func watchTemplate(ctx context.Context, doc *document.Document, filename string, updated func(doc *document.Document) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	reload := func() error {
		if err := importFile(doc, abs); err != nil {
			slog.Error("watch: import failed", "file", filename, "err", err)
			return nil
		}
		return updated(doc)
	}
	if err := reload(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("watch: template changed", "op", event.Op)
			if err := reload(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch: watcher error", "err", err)
		}
	}
}
