// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/artflow/base/logx"
	"cogentcore.org/artflow/config"
	"cogentcore.org/artflow/document"
	"cogentcore.org/artflow/presets"
	"cogentcore.org/artflow/project"
	"cogentcore.org/artflow/scene"
	"cogentcore.org/artflow/templates"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands.
type app struct {
	ConfigFile string
	Preset     string

	VeryVerbose, Verbose, Quiet bool

	cfg     *config.Config
	catalog *presets.Catalog
	library *templates.Library
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "artflow",
		Short:        "Banner design tool: import, place, export and store scenes",
		SilenceUsage: true,
	}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logx.UserLevel = logx.LevelFromFlags(a.VeryVerbose, a.Verbose, a.Quiet)
		logx.SetDefaultLogger()
		return a.load()
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.ConfigFile, "config", config.DefaultFile(), "config file")
	pf.StringVarP(&a.Preset, "preset", "p", "", "canvas preset id or name (default from config)")
	pf.BoolVar(&a.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&a.Quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(newPresetsCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newTemplatesCmd(a))
	cmd.AddCommand(newStickerCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newPlaceCmd(a))
	cmd.AddCommand(newSuggestCmd(a))
	cmd.AddCommand(newProjectCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	return cmd
}

func (a *app) load() error {
	cfg, err := config.Open(a.ConfigFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	a.catalog = cat
	lib, err := cfg.Library()
	if err != nil {
		return err
	}
	a.library = lib
	slog.Debug("config loaded", "file", a.ConfigFile, "dataDir", cfg.DataDir, "presets", cat.Len(), "templates", lib.Len())
	return nil
}

// canvas returns the canvas selected by the --preset flag or the config.
func (a *app) canvas() (scene.Canvas, error) {
	id := a.Preset
	if id == "" {
		id = a.cfg.Preset
	}
	c, ok := a.catalog.Find(id)
	if !ok {
		return scene.Canvas{}, fmt.Errorf("unknown preset %q", id)
	}
	return c, nil
}

// newDocument returns an empty document on the selected canvas.
func (a *app) newDocument() (*document.Document, error) {
	c, err := a.canvas()
	if err != nil {
		return nil, err
	}
	doc := document.New(c, a.cfg.HistoryDepth)
	doc.Templates = a.library
	return doc, nil
}

// openDocument returns a document loaded from a project file.
func (a *app) openDocument(filename string) (*document.Document, *project.Record, error) {
	rec, err := project.OpenFile(filename)
	if err != nil {
		return nil, nil, err
	}
	doc := document.New(rec.Canvas, a.cfg.HistoryDepth)
	doc.Templates = a.library
	doc.Load(rec)
	return doc, rec, nil
}

// saveDocument writes the document to a project file, keeping the
// identity and timestamps of rec when it is not nil.
func saveDocument(doc *document.Document, rec *project.Record, name, filename string) error {
	out := doc.Record(name)
	if rec != nil {
		out.UserID, out.Thumbnail = rec.UserID, rec.Thumbnail
		out.CreatedAt, out.UpdatedAt = rec.CreatedAt, rec.UpdatedAt
		if name == "" {
			out.Name = rec.Name
		}
	}
	return project.SaveFile(out, filename)
}
