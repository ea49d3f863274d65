// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the artflow tool,
// read from a TOML file with defaults from struct field tags.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/artflow/base/errors"
	"cogentcore.org/artflow/base/iox/tomlx"
	"cogentcore.org/artflow/base/reflectx"
	"cogentcore.org/artflow/presets"
	"cogentcore.org/artflow/templates"
	"github.com/mitchellh/go-homedir"
)

// Filename is the name of the config file looked up in the data directory.
const Filename = "artflow.toml"

// Config is the main config struct of the artflow tool.
type Config struct {

	// DataDir holds the project database and the config file.
	// A leading ~ is expanded to the home directory.
	DataDir string `default:"~/.artflow" toml:"data-dir"`

	// HistoryDepth is the maximum number of undo steps kept per document.
	HistoryDepth int `default:"50" toml:"history-depth"`

	// Preset is the id of the canvas preset for new documents.
	Preset string `default:"yt-channel" toml:"preset"`

	// PresetsFile is an optional TOML or YAML file of extra presets.
	PresetsFile string `toml:"presets-file"`

	// TemplatesDir is an optional directory of extra templates and
	// stickers, listed in its catalog.yaml.
	TemplatesDir string `toml:"templates-dir"`

	// Indent is whether exported markup is indented.
	Indent bool `default:"true" toml:"indent"`

	// User is the owner of projects saved by this tool.
	User string `default:"local" toml:"user"`

	// Database is the project database file, relative to DataDir.
	Database string `default:"projects.db" toml:"database"`
}

// SetFromDefaults sets the values of the given config
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg *Config) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// New returns a config with the default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Open returns the defaults overridden by the given TOML file.
// A missing file is not an error. Paths are expanded and the
// result is validated.
func Open(filename string) (*Config, error) {
	cfg := New()
	if filename != "" {
		err := tomlx.Open(cfg, filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := cfg.Expand(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return tomlx.Save(cfg, filename)
}

// Expand expands a leading ~ in the file paths.
func (cfg *Config) Expand() error {
	var errs []error
	for _, p := range []*string{&cfg.DataDir, &cfg.PresetsFile, &cfg.TemplatesDir} {
		x, err := homedir.Expand(*p)
		errs = append(errs, err)
		if err == nil {
			*p = x
		}
	}
	return errors.Join(errs...)
}

// Validate checks the value ranges of the config.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.HistoryDepth < 1 {
		errs = append(errs, errors.New("config: history-depth must be at least 1"))
	}
	if cfg.DataDir == "" {
		errs = append(errs, errors.New("config: data-dir is empty"))
	}
	return errors.Join(errs...)
}

// DatabasePath returns the path of the project database.
func (cfg *Config) DatabasePath() string {
	if cfg.Database == ":memory:" || filepath.IsAbs(cfg.Database) {
		return cfg.Database
	}
	return filepath.Join(cfg.DataDir, cfg.Database)
}

// DefaultFile returns the path of the config file in the default data directory.
func DefaultFile() string {
	dir, err := homedir.Expand(New().DataDir)
	if err != nil {
		return Filename
	}
	return filepath.Join(dir, Filename)
}

// Catalog returns the built-in presets plus those of PresetsFile.
func (cfg *Config) Catalog() (*presets.Catalog, error) {
	cat := presets.New()
	if cfg.PresetsFile == "" {
		return cat, nil
	}
	return cat, cat.LoadFile(cfg.PresetsFile)
}

// Library returns the built-in templates plus those of TemplatesDir.
func (cfg *Config) Library() (*templates.Library, error) {
	if cfg.TemplatesDir == "" {
		return templates.Default(), nil
	}
	lib := templates.New()
	return lib, lib.LoadFS(os.DirFS(cfg.TemplatesDir), ".")
}
