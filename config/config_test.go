// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "~/.artflow", cfg.DataDir)
	assert.Equal(t, 50, cfg.HistoryDepth)
	assert.Equal(t, "yt-channel", cfg.Preset)
	assert.True(t, cfg.Indent)
	assert.Equal(t, "local", cfg.User)
	assert.Empty(t, cfg.PresetsFile)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(fn, []byte(`
data-dir = "`+filepath.ToSlash(dir)+`"
history-depth = 10
preset = "ig-sq"
indent = false
`), 0o644))

	cfg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir), filepath.ToSlash(cfg.DataDir))
	assert.Equal(t, 10, cfg.HistoryDepth)
	assert.Equal(t, "ig-sq", cfg.Preset)
	assert.False(t, cfg.Indent)
	assert.Equal(t, "local", cfg.User, "unset keys keep their defaults")
	assert.Equal(t, filepath.Join(cfg.DataDir, "projects.db"), cfg.DatabasePath())
}

func TestOpenMissing(t *testing.T) {
	cfg, err := Open(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cfg.DataDir, home))
	assert.Equal(t, 50, cfg.HistoryDepth)
}

func TestOpenInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "history-depth = = 3"},
		{"range", "history-depth = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), Filename)
			require.NoError(t, os.WriteFile(fn, []byte(tt.text), 0o644))
			_, err := Open(fn)
			assert.Error(t, err)
		})
	}
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", Filename)
	cfg := New()
	cfg.DataDir = t.TempDir()
	cfg.Preset = "fb-cover"
	cfg.Database = ":memory:"
	require.NoError(t, cfg.Save(fn))
	back, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
	assert.Equal(t, ":memory:", back.DatabasePath())
}

func TestCatalog(t *testing.T) {
	cfg := New()
	cat, err := cfg.Catalog()
	require.NoError(t, err)
	_, ok := cat.Get("yt-thumb")
	assert.True(t, ok)

	cfg.PresetsFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err = cfg.Catalog()
	assert.Error(t, err)
}

func TestLibrary(t *testing.T) {
	cfg := New()
	lib, err := cfg.Library()
	require.NoError(t, err)
	assert.Equal(t, 21, lib.Len())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("stickers:\n  - id: dot\n    name: Dot\n    category: Custom\n    file: dot.svg\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dot.svg"), []byte(`<svg viewBox="0 0 2 2"><circle r="1" cx="1" cy="1"/></svg>`), 0o644))
	cfg.TemplatesDir = dir
	lib, err = cfg.Library()
	require.NoError(t, err)
	assert.Equal(t, 22, lib.Len())
	_, ok := lib.Get("dot")
	assert.True(t, ok)

	cfg.TemplatesDir = filepath.Join(dir, "missing")
	_, err = cfg.Library()
	assert.Error(t, err)
}
