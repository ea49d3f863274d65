// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets provides the catalog of named canvas configurations.
package presets

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/artflow/base/iox/tomlx"
	"cogentcore.org/artflow/base/iox/yamlx"
	"cogentcore.org/artflow/base/ordmap"
	"cogentcore.org/artflow/scene"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultID is the id of the default preset.
const DefaultID = "yt-channel"

// MinSimilarity is the minimum name similarity for a [Catalog.Find] match.
var MinSimilarity = 0.5

const (
	guideSafe  = "#10b981"
	guideInfo  = "#3b82f6"
	guideAvoid = "#ef4444"
	avoidShade = "rgba(239, 68, 68, 0.1)"
)

// Builtin returns the built-in canvas presets, in display order.
func Builtin() []scene.Canvas {
	return []scene.Canvas{
		{ID: "yt-channel", Name: "YouTube Channel Art", Width: 2560, Height: 1440, Category: scene.CategoryYouTube,
			SafeAreas: []scene.SafeArea{
				{ID: "safe-text", X: 507, Y: 508, Width: 1546, Height: 423, Label: "Safe Area (All Devices)", Stroke: guideSafe},
				{ID: "desktop-max", X: 0, Y: 508, Width: 2560, Height: 423, Label: "Desktop Max", Stroke: guideInfo},
			}},
		{ID: "yt-thumb", Name: "YouTube Thumbnail", Width: 1280, Height: 720, Category: scene.CategoryYouTube,
			SafeAreas: []scene.SafeArea{
				{ID: "timestamp", X: 1050, Y: 610, Width: 210, Height: 90, Label: "Avoid (Timestamp)", Stroke: guideAvoid, Fill: avoidShade},
			}},
		{ID: "ig-sq", Name: "Instagram Post", Width: 1080, Height: 1080, Category: scene.CategoryInstagram},
		{ID: "ig-port", Name: "Instagram Portrait", Width: 1080, Height: 1350, Category: scene.CategoryInstagram,
			SafeAreas: []scene.SafeArea{
				{ID: "ig-feed-preview", X: 0, Y: 135, Width: 1080, Height: 1080, Label: "Feed Preview (1:1)", Stroke: guideInfo},
			}},
		{ID: "ig-story", Name: "Instagram Story", Width: 1080, Height: 1920, Category: scene.CategoryInstagram,
			SafeAreas: []scene.SafeArea{
				{ID: "story-ui-top", X: 0, Y: 0, Width: 1080, Height: 250, Label: "Avoid (Profile UI)", Stroke: guideAvoid, Fill: avoidShade},
				{ID: "story-ui-bottom", X: 0, Y: 1670, Width: 1080, Height: 250, Label: "Avoid (Swipe UI)", Stroke: guideAvoid, Fill: avoidShade},
			}},
		{ID: "fb-cover", Name: "Facebook Cover", Width: 820, Height: 312, Category: scene.CategoryFacebook,
			SafeAreas: []scene.SafeArea{
				{ID: "fb-mobile", X: 90, Y: 0, Width: 640, Height: 312, Label: "Mobile Safe Area", Stroke: guideSafe},
			}},
		{ID: "twitter-header", Name: "Twitter Header", Width: 1500, Height: 500, Category: scene.CategoryTwitter,
			SafeAreas: []scene.SafeArea{
				{ID: "twitter-pfp", X: 50, Y: 250, Width: 200, Height: 200, Label: "Profile Pic Area", Stroke: guideAvoid},
			}},
	}
}

// Catalog is an ordered set of canvas presets keyed by id.
// The catalog never hands out references to its own entries.
type Catalog struct {
	presets *ordmap.Map[string, scene.Canvas]
}

// New returns a catalog holding the [Builtin] presets.
func New() *Catalog {
	c := &Catalog{presets: ordmap.New[string, scene.Canvas]()}
	for _, p := range Builtin() {
		c.presets.Add(p.ID, p)
	}
	return c
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return c.presets.Len()
}

// Default returns the default preset.
func (c *Catalog) Default() scene.Canvas {
	if p, ok := c.Get(DefaultID); ok {
		return p
	}
	return c.presets.Values()[0].Clone()
}

// Get returns the preset with the given id.
func (c *Catalog) Get(id string) (scene.Canvas, bool) {
	p, ok := c.presets.Get(id)
	if !ok {
		return scene.Canvas{}, false
	}
	return p.Clone(), true
}

// All returns copies of all presets in catalog order.
func (c *Catalog) All() []scene.Canvas {
	vals := c.presets.Values()
	all := make([]scene.Canvas, len(vals))
	for i, p := range vals {
		all[i] = p.Clone()
	}
	return all
}

// Add adds or replaces a preset, after validating its size.
func (c *Catalog) Add(p scene.Canvas) error {
	if p.ID == "" {
		return fmt.Errorf("presets.Add: preset %q has no id", p.Name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("presets.Add: %w", err)
	}
	c.presets.Add(p.ID, p.Clone())
	return nil
}

// Find returns the preset whose id or display name best matches
// the given query, by exact id or Levenshtein similarity
// of at least [MinSimilarity].
func (c *Catalog) Find(query string) (scene.Canvas, bool) {
	if p, ok := c.Get(query); ok {
		return p, true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scene.Canvas{}, false
	}
	lev := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for _, p := range c.presets.Values() {
		score := max(strutil.Similarity(q, strings.ToLower(p.ID), lev),
			strutil.Similarity(q, strings.ToLower(p.Name), lev))
		if score > bestScore {
			best, bestScore = p.ID, score
		}
	}
	if bestScore < MinSimilarity {
		return scene.Canvas{}, false
	}
	return c.Get(best)
}

// Custom returns an ad-hoc canvas of the given size.
func Custom(width, height float32) scene.Canvas {
	return scene.Canvas{
		ID:       "custom",
		Name:     fmt.Sprintf("Custom (%gx%g)", width, height),
		Width:    width,
		Height:   height,
		Category: scene.CategoryCustom,
	}
}

// file is the layout of a presets extension file.
type file struct {
	Presets []scene.Canvas `json:"presets" yaml:"presets" toml:"presets"`
}

// LoadFile merges the presets in the given YAML or TOML file
// into the catalog, replacing presets with the same id.
func (c *Catalog) LoadFile(filename string) error {
	var f file
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(&f, filename)
	case ".toml":
		err = tomlx.Open(&f, filename)
	default:
		return fmt.Errorf("presets.LoadFile: unsupported file type %q", filename)
	}
	if err != nil {
		return fmt.Errorf("presets.LoadFile: %w", err)
	}
	for _, p := range f.Presets {
		if err := c.Add(p); err != nil {
			return err
		}
	}
	return nil
}
