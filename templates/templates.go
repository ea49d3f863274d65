// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package templates provides the library of ready-made banner designs
// and stickers, as markup to import onto a canvas.
package templates

import (
	"embed"
	"encoding/base64"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/artflow/base/errors"
	"cogentcore.org/artflow/base/iox"
	"cogentcore.org/artflow/base/iox/yamlx"
	"cogentcore.org/artflow/base/ordmap"
	"cogentcore.org/artflow/place"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

//go:embed data
var builtin embed.FS

// CatalogFile is the name of the catalog file in a template directory.
const CatalogFile = "catalog.yaml"

// AllCategories matches every category in [Library.Filter].
const AllCategories = "All"

// StickerSize is the width and height of a placed sticker.
const StickerSize = 150

// MinSimilarity is the minimum name similarity for a [Library.Find] match.
var MinSimilarity = 0.5

// ErrNotFound is returned for an unknown template id.
var ErrNotFound = errors.New("templates: template not found")

// Kinds are the kinds of templates.
type Kinds int32

const (
	// Design is a whole banner design that replaces the scene.
	Design Kinds = iota

	// Sticker is a small graphic added to the scene as an image.
	Sticker
)

var kindNames = []string{"design", "sticker"}

// String returns the string representation of this Kinds value.
func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the Kinds value from its string representation.
func (k *Kinds) SetString(s string) error {
	i := slices.Index(kindNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("templates.Kinds.SetString: %q is not a valid value", s)
	}
	*k = Kinds(i)
	return nil
}

// Template is one entry of the library.
type Template struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`

	// File is the markup file, relative to the catalog.
	File string `yaml:"file"`

	Kind   Kinds  `yaml:"-"`
	Markup string `yaml:"-"`
}

// Payload returns the sticker as an inline image payload of [StickerSize].
func (t Template) Payload() place.Payload {
	return place.Payload{
		Src:   "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(t.Markup)),
		Width: StickerSize, Height: StickerSize,
	}
}

// catalog is the layout of a [CatalogFile].
type catalog struct {
	Designs  []Template `yaml:"designs"`
	Stickers []Template `yaml:"stickers"`
}

// Library is an ordered set of templates keyed by id.
type Library struct {
	items *ordmap.Map[string, Template]
}

// New returns a library holding the built-in templates.
func New() *Library {
	l := &Library{items: ordmap.New[string, Template]()}
	errors.Must(l.LoadFS(builtin, "data"))
	return l
}

// Default returns the shared library of built-in templates.
// It must not be modified: use [New] for a library to add to.
var Default = sync.OnceValue(New)

// Len returns the number of templates.
func (l *Library) Len() int {
	return l.items.Len()
}

// Add adds or replaces a template.
func (l *Library) Add(t Template) error {
	if t.ID == "" {
		return fmt.Errorf("templates.Add: template %q has no id", t.Name)
	}
	if strings.TrimSpace(t.Markup) == "" {
		return fmt.Errorf("templates.Add: template %q has no markup", t.ID)
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	l.items.Add(t.ID, t)
	return nil
}

// LoadFS adds the templates listed in the [CatalogFile] of the given
// directory of fsys, reading each markup file relative to it.
func (l *Library) LoadFS(fsys fs.FS, dir string) error {
	var c catalog
	if err := iox.OpenFS(&c, fsys, path.Join(dir, CatalogFile), yamlx.NewDecoder); err != nil {
		return fmt.Errorf("templates.LoadFS: %w", err)
	}
	load := func(ts []Template, kind Kinds) error {
		for _, t := range ts {
			b, err := fs.ReadFile(fsys, path.Join(dir, t.File))
			if err != nil {
				return fmt.Errorf("templates.LoadFS: %s: %w", t.ID, err)
			}
			t.Kind, t.Markup = kind, string(b)
			if err := l.Add(t); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Join(load(c.Designs, Design), load(c.Stickers, Sticker))
}

// Get returns the template with the given id.
func (l *Library) Get(id string) (Template, bool) {
	return l.items.Get(id)
}

// Lookup returns the template of the given kind with the given id, or [ErrNotFound].
func (l *Library) Lookup(id string, kind Kinds) (Template, error) {
	t, ok := l.Get(id)
	if !ok || t.Kind != kind {
		return Template{}, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}
	return t, nil
}

// Filter returns the templates of the given kind in the category,
// or in any category for "" or [AllCategories], whose name contains
// the search text, ignoring case.
func (l *Library) Filter(kind Kinds, category, search string) []Template {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []Template
	for _, t := range l.items.All() {
		if t.Kind != kind {
			continue
		}
		if category != "" && category != AllCategories && !strings.EqualFold(t.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories returns the categories of the templates of the given kind,
// in order of first appearance.
func (l *Library) Categories(kind Kinds) []string {
	var cats []string
	for _, t := range l.items.All() {
		if t.Kind == kind && !slices.Contains(cats, t.Category) {
			cats = append(cats, t.Category)
		}
	}
	return cats
}

// Find returns the template whose id or name best matches the query,
// by exact id or Levenshtein similarity of at least [MinSimilarity].
func (l *Library) Find(query string) (Template, bool) {
	if t, ok := l.Get(query); ok {
		return t, true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Template{}, false
	}
	lev := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for id, t := range l.items.All() {
		score := max(strutil.Similarity(q, strings.ToLower(id), lev),
			strutil.Similarity(q, strings.ToLower(t.Name), lev))
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	if bestScore < MinSimilarity {
		return Template{}, false
	}
	return l.Get(best)
}
