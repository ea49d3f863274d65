// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/artflow/base/iox/imagex"
	"cogentcore.org/artflow/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	l := New()
	assert.Equal(t, 21, l.Len())
	assert.Len(t, l.Filter(Design, "", ""), 10)
	assert.Len(t, l.Filter(Sticker, AllCategories, ""), 11)
	assert.Equal(t, []string{"YouTube", "Instagram", "Business", "Colorful", "Minimal", "Facebook", "Twitter"}, l.Categories(Design))
	assert.Equal(t, []string{"Social", "Shapes", "Emoji", "Decorative", "Badge"}, l.Categories(Sticker))

	tm, ok := l.Get("tmpl-009")
	require.True(t, ok)
	assert.Equal(t, "Hiring Post", tm.Name)
	assert.Equal(t, Design, tm.Kind)
	assert.Contains(t, tm.Markup, "DESIGNER &amp; DEVELOPER")
	assert.Same(t, Default(), Default())
}

func TestBuiltinImport(t *testing.T) {
	for _, tm := range New().items.Values() {
		t.Run(tm.ID, func(t *testing.T) {
			els, err := svg.Import(tm.Markup, 1280, 720)
			require.NoError(t, err)
			assert.NotEmpty(t, els)
		})
	}
}

func TestFilter(t *testing.T) {
	l := New()
	tests := []struct {
		kind     Kinds
		category string
		search   string
		want     []string
	}{
		{Design, "YouTube", "", []string{"tmpl-001", "tmpl-004", "tmpl-007"}},
		{Design, "youtube", "cyber", []string{"tmpl-007"}},
		{Design, "", "SALE", []string{"tmpl-003"}},
		{Design, "Business", "news", nil},
		{Sticker, "Emoji", "", []string{"stk-emoji-1", "stk-emoji-2"}},
		{Sticker, "All", "e", []string{"stk-social-1", "stk-social-2", "stk-social-3", "stk-emoji-1", "stk-emoji-2", "stk-deco-1", "stk-deco-2", "stk-badge-1", "stk-badge-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.search, func(t *testing.T) {
			var ids []string
			for _, tm := range l.Filter(tt.kind, tt.category, tt.search) {
				ids = append(ids, tm.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFind(t *testing.T) {
	l := New()
	tests := []struct {
		query string
		want  string
	}{
		{"tmpl-002", "tmpl-002"},
		{"breaking news", "tmpl-010"},
		{"podcast covr", "tmpl-005"},
		{"Star Burst", "stk-shape-2"},
		{"zzzzzzzzzzzzzzzzzzzz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			tm, ok := l.Find(tt.query)
			assert.Equal(t, tt.want != "", ok)
			assert.Equal(t, tt.want, tm.ID)
		})
	}
}

func TestLookup(t *testing.T) {
	l := New()
	tm, err := l.Lookup("stk-badge-1", Sticker)
	require.NoError(t, err)
	assert.Equal(t, "New", tm.Name)

	_, err = l.Lookup("stk-badge-1", Design)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.Lookup("nope", Design)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayload(t *testing.T) {
	tm, ok := New().Get("stk-emoji-2")
	require.True(t, ok)
	p := tm.Payload()
	assert.True(t, strings.HasPrefix(p.Src, "data:image/svg+xml;base64,"))
	assert.Equal(t, float32(StickerSize), p.Width)
	assert.Equal(t, float32(StickerSize), p.Height)
	b, _, err := imagex.DecodeDataURI(p.Src)
	require.NoError(t, err)
	assert.Equal(t, tm.Markup, string(b))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"mine/catalog.yaml": {Data: []byte(`designs:
  - id: my-1
    name: My Banner
    category: Custom
    file: banner.svg
  - id: tmpl-001
    name: Neon Override
    category: YouTube
    file: banner.svg
stickers:
  - id: my-stk
    category: Custom
    file: dot.svg
`)},
		"mine/banner.svg": {Data: []byte(`<svg viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`)},
		"mine/dot.svg":    {Data: []byte(`<svg viewBox="0 0 2 2"><circle r="1" cx="1" cy="1"/></svg>`)},
	}
	l := New()
	require.NoError(t, l.LoadFS(fsys, "mine"))
	assert.Equal(t, 23, l.Len())
	tm, ok := l.Get("tmpl-001")
	require.True(t, ok)
	assert.Equal(t, "Neon Override", tm.Name)
	stk, err := l.Lookup("my-stk", Sticker)
	require.NoError(t, err)
	assert.Equal(t, "my-stk", stk.Name)
	assert.Equal(t, []string{"my-1"}, ids(l.Filter(Design, "Custom", "")))

	// the shared library is untouched
	assert.Equal(t, 21, Default().Len())

	err = New().LoadFS(fstest.MapFS{"catalog.yaml": {Data: []byte("designs:\n  - id: x\n    file: missing.svg\n")}}, ".")
	assert.Error(t, err)
	err = New().LoadFS(fstest.MapFS{}, ".")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	l := New()
	assert.Error(t, l.Add(Template{Name: "no id", Markup: "<svg/>"}))
	assert.Error(t, l.Add(Template{ID: "empty", Markup: "  "}))
	require.NoError(t, l.Add(Template{ID: "x", Markup: "<svg/>"}))
	tm, _ := l.Get("x")
	assert.Equal(t, "x", tm.Name)
}

func TestKinds(t *testing.T) {
	var k Kinds
	require.NoError(t, k.SetString("Sticker"))
	assert.Equal(t, Sticker, k)
	assert.Error(t, k.SetString("poster"))
	assert.Equal(t, Sticker, k)
	assert.Equal(t, "Kinds(7)", Kinds(7).String())
}

func ids(ts []Template) []string {
	out := make([]string, len(ts))
	for i, tm := range ts {
		out[i] = tm.ID
	}
	return out
}
