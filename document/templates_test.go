// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"strings"
	"testing"

	"cogentcore.org/artflow/scene"
	"cogentcore.org/artflow/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDesign(t *testing.T) {
	d := New(testCanvas(), 0)
	require.NoError(t, d.LoadDesign("tmpl-004"))
	els := d.Elements()
	require.Len(t, els, 7)
	assert.Equal(t, scene.Rect, els[0].Kind)
	assert.Equal(t, "#000000", els[0].Fill)
	assert.Equal(t, "THE NEW", els[3].Text)

	tests := []struct {
		name string
		id   string
	}{
		{"sticker id", "stk-social-1"},
		{"unknown", "tmpl-999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.LoadDesign(tt.id)
			assert.ErrorIs(t, err, templates.ErrNotFound)
			assert.Equal(t, 7, d.Len())
		})
	}

	assert.True(t, d.Undo())
	assert.Zero(t, d.Len())
}

func TestAddSticker(t *testing.T) {
	d := New(testCanvas(), 0)
	d.Add(rect(0, 0))
	id, err := d.AddSticker("stk-emoji-2", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, id, d.SelectedID())
	el := d.Element(id)
	require.NotNil(t, el)
	assert.Equal(t, scene.Image, el.Kind)
	assert.True(t, strings.HasPrefix(el.Src, "data:image/svg+xml;base64,"))
	assert.Equal(t, float32(10), el.X)
	assert.Equal(t, float32(20), el.Y)
	assert.Equal(t, float32(templates.StickerSize), el.EffectiveWidth())
	assert.Equal(t, 2, d.Len())

	_, err = d.AddSticker("tmpl-001", 0, 0)
	assert.ErrorIs(t, err, templates.ErrNotFound)

	assert.True(t, d.Undo())
	assert.Equal(t, 1, d.Len())
}

func TestCustomLibrary(t *testing.T) {
	lib := templates.New()
	require.NoError(t, lib.Add(templates.Template{ID: "mine", Markup: `<svg viewBox="0 0 10 10"><circle r="5" cx="5" cy="5"/></svg>`}))
	d := New(testCanvas(), 0)
	d.Templates = lib
	require.NoError(t, d.LoadDesign("mine"))
	els := d.Elements()
	require.Len(t, els, 1)
	assert.Equal(t, scene.Circle, els[0].Kind)
	assert.InDelta(t, 1080, els[0].Width, 1e-3)
}
