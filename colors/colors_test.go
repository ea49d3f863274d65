// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		str     string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#10B981", color.RGBA{0x10, 0xb9, 0x81, 255}, false},
		{"#ff000080", color.RGBA{128, 0, 0, 128}, false},
		{"red", color.RGBA{255, 0, 0, 255}, false},
		{"  CornflowerBlue ", color.RGBA{100, 149, 237, 255}, false},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 255}, false},
		{"rgb(100%, 0%, 0%)", color.RGBA{255, 0, 0, 255}, false},
		{"rgba(239, 68, 68, 0.1)", color.RGBA{24, 7, 7, 26}, false},
		{"hsl(0, 100%, 50%)", color.RGBA{255, 0, 0, 255}, false},
		{"none", Transparent, false},
		{"", Transparent, false},
		{"#12", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
		{"rgb(1,2)", color.RGBA{}, true},
		{"rgb(a,b,c)", color.RGBA{}, true},
	}
	for _, test := range tests {
		c, err := FromString(test.str)
		if test.wantErr {
			assert.Error(t, err, test.str)
			continue
		}
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, c, test.str)
	}
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "#10b981", AsHex(color.RGBA{0x10, 0xb9, 0x81, 255}))
	assert.Equal(t, "#10b981", AsString(color.RGBA{0x10, 0xb9, 0x81, 255}))
	c, err := FromString("rgba(255, 0, 0, 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, "rgba(255, 0, 0, 0.502)", AsString(c))
}

func TestWithOpacity(t *testing.T) {
	s, err := WithOpacity("#3b82f6", 1)
	assert.NoError(t, err)
	assert.Equal(t, "#3b82f6", s)

	s, err = WithOpacity("white", 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "rgba(255, 255, 255, 0.502)", s)

	_, err = WithOpacity("bogus", 0.5)
	assert.Error(t, err)
}

func TestIsNone(t *testing.T) {
	assert.True(t, IsNone(""))
	assert.True(t, IsNone(" None "))
	assert.True(t, IsNone("transparent"))
	assert.False(t, IsNone("#000"))
	assert.True(t, Valid("blue"))
	assert.False(t, Valid("blu"))
}
