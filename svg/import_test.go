// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"errors"
	"path/filepath"
	"testing"

	"cogentcore.org/artflow/math32"
	"cogentcore.org/artflow/scene"
	. "cogentcore.org/artflow/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func assertBox(t *testing.T, el *scene.Element, x, y, w, h float32) {
	t.Helper()
	assert.InDelta(t, x, el.X, tol, "x")
	assert.InDelta(t, y, el.Y, tol, "y")
	assert.InDelta(t, w, el.Width, tol, "width")
	assert.InDelta(t, h, el.Height, tol, "height")
}

func TestImportViewBoxFit(t *testing.T) {
	els, err := Import(`<svg viewBox="0 0 100 100"><rect x="10" y="10" width="80" height="80"/></svg>`, 800, 800)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, scene.Rect, els[0].Kind)
	assertBox(t, els[0], 80, 80, 640, 640)
	assert.Equal(t, float32(1), els[0].ScaleX)
	assert.Equal(t, "#000000", els[0].Fill)
	assert.NoError(t, els[0].Validate())
}

func TestImportFrame(t *testing.T) {
	tests := []struct {
		name       string
		markup     string
		tw, th     float32
		x, y, w, h float32
	}{
		{"centered", `<svg viewBox="0 0 200 100"><rect width="200" height="100"/></svg>`, 800, 800, 0, 200, 800, 400},
		{"origin", `<svg viewBox="50 50 100 100"><rect x="50" y="50" width="10" height="10"/></svg>`, 100, 100, 0, 0, 10, 10},
		{"width height", `<svg width="200px" height="100"><rect width="200" height="100"/></svg>`, 400, 400, 0, 100, 400, 200},
		{"default size", `<svg><rect width="1080" height="540"/></svg>`, 540, 540, 0, 0, 540, 270},
		{"percent", `<svg viewBox="0 0 100 50"><rect width="100%" height="100%"/></svg>`, 200, 100, 0, 0, 200, 100},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			els, err := Import(test.markup, test.tw, test.th)
			require.NoError(t, err)
			require.Len(t, els, 1)
			assertBox(t, els[0], test.x, test.y, test.w, test.h)
		})
	}
}

func TestImportMalformedViewBox(t *testing.T) {
	els, err := Import(`<svg viewBox="0 0 oops"><rect width="50" height="50"/></svg>`, 200, 200)
	require.Len(t, els, 1)
	assertBox(t, els[0], 0, 0, 100, 100)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Skipped())
	assert.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestImportMalformed(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		"<html><body><p>no vector here</p></body></html>",
		`<svg viewBox="0 0 10 10"><rect width="1"`,
		"<svg><rect></svg>",
		`<svg viewBox="0 0 10 10"><g><rect width="1" height="1"/></svg>`,
	}
	for _, markup := range tests {
		els, err := Import(markup, 100, 100)
		assert.ErrorIs(t, err, ErrMalformedInput, markup)
		assert.Empty(t, els, markup)
	}
	els, err := Import(`<svg/>`, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Empty(t, els)
}

func TestImportNestedGroups(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<g transform="translate(10,20) scale(2)" opacity="0.5">
		<g transform="translate(5,5) rotate(30)">
			<rect x="1" y="2" width="10" height="4" opacity="0.5"/>
		</g>
	</g>
	<rect x="1" y="1" width="1" height="1"/>
</svg>`
	els, err := Import(markup, 100, 100)
	require.NoError(t, err)
	require.Len(t, els, 2)
	r := els[0]
	assertBox(t, r, 22, 34, 20, 8)
	assert.InDelta(t, 30, r.Rotation, tol)
	assert.InDelta(t, 0.25, r.Opacity, tol)
	assertBox(t, els[1], 1, 1, 1, 1)
	assert.Equal(t, float32(0), els[1].Rotation)
	assert.NotEqual(t, els[0].ID, els[1].ID)
}

func TestImportGradient(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<defs>
		<linearGradient id="g1" x1="0%" y1="0%" x2="100%" y2="50%">
			<stop offset="0%" stop-color="#ff0000"/>
			<stop offset="1" style="stop-color: blue; stop-opacity: 0.5"/>
		</linearGradient>
		<linearGradient id="g2" href="#g1" x2="0" y2="1"/>
	</defs>
	<rect width="50" height="20" fill="url(#g1)"/>
	<rect width="50" height="20" fill="url('#g2')"/>
</svg>`
	els, err := Import(markup, 200, 200)
	require.NoError(t, err)
	require.Len(t, els, 2)
	g := els[0].Gradient
	require.NotNil(t, g)
	assert.Equal(t, "", els[0].Fill)
	assert.Equal(t, math32.Vec2(0, 0), g.Start)
	assert.InDelta(t, 100, g.End.X, tol)
	assert.InDelta(t, 20, g.End.Y, tol)
	require.Len(t, g.Stops, 2)
	assert.Equal(t, scene.GradientStop{Offset: 0, Color: "#ff0000"}, g.Stops[0])
	assert.Equal(t, scene.GradientStop{Offset: 1, Color: "rgba(0, 0, 255, 0.502)"}, g.Stops[1])

	g2 := els[1].Gradient
	require.NotNil(t, g2)
	assert.Len(t, g2.Stops, 2)
	assert.InDelta(t, 0, g2.End.X, tol)
	assert.InDelta(t, 40, g2.End.Y, tol)
}

func TestImportUnresolvedGradient(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<rect width="10" height="10" fill="url(#missing)"/>
	<rect x="20" width="10" height="10" fill="none" filter="url(#nofilter)"/>
</svg>`
	els, err := Import(markup, 100, 100)
	require.Len(t, els, 2)
	assert.Equal(t, "#000000", els[0].Fill)
	assert.Nil(t, els[0].Gradient)
	assert.Equal(t, "", els[1].Fill)
	assert.Nil(t, els[1].Shadow)
	assert.ErrorIs(t, err, ErrUnresolvedReference)
	assert.False(t, errors.Is(err, ErrMalformedInput))
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Len(t, ie.Nodes, 2)
	assert.Equal(t, 0, ie.Skipped())
}

func TestImportShadow(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<filter id="s"><feDropShadow dx="2" dy="3" stdDeviation="4" flood-color="#333" flood-opacity="0.4"/></filter>
	<circle cx="50" cy="50" r="10" filter="url(#s)"/>
</svg>`
	els, err := Import(markup, 200, 200)
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, &scene.Shadow{Color: "#333", Blur: 8, OffsetX: 4, OffsetY: 6, Opacity: 0.4}, els[0].Shadow)
}

func TestImportText(t *testing.T) {
	markup := `<svg viewBox="0 0 1000 1000">
	<text x="500" y="100" font-size="40" font-weight="700" font-style="italic" text-decoration="underline" text-anchor="middle">Hello World</text>
	<text x="900" y="200" font-size="100" font-family="'Playfair Display', serif" text-anchor="end">ABCDEFGHIJ</text>
	<text x="10" y="50" font-size="20" fill="none">   </text>
	<text x="10 20 30" y="300" style="font-weight: bold">Split <tspan>across</tspan> spans</text>
</svg>`
	els, err := Import(markup, 1000, 1000)
	require.NoError(t, err)
	require.Len(t, els, 4)

	mid := els[0]
	assert.Equal(t, scene.Text, mid.Kind)
	assert.Equal(t, "Hello World", mid.Text)
	assertBox(t, mid, 250, 92, 500, 0)
	assert.Equal(t, float32(40), mid.FontSize)
	assert.Equal(t, scene.AlignCenter, mid.Align)
	assert.Equal(t, "italic bold", mid.FontStyle.String())
	assert.Equal(t, scene.DecoUnderline, mid.Decoration)
	assert.Equal(t, "Inter", mid.FontFamily)
	assert.Equal(t, "#000000", mid.Fill)

	end := els[1]
	assertBox(t, end, 100, 180, 800, 0)
	assert.Equal(t, scene.AlignRight, end.Align)
	assert.Equal(t, "Playfair Display", end.FontFamily)
	assert.Equal(t, "normal", end.FontStyle.String())

	empty := els[2]
	assert.Equal(t, "Text", empty.Text)
	assert.Equal(t, "#000000", empty.Fill)
	assert.InDelta(t, 10, empty.X, tol)
	assert.InDelta(t, 46, empty.Y, tol)
	assert.Equal(t, scene.AlignLeft, empty.Align)

	spans := els[3]
	assert.Equal(t, "Split across spans", spans.Text)
	assert.InDelta(t, 10, spans.X, tol)
	assert.True(t, spans.FontStyle.HasFlag(scene.Bold))
}

func TestImportShapes(t *testing.T) {
	markup := `<svg xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 100 100">
	<polygon points="0,0 10,0 10,10" transform="translate(5 5)"/>
	<polyline points="0 0 10 10 20 0" fill="none" stroke="red"/>
	<path d="M0 0 C 10 10 20 10 30 0" transform="scale(2 3)"/>
	<line x1="0" y1="0" x2="10" y2="10" stroke="red" stroke-linecap="round"/>
	<ellipse cx="50" cy="50" rx="20" ry="10"/>
	<circle cx="50" cy="50" r="10" stroke="#fff" stroke-width="2" stroke-linejoin="bevel"/>
	<image href="a.png" x="10" y="10"/>
	<image xlink:href="b.png" width="50" height="40"/>
	<image width="50" height="50"/>
	<foreignObject><rect width="1" height="1"/></foreignObject>
</svg>`
	els, err := Import(markup, 100, 100)
	require.NoError(t, err)
	require.Len(t, els, 9)

	poly := els[0]
	assert.Equal(t, scene.Path, poly.Kind)
	assert.Equal(t, "M0 0 L10 0 L10 10 Z", poly.Data)
	assert.InDelta(t, 5, poly.X, tol)
	assert.InDelta(t, 5, poly.Y, tol)
	assert.Equal(t, float32(100), poly.Width)

	line := els[1]
	assert.Equal(t, "M0 0 L10 10 L20 0", line.Data)
	assert.Equal(t, "", line.Fill)
	assert.Equal(t, "red", line.Stroke.Color)
	assert.Equal(t, float32(1), line.Stroke.Width)

	path := els[2]
	assert.Equal(t, "M0 0 C 10 10 20 10 30 0", path.Data)
	assert.InDelta(t, 2, path.ScaleX, tol)
	assert.InDelta(t, 3, path.ScaleY, tol)

	seg := els[3]
	assert.Equal(t, "M0 0 L10 10", seg.Data)
	assert.Equal(t, "", seg.Fill)
	assert.Equal(t, scene.LineCapRound, seg.Stroke.Cap)

	ell := els[4]
	assert.Equal(t, scene.Circle, ell.Kind)
	assertBox(t, ell, 30, 40, 40, 40)
	assert.InDelta(t, 0.5, ell.ScaleY, tol)
	assert.InDelta(t, 20, ell.EffectiveHeight(), tol)

	circ := els[5]
	assertBox(t, circ, 40, 40, 20, 20)
	assert.Equal(t, float32(10), circ.Radius())
	assert.Equal(t, float32(2), circ.Stroke.Width)
	assert.Equal(t, scene.LineJoinBevel, circ.Stroke.Join)

	img := els[6]
	assert.Equal(t, scene.Image, img.Kind)
	assert.Equal(t, "a.png", img.Src)
	assertBox(t, img, 10, 10, 100, 100)
	assert.Equal(t, "", img.Fill)
	assert.Equal(t, "b.png", els[7].Src)
	assertBox(t, els[7], 0, 0, 50, 40)
	assert.True(t, els[8].IsPlaceholder())
}

func TestImportStyles(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<style>
		.accent { fill: #ff0000; }
		#special { fill: #00ff00 }
		rect.big { stroke: blue }
	</style>
	<g fill="#123456">
		<rect width="10" height="10"/>
		<rect class="accent" width="10" height="10" fill="#999"/>
		<rect id="special" class="accent" width="10" height="10"/>
		<rect class="accent" style="fill: #0000ff" width="10" height="10"/>
		<rect class="big" width="10" height="10" fill-opacity="0.5"/>
		<rect display="none" width="10" height="10"/>
		<rect visibility="hidden" width="10" height="10"/>
	</g>
	<rect width="10" height="10"/>
</svg>`
	els, err := Import(markup, 100, 100)
	require.NoError(t, err)
	require.Len(t, els, 7)
	assert.Equal(t, "#123456", els[0].Fill)
	assert.Equal(t, "#ff0000", els[1].Fill)
	assert.Equal(t, "#00ff00", els[2].Fill)
	assert.Equal(t, "#0000ff", els[3].Fill)
	assert.Equal(t, "blue", els[4].Stroke.Color)
	assert.Equal(t, "rgba(18, 52, 86, 0.502)", els[4].Fill)
	assert.False(t, els[5].Visible)
	assert.True(t, els[4].Visible)
	assert.Equal(t, "#000000", els[6].Fill)
}

func TestImportNodeIsolation(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
	<rect width="abc" height="10"/>
	<circle cx="50" cy="50" r="10"/>
	<polygon points="1 2 3"/>
	<g transform="spin(3)"><rect width="5" height="5"/></g>
	<rect width="-5" height="5"/>
</svg>`
	els, err := Import(markup, 100, 100)
	require.Len(t, els, 1)
	assert.Equal(t, scene.Circle, els[0].Kind)
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 4, ie.Skipped())
	assert.ErrorIs(t, err, ErrInvalidAttribute)
	assert.Equal(t, "rect", ie.Nodes[0].Tag)
	assert.Contains(t, err.Error(), "4 node problems")
}

func TestImportFile(t *testing.T) {
	els, err := OpenXML(filepath.Join("testdata", "launch.svg"), 2560, 1440)
	require.NoError(t, err)
	require.Len(t, els, 7)
	require.NoError(t, scene.ValidateList(els))

	bg := els[0]
	assertBox(t, bg, 0, 0, 2560, 1440)
	require.NotNil(t, bg.Gradient)
	assert.InDelta(t, 1440, bg.Gradient.End.Y, tol)

	head := els[1]
	assert.Equal(t, "LAUNCH DAY", head.Text)
	assert.Equal(t, "Poppins", head.FontFamily)
	assert.True(t, head.FontStyle.HasFlag(scene.Bold))
	assert.Equal(t, float32(192), head.FontSize)
	require.NotNil(t, head.Shadow)
	assert.InDelta(t, 16, head.Shadow.Blur, tol)
	assert.InDelta(t, 8, head.Shadow.OffsetY, tol)

	badge := els[3]
	assert.InDelta(t, -12, badge.Rotation, tol)
	assert.InDelta(t, 0.9, badge.Opacity, tol)
	assert.InDelta(t, 32, badge.CornerRadius, tol)

	ring := els[5]
	assert.Equal(t, "", ring.Fill)
	assert.InDelta(t, 12, ring.Stroke.Width, tol)
	assert.True(t, els[6].IsPlaceholder())
}
