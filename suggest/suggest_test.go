// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"cogentcore.org/artflow/document"
	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdvisor moves every element to x = the prompt as a number,
// and generates an image of the given size.
type fakeAdvisor struct {
	width, height float32
	err           error
}

func (fa *fakeAdvisor) Suggest(ctx context.Context, req Request) ([]*scene.Element, error) {
	if fa.err != nil {
		return nil, fa.err
	}
	x, err := strconv.ParseFloat(req.Prompt, 32)
	if err != nil {
		return nil, err
	}
	out := scene.CloneList(req.Elements)
	for _, el := range out {
		el.X = float32(x)
	}
	return out, nil
}

func (fa *fakeAdvisor) Generate(ctx context.Context, prompt string) (place.Payload, error) {
	return place.Payload{Src: "https://example.com/" + prompt + ".png", Width: fa.width, Height: fa.height}, fa.err
}

func testDoc() *document.Document {
	doc := document.New(scene.Canvas{ID: "yt-thumb", Width: 1280, Height: 720}, 0)
	el := scene.NewElement(scene.Rect)
	el.ID = "r1"
	el.Width, el.Height = 100, 50
	doc.Add(el)
	return doc
}

func receive(t *testing.T, r *Runner) *Result {
	t.Helper()
	res, ok := <-r.Results()
	require.True(t, ok)
	return res
}

func TestDeliverLayout(t *testing.T) {
	doc := testDoc()
	r := NewRunner(&fakeAdvisor{}, 1)
	ticket := r.Start(context.Background(), NewRequest(Layout, "300", doc))
	res := receive(t, r)
	assert.Equal(t, ticket, res.Ticket)
	assert.True(t, res.Current())

	canUndo := doc.CanUndo()
	changed, err := res.Deliver(doc)
	require.NoError(t, err)
	assert.True(t, changed)
	require.True(t, doc.HasSuggestion())
	assert.Equal(t, float32(300), doc.Suggestion()[0].X)
	assert.Equal(t, float32(0), doc.Element("r1").X, "live elements are untouched")
	assert.Equal(t, canUndo, doc.CanUndo(), "suggestions are not undo steps")

	require.True(t, doc.AcceptSuggestion())
	assert.Equal(t, float32(300), doc.Element("r1").X)
	r.Close()
}

func TestStaleResults(t *testing.T) {
	doc := testDoc()
	r := NewRunner(&fakeAdvisor{}, 2)
	first := r.Start(context.Background(), NewRequest(Layout, "10", doc))
	second := r.Start(context.Background(), NewRequest(Style, "20", doc))
	assert.Greater(t, second, first)
	r.Close()

	for res := range r.Results() {
		changed, err := res.Deliver(doc)
		require.NoError(t, err)
		assert.Equal(t, res.Ticket == second, changed)
	}
	require.True(t, doc.HasSuggestion())
	assert.Equal(t, float32(20), doc.Suggestion()[0].X)
}

func TestDiscard(t *testing.T) {
	doc := testDoc()
	r := NewRunner(&fakeAdvisor{}, 1)
	r.Start(context.Background(), NewRequest(Layout, "50", doc))
	res := receive(t, r)
	r.Discard()
	assert.False(t, res.Current())
	changed, err := res.Deliver(doc)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, doc.HasSuggestion())
	r.Close()
}

func TestAdvisorError(t *testing.T) {
	doc := testDoc()
	fail := errors.New("quota exceeded")
	r := NewRunner(&fakeAdvisor{err: fail}, 1)
	r.Start(context.Background(), NewRequest(Layout, "1", doc))
	res := receive(t, r)
	changed, err := res.Deliver(doc)
	assert.ErrorIs(t, err, fail)
	assert.False(t, changed)
	assert.False(t, doc.HasSuggestion())
	r.Close()

	r = NewRunner(nil, 1)
	r.Start(context.Background(), NewRequest(Layout, "1", doc))
	res = receive(t, r)
	assert.Error(t, res.Err)
	r.Close()
}

func TestCanceled(t *testing.T) {
	doc := testDoc()
	r := NewRunner(&fakeAdvisor{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Start(ctx, NewRequest(Layout, "1", doc))
	r.Close()
	_, ok := <-r.Results()
	assert.False(t, ok, "nothing is posted once the context is done")
}

func TestDeliverImage(t *testing.T) {
	doc := testDoc()
	for _, id := range []string{"small", "big"} {
		el := scene.NewElement(scene.Image)
		el.ID = id
		el.Width, el.Height = 200, 100
		if id == "big" {
			el.X, el.Y = 40, 30
			el.ScaleX, el.ScaleY = 3, 3
		}
		doc.Add(el)
	}
	doc.Select("r1")
	r := NewRunner(&fakeAdvisor{width: 640, height: 360}, 1)
	r.Start(context.Background(), NewRequest(Image, "sunset", doc))
	res := receive(t, r)
	changed, err := res.Deliver(doc)
	require.NoError(t, err)
	assert.True(t, changed)
	r.Close()

	assert.Nil(t, doc.Element("small"), "strict placement removes the other images")
	big := doc.Element("big")
	require.NotNil(t, big)
	assert.Equal(t, "https://example.com/sunset.png", big.Src)
	assert.Equal(t, float32(0), big.X)
	assert.Equal(t, float32(0), big.Y)
	assert.Equal(t, float32(640), big.Width)
	assert.InDelta(t, 600, big.EffectiveWidth(), 1e-3, "the replaced image keeps its visible width")
	assert.InDelta(t, 337.5, big.EffectiveHeight(), 1e-3)
	assert.NotNil(t, doc.Element("r1"))
}

func TestCover(t *testing.T) {
	canvas := scene.Canvas{Width: 1500, Height: 500}
	p := Cover(place.Payload{Src: "a", Width: 750, Height: 750, X: 9, Rotation: 30}, canvas)
	assert.True(t, p.Placed)
	assert.Equal(t, float32(0), p.X)
	assert.Equal(t, float32(0), p.Rotation)
	assert.Equal(t, float32(2), p.ScaleX)
	assert.InDelta(t, 0.6667, p.ScaleY, 1e-3)

	p = Cover(place.Payload{Src: "b"}, canvas)
	assert.Equal(t, float32(1500), p.Width)
	assert.Equal(t, float32(1), p.ScaleX)
	assert.Equal(t, float32(1), p.ScaleY)
}

func TestKinds(t *testing.T) {
	var k Kinds
	require.NoError(t, k.SetString(" Style "))
	assert.Equal(t, Style, k)
	assert.Equal(t, "image", Image.String())
	assert.Error(t, k.SetString("music"))
	assert.Equal(t, "Kinds(7)", Kinds(7).String())
}

func TestParseUpdates(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		err  bool
	}{
		{"plain", `[{"id":"a","changes":{"x":1}}]`, 1, false},
		{"fenced", "```json\n[{\"id\":\"a\",\"changes\":{}},{\"id\":\"b\"}]\n```", 2, false},
		{"bare fence", "```\n[]\n```", 0, false},
		{"empty", "  ", 0, false},
		{"garbage", "sorry, I can't", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ups, err := ParseUpdates(tt.text)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ups, tt.n)
		})
	}
}

func TestMerge(t *testing.T) {
	a := scene.NewElement(scene.Rect)
	a.ID, a.Fill, a.Width = "a", "#336699", 100
	b := scene.NewElement(scene.Text)
	b.ID, b.Text, b.FontSize = "b", "Hello", 32
	els := []*scene.Element{a, b}

	ups, err := ParseUpdates(`[
		{"id": "a", "changes": {"fill": "#ff0000", "x": 50, "id": "zzz", "type": "circle"}},
		{"id": "b", "changes": {"fontSize": 48, "opacity": 3}},
		{"id": "missing", "changes": {"x": 1}}
	]`)
	require.NoError(t, err)
	out, err := Merge(els, ups)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, scene.Rect, out[0].Kind)
	assert.Equal(t, "#ff0000", out[0].Fill)
	assert.Equal(t, float32(50), out[0].X)
	assert.Equal(t, float32(100), out[0].Width, "unchanged fields are kept")
	assert.Equal(t, float32(48), out[1].FontSize)
	assert.Equal(t, "Hello", out[1].Text)
	assert.Equal(t, float32(1), out[1].Opacity)
	assert.Equal(t, "#336699", a.Fill, "inputs are not modified")

	_, err = Merge(els, []Update{{ID: "a", Changes: []byte(`{"x": "left"}`)}})
	assert.Error(t, err)
}

func TestFileAdvisor(t *testing.T) {
	dir := t.TempDir()
	updates := filepath.Join(dir, "updates.json")
	require.NoError(t, os.WriteFile(updates, []byte("```json\n[{\"id\":\"r1\",\"changes\":{\"y\":42}}]\n```"), 0o644))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 32))))
	img := filepath.Join(dir, "gen.png")
	require.NoError(t, os.WriteFile(img, buf.Bytes(), 0o644))

	doc := testDoc()
	fa := &FileAdvisor{UpdatesFile: updates, ImageFile: img}
	els, err := fa.Suggest(context.Background(), NewRequest(Layout, "", doc))
	require.NoError(t, err)
	assert.Equal(t, float32(42), els[0].Y)

	p, err := fa.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, float32(64), p.Width)
	assert.Equal(t, float32(32), p.Height)
	assert.Contains(t, p.Src, "data:image/png;base64,")

	_, err = (&FileAdvisor{}).Suggest(context.Background(), Request{})
	assert.Error(t, err)
}
