// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strconv"
	"strings"

	"cogentcore.org/artflow/math32"
	"cogentcore.org/artflow/scene"
)

// textElement returns the text element for a <text> node. The anchor
// point is converted to a top-left box using the text box estimator.
func (w *walker) textElement(n *node, ts transformState) (*scene.Element, error) {
	a := attrReader{n: n}
	s := w.fit.Scale
	x, y := a.first("x", 0, w.frame.X), a.first("y", 0, w.frame.Y)
	dx, dy := a.first("dx", 0, w.frame.X), a.first("dy", 0, w.frame.Y)
	fontSize := a.size("font-size", w.im.DefaultFontSize, w.im.DefaultFontSize)
	declared := a.length("data-width", -1, w.frame.X)
	if a.err != nil {
		return nil, a.err
	}
	el := scene.NewElement(scene.Text)
	el.Text = strings.Join(strings.Fields(n.textContent()), " ")
	if el.Text == "" {
		el.Text = "Text"
	}
	sx := math32.Abs(ts.Scale.X)
	el.FontSize = fontSize * sx * s
	el.FontFamily = fontFamily(n.props["font-family"], w.im.DefaultFontFamily)
	el.FontStyle.SetFlag(isBold(n.props["font-weight"]), scene.Bold)
	switch strings.TrimSpace(n.props["font-style"]) {
	case "italic", "oblique":
		el.FontStyle.SetFlag(true, scene.Italic)
	}
	if deco := strings.Fields(n.props["text-decoration"]); len(deco) > 0 {
		if err := el.Decoration.SetString(deco[0]); err != nil {
			w.logger.Debug("svg.Import: ignoring text-decoration", "err", err)
		}
	}

	anchor := w.fit.apply(ts.point(math32.Vec2(x+dx, y+dy)))
	if declared >= 0 {
		el.Width = declared * sx * s
	} else {
		el.Width = w.estimator.BoxWidth(el.Text, el.FontSize, s)
	}
	el.X = anchor.X
	el.Y = anchor.Y - w.estimator.Baseline(el.FontSize)
	switch strings.TrimSpace(n.props["text-anchor"]) {
	case "middle":
		el.Align = scene.AlignCenter
		el.X -= el.Width / 2
	case "end":
		el.Align = scene.AlignRight
		el.X -= el.Width
	}
	if strings.TrimSpace(n.props["data-align"]) == "justify" {
		el.Align = scene.AlignJustify
	}
	el.Rotation = ts.Rotate
	el.Opacity = ts.Opacity
	return el, nil
}

// isBold returns whether a font-weight value is bold.
func isBold(weight string) bool {
	weight = strings.TrimSpace(weight)
	switch weight {
	case "bold", "bolder":
		return true
	}
	wt, err := strconv.Atoi(weight)
	return err == nil && wt >= 700
}

// fontFamily returns the first family of a font-family list, unquoted.
func fontFamily(families, def string) string {
	first, _, _ := strings.Cut(families, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	if first == "" {
		return def
	}
	return first
}
