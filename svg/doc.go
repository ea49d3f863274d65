// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg converts between SVG markup and lists of scene elements.

[Import] reads a practical subset of SVG (groups, rect, circle, ellipse,
line, path, polygon, polyline, text, image, linearGradient and
feDropShadow filters) and fits it inside a target canvas with a single
"contain" scale and centering offset applied once per element.
Transforms are accumulated down the group tree as translation, rotation,
scale and opacity, and emitted elements carry absolute values.

[Export] writes the inverse: one node per visible element with a single
translate/rotate/scale transform, preceded by an opaque background rect.

Export is lossy: drop shadows are not written, text is written as a single
unwrapped line, and placeholder images (with no reference) are omitted.
Re-importing exported markup yields geometrically equivalent elements.
*/
package svg
