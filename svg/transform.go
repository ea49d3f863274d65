// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/artflow/math32"
)

// localTransform is the transform attribute of one node,
// split into translation, rotation (degrees) and scale.
type localTransform struct {
	Translate math32.Vector2
	Rotate    float32
	Scale     math32.Vector2
}

// parseTransform parses a transform attribute. Any list of
// matrix, translate, rotate, scale and skew functions is accepted;
// the product is decomposed into translation, rotation and scale.
func parseTransform(s string) (localTransform, error) {
	var m math32.Matrix2
	if err := m.SetString(s); err != nil {
		return localTransform{Scale: math32.Vec2(1, 1)}, err
	}
	t, r, sc := m.Decompose()
	return localTransform{Translate: t, Rotate: r, Scale: sc}, nil
}

// transformState is the absolute transform accumulated from the root
// down to a node. It is passed by value and never modified in place.
type transformState struct {
	Translate math32.Vector2
	Rotate    float32
	Scale     math32.Vector2
	Opacity   float32
}

// rootState is the state at the document root.
func rootState() transformState {
	return transformState{Scale: math32.Vec2(1, 1), Opacity: 1}
}

// compose returns the absolute state of a child with the given local
// transform and opacity: translations are scaled by the parent scale
// and added, rotations add, scales and opacities multiply.
func (ts transformState) compose(local localTransform, opacity float32) transformState {
	return transformState{
		Translate: ts.Translate.Add(local.Translate.Mul(ts.Scale)),
		Rotate:    ts.Rotate + local.Rotate,
		Scale:     ts.Scale.Mul(local.Scale),
		Opacity:   ts.Opacity * opacity,
	}
}

// point maps a point in the node's own coordinates to absolute
// document coordinates, before the contain fit.
func (ts transformState) point(p math32.Vector2) math32.Vector2 {
	return ts.Translate.Add(p.Mul(ts.Scale))
}

// fit is the contain fit of the native document frame into the target canvas.
type fit struct {
	Scale  float32
	Offset math32.Vector2
}

// newFit returns the contain scale min(tw/nw, th/nh) and the offset that
// centers the scaled frame, accounting for the frame origin.
func newFit(origin, size, target math32.Vector2) fit {
	s := min(target.X/size.X, target.Y/size.Y)
	return fit{
		Scale: s,
		Offset: math32.Vec2(
			(target.X-size.X*s)/2-origin.X*s,
			(target.Y-size.Y*s)/2-origin.Y*s),
	}
}

// apply maps an absolute document point to final canvas coordinates.
func (f fit) apply(p math32.Vector2) math32.Vector2 {
	return p.MulScalar(f.Scale).Add(f.Offset)
}
