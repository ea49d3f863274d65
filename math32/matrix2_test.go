// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func assertVector(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol)
	assert.InDelta(t, want.Y, got.Y, standardTol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	assertVector(t, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	assertVector(t, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	assertVector(t, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	assertVector(t, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))
}

func TestMatrix2Decompose(t *testing.T) {
	tests := []struct {
		m     Matrix2
		trans Vector2
		rot   float32
		scale Vector2
	}{
		{Identity2(), Vec2(0, 0), 0, Vec2(1, 1)},
		{Translate2D(5, -3), Vec2(5, -3), 0, Vec2(1, 1)},
		{Scale2D(2, 3), Vec2(0, 0), 0, Vec2(2, 3)},
		{Translate2D(10, 20).Mul(Rotate2D(DegToRad(30))).Mul(Scale2D(2, 2)), Vec2(10, 20), 30, Vec2(2, 2)},
		{Rotate2D(DegToRad(-90)).Mul(Scale2D(0.5, 4)), Vec2(0, 0), -90, Vec2(0.5, 4)},
		{Scale2D(1, -1), Vec2(0, 0), 0, Vec2(1, -1)},
	}
	for _, test := range tests {
		tr, rot, sc := test.m.Decompose()
		assertVector(t, test.trans, tr)
		assert.InDelta(t, test.rot, rot, 1e-3)
		assertVector(t, test.scale, sc)
	}
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{"none", false, Identity2()},
		{"", false, Identity2()},
		{"translate(10,20)", false, Translate2D(10, 20)},
		{"translate(10)", false, Translate2D(10, 0)},
		{"scale(2)", false, Scale2D(2, 2)},
		{"scale(2 3)", false, Scale2D(2, 3)},
		{"matrix(1,0,0,1,5,6)", false, Translate2D(5, 6)},
		{"translate(10,20) scale(2)", false, Translate2D(10, 20).Mul(Scale2D(2, 2))},
		{"translate(10,20),scale(2)", false, Translate2D(10, 20).Mul(Scale2D(2, 2))},
		{"rotate(90,10,10)", false, Translate2D(10, 10).Mul(Rotate2D(DegToRad(90))).Mul(Translate2D(-10, -10))},
		{"rotate(1,2)", true, Identity2()},
		{"translate(10", true, Identity2()},
		{"spin(3)", true, Identity2()},
		{"scale", true, Identity2()},
		{"matrix(1,2,3)", true, Identity2()},
	}
	for _, test := range tests {
		var m Matrix2
		err := m.SetString(test.str)
		if test.wantErr {
			assert.Error(t, err, test.str)
			continue
		}
		assert.NoError(t, err, test.str)
		assert.InDelta(t, test.want.XX, m.XX, standardTol, test.str)
		assert.InDelta(t, test.want.YX, m.YX, standardTol, test.str)
		assert.InDelta(t, test.want.XY, m.XY, standardTol, test.str)
		assert.InDelta(t, test.want.YY, m.YY, standardTol, test.str)
		assert.InDelta(t, test.want.X0, m.X0, standardTol, test.str)
		assert.InDelta(t, test.want.Y0, m.Y0, standardTol, test.str)
	}
}

func TestMatrix2String(t *testing.T) {
	assert.Equal(t, "none", Identity2().String())
	assert.Equal(t, "translate(3,4)", Translate2D(3, 4).String())
	assert.Equal(t, "translate(3,4) scale(2,2)", Translate2D(3, 4).Mul(Scale2D(2, 2)).String())
	assert.Equal(t, "matrix(1,2,3,4,5,6)", Matrix2{1, 2, 3, 4, 5, 6}.String())
}
