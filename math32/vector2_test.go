// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vector2{0, 9}, v.Add(Vec2(1, 2)))
	assert.Equal(t, Vector2{-2, 5}, v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vector2{-2, 14}, v.MulScalar(2))
	assert.Equal(t, Vector2{1, 7}, v.Abs())
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.InDelta(t, 1, Vec2(3, 4).Normal().Length(), 1e-6)
}

func TestReadPoints(t *testing.T) {
	tests := []struct {
		str     string
		want    []float32
		wantErr bool
	}{
		{"0 0 100 100", []float32{0, 0, 100, 100}, false},
		{"0,0,100,100", []float32{0, 0, 100, 100}, false},
		{" 10, 20\t30\n40 ", []float32{10, 20, 30, 40}, false},
		{"10-5", []float32{10, -5}, false},
		{".5.5", []float32{0.5, 0.5}, false},
		{"1e2 -2.5E-1", []float32{100, -0.25}, false},
		{"", nil, false},
		{"10 abc", []float32{10}, true},
	}
	for _, test := range tests {
		pts, err := ReadPoints(test.str)
		if test.wantErr {
			assert.Error(t, err, test.str)
		} else {
			assert.NoError(t, err, test.str)
		}
		assert.Equal(t, test.want, pts, test.str)
	}
}

func TestParseFloat32(t *testing.T) {
	f, err := ParseFloat32(" 12.5 ")
	assert.NoError(t, err)
	assert.Equal(t, float32(12.5), f)
	_, err = ParseFloat32("12px")
	assert.Error(t, err)
	_, err = ParseFloat32("")
	assert.Error(t, err)
}
