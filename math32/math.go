// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package for
// 2D scene geometry, including parsing of the number lists and
// transform functions used in vector markup.
//
// The scalar functions wrap github.com/chewxy/math32.
package math32

import "github.com/chewxy/math32"

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * 180 / math32.Pi
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Atan2 returns the arc tangent of y/x in the quadrant given by their signs.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

func Cos(x float32) float32 { return math32.Cos(x) }

func Sin(x float32) float32 { return math32.Sin(x) }

// Hypot returns Sqrt(p*p + q*q) without undue overflow.
func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }

func IsNaN(x float32) bool { return math32.IsNaN(x) }

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// Clamp clamps x to the closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	return min(max(x, a), b)
}
