// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms.
// [XX YX XY YY X0 Y0] is the SVG matrix(a b c d e f) order.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a Matrix2 scaling matrix for given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// Skew2D returns a Matrix2 2D skew matrix, with angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{1, tan(y), tan(x), 1, 0, 0}
}

func tan(a float32) float32 {
	return Sin(a) / Cos(a)
}

// Mul returns a*b, which applies b first and then a to a point.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{a.XX*v.X + a.XY*v.Y + a.X0, a.YX*v.X + a.YY*v.Y + a.Y0}
}

// Decompose splits the matrix into translation, rotation (in degrees)
// and scale, such that a = Translate2D * Rotate2D * Scale2D.
// Skew is not representable and is folded into the scale.
// A reflection is carried by a negative Y scale.
func (a Matrix2) Decompose() (translate Vector2, rotDeg float32, scale Vector2) {
	translate = Vec2(a.X0, a.Y0)
	sx := Hypot(a.XX, a.YX)
	if sx == 0 {
		return translate, 0, Vec2(0, Hypot(a.XY, a.YY))
	}
	rot := Atan2(a.YX, a.XX)
	det := a.XX*a.YY - a.XY*a.YX
	return translate, RadToDeg(rot), Vec2(sx, det/sx)
}

// SetString processes the standard SVG-style transform strings
func (a *Matrix2) SetString(str string) error {
	errmsg := "math32.Matrix2.SetString:"
	str = strings.ToLower(strings.TrimSpace(str))
	*a = Identity2()
	if str == "none" || str == "" {
		return nil
	}
	m := Identity2()
	for len(str) > 0 {
		str = strings.TrimLeft(str, " ,\t\n\r")
		if str == "" {
			break
		}
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			return fmt.Errorf("%s no params for transform: %q", errmsg, str)
		}
		cmd := strings.TrimSpace(str[:pidx])
		str = str[pidx+1:]
		eidx := strings.IndexByte(str, ')')
		if eidx < 0 {
			return fmt.Errorf("%s no closing paren for transform: %v", errmsg, cmd)
		}
		pars := str[:eidx]
		str = str[eidx+1:]
		pts, err := ReadPoints(pars)
		if err != nil {
			return fmt.Errorf("%s %w", errmsg, err)
		}
		var f Matrix2
		switch cmd {
		case "matrix":
			if len(pts) != 6 {
				return fmt.Errorf("%s matrix needs 6 params, got %d", errmsg, len(pts))
			}
			f = Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]}
		case "translate":
			switch len(pts) {
			case 1:
				f = Translate2D(pts[0], 0)
			case 2:
				f = Translate2D(pts[0], pts[1])
			default:
				return fmt.Errorf("%s translate needs 1 or 2 params, got %d", errmsg, len(pts))
			}
		case "scale":
			switch len(pts) {
			case 1:
				f = Scale2D(pts[0], pts[0])
			case 2:
				f = Scale2D(pts[0], pts[1])
			default:
				return fmt.Errorf("%s scale needs 1 or 2 params, got %d", errmsg, len(pts))
			}
		case "rotate":
			switch len(pts) {
			case 1:
				f = Rotate2D(DegToRad(pts[0]))
			case 3:
				f = Translate2D(pts[1], pts[2]).Mul(Rotate2D(DegToRad(pts[0]))).Mul(Translate2D(-pts[1], -pts[2]))
			default:
				return fmt.Errorf("%s rotate needs 1 or 3 params, got %d", errmsg, len(pts))
			}
		case "skewx":
			if len(pts) != 1 {
				return fmt.Errorf("%s skewX needs 1 param, got %d", errmsg, len(pts))
			}
			f = Skew2D(DegToRad(pts[0]), 0)
		case "skewy":
			if len(pts) != 1 {
				return fmt.Errorf("%s skewY needs 1 param, got %d", errmsg, len(pts))
			}
			f = Skew2D(0, DegToRad(pts[0]))
		default:
			return fmt.Errorf("%s unknown transform command: %q", errmsg, cmd)
		}
		m = m.Mul(f)
	}
	*a = m
	return nil
}

// String returns the XML-based string representation of the transform
func (a Matrix2) String() string {
	if a == Identity2() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 {
		var str string
		if a.X0 != 0 || a.Y0 != 0 {
			str += fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		}
		if a.XX != 1 || a.YY != 1 {
			if str != "" {
				str += " "
			}
			str += fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		}
		return str
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}
