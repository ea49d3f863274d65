// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// isSep reports whether c separates numbers in a markup number list.
func isSep(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// ParseFloat32 parses the entire string as one number,
// ignoring surrounding whitespace.
func ParseFloat32(s string) (float32, error) {
	b := []byte(strings.TrimSpace(s))
	if len(b) == 0 {
		return 0, fmt.Errorf("math32.ParseFloat32: empty number")
	}
	f, n := strconv.ParseFloat(b)
	if n != len(b) {
		return 0, fmt.Errorf("math32.ParseFloat32: invalid number %q", s)
	}
	return float32(f), nil
}

// ReadPoints reads a list of numbers separated by whitespace and/or commas,
// as used in viewBox, points, and transform arguments. Numbers may also be
// directly adjacent when the sign or decimal point makes the boundary
// unambiguous, e.g. "10-5" or ".5.5".
func ReadPoints(s string) ([]float32, error) {
	b := []byte(s)
	var pts []float32
	for i := 0; i < len(b); {
		if isSep(b[i]) {
			i++
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return pts, fmt.Errorf("math32.ReadPoints: invalid character %q at offset %d in %q", b[i], i, s)
		}
		pts = append(pts, float32(f))
		i += n
	}
	return pts, nil
}
