// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/artflow/math32"
)

// unitDots is the number of user units (px) per unit.
var unitDots = map[string]float32{
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 101.6,
	"em": 16,
	"ex": 8,
}

// parseLength parses a length with an optional unit suffix into user units.
// Percentages are relative to ref.
func parseLength(s string, ref float32) (float32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(s, "%") {
		f, err := math32.ParseFloat32(s[:len(s)-1])
		if err != nil {
			return 0, err
		}
		return f / 100 * ref, nil
	}
	for unit, dots := range unitDots {
		if strings.HasSuffix(s, unit) {
			f, err := math32.ParseFloat32(s[:len(s)-len(unit)])
			if err != nil {
				return 0, err
			}
			return f * dots, nil
		}
	}
	return math32.ParseFloat32(s)
}

// parseFraction parses a number or percentage as a fraction,
// so that "50%" and "0.5" are both 0.5.
func parseFraction(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		f, err := math32.ParseFloat32(s[:len(s)-1])
		return f / 100, err
	}
	return math32.ParseFloat32(s)
}

// parseOpacity parses an opacity value clamped to [0,1].
func parseOpacity(s string) (float32, error) {
	f, err := parseFraction(s)
	if err != nil {
		return 1, err
	}
	if math32.IsNaN(f) {
		return 1, fmt.Errorf("opacity is NaN")
	}
	return math32.Clamp(f, 0, 1), nil
}

// refID returns the id in a url(#id) or #id reference, or "" if s is neither.
func refID(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "url(") {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "url("), ")")
		s = strings.Trim(strings.TrimSpace(s), `"'`)
	}
	if strings.HasPrefix(s, "#") {
		return s[1:]
	}
	return ""
}

// isURL returns whether the paint or filter value is a url() reference.
func isURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "url(")
}
