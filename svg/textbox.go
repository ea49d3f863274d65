// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "unicode/utf8"

// TextBoxEstimator converts between the anchor point and baseline used by
// SVG text and the top-left box used by text elements.
// All sizes are in final canvas pixels.
type TextBoxEstimator interface {

	// BoxWidth returns the width of the text box for the given content
	// and font size. fit is the contain scale of the import, or 1.
	BoxWidth(text string, fontSize, fit float32) float32

	// Baseline returns the distance from the top of the text box
	// down to the text baseline.
	Baseline(fontSize float32) float32
}

// LengthEstimator estimates the box width from the number of characters.
type LengthEstimator struct {

	// MinWidth is the minimum box width, before the fit scale.
	MinWidth float32

	// CharWidth is the average character advance as a fraction of font size.
	CharWidth float32

	// BaselineShift is the top-to-baseline distance as a fraction of font size.
	BaselineShift float32
}

// DefaultTextBox is the estimator used by [NewImporter] and [NewExporter].
var DefaultTextBox TextBoxEstimator = &LengthEstimator{MinWidth: 500, CharWidth: 0.8, BaselineShift: 0.2}

func (le *LengthEstimator) BoxWidth(text string, fontSize, fit float32) float32 {
	return max(le.MinWidth*fit, fontSize*float32(utf8.RuneCountInString(text))*le.CharWidth)
}

func (le *LengthEstimator) Baseline(fontSize float32) float32 {
	return fontSize * le.BaselineShift
}
