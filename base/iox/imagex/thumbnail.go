// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// SizeMax computes the size of image where the largest size (X or Y) is set to maxSz
func SizeMax(sz image.Point, maxSz int) image.Point {
	tsz := sz
	if sz.X <= 0 || sz.Y <= 0 {
		return image.Point{}
	}
	if sz.X > sz.Y {
		tsz.X = maxSz
		tsz.Y = max(1, int(float32(sz.Y)*(float32(tsz.X)/float32(sz.X))))
	} else {
		tsz.Y = maxSz
		tsz.X = max(1, int(float32(sz.X)*(float32(tsz.Y)/float32(sz.Y))))
	}
	return tsz
}

// Thumbnail returns a copy of the image scaled so that its largest side
// is maxSz. Images already within bounds are returned unscaled.
func Thumbnail(im image.Image, maxSz int) image.Image {
	sz := im.Bounds().Size()
	if sz.X <= maxSz && sz.Y <= maxSz {
		return im
	}
	tsz := SizeMax(sz, maxSz)
	return transform.Resize(im, tsz.X, tsz.Y, transform.Linear)
}

// ThumbnailDataURI returns a PNG data: reference for a thumbnail of the image.
func ThumbnailDataURI(im image.Image, maxSz int) (string, error) {
	return ToDataURI(Thumbnail(im, maxSz), PNG)
}
