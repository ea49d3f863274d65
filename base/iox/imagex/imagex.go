// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex handles the bitmap payloads that flow into a scene:
// decoding inline data references, determining intrinsic sizes,
// and producing thumbnails for saved projects.
package imagex

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encodings.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

// formatExts maps file extensions and MIME subtypes to formats.
var formatExts = map[string]Formats{
	"png": PNG, "jpg": JPEG, "jpeg": JPEG, "gif": GIF,
	"tif": TIFF, "tiff": TIFF, "bmp": BMP, "webp": WebP,
}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int(f))
	}
	return formatNames[f]
}

// MIME returns the MIME type for the format, or "" for [None].
func (f Formats) MIME() string {
	if f == None {
		return ""
	}
	return "image/" + f.String()
}

// ExtToFormat returns the format for a file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if f, ok := formatExts[ext]; ok {
		return f, nil
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// MIMEToFormat returns the format for a MIME type such as image/png.
func MIMEToFormat(mime string) (Formats, error) {
	sub, ok := strings.CutPrefix(strings.ToLower(mime), "image/")
	if !ok {
		return None, fmt.Errorf("imagex.MIMEToFormat: %q is not an image type", mime)
	}
	return ExtToFormat(sub)
}

// Open decodes the image file, in any of the supported formats.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read decodes an image in any of the supported formats.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, ext, err := image.Decode(r)
	if err != nil {
		return im, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// Write encodes the image in the given format.
// All formats except [WebP] can be written.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("imagex.Write: cannot encode format %s", f)
}
