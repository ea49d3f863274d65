// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/h2non/filetype"
)

// ErrNotInline is returned by [DecodeDataURI] for references
// that are not inline data (for example a plain URL).
var ErrNotInline = errors.New("imagex: reference is not a data URI")

// IsDataURI returns whether the given image reference holds inline data.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), "data:")
}

// DecodeDataURI decodes an inline data: reference, returning the raw bytes
// and the MIME type. The declared MIME type is verified against the content
// and replaced by the sniffed type when they disagree.
func DecodeDataURI(ref string) ([]byte, string, error) {
	ref = strings.TrimSpace(ref)
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, "", ErrNotInline
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("imagex: malformed data URI: missing ','")
	}
	mime := "text/plain"
	isBase64 := false
	for i, part := range strings.Split(meta, ";") {
		switch {
		case i == 0 && part != "":
			mime = strings.ToLower(part)
		case part == "base64":
			isBase64 = true
		}
	}
	var b []byte
	var err error
	if isBase64 {
		b, err = base64.StdEncoding.DecodeString(strings.Join(strings.Fields(payload), ""))
	} else {
		var s string
		s, err = url.PathUnescape(payload)
		b = []byte(s)
	}
	if err != nil {
		return nil, "", fmt.Errorf("imagex: decoding data URI: %w", err)
	}
	if kind, kerr := filetype.Match(b); kerr == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	return b, mime, nil
}

// EncodeDataURI returns a base64 data: reference for the given bytes,
// sniffing the MIME type from the content.
func EncodeDataURI(b []byte) string {
	mime := "application/octet-stream"
	if kind, err := filetype.Match(b); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// ToDataURI encodes the image in the given format as a data: reference.
func ToDataURI(im image.Image, f Formats) (string, error) {
	var buf bytes.Buffer
	if err := Write(im, &buf, f); err != nil {
		return "", err
	}
	return "data:" + f.MIME() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Size returns the intrinsic pixel size of the encoded image bytes,
// without decoding the full image.
func Size(b []byte) (image.Point, Formats, error) {
	if !filetype.IsImage(b) {
		return image.Point{}, None, errors.New("imagex: payload is not a recognized image")
	}
	cfg, ext, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return image.Point{}, None, err
	}
	f, err := ExtToFormat(ext)
	return image.Pt(cfg.Width, cfg.Height), f, err
}

// SizeOfRef returns the intrinsic size of an inline image reference.
// URL references return [ErrNotInline]: their size must be declared by
// the caller that fetched them.
func SizeOfRef(ref string) (image.Point, error) {
	b, _, err := DecodeDataURI(ref)
	if err != nil {
		return image.Point{}, err
	}
	sz, _, err := Size(b)
	return sz, err
}
