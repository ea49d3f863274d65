// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides functions for reading and writing JSON,
// used for saved artflow projects.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/artflow/base/iox"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return json.NewDecoder(r) }

// Open reads the given object from the given filename using JSON encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using JSON encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using JSON encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// IndentEncoder is a [json.Encoder] that indents its output.
func IndentEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}

// Save writes the given object to the given filename using JSON encoding,
// with indentation
func Save(v any, filename string) error {
	return iox.Save(v, filename, IndentEncoder)
}

// Write writes the given object using JSON encoding, with indentation
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, IndentEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using JSON encoding, without indentation
func WriteBytes(v any) ([]byte, error) {
	return json.Marshal(v)
}
