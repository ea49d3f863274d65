// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for reading and writing YAML,
// used for preset catalog files.
package yamlx

import (
	"io"

	"cogentcore.org/artflow/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder { return yaml.NewEncoder(w) }

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given object to the given filename using YAML encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
