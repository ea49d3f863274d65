// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project persists banner projects: the element list and canvas
// of a document, owned by a user.
package project

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"cogentcore.org/artflow/base/iox/imagex"
	"cogentcore.org/artflow/base/iox/jsonx"
	"cogentcore.org/artflow/scene"
	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the version of the project file format written
// by this package. Files with a different major version are rejected.
const FormatVersion = "1.0.0"

// ThumbnailSize is the largest side of project thumbnails, in pixels.
const ThumbnailSize = 320

var (
	// ErrNotFound is returned for a project id that does not exist.
	ErrNotFound = errors.New("project: not found")

	// ErrForbidden is returned when a user accesses a project owned by another user.
	ErrForbidden = errors.New("project: forbidden")

	// ErrUnauthorized is returned for operations without a user.
	ErrUnauthorized = errors.New("project: no user")

	// ErrVersion is returned for a file with an incompatible format version.
	ErrVersion = errors.New("project: incompatible format version")
)

// Record is one saved project.
type Record struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`

	// Thumbnail is a PNG data: URI preview of the banner.
	Thumbnail string `json:"thumbnail,omitempty"`

	Elements []*scene.Element `json:"elements"`
	Canvas   scene.Canvas     `json:"config"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version is the [FormatVersion] the record was written with.
	Version string `json:"version,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	cp := *r
	cp.Elements = scene.CloneList(r.Elements)
	cp.Canvas = r.Canvas.Clone()
	return &cp
}

// Validate checks the canvas and elements of the record.
func (r *Record) Validate() error {
	return errors.Join(r.Canvas.Validate(), scene.ValidateList(r.Elements))
}

// SetThumbnail renders a thumbnail of the given banner image
// with its largest side at most maxSize pixels.
func (r *Record) SetThumbnail(img image.Image, maxSize int) error {
	uri, err := imagex.ThumbnailDataURI(img, maxSize)
	if err != nil {
		return fmt.Errorf("project: thumbnail: %w", err)
	}
	r.Thumbnail = uri
	return nil
}

// Store is the project storage of all users. Every operation
// is on behalf of the given user, who must own the project.
type Store interface {

	// Save creates or updates the project and returns the stored record.
	// A record without an id, or with an id that does not exist,
	// is created with a new id.
	Save(ctx context.Context, userID string, rec *Record) (*Record, error)

	// Get returns the project with the given id.
	Get(ctx context.Context, userID, id string) (*Record, error)

	// List returns the projects of the user, most recently updated first.
	List(ctx context.Context, userID string) ([]*Record, error)

	// Delete removes the project. Deleting a project that
	// does not exist is not an error.
	Delete(ctx context.Context, userID, id string) error
}

// CheckVersion returns [ErrVersion] if the format version has a major
// version other than that of [FormatVersion]. An empty version is
// a file written before versioning, and is accepted.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersion, version, err)
	}
	cur := semver.MustParse(FormatVersion)
	if v.Major() != cur.Major() {
		return fmt.Errorf("%w: %s, want %d.x", ErrVersion, v, cur.Major())
	}
	return nil
}

// SaveFile writes the record to a JSON file.
func SaveFile(rec *Record, filename string) error {
	cp := *rec
	cp.Version = FormatVersion
	return jsonx.Save(&cp, filename)
}

// OpenFile reads a record from a JSON file written by [SaveFile],
// checking its version and repairing its elements.
func OpenFile(filename string) (*Record, error) {
	rec := &Record{}
	if err := jsonx.Open(rec, filename); err != nil {
		return nil, err
	}
	if err := CheckVersion(rec.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for _, el := range rec.Elements {
		el.Sanitize()
	}
	return rec, nil
}
