// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/templates"
)

// library returns the template library of the document.
func (d *Document) library() *templates.Library {
	if d.Templates != nil {
		return d.Templates
	}
	return templates.Default()
}

// LoadDesign replaces the elements with those of the design template
// with the given id, as [Document.LoadTemplate] does.
func (d *Document) LoadDesign(id string) error {
	t, err := d.library().Lookup(id, templates.Design)
	if err != nil {
		return err
	}
	return d.LoadTemplate(t.Markup)
}

// AddSticker adds the sticker with the given id as a new image element
// at the given position, selects it and returns its id.
func (d *Document) AddSticker(id string, x, y float32) (string, error) {
	t, err := d.library().Lookup(id, templates.Sticker)
	if err != nil {
		return "", err
	}
	p := t.Payload()
	p.Placed = true
	p.X, p.Y = x, y
	els, _ := place.Apply(nil, place.Decision{Outcome: place.Insert}, p)
	eid := d.Add(els[0])
	return eid, d.Select(eid)
}
