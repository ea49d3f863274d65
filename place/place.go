// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package place decides where an incoming image goes in a scene:
// over the selected image, over the largest image, or as a new element.
package place

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/artflow/base/iox/imagex"
	"cogentcore.org/artflow/math32"
	"cogentcore.org/artflow/scene"
)

// Mode is how aggressively an incoming image displaces existing images.
type Mode int32

const (
	// Soft replaces one image and leaves the others, for collages.
	Soft Mode = iota

	// Strict replaces the largest image and removes every other
	// unlocked image, keeping a single background image.
	Strict
)

var modeNames = []string{"soft", "strict"}

// String returns the string representation of this Mode value.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
	return modeNames[m]
}

// SetString sets the Mode value from its string representation.
func (m *Mode) SetString(s string) error {
	i := slices.Index(modeNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("place.Mode.SetString: %q is not a valid value", s)
	}
	*m = Mode(i)
	return nil
}

// Outcome is the fate of an incoming image.
type Outcome int32

const (
	// ReplaceSelected replaces the selected image element.
	ReplaceSelected Outcome = iota

	// ReplaceLargest replaces the unlocked image with the largest visible area.
	ReplaceLargest

	// Insert adds a new image element on top of the scene.
	Insert
)

var outcomeNames = []string{"replace-selected", "replace-largest", "insert"}

// String returns the string representation of this Outcome value.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int32(o))
	}
	return outcomeNames[o]
}

// DefaultPosition is the position of inserted images without a placement.
var DefaultPosition = math32.Vec2(100, 100)

// Payload is an incoming image.
type Payload struct {

	// Src is the image reference: a URL or a data: URI.
	Src string

	// Width and Height are the intrinsic size of the image,
	// or 0 if unknown.
	Width, Height float32

	// Placed is whether the placement fields below are set.
	// Inserted images use the whole placement, and a replaced largest
	// image its position and rotation. Without a placement, inserted
	// images go to [DefaultPosition].
	Placed bool

	X, Y           float32
	ScaleX, ScaleY float32
	Rotation       float32
}

// HasSize returns whether the intrinsic size is known.
func (p *Payload) HasSize() bool {
	return p.Width > 0 && p.Height > 0
}

// PayloadFromData returns a payload for the image reference, with the
// intrinsic size decoded from inline data. URL references return the
// payload without a size and [imagex.ErrNotInline].
func PayloadFromData(src string) (Payload, error) {
	p := Payload{Src: src}
	sz, err := imagex.SizeOfRef(src)
	if err != nil {
		return p, err
	}
	p.Width, p.Height = float32(sz.X), float32(sz.Y)
	return p, nil
}

// PayloadFromFile reads an image file into an inline payload.
func PayloadFromFile(filename string) (Payload, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Payload{}, err
	}
	sz, _, err := imagex.Size(b)
	if err != nil {
		return Payload{}, fmt.Errorf("place: %s: %w", filename, err)
	}
	return Payload{Src: imagex.EncodeDataURI(b), Width: float32(sz.X), Height: float32(sz.Y)}, nil
}

// Decision is the outcome of [Decide] for one payload.
type Decision struct {
	Outcome Outcome

	// TargetID is the element replaced, for the replace outcomes.
	TargetID string

	// RemoveIDs are the elements deleted along with the replacement.
	RemoveIDs []string
}

func (d Decision) String() string {
	if d.Outcome == Insert {
		return d.Outcome.String()
	}
	return fmt.Sprintf("%s %s (removing %d)", d.Outcome, d.TargetID, len(d.RemoveIDs))
}

// replaceable returns whether the element can be replaced by an image.
func replaceable(el *scene.Element) bool {
	return el != nil && el.Kind == scene.Image && !el.Locked
}

// Decide returns what to do with an incoming image, given the current
// elements in stacking order and the selected element id ("" for none).
// The selected element is replaced if it is an unlocked image. Otherwise
// the unlocked image with the largest visible area is replaced, the
// earliest in stacking order winning ties; in [Strict] mode every other
// unlocked image is removed. With no unlocked image, the payload is inserted.
func Decide(elements []*scene.Element, selectedID string, mode Mode) Decision {
	if selectedID != "" {
		if sel := scene.Find(elements, selectedID); replaceable(sel) {
			return Decision{Outcome: ReplaceSelected, TargetID: sel.ID}
		}
	}
	var images []*scene.Element
	for _, el := range elements {
		if replaceable(el) {
			images = append(images, el)
		}
	}
	if len(images) == 0 {
		return Decision{Outcome: Insert}
	}
	slices.SortStableFunc(images, func(a, b *scene.Element) int {
		aa, ba := a.VisibleArea(), b.VisibleArea()
		switch {
		case aa > ba:
			return -1
		case aa < ba:
			return 1
		}
		return 0
	})
	d := Decision{Outcome: ReplaceLargest, TargetID: images[0].ID}
	if mode == Strict {
		for _, el := range images[1:] {
			d.RemoveIDs = append(d.RemoveIDs, el.ID)
		}
	}
	return d
}

// Apply returns a new element list with the decision carried out,
// and the id of the element that holds the payload. The input list
// and its elements are not modified.
func Apply(elements []*scene.Element, d Decision, p Payload) ([]*scene.Element, string) {
	if d.Outcome == Insert || scene.Find(elements, d.TargetID) == nil {
		el := inserted(p)
		out := append(scene.CloneList(elements), el)
		slog.Debug("place.Apply: inserted image", "id", el.ID)
		return out, el.ID
	}
	out := make([]*scene.Element, 0, len(elements))
	for _, el := range elements {
		if slices.Contains(d.RemoveIDs, el.ID) {
			continue
		}
		el = el.Clone()
		if el.ID == d.TargetID {
			replace(el, p, d.Outcome == ReplaceSelected)
		}
		out = append(out, el)
	}
	slog.Debug("place.Apply: replaced image", "decision", d)
	return out, d.TargetID
}

// replace writes the payload into an existing image element.
// The element keeps its visible width: the new intrinsic size is scaled
// uniformly to match it, so that the height follows the new aspect ratio.
// A replaced largest image takes only its position and rotation from a
// placed payload; a selected image stays where it is.
func replace(el *scene.Element, p Payload, selected bool) {
	el.Src = p.Src
	if p.Placed && !selected {
		el.X, el.Y = p.X, p.Y
		el.Rotation = p.Rotation
	}
	if !p.HasSize() {
		return
	}
	width := el.Width
	if width == 0 {
		width = 100
	}
	s := width * math32.Abs(nonZero(el.ScaleX)) / p.Width
	el.Width, el.Height = p.Width, p.Height
	el.ScaleX, el.ScaleY = s, s
}

// inserted returns a new image element for the payload.
func inserted(p Payload) *scene.Element {
	el := scene.NewElement(scene.Image)
	el.Src = p.Src
	el.Width, el.Height = p.Width, p.Height
	if !p.HasSize() {
		el.Width, el.Height = 100, 100
	}
	if p.Placed {
		el.X, el.Y = p.X, p.Y
		el.ScaleX, el.ScaleY = nonZero(p.ScaleX), nonZero(p.ScaleY)
		el.Rotation = p.Rotation
	} else {
		el.X, el.Y = DefaultPosition.X, DefaultPosition.Y
	}
	return el
}

// nonZero returns 1 for an unset scale.
func nonZero(s float32) float32 {
	if s == 0 {
		return 1
	}
	return s
}
