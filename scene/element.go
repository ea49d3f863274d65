// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the editable scene elements and the
// canvas configuration that all other packages read and write.
package scene

import (
	"fmt"

	"cogentcore.org/artflow/base/errors"
	"cogentcore.org/artflow/colors"
	"cogentcore.org/artflow/math32"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// GradientStop is one color stop of a [LinearGradient].
type GradientStop struct {

	// Offset is the position of the stop along the gradient, in [0,1].
	Offset float32 `json:"offset"`

	// Color is the CSS color at the stop.
	Color string `json:"color"`
}

// LinearGradient is a linear gradient fill, with Start and End
// in element-local pixel coordinates.
type LinearGradient struct {
	Start math32.Vector2 `json:"start"`
	End   math32.Vector2 `json:"end"`
	Stops []GradientStop `json:"stops"`
}

// Stroke holds the outline paint of an element.
// A zero Width means no stroke.
type Stroke struct {
	Color string    `json:"color,omitempty"`
	Width float32   `json:"width,omitempty"`
	Cap   LineCaps  `json:"cap"`
	Join  LineJoins `json:"join"`
}

// IsSet returns whether the stroke paints anything.
func (s *Stroke) IsSet() bool {
	return s.Width > 0 && !colors.IsNone(s.Color)
}

// Shadow is a single drop shadow.
type Shadow struct {
	Color   string  `json:"color"`
	Blur    float32 `json:"blur"`
	OffsetX float32 `json:"offsetX"`
	OffsetY float32 `json:"offsetY"`
	Opacity float32 `json:"opacity"`
}

// Element is one drawable object in the document: a shape, text or image.
// Position is the top-left corner of the element box in canvas units,
// with rotation (degrees) and scale applied about that corner.
type Element struct {

	// ID is unique and stable for the lifetime of the element.
	ID string `json:"id"`

	Kind Kind `json:"type"`

	X float32 `json:"x"`
	Y float32 `json:"y"`

	// Width and Height are the unscaled box size, never negative.
	// For circles Width is the diameter.
	Width  float32 `json:"width"`
	Height float32 `json:"height"`

	// Rotation in degrees.
	Rotation float32 `json:"rotation"`

	ScaleX float32 `json:"scaleX"`
	ScaleY float32 `json:"scaleY"`

	// Opacity in [0,1].
	Opacity float32 `json:"opacity"`

	Visible bool `json:"visible"`
	Locked  bool `json:"locked"`

	// Fill is a solid CSS color; "" is transparent.
	// It is never set together with Gradient.
	Fill string `json:"fill,omitempty"`

	Gradient *LinearGradient `json:"fillLinearGradient,omitempty"`

	Stroke Stroke `json:"stroke"`

	Shadow *Shadow `json:"shadow,omitempty"`

	// CornerRadius is the rect corner radius.
	CornerRadius float32 `json:"cornerRadius,omitempty"`

	Text       string      `json:"text,omitempty"`
	FontSize   float32     `json:"fontSize,omitempty"`
	FontFamily string      `json:"fontFamily,omitempty"`
	FontStyle  FontStyles  `json:"fontStyle"`
	Decoration Decorations `json:"textDecoration"`
	Align      Aligns      `json:"align"`

	// Src is the image reference, a URL or data URI.
	// An image with an empty Src is a placeholder.
	Src string `json:"src,omitempty"`

	// Data is the path data of a path element.
	Data string `json:"data,omitempty"`
}

// NewID returns a fresh unique element identifier.
func NewID() string {
	return uuid.NewString()
}

// NewElement returns a new visible element of the given kind
// with a fresh ID, unit scale and full opacity.
func NewElement(kind Kind) *Element {
	return &Element{
		ID:      NewID(),
		Kind:    kind,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
		Visible: true,
	}
}

func (el *Element) String() string {
	return fmt.Sprintf("%s %s (%g, %g) %gx%g", el.Kind, el.ID, el.X, el.Y, el.Width, el.Height)
}

// IsImage returns whether the element is an image.
func (el *Element) IsImage() bool {
	return el.Kind == Image
}

// IsPlaceholder returns whether the element is an image with no content.
func (el *Element) IsPlaceholder() bool {
	return el.Kind == Image && el.Src == ""
}

// EffectiveWidth is the on-canvas width: Width × |ScaleX|.
func (el *Element) EffectiveWidth() float32 {
	return el.Width * math32.Abs(el.ScaleX)
}

// EffectiveHeight is the on-canvas height: Height × |ScaleY|.
func (el *Element) EffectiveHeight() float32 {
	return el.Height * math32.Abs(el.ScaleY)
}

// VisibleArea is Width × Height × |ScaleX| × |ScaleY|.
func (el *Element) VisibleArea() float32 {
	return el.EffectiveWidth() * el.EffectiveHeight()
}

// Radius is the draw radius of a circle, always Width / 2.
func (el *Element) Radius() float32 {
	return el.Width / 2
}

// SetFill sets a solid fill, clearing any gradient.
func (el *Element) SetFill(color string) {
	el.Fill = color
	el.Gradient = nil
}

// SetGradient sets a gradient fill, clearing any solid fill.
func (el *Element) SetGradient(g *LinearGradient) {
	el.Gradient = g
	if g != nil {
		el.Fill = ""
	}
}

// Clone returns a deep copy of the element, with the same ID.
func (el *Element) Clone() *Element {
	cp := &Element{}
	errors.Log(copier.CopyWithOption(cp, el, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return cp
}

// CloneList returns a deep copy of the given element list.
func CloneList(els []*Element) []*Element {
	if els == nil {
		return nil
	}
	cp := make([]*Element, len(els))
	for i, el := range els {
		cp[i] = el.Clone()
	}
	return cp
}

// Index returns the index of the element with the given id, or -1.
func Index(els []*Element, id string) int {
	for i, el := range els {
		if el.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the element with the given id, or nil.
func Find(els []*Element, id string) *Element {
	if i := Index(els, id); i >= 0 {
		return els[i]
	}
	return nil
}

// Validate returns an error joining every invariant the element violates,
// or nil.
func (el *Element) Validate() error {
	var errs []error
	if el.ID == "" {
		errs = append(errs, errors.New("empty id"))
	}
	if !el.Kind.IsValid() {
		errs = append(errs, fmt.Errorf("unknown kind %d", el.Kind))
	}
	if el.Width < 0 || el.Height < 0 {
		errs = append(errs, fmt.Errorf("negative size %gx%g", el.Width, el.Height))
	}
	if el.Opacity < 0 || el.Opacity > 1 || math32.IsNaN(el.Opacity) {
		errs = append(errs, fmt.Errorf("opacity %g outside [0,1]", el.Opacity))
	}
	if el.Gradient != nil {
		if el.Fill != "" {
			errs = append(errs, errors.New("both fill and gradient set"))
		}
		prev := float32(0)
		for i, st := range el.Gradient.Stops {
			if st.Offset < 0 || st.Offset > 1 {
				errs = append(errs, fmt.Errorf("gradient stop %d offset %g outside [0,1]", i, st.Offset))
			}
			if st.Offset < prev {
				errs = append(errs, fmt.Errorf("gradient stop %d offset %g out of order", i, st.Offset))
			}
			prev = st.Offset
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("scene.Element %s: %w", el.ID, errors.Join(errs...))
}

// Sanitize repairs the element in place so that it satisfies [Element.Validate],
// except for the ID and Kind which it cannot invent.
func (el *Element) Sanitize() {
	el.Width = math32.Abs(el.Width)
	el.Height = math32.Abs(el.Height)
	if math32.IsNaN(el.Opacity) {
		el.Opacity = 1
	}
	el.Opacity = math32.Clamp(el.Opacity, 0, 1)
	if el.Gradient != nil {
		el.Fill = ""
		prev := float32(0)
		for i := range el.Gradient.Stops {
			st := &el.Gradient.Stops[i]
			st.Offset = max(math32.Clamp(st.Offset, 0, 1), prev)
			prev = st.Offset
		}
	}
}

// ValidateList validates every element and checks that IDs are unique.
func ValidateList(els []*Element) error {
	var errs []error
	seen := make(map[string]bool, len(els))
	for _, el := range els {
		if err := el.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[el.ID] {
			errs = append(errs, fmt.Errorf("duplicate id %q", el.ID))
		}
		seen[el.ID] = true
	}
	return errors.Join(errs...)
}
