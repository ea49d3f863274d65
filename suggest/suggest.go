// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suggest runs requests to an external advisor, such as a
// layout or image generation service, off the editing loop, and
// delivers their results to a document as suggestions or placed images.
package suggest

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/artflow/document"
	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/scene"
)

// Kinds are the kinds of advisor request.
type Kinds int32

const (
	// Layout asks for better positions and sizes of the elements.
	Layout Kinds = iota

	// Style asks for better colors and typography of the elements.
	Style

	// Image asks for a generated image from the prompt.
	Image
)

var kindNames = []string{"layout", "style", "image"}

// String returns the string representation of this Kinds value.
func (i Kinds) String() string {
	if i < 0 || int(i) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(i))
	}
	return kindNames[i]
}

// SetString sets the Kinds value from its string representation.
func (i *Kinds) SetString(s string) error {
	n := slices.Index(kindNames, strings.ToLower(strings.TrimSpace(s)))
	if n < 0 {
		return fmt.Errorf("suggest.Kinds.SetString: %q is not a valid value", s)
	}
	*i = Kinds(n)
	return nil
}

// Request is one advisor request, with a copy of the scene it is about.
type Request struct {
	Kind   Kinds
	Prompt string

	Elements []*scene.Element
	Canvas   scene.Canvas
}

// NewRequest returns a request about the current state of the document.
func NewRequest(kind Kinds, prompt string, doc *document.Document) Request {
	return Request{Kind: kind, Prompt: prompt, Elements: doc.Elements(), Canvas: doc.Canvas()}
}

// Advisor is an external collaborator that proposes changes.
// Implementations own any timeouts and retries.
type Advisor interface {

	// Suggest returns a proposed replacement of the request elements,
	// for [Layout] and [Style] requests.
	Suggest(ctx context.Context, req Request) ([]*scene.Element, error)

	// Generate returns an image for the prompt.
	Generate(ctx context.Context, prompt string) (place.Payload, error)
}

// Cover places the payload over the whole canvas: at the origin,
// scaled on each axis to the canvas size. A payload without an
// intrinsic size is given the canvas size. An image replaced by the
// payload takes only the origin and keeps its visible width.
func Cover(p place.Payload, canvas scene.Canvas) place.Payload {
	p.Placed = true
	p.X, p.Y, p.Rotation = 0, 0, 0
	if !p.HasSize() {
		p.Width, p.Height = canvas.Width, canvas.Height
	}
	p.ScaleX = canvas.Width / p.Width
	p.ScaleY = canvas.Height / p.Height
	return p
}
