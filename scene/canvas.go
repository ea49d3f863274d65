// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"

	"cogentcore.org/artflow/colors"
)

// Categories are the platform families of canvas presets.
type Categories int32

const (
	CategoryCustom Categories = iota
	CategoryInstagram
	CategoryYouTube
	CategoryFacebook
	CategoryTwitter
)

var categoryNames = []string{"custom", "instagram", "youtube", "facebook", "twitter"}

func (i Categories) String() string { return enumString(categoryNames, int(i)) }

// SetString sets the Categories value from its string representation.
func (i *Categories) SetString(s string) error {
	v, err := enumSet("Categories", categoryNames, s)
	if err != nil {
		return err
	}
	*i = Categories(v)
	return nil
}

func (i Categories) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Categories) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// SafeArea is a labeled guide rectangle shown on screen.
// It never takes part in geometry.
type SafeArea struct {
	ID     string  `json:"id" yaml:"id" toml:"id"`
	X      float32 `json:"x" yaml:"x" toml:"x"`
	Y      float32 `json:"y" yaml:"y" toml:"y"`
	Width  float32 `json:"width" yaml:"width" toml:"width"`
	Height float32 `json:"height" yaml:"height" toml:"height"`
	Label  string  `json:"label" yaml:"label" toml:"label"`
	Stroke string  `json:"stroke" yaml:"stroke" toml:"stroke"`
	Fill   string  `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty"`
}

// Canvas is the configuration of the output canvas.
type Canvas struct {
	ID       string     `json:"id" yaml:"id" toml:"id"`
	Name     string     `json:"name" yaml:"name" toml:"name"`
	Width    float32    `json:"width" yaml:"width" toml:"width"`
	Height   float32    `json:"height" yaml:"height" toml:"height"`
	Category Categories `json:"category" yaml:"category" toml:"category"`

	SafeAreas []SafeArea `json:"safeAreas,omitempty" yaml:"safe-areas,omitempty" toml:"safe-areas,omitempty"`

	// Background is the export background color; "" is white.
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
}

// Clone returns a copy of the canvas that shares no memory with it.
func (c Canvas) Clone() Canvas {
	c.SafeAreas = slices.Clone(c.SafeAreas)
	return c
}

// BackgroundColor returns the export background color.
func (c *Canvas) BackgroundColor() string {
	if c.Background == "" {
		return colors.White
	}
	return c.Background
}

// Validate checks that the canvas has a positive size.
func (c *Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("scene.Canvas %q: size must be positive, got %gx%g", c.ID, c.Width, c.Height)
	}
	return nil
}
