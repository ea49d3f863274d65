// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
	"strings"
)

// enumSet looks up the given string in the names table
// and returns its index, or an error naming the enum type.
func enumSet(typ string, names []string, s string) (int, error) {
	i := slices.Index(names, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, fmt.Errorf("%s.SetString: %q is not a valid value", typ, s)
	}
	return i, nil
}

func enumString(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%d", i)
	}
	return names[i]
}

// Kind is the type of a scene [Element].
type Kind int32

const (
	// Rect is a rectangle with an optional corner radius.
	Rect Kind = iota

	// Circle is an ellipse drawn inside its width as diameter.
	Circle

	// Path is vector path data with a rigid transform.
	Path

	// Text is a text box positioned by its top-left corner.
	Text

	// Image is a bitmap referenced by URL or inline data.
	Image
)

var kindNames = []string{"rect", "circle", "path", "text", "image"}

// KindValues returns all possible values for the type Kind.
func KindValues() []Kind { return []Kind{Rect, Circle, Path, Text, Image} }

// String returns the string representation of this Kind value.
func (i Kind) String() string { return enumString(kindNames, int(i)) }

// SetString sets the Kind value from its string representation.
func (i *Kind) SetString(s string) error {
	v, err := enumSet("Kind", kindNames, s)
	if err != nil {
		return err
	}
	*i = Kind(v)
	return nil
}

// IsValid returns whether the value is a known Kind.
func (i Kind) IsValid() bool { return i >= Rect && i <= Image }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kind) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kind) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// LineCaps specifies the shape of open stroke ends.
type LineCaps int32

const (
	LineCapButt LineCaps = iota
	LineCapRound
	LineCapSquare
)

var lineCapNames = []string{"butt", "round", "square"}

func (i LineCaps) String() string { return enumString(lineCapNames, int(i)) }

// SetString sets the LineCaps value from its string representation.
func (i *LineCaps) SetString(s string) error {
	v, err := enumSet("LineCaps", lineCapNames, s)
	if err != nil {
		return err
	}
	*i = LineCaps(v)
	return nil
}

func (i LineCaps) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *LineCaps) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// LineJoins specifies the shape of stroke corners.
type LineJoins int32

const (
	LineJoinMiter LineJoins = iota
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = []string{"miter", "round", "bevel"}

func (i LineJoins) String() string { return enumString(lineJoinNames, int(i)) }

// SetString sets the LineJoins value from its string representation.
func (i *LineJoins) SetString(s string) error {
	v, err := enumSet("LineJoins", lineJoinNames, s)
	if err != nil {
		return err
	}
	*i = LineJoins(v)
	return nil
}

func (i LineJoins) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *LineJoins) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Decorations are text decorations.
type Decorations int32

const (
	DecoNone Decorations = iota
	DecoUnderline
	DecoLineThrough
)

var decorationNames = []string{"none", "underline", "line-through"}

func (i Decorations) String() string { return enumString(decorationNames, int(i)) }

// SetString sets the Decorations value from its string representation.
// The empty string is none.
func (i *Decorations) SetString(s string) error {
	if strings.TrimSpace(s) == "" {
		*i = DecoNone
		return nil
	}
	v, err := enumSet("Decorations", decorationNames, s)
	if err != nil {
		return err
	}
	*i = Decorations(v)
	return nil
}

func (i Decorations) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Decorations) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Aligns are horizontal text alignments within the text box.
type Aligns int32

const (
	AlignLeft Aligns = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var alignNames = []string{"left", "center", "right", "justify"}

func (i Aligns) String() string { return enumString(alignNames, int(i)) }

// SetString sets the Aligns value from its string representation.
func (i *Aligns) SetString(s string) error {
	v, err := enumSet("Aligns", alignNames, s)
	if err != nil {
		return err
	}
	*i = Aligns(v)
	return nil
}

func (i Aligns) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Aligns) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// FontStyles is a bit flag set of font style options.
// Its string form is the normalized token
// "normal", "bold", "italic" or "italic bold".
type FontStyles uint8

const (
	// Bold is a heavy font weight.
	Bold FontStyles = 1 << iota

	// Italic is a slanted font style.
	Italic
)

// HasFlag returns whether the given flag is set.
func (fs FontStyles) HasFlag(f FontStyles) bool { return fs&f != 0 }

// SetFlag sets or clears the given flag.
func (fs *FontStyles) SetFlag(on bool, f FontStyles) {
	if on {
		*fs |= f
	} else {
		*fs &^= f
	}
}

func (fs FontStyles) String() string {
	switch {
	case fs.HasFlag(Italic) && fs.HasFlag(Bold):
		return "italic bold"
	case fs.HasFlag(Bold):
		return "bold"
	case fs.HasFlag(Italic):
		return "italic"
	}
	return "normal"
}

// SetString sets the flags from a space separated token list
// in any order, e.g. "bold italic".
func (fs *FontStyles) SetString(s string) error {
	var v FontStyles
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		switch tok {
		case "normal":
		case "bold":
			v |= Bold
		case "italic", "oblique":
			v |= Italic
		default:
			return fmt.Errorf("FontStyles.SetString: %q is not a valid value", tok)
		}
	}
	*fs = v
	return nil
}

func (fs FontStyles) MarshalText() ([]byte, error) { return []byte(fs.String()), nil }

func (fs *FontStyles) UnmarshalText(text []byte) error { return fs.SetString(string(text)) }
