// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"slices"
	"strings"
)

// Directions are the ways to move an element in the stacking order.
type Directions int32

const (
	// Up moves the element one step toward the front.
	Up Directions = iota

	// Down moves the element one step toward the back.
	Down

	// Top moves the element to the front.
	Top

	// Bottom moves the element to the back.
	Bottom
)

var directionNames = []string{"up", "down", "top", "bottom"}

// String returns the string representation of this Directions value.
func (i Directions) String() string {
	if i < 0 || int(i) >= len(directionNames) {
		return fmt.Sprintf("Directions(%d)", int32(i))
	}
	return directionNames[i]
}

// SetString sets the Directions value from its string representation.
func (i *Directions) SetString(s string) error {
	n := slices.Index(directionNames, strings.ToLower(strings.TrimSpace(s)))
	if n < 0 {
		return fmt.Errorf("document.Directions.SetString: %q is not a valid value", s)
	}
	*i = Directions(n)
	return nil
}

// Reorder moves the element in the stacking order. Moving the front
// element up, or the back element down, leaves the order unchanged.
func (d *Document) Reorder(id string, dir Directions) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, err := d.index(id)
	if err != nil {
		return err
	}
	to := i
	switch dir {
	case Up:
		to = min(i+1, len(d.elements)-1)
	case Down:
		to = max(i-1, 0)
	case Top:
		to = len(d.elements) - 1
	case Bottom:
		to = 0
	}
	d.save("reorder " + dir.String())
	d.moveTo(i, to)
	return nil
}

// MoveTo moves the element to the given index in the stacking order,
// clamped to the valid range.
func (d *Document) MoveTo(id string, index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, err := d.index(id)
	if err != nil {
		return err
	}
	d.save("move to")
	d.moveTo(i, min(max(index, 0), len(d.elements)-1))
	return nil
}

func (d *Document) moveTo(from, to int) {
	if from == to {
		return
	}
	el := d.elements[from]
	d.elements = slices.Delete(d.elements, from, from+1)
	d.elements = slices.Insert(d.elements, to, el)
}
