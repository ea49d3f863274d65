// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import "cogentcore.org/artflow/scene"

// SetSuggestion sets the suggestion overlay to copies of the given
// elements, replacing any pending suggestion. The live elements are
// not changed and nothing is saved in the undo history.
func (d *Document) SetSuggestion(els []*scene.Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suggestion = scene.CloneList(els)
	if d.suggestion == nil {
		d.suggestion = []*scene.Element{}
	}
}

// Suggestion returns a copy of the pending suggestion, or nil if there is none.
func (d *Document) Suggestion() []*scene.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return scene.CloneList(d.suggestion)
}

// HasSuggestion returns whether a suggestion is pending.
func (d *Document) HasSuggestion() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suggestion != nil
}

// AcceptSuggestion replaces all elements with the pending suggestion
// in one undoable step. It returns false if there is no suggestion.
func (d *Document) AcceptSuggestion() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.suggestion == nil {
		return false
	}
	d.save("accept suggestion")
	d.replace(d.suggestion)
	d.suggestion = nil
	return true
}

// RejectSuggestion discards the pending suggestion.
func (d *Document) RejectSuggestion() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suggestion = nil
}
