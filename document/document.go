// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document provides the live scene of a banner editor:
// the element list, selection and canvas, with undo history,
// a clipboard and a suggestion overlay.
package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/project"
	"cogentcore.org/artflow/scene"
	"cogentcore.org/artflow/svg"
	"cogentcore.org/artflow/templates"
	"cogentcore.org/artflow/undo"
)

// ErrNotFound is returned for an element id that is not in the document.
var ErrNotFound = errors.New("document: element not found")

// PasteOffset is the offset of a pasted element from the copied one.
const PasteOffset = 20

// Snapshot is one undo state: everything a mutation can change.
type Snapshot struct {
	Elements []*scene.Element
	Selected string
	Canvas   scene.Canvas
}

// Document is the live scene graph of one banner. Every mutating method
// saves an undo snapshot first. All methods are safe for concurrent use.
type Document struct {

	// ProjectID is the id of the project the document was loaded from
	// or last saved to, or "" for a new document.
	ProjectID string

	// Importer is used by [Document.LoadTemplate].
	Importer *svg.Importer

	// Templates is the library used by [Document.LoadDesign] and
	// [Document.AddSticker], or nil for the built-in templates.
	Templates *templates.Library

	mu         sync.Mutex
	elements   []*scene.Element
	selected   string
	canvas     scene.Canvas
	history    *undo.Mgr[Snapshot]
	clipboard  *scene.Element
	suggestion []*scene.Element
	gesture    bool
}

// New returns an empty document on the given canvas,
// with an undo history of the given depth (0 for the default).
func New(canvas scene.Canvas, historyDepth int) *Document {
	return &Document{
		Importer: svg.NewImporter(),
		canvas:   canvas.Clone(),
		history:  undo.New[Snapshot](historyDepth),
	}
}

// snapshot returns a deep copy of the current state. Must be called under lock.
func (d *Document) snapshot() Snapshot {
	return Snapshot{Elements: scene.CloneList(d.elements), Selected: d.selected, Canvas: d.canvas.Clone()}
}

// restore makes the snapshot the current state. The snapshot is owned by the
// document afterwards. Must be called under lock.
func (d *Document) restore(s Snapshot) {
	d.elements = s.Elements
	d.selected = s.Selected
	d.canvas = s.Canvas
}

// save records the current state before a discrete mutation,
// ending any open gesture. Must be called under lock.
func (d *Document) save(action string) {
	d.gesture = false
	d.history.SaveAction(action, d.snapshot())
}

// saveEdit records the current state before an element edit, unless
// an open gesture already recorded it. Must be called under lock.
func (d *Document) saveEdit(action string) {
	if d.gesture {
		return
	}
	d.history.SaveAction(action, d.snapshot())
}

// index returns the index of the element, or [ErrNotFound].
func (d *Document) index(id string) (int, error) {
	i := scene.Index(d.elements, id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return i, nil
}

// Canvas returns the canvas configuration.
func (d *Document) Canvas() scene.Canvas {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.canvas.Clone()
}

// Elements returns a copy of the elements in stacking order.
func (d *Document) Elements() []*scene.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return scene.CloneList(d.elements)
}

// Len returns the number of elements.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.elements)
}

// Element returns a copy of the element with the given id, or nil.
func (d *Document) Element(id string) *scene.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el := scene.Find(d.elements, id); el != nil {
		return el.Clone()
	}
	return nil
}

// SelectedID returns the id of the selected element, or "".
func (d *Document) SelectedID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}

// Selected returns a copy of the selected element, or nil.
func (d *Document) Selected() *scene.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el := scene.Find(d.elements, d.selected); el != nil {
		return el.Clone()
	}
	return nil
}

// Select selects the element with the given id; "" clears the selection.
// Selection is not recorded in the undo history on its own.
func (d *Document) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id != "" {
		if _, err := d.index(id); err != nil {
			return err
		}
	}
	d.selected = id
	return nil
}

// Add appends a copy of the element on top of the scene and returns its id.
// An element without an id gets a new one, as does an element whose id
// is already in use.
func (d *Document) Add(el *scene.Element) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.save("add")
	el = el.Clone()
	if el.ID == "" || scene.Index(d.elements, el.ID) >= 0 {
		el.ID = scene.NewID()
	}
	el.Sanitize()
	d.elements = append(d.elements, el)
	return el.ID
}

// Update calls fun on the element with the given id.
// The element id cannot be changed.
func (d *Document) Update(id string, fun func(el *scene.Element)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, err := d.index(id)
	if err != nil {
		return err
	}
	d.saveEdit("update")
	el := d.elements[i]
	fun(el)
	el.ID = id
	el.Sanitize()
	return nil
}

// Move moves the element by the given offset.
func (d *Document) Move(id string, dx, dy float32) error {
	return d.Update(id, func(el *scene.Element) {
		el.X += dx
		el.Y += dy
	})
}

// Resize sets the declared size of the element.
func (d *Document) Resize(id string, width, height float32) error {
	return d.Update(id, func(el *scene.Element) {
		el.Width, el.Height = width, height
	})
}

// Rotate sets the rotation of the element, in degrees.
func (d *Document) Rotate(id string, degrees float32) error {
	return d.Update(id, func(el *scene.Element) {
		el.Rotation = degrees
	})
}

// Remove deletes the element, clearing the selection if it was selected.
func (d *Document) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, err := d.index(id)
	if err != nil {
		return err
	}
	d.save("remove")
	d.elements = slices.Delete(d.elements, i, i+1)
	if d.selected == id {
		d.selected = ""
	}
	return nil
}

// SetElements replaces all elements with copies of the given ones.
// The selection is kept if the selected element is still present.
func (d *Document) SetElements(els []*scene.Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.save("set elements")
	d.replace(els)
}

// replace sets the elements to sanitized copies. Must be called under lock.
func (d *Document) replace(els []*scene.Element) {
	d.elements = scene.CloneList(els)
	for _, el := range d.elements {
		el.Sanitize()
	}
	if scene.Index(d.elements, d.selected) < 0 {
		d.selected = ""
	}
}

// Clear removes all elements and the selection, and detaches the
// document from its project.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.save("clear")
	d.elements = nil
	d.selected = ""
	d.ProjectID = ""
}

// SetCanvas sets the canvas configuration. Elements are not moved.
func (d *Document) SetCanvas(canvas scene.Canvas) error {
	if err := canvas.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.save("set canvas")
	d.canvas = canvas.Clone()
	return nil
}

// LoadTemplate replaces the elements with those imported from the markup,
// fitted to the current canvas. Markup that cannot be parsed leaves the
// document unchanged and returns an error wrapping [svg.ErrMalformedInput].
// Other import problems are returned as an [*svg.ImportError] after the
// elements are loaded.
func (d *Document) LoadTemplate(markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	im := d.Importer
	if im == nil {
		im = svg.NewImporter()
	}
	els, err := im.Import(markup, d.canvas.Width, d.canvas.Height)
	if els == nil && err != nil {
		return err
	}
	d.save("load template")
	d.replace(els)
	d.selected = ""
	return err
}

// Export returns the markup of the visible elements on the canvas.
func (d *Document) Export() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exporter().Export(d.elements, d.canvas)
}

// WriteXML writes the markup of the visible elements to the writer.
func (d *Document) WriteXML(w io.Writer, indent bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exporter().WriteXML(w, d.elements, d.canvas, indent)
}

// exporter returns an exporter placing text baselines the way
// the document importer reads them.
func (d *Document) exporter() *svg.Exporter {
	ex := svg.NewExporter()
	if d.Importer != nil && d.Importer.Estimator != nil {
		ex.Estimator = d.Importer.Estimator
	}
	return ex
}

// Copy copies the selected element to the clipboard.
// It returns false if nothing is selected.
func (d *Document) Copy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := scene.Find(d.elements, d.selected)
	if el == nil {
		return false
	}
	d.clipboard = el.Clone()
	return true
}

// Paste adds a copy of the clipboard element offset by [PasteOffset],
// and selects it. It returns false if the clipboard is empty.
func (d *Document) Paste() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.clipboard == nil {
		return "", false
	}
	d.save("paste")
	el := d.clipboard.Clone()
	el.ID = scene.NewID()
	el.X += PasteOffset
	el.Y += PasteOffset
	d.elements = append(d.elements, el)
	d.selected = el.ID
	return el.ID, true
}

// PlaceImage places an incoming image as decided by [place.Decide]
// for the current selection, and selects the element holding it.
func (d *Document) PlaceImage(p place.Payload, mode place.Mode) place.Decision {
	d.mu.Lock()
	defer d.mu.Unlock()
	dec := place.Decide(d.elements, d.selected, mode)
	d.save("place image")
	d.elements, d.selected = place.Apply(d.elements, dec, p)
	slog.Debug("document: placed image", "decision", dec, "mode", mode)
	return dec
}

// BeginGesture starts a continuous edit such as a drag: the state is
// saved once, and element edits until [Document.EndGesture] are not saved.
// Any other mutation ends the gesture and is saved as usual. Beginning a gesture while one is active has no effect.
func (d *Document) BeginGesture() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gesture {
		return
	}
	d.save("gesture")
	d.gesture = true
}

// EndGesture ends the current gesture.
func (d *Document) EndGesture() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gesture = false
}

// Undo restores the state before the last mutation, ending any gesture.
// It returns false if there is nothing to undo.
func (d *Document) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gesture = false
	prev, ok := d.history.Undo(d.snapshot())
	if ok {
		d.restore(prev)
	}
	return ok
}

// Redo reapplies the last undone mutation.
// It returns false if there is nothing to redo.
func (d *Document) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gesture = false
	next, ok := d.history.Redo(d.snapshot())
	if ok {
		d.restore(next)
	}
	return ok
}

// CanUndo returns whether [Document.Undo] would change the state.
func (d *Document) CanUndo() bool { return d.history.IsUndoAvail() }

// CanRedo returns whether [Document.Redo] would change the state.
func (d *Document) CanRedo() bool { return d.history.IsRedoAvail() }

// Load replaces the document with the project, resetting the undo history.
func (d *Document) Load(rec *project.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history.Reset()
	d.gesture = false
	d.suggestion = nil
	d.replace(rec.Elements)
	d.selected = ""
	d.canvas = rec.Canvas.Clone()
	d.ProjectID = rec.ID
}

// Record returns a project record of the document with the given name,
// for saving to a [project.Store].
func (d *Document) Record(name string) *project.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return &project.Record{
		ID:       d.ProjectID,
		Name:     name,
		Elements: scene.CloneList(d.elements),
		Canvas:   d.canvas.Clone(),
	}
}
