// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a snapshot undo / redo manager
// with a bounded history depth.
package undo

import (
	"log/slog"
	"sync"
)

// DefaultMax is the default maximum number of undo records.
var DefaultMax = 50

// Rec is one undo record: the full state before an action,
// along with a description of the action.
type Rec[T any] struct {

	// Action is a description of the action, for the user to see.
	Action string

	// State is the snapshot to restore.
	State T
}

// Mgr is the undo manager, holding the past and future snapshot stacks.
// Snapshots must not share mutable memory with the live state:
// the owner saves deep copies and the manager never modifies them.
// The zero value is ready to use with [DefaultMax] depth.
type Mgr[T any] struct {

	// Max is the maximum number of undo records; the oldest
	// record is evicted when a save would exceed it. 0 means [DefaultMax].
	Max int

	past   []Rec[T]
	future []Rec[T]

	mu sync.Mutex
}

// New returns a new manager with the given maximum depth.
func New[T any](depth int) *Mgr[T] {
	return &Mgr[T]{Max: depth}
}

func (um *Mgr[T]) max() int {
	if um.Max <= 0 {
		return DefaultMax
	}
	return um.Max
}

// Save pushes the state that precedes a mutation onto the undo stack
// and clears the redo stack.
func (um *Mgr[T]) Save(state T) {
	um.SaveAction("", state)
}

// SaveAction is [Mgr.Save] with a description of the action.
func (um *Mgr[T]) SaveAction(action string, state T) {
	um.mu.Lock()
	defer um.mu.Unlock()
	um.past = append(um.past, Rec[T]{Action: action, State: state})
	if over := len(um.past) - um.max(); over > 0 {
		clear(um.past[:over])
		um.past = um.past[over:]
		slog.Debug("undo.Mgr: evicted oldest records", "n", over, "max", um.max())
	}
	clear(um.future)
	um.future = um.future[:0]
}

// Undo pops the most recent snapshot, pushing current onto the redo stack,
// and returns the snapshot to restore. It returns false, leaving the
// stacks unchanged, if there is nothing to undo.
func (um *Mgr[T]) Undo(current T) (T, bool) {
	um.mu.Lock()
	defer um.mu.Unlock()
	var zero T
	n := len(um.past)
	if n == 0 {
		return zero, false
	}
	rec := um.past[n-1]
	um.past[n-1] = Rec[T]{}
	um.past = um.past[:n-1]
	um.future = append(um.future, Rec[T]{Action: rec.Action, State: current})
	return rec.State, true
}

// Redo pops the most recently undone snapshot, pushing current onto the
// undo stack, and returns the snapshot to restore. It returns false,
// leaving the stacks unchanged, if there is nothing to redo.
func (um *Mgr[T]) Redo(current T) (T, bool) {
	um.mu.Lock()
	defer um.mu.Unlock()
	var zero T
	n := len(um.future)
	if n == 0 {
		return zero, false
	}
	rec := um.future[n-1]
	um.future[n-1] = Rec[T]{}
	um.future = um.future[:n-1]
	um.past = append(um.past, Rec[T]{Action: rec.Action, State: current})
	return rec.State, true
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr[T]) IsUndoAvail() bool {
	um.mu.Lock()
	defer um.mu.Unlock()
	return len(um.past) > 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr[T]) IsRedoAvail() bool {
	um.mu.Lock()
	defer um.mu.Unlock()
	return len(um.future) > 0
}

// UndoAction returns the description of the action that [Mgr.Undo] would revert.
func (um *Mgr[T]) UndoAction() string {
	um.mu.Lock()
	defer um.mu.Unlock()
	if len(um.past) == 0 {
		return ""
	}
	return um.past[len(um.past)-1].Action
}

// RedoAction returns the description of the action that [Mgr.Redo] would reapply.
func (um *Mgr[T]) RedoAction() string {
	um.mu.Lock()
	defer um.mu.Unlock()
	if len(um.future) == 0 {
		return ""
	}
	return um.future[len(um.future)-1].Action
}

// Len returns the number of undo and redo records.
func (um *Mgr[T]) Len() (undo, redo int) {
	um.mu.Lock()
	defer um.mu.Unlock()
	return len(um.past), len(um.future)
}

// Reset discards all records.
func (um *Mgr[T]) Reset() {
	um.mu.Lock()
	defer um.mu.Unlock()
	um.past = nil
	um.future = nil
}
