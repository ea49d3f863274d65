// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUndoRedo(t *testing.T) {
	um := &Mgr[int]{}
	assert.False(t, um.IsUndoAvail())
	assert.False(t, um.IsRedoAvail())

	// state goes 0 -> 1 -> 2 -> 3
	state := 0
	for i := 1; i <= 3; i++ {
		um.SaveAction("set", state)
		state = i
	}
	undo, redo := um.Len()
	assert.Equal(t, 3, undo)
	assert.Equal(t, 0, redo)
	assert.Equal(t, "set", um.UndoAction())

	for want := 2; want >= 0; want-- {
		prev, ok := um.Undo(state)
		assert.True(t, ok)
		assert.Equal(t, want, prev)
		state = prev
	}
	_, ok := um.Undo(state)
	assert.False(t, ok)
	assert.Equal(t, 0, state)
	assert.True(t, um.IsRedoAvail())

	for want := 1; want <= 3; want++ {
		next, ok := um.Redo(state)
		assert.True(t, ok)
		assert.Equal(t, want, next)
		state = next
	}
	_, ok = um.Redo(state)
	assert.False(t, ok)
	assert.Equal(t, 3, state)
}

func TestSaveClearsRedo(t *testing.T) {
	um := New[string](10)
	um.Save("a")
	prev, ok := um.Undo("b")
	assert.True(t, ok)
	assert.Equal(t, "a", prev)
	assert.True(t, um.IsRedoAvail())
	assert.Equal(t, "", um.RedoAction())

	um.Save("a")
	assert.False(t, um.IsRedoAvail())
	_, ok = um.Redo("c")
	assert.False(t, ok)
}

func TestMaxEviction(t *testing.T) {
	tests := []struct {
		max   int
		saves int
		want  int
	}{
		{0, 60, DefaultMax},
		{50, 50, 50},
		{50, 51, 50},
		{3, 10, 3},
	}
	for _, test := range tests {
		um := New[int](test.max)
		for i := range test.saves {
			um.Save(i)
		}
		undo, _ := um.Len()
		assert.Equal(t, test.want, undo)

		// the oldest records are the ones evicted
		state := test.saves
		for range undo {
			state, _ = um.Undo(state)
		}
		assert.Equal(t, test.saves-test.want, state)
		_, ok := um.Undo(state)
		assert.False(t, ok)
	}
}

func TestReset(t *testing.T) {
	um := New[int](5)
	um.Save(1)
	um.Save(2)
	um.Undo(3)
	um.Reset()
	undo, redo := um.Len()
	assert.Zero(t, undo)
	assert.Zero(t, redo)
}
