// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a map that also keeps its values in the
// order their keys were first added, for tables that are looked up
// by id and listed in document or display order.
package ordmap

import "iter"

type entry[K comparable, V any] struct {
	key K
	val V
}

// Map is an insertion-ordered map. The zero value is not usable; see [New].
type Map[K comparable, V any] struct {
	entries []entry[K, V]
	index   map[K]int
}

// New returns a new empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Add sets the value for the key. A new key goes to the end;
// an existing key keeps its position.
func (om *Map[K, V]) Add(key K, val V) {
	if i, ok := om.index[key]; ok {
		om.entries[i].val = val
		return
	}
	om.index[key] = len(om.entries)
	om.entries = append(om.entries, entry[K, V]{key, val})
}

// Get returns the value for the key, and whether it is present.
func (om *Map[K, V]) Get(key K) (V, bool) {
	if om == nil {
		var zv V
		return zv, false
	}
	i, ok := om.index[key]
	if !ok {
		var zv V
		return zv, false
	}
	return om.entries[i].val, true
}

// All returns an iterator over the keys and values in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, e := range om.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	ks := make([]K, om.Len())
	if om == nil {
		return ks
	}
	for i, e := range om.entries {
		ks[i] = e.key
	}
	return ks
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vs := make([]V, om.Len())
	if om == nil {
		return vs
	}
	for i, e := range om.entries {
		vs[i] = e.val
	}
	return vs
}

// Len returns the number of keys.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.entries)
}
