// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("grad", 1)
	om.Add("shadow", 2)
	om.Add("grad", 3)
	assert.Equal(t, 2, om.Len())
	v, ok := om.Get("grad")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"grad", "shadow"}, om.Keys())

	om.Add("glow", 4)
	assert.Equal(t, []int{3, 2, 4}, om.Values())

	_, ok = om.Get("missing")
	assert.False(t, ok)

	var keys []string
	for k, v := range om.All() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []string{"grad", "shadow"}, keys)
}

func TestNilMap(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
	_, ok := om.Get("x")
	assert.False(t, ok)
	assert.Empty(t, om.Values())
	for range om.All() {
		t.Fatal("nil map has no entries")
	}
}
