// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReplaceKeepsSlot(t *testing.T) {
	var om Map[string, int]
	om.Add("spin", 1)
	om.Add("float", 2)
	om.Add("pulse", 3)
	om.Add("spin", 10)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"spin", "float", "pulse"}, om.Keys())
	assert.Equal(t, []int{10, 2, 3}, om.Values())
}

func TestDeleteKey(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)

	assert.True(t, om.DeleteKey("a"))
	assert.False(t, om.DeleteKey("a"))
	assert.Equal(t, []string{"b", "c"}, om.Keys())
	assert.Equal(t, []int{2, 3}, om.Values())
	assert.False(t, om.Has("a"))
	assert.True(t, om.Has("c"))

	// indexes above the deleted slot are renumbered
	assert.True(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"c"}, om.Keys())
	om.Add("c", 30)
	assert.Equal(t, []int{30}, om.Values())
	om.Add("b", 2)

	om.Add("a", 4)
	assert.Equal(t, []string{"c", "b", "a"}, om.Keys())
}

func TestReset(t *testing.T) {
	var om Map[string, int]
	om.Add("x", 1)
	om.Add("y", 2)
	assert.Equal(t, 2, om.Len())

	om.Reset()
	assert.Equal(t, 0, om.Len())
	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
}
