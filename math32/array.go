// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for packed vector data.
type ArrayF32 []float32

// NewArrayF32 creates and returns a slice of float32 values
// with the specified initial size and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// SetVector3 sets the values of the array at the specified float index
// from the XYZ values of the specified [Vector3].
func (a ArrayF32) SetVector3(idx int, v Vector3) {
	a[idx] = v.X
	a[idx+1] = v.Y
	a[idx+2] = v.Z
}

// Vector3 returns the [Vector3] stored at the specified float index.
func (a ArrayF32) Vector3(idx int) Vector3 {
	return Vector3{a[idx], a[idx+1], a[idx+2]}
}

// ArrayU32 is a slice of uint32 with additional convenience methods.
type ArrayU32 []uint32

// NewArrayU32 creates and returns a slice of uint32 values
// with the specified initial size and capacity.
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Set sets the values of the array starting at the specified index
// from the specified values.
func (a ArrayU32) Set(idx int, v ...uint32) {
	copy(a[idx:], v)
}
