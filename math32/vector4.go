// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vector3 returns the X, Y, Z components divided by W
// (the perspective divide). A zero W leaves them undivided.
func (v Vector4) Vector3() Vector3 {
	if v.W == 0 {
		return Vector3{v.X, v.Y, v.Z}
	}
	return Vector3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}
