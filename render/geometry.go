// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/ez3d/ez3d/shape"

// Geometry holds the vertex data of a [Mesh].
type Geometry struct {
	Mesh *shape.Mesh

	disposed int
}

// NewGeometry returns a new [Geometry] for the given mesh data.
func NewGeometry(ms *shape.Mesh) *Geometry {
	return &Geometry{Mesh: ms}
}

// Dispose releases the vertex data. It is not guarded:
// each call is counted, see [Geometry.Disposed].
func (gm *Geometry) Dispose() {
	gm.Mesh = nil
	gm.disposed++
}

// Disposed returns the number of times Dispose has been called.
func (gm *Geometry) Disposed() int {
	return gm.disposed
}
