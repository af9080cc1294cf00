// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides mesh generation for the standard primitive
// shapes: box, sphere, plane, cylinder and torus. Each shape reports
// the number of vertex and index points it needs with N, and writes its
// data into preallocated arrays with Set, so that shapes can be composed
// into one set of arrays at different offsets. [Build] does both for a
// single shape and returns the resulting [Mesh].
package shape

import (
	"github.com/ez3d/ez3d/math32"
)

// Shape is an interface for all shape-constructing elements.
type Shape interface {

	// N returns number of vertex, index points in this shape element.
	N() (numVertex, numIndex int)

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets starting offsets for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset int)

	// Set sets points in given allocated arrays.
	Set(vertex, normal math32.ArrayF32, index math32.ArrayU32)

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// vertex offset, in points
	VtxOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	return sb.VtxOffset, sb.IndexOffset
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array.
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VtxOffset, sb.IndexOffset = vtxOffset, idxOffset
}

// BBox returns the bounding box for the shape, typically centered around 0.
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Mesh holds the generated vertex data for one or more shapes.
// Triangles are listed in Index as triples of vertex indexes,
// wound counter-clockwise when viewed from the front.
type Mesh struct {
	Vertex math32.ArrayF32
	Normal math32.ArrayF32
	Index  math32.ArrayU32
	BBox   math32.Box3
}

// NumVertex returns the number of vertex points.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Build allocates arrays for the given shapes, sets their offsets,
// fills in their data and returns the resulting [Mesh].
func Build(shapes ...Shape) *Mesh {
	nv, ni := 0, 0
	for _, sh := range shapes {
		sh.SetOffsets(nv, ni)
		v, i := sh.N()
		nv += v
		ni += i
	}
	ms := &Mesh{
		Vertex: math32.NewArrayF32(nv*3, nv*3),
		Normal: math32.NewArrayF32(nv*3, nv*3),
		Index:  math32.NewArrayU32(ni, ni),
		BBox:   math32.B3Empty(),
	}
	for _, sh := range shapes {
		sh.Set(ms.Vertex, ms.Normal, ms.Index)
		bb := sh.BBox()
		ms.BBox.ExpandByPoint(bb.Min)
		ms.BBox.ExpandByPoint(bb.Max)
	}
	return ms
}

// BBoxFromVertices returns the bounding box of the given range of vertex points.
func BBoxFromVertices(vertex math32.ArrayF32, vtxOffset, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOffset * 3
	for vi := 0; vi < numVertex; vi++ {
		bb.ExpandByPoint(vertex.Vector3(vidx + vi*3))
	}
	return bb
}
