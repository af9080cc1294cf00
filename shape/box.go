// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/ez3d/ez3d/math32"

// Box is a rectangular-shaped solid (cuboid)
type Box struct {
	ShapeBase

	// size along each dimension
	Size math32.Vector3

	// number of segments to divide each face into (enforced to be at least 1)
	Segs int
}

// NewBox returns a Box shape with given size
func NewBox(width, height, depth float32, segs int) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	bx.Segs = max(segs, 1)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs = 1
}

func (bx *Box) N() (numVertex, numIndex int) {
	nv, ni := PlaneN(bx.Segs, bx.Segs)
	return 6 * nv, 6 * ni
}

// Set sets points in given allocated arrays
func (bx *Box) Set(vertex, normal math32.ArrayF32, index math32.ArrayU32) {
	hs := bx.Size.MulScalar(0.5)
	x, y, z := math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)
	nx, nz := x.MulScalar(-1), z.MulScalar(-1)
	faces := []struct {
		u, v         math32.Vector3
		w, h, offset float32
	}{
		{x, y, bx.Size.X, bx.Size.Y, hs.Z},  // pz
		{nx, y, bx.Size.X, bx.Size.Y, hs.Z}, // nz
		{nz, y, bx.Size.Z, bx.Size.Y, hs.X}, // px
		{z, y, bx.Size.Z, bx.Size.Y, hs.X},  // nx
		{x, nz, bx.Size.X, bx.Size.Z, hs.Y}, // py
		{x, z, bx.Size.X, bx.Size.Z, hs.Y},  // ny
	}
	nv, ni := PlaneN(bx.Segs, bx.Segs)
	voff, ioff := bx.VtxOffset, bx.IndexOffset
	for _, f := range faces {
		SetPlane(vertex, normal, index, voff, ioff, f.u, f.v, f.w, f.h, f.offset, bx.Segs, bx.Segs, bx.Pos)
		voff += nv
		ioff += ni
	}
	mn := bx.Pos.Sub(hs)
	mx := bx.Pos.Add(hs)
	bx.CBBox = math32.Box3{Min: mn, Max: mx}
}
