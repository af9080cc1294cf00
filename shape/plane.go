// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/ez3d/ez3d/math32"

// Plane is a flat 2D plane in the XY plane, facing +Z.
type Plane struct {
	ShapeBase

	// size along the X and Y axes
	Width, Height float32

	// number of segments to divide each axis into (enforced to be at least 1)
	WidthSegs, HeightSegs int
}

// NewPlane returns a Plane shape with given size and segments.
func NewPlane(width, height float32, wsegs, hsegs int) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.Width, pl.Height = width, height
	pl.WidthSegs, pl.HeightSegs = max(wsegs, 1), max(hsegs, 1)
	return pl
}

func (pl *Plane) Defaults() {
	pl.Width, pl.Height = 1, 1
	pl.WidthSegs, pl.HeightSegs = 1, 1
}

func (pl *Plane) N() (numVertex, numIndex int) {
	return PlaneN(pl.WidthSegs, pl.HeightSegs)
}

// Set sets points in given allocated arrays
func (pl *Plane) Set(vertex, normal math32.ArrayF32, index math32.ArrayU32) {
	SetPlane(vertex, normal, index, pl.VtxOffset, pl.IndexOffset, math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), pl.Width, pl.Height, 0, pl.WidthSegs, pl.HeightSegs, pl.Pos)
	nv, _ := pl.N()
	pl.CBBox = BBoxFromVertices(vertex, pl.VtxOffset, nv)
}

// PlaneN returns the N's for a single plane's worth of
// vertex and index data with given number of segments.
// Note: In *vertex* units, not float units (i.e., x3 to get
// actual float offset in Vtx array).
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs, hsegs = max(wsegs, 1), max(hsegs, 1)
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane sets plane vertex, normal and index data at the given starting
// *vertex* index and starting index index. The plane spans width along
// the u axis and height along the v axis, centered on the point offset
// along the u x v axis, which is also its normal. Triangles are wound
// counter-clockwise when viewed from that normal. pos is a 3D position
// offset for composing shapes.
func SetPlane(vertex, normal math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, u, v math32.Vector3, width, height, offset float32, wsegs, hsegs int, pos math32.Vector3) {
	wsegs, hsegs = max(wsegs, 1), max(hsegs, 1)
	w := u.Cross(v)
	center := w.MulScalar(offset).Add(pos)
	segW := width / float32(wsegs)
	segH := height / float32(hsegs)

	vidx := vtxOff * 3
	for iy := 0; iy <= hsegs; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix <= wsegs; ix++ {
			x := float32(ix)*segW - width/2
			pt := center.Add(u.MulScalar(x)).Add(v.MulScalar(y))
			vertex.SetVector3(vidx, pt)
			normal.SetVector3(vidx, w)
			vidx += 3
		}
	}

	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := uint32(vtxOff + ix + (wsegs+1)*iy)
			b := a + 1
			d := a + uint32(wsegs+1)
			c := d + 1
			index.Set(ii, a, b, c, a, c, d)
			ii += 6
		}
	}
}
