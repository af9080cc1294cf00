// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/ez3d/ez3d/math32"

// Sphere is a UV sphere mesh centered on the origin, with the poles on the Y axis.
type Sphere struct {
	ShapeBase

	// radius of the sphere
	Radius float32

	// number of horizontal segments around the equator (at least 3)
	WidthSegs int

	// number of vertical segments from pole to pole (at least 2)
	HeightSegs int
}

// NewSphere returns a Sphere mesh with the specified radius
// and number of segments (resolution).
func NewSphere(radius float32, wsegs, hsegs int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.WidthSegs = max(wsegs, 3)
	sp.HeightSegs = max(hsegs, 2)
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Radius = 0.5
	sp.WidthSegs = 32
	sp.HeightSegs = 16
}

func (sp *Sphere) N() (numVertex, numIndex int) {
	return SphereN(sp.WidthSegs, sp.HeightSegs)
}

// Set sets points in given allocated arrays
func (sp *Sphere) Set(vertex, normal math32.ArrayF32, index math32.ArrayU32) {
	sp.CBBox = SetSphere(vertex, normal, index, sp.VtxOffset, sp.IndexOffset, sp.Radius, sp.WidthSegs, sp.HeightSegs, sp.Pos)
}

// SphereN returns the N's for a sphere with the given number of segments.
// The single-triangle rows at each pole omit their degenerate halves.
func SphereN(wsegs, hsegs int) (numVertex, numIndex int) {
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * (hsegs - 1) * 6
	return
}

// SetSphere sets sphere vertex, normal and index data at given starting
// *vertex* index and starting Index index, with the given radius and
// number of width and height segments. pos is an arbitrary offset
// (for composing shapes), returns bounding box.
func SetSphere(vertex, normal math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radius float32, wsegs, hsegs int, pos math32.Vector3) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	for iy := 0; iy <= hsegs; iy++ {
		v := float32(iy) / float32(hsegs)
		for ix := 0; ix <= wsegs; ix++ {
			u := float32(ix) / float32(wsegs)
			var pt math32.Vector3
			pt.X = -radius * math32.Cos(u*2*math32.Pi) * math32.Sin(v*math32.Pi)
			pt.Y = radius * math32.Cos(v*math32.Pi)
			pt.Z = radius * math32.Sin(u*2*math32.Pi) * math32.Sin(v*math32.Pi)
			normal.SetVector3(vidx, pt.Normal())
			pt.SetAdd(pos)
			vertex.SetVector3(vidx, pt)
			bb.ExpandByPoint(pt)
			vidx += 3
		}
	}

	row := uint32(wsegs + 1)
	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			b := uint32(vtxOff) + uint32(iy)*row + uint32(ix)
			a := b + 1
			c := b + row
			d := c + 1
			if iy != 0 {
				index.Set(ii, a, b, d)
				ii += 3
			}
			if iy != hsegs-1 {
				index.Set(ii, b, c, d)
				ii += 3
			}
		}
	}
	return bb
}
