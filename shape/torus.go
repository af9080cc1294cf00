// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/ez3d/ez3d/math32"

// Torus is a torus mesh lying in the XY plane, defined by the radius
// of the ring and the radius of the solid tube.
type Torus struct {
	ShapeBase

	// radius of the torus ring, from the center to the middle of the tube
	Radius float32

	// radius of the solid tube
	Tube float32

	// number of segments around the cross-section of the tube
	RadialSegs int

	// number of segments around the ring
	TubularSegs int
}

// NewTorus returns a Torus mesh with the specified ring radius,
// tube radius, and number of segments (resolution).
func NewTorus(radius, tube float32, radialSegs, tubularSegs int) *Torus {
	tr := &Torus{}
	tr.Defaults()
	tr.Radius = radius
	tr.Tube = tube
	tr.RadialSegs = max(radialSegs, 2)
	tr.TubularSegs = max(tubularSegs, 3)
	return tr
}

func (tr *Torus) Defaults() {
	tr.Radius = 0.5
	tr.Tube = 0.2
	tr.RadialSegs = 16
	tr.TubularSegs = 48
}

func (tr *Torus) N() (numVertex, numIndex int) {
	return TorusN(tr.RadialSegs, tr.TubularSegs)
}

// Set sets points for torus in given allocated arrays
func (tr *Torus) Set(vertex, normal math32.ArrayF32, index math32.ArrayU32) {
	tr.CBBox = SetTorus(vertex, normal, index, tr.VtxOffset, tr.IndexOffset, tr.Radius, tr.Tube, tr.RadialSegs, tr.TubularSegs, tr.Pos)
}

// TorusN returns N's for a torus geometry with
// number of radial segments and number of tubular segments.
func TorusN(radialSegs, tubularSegs int) (numVertex, numIndex int) {
	numVertex = (radialSegs + 1) * (tubularSegs + 1)
	numIndex = radialSegs * tubularSegs * 6
	return
}

// SetTorus sets torus vertex, normal and index data
// at given starting *vertex* index (i.e., multiply this *3 to get
// actual float offset in Vtx array), and starting Index index,
// with the specified ring radius, tube radius,
// number of radial segments and number of tubular segments.
// pos is an arbitrary offset (for composing shapes),
// returns bounding box.
func SetTorus(vertex, normal math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radius, tube float32, radialSegs, tubularSegs int, pos math32.Vector3) math32.Box3 {
	idx := 0
	vidx := vtxOff * 3
	bb := math32.B3Empty()

	var center math32.Vector3
	for j := 0; j <= radialSegs; j++ {
		v := float32(j) / float32(radialSegs) * 2 * math32.Pi
		for i := 0; i <= tubularSegs; i++ {
			u := float32(i) / float32(tubularSegs) * 2 * math32.Pi

			center.X = radius * math32.Cos(u)
			center.Y = radius * math32.Sin(u)

			var pt math32.Vector3
			pt.X = (radius + tube*math32.Cos(v)) * math32.Cos(u)
			pt.Y = (radius + tube*math32.Cos(v)) * math32.Sin(u)
			pt.Z = tube * math32.Sin(v)
			normal.SetVector3(vidx+idx*3, pt.Sub(center).Normal())
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := uint32(vtxOff)
	ii := idxOff
	for j := 1; j <= radialSegs; j++ {
		for i := 1; i <= tubularSegs; i++ {
			a := vOff + uint32((tubularSegs+1)*j+i-1)
			b := vOff + uint32((tubularSegs+1)*(j-1)+i-1)
			c := vOff + uint32((tubularSegs+1)*(j-1)+i)
			d := vOff + uint32((tubularSegs+1)*j+i)
			index.Set(ii, a, b, d, b, c, d)
			ii += 6
		}
	}
	return bb
}
