// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/ez3d/ez3d/math32"

// Cylinder is a closed cylinder or truncated cone along the Y axis,
// centered on the origin. A zero top or bottom radius makes a cone
// and omits that cap.
type Cylinder struct {
	ShapeBase

	// radius of the top (+Y) end
	RadiusTop float32

	// radius of the bottom (-Y) end
	RadiusBottom float32

	// length along the Y axis
	Height float32

	// number of segments around the circumference (at least 3)
	RadialSegs int
}

// NewCylinder returns a Cylinder mesh with the given radii, height and
// number of radial segments.
func NewCylinder(radiusTop, radiusBottom, height float32, radialSegs int) *Cylinder {
	cy := &Cylinder{}
	cy.Defaults()
	cy.RadiusTop = radiusTop
	cy.RadiusBottom = radiusBottom
	cy.Height = height
	cy.RadialSegs = max(radialSegs, 3)
	return cy
}

func (cy *Cylinder) Defaults() {
	cy.RadiusTop = 0.5
	cy.RadiusBottom = 0.5
	cy.Height = 1
	cy.RadialSegs = 32
}

func (cy *Cylinder) N() (numVertex, numIndex int) {
	return CylinderN(cy.RadiusTop, cy.RadiusBottom, cy.RadialSegs)
}

// Set sets points in given allocated arrays
func (cy *Cylinder) Set(vertex, normal math32.ArrayF32, index math32.ArrayU32) {
	cy.CBBox = SetCylinder(vertex, normal, index, cy.VtxOffset, cy.IndexOffset, cy.RadiusTop, cy.RadiusBottom, cy.Height, cy.RadialSegs, cy.Pos)
}

// CylinderN returns the N's for a cylinder with the given radii and number
// of radial segments: the side wall plus one cap per nonzero radius.
func CylinderN(radiusTop, radiusBottom float32, radialSegs int) (numVertex, numIndex int) {
	numVertex = 2 * (radialSegs + 1)
	numIndex = radialSegs * 6
	for _, r := range []float32{radiusTop, radiusBottom} {
		if r > 0 {
			numVertex += 2*radialSegs + 1
			numIndex += radialSegs * 3
		}
	}
	return
}

// SetCylinder sets cylinder vertex, normal and index data at given starting
// *vertex* index and starting Index index. pos is an arbitrary offset
// (for composing shapes), returns bounding box.
func SetCylinder(vertex, normal math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radiusTop, radiusBottom, height float32, radialSegs int, pos math32.Vector3) math32.Box3 {
	bb := math32.B3Empty()
	hh := height / 2
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}
	vi := vtxOff
	ii := idxOff
	setVtx := func(pt, nrm math32.Vector3) {
		pt.SetAdd(pos)
		vertex.SetVector3(vi*3, pt)
		normal.SetVector3(vi*3, nrm)
		bb.ExpandByPoint(pt)
		vi++
	}

	// side wall: top ring then bottom ring
	for y := 0; y <= 1; y++ {
		r := float32(y)*(radiusBottom-radiusTop) + radiusTop
		for x := 0; x <= radialSegs; x++ {
			theta := float32(x) / float32(radialSegs) * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			setVtx(math32.Vec3(r*sin, hh-float32(y)*height, r*cos), math32.Vec3(sin, slope, cos).Normal())
		}
	}
	row := uint32(radialSegs + 1)
	for x := 0; x < radialSegs; x++ {
		a := uint32(vtxOff + x)
		b := a + row
		c := b + 1
		d := a + 1
		index.Set(ii, a, b, d, b, c, d)
		ii += 6
	}

	addCap := func(top bool) {
		r, sign := radiusBottom, float32(-1)
		if top {
			r, sign = radiusTop, 1
		}
		if r <= 0 {
			return
		}
		nrm := math32.Vec3(0, sign, 0)
		centerStart := uint32(vi)
		for x := 0; x < radialSegs; x++ {
			setVtx(math32.Vec3(0, sign*hh, 0), nrm)
		}
		ringStart := uint32(vi)
		for x := 0; x <= radialSegs; x++ {
			theta := float32(x) / float32(radialSegs) * 2 * math32.Pi
			setVtx(math32.Vec3(r*math32.Sin(theta), sign*hh, r*math32.Cos(theta)), nrm)
		}
		for x := uint32(0); x < uint32(radialSegs); x++ {
			c := centerStart + x
			i := ringStart + x
			if top {
				index.Set(ii, i, i+1, c)
			} else {
				index.Set(ii, i+1, i, c)
			}
			ii += 3
		}
	}
	addCap(true)
	addCap(false)
	return bb
}
