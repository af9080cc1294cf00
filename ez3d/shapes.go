// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"fmt"

	"github.com/ez3d/ez3d/base/errors"
	"github.com/ez3d/ez3d/render"
	"github.com/ez3d/ez3d/shape"
	"github.com/jinzhu/copier"
)

// Shape is the geometry parameters of an [Object]: one of [*Box],
// [*Sphere], [*Plane], [*Cylinder] or [*Torus]. Zero-valued
// parameters take the per-kind defaults.
type Shape interface {

	// Kind returns the lowercase name of the shape kind, such as "box".
	Kind() string

	isShape()
}

// Box is a rectangular solid. Width, Height and Depth default to Size,
// which defaults to 1.
type Box struct {
	Size     float32 `toml:"size" yaml:"size"`
	Width    float32 `toml:"width" yaml:"width"`
	Height   float32 `toml:"height" yaml:"height"`
	Depth    float32 `toml:"depth" yaml:"depth"`
	Segments int     `toml:"segments" yaml:"segments"`
}

// Sphere is a UV sphere with radius 0.5 and 32x16 segments by default.
type Sphere struct {
	Radius         float32 `toml:"radius" yaml:"radius"`
	WidthSegments  int     `toml:"width_segments" yaml:"width_segments"`
	HeightSegments int     `toml:"height_segments" yaml:"height_segments"`
}

// Plane is a flat rectangle facing +Z, 1x1 by default.
type Plane struct {
	Width    float32 `toml:"width" yaml:"width"`
	Height   float32 `toml:"height" yaml:"height"`
	Segments int     `toml:"segments" yaml:"segments"`
}

// Cylinder is a closed cylinder along the Y axis, with radii 0.5,
// height 1 and 32 radial segments by default.
type Cylinder struct {
	RadiusTop      float32 `toml:"radius_top" yaml:"radius_top"`
	RadiusBottom   float32 `toml:"radius_bottom" yaml:"radius_bottom"`
	Height         float32 `toml:"height" yaml:"height"`
	RadialSegments int     `toml:"radial_segments" yaml:"radial_segments"`
}

// Torus is a ring in the XY plane, with radius 0.5, tube 0.2
// and 16x48 segments by default.
type Torus struct {
	Radius          float32 `toml:"radius" yaml:"radius"`
	Tube            float32 `toml:"tube" yaml:"tube"`
	RadialSegments  int     `toml:"radial_segments" yaml:"radial_segments"`
	TubularSegments int     `toml:"tubular_segments" yaml:"tubular_segments"`
}

func (*Box) Kind() string      { return "box" }
func (*Sphere) Kind() string   { return "sphere" }
func (*Plane) Kind() string    { return "plane" }
func (*Cylinder) Kind() string { return "cylinder" }
func (*Torus) Kind() string    { return "torus" }

func (*Box) isShape()      {}
func (*Sphere) isShape()   {}
func (*Plane) isShape()    {}
func (*Cylinder) isShape() {}
func (*Torus) isShape()    {}

// NewShape returns a new zero [Shape] of the given kind,
// or an error if the kind is unknown.
func NewShape(kind string) (Shape, error) {
	switch kind {
	case "box":
		return &Box{}, nil
	case "sphere":
		return &Sphere{}, nil
	case "plane":
		return &Plane{}, nil
	case "cylinder":
		return &Cylinder{}, nil
	case "torus":
		return &Torus{}, nil
	}
	return nil, fmt.Errorf("ez3d: unknown shape kind %q", kind)
}

// isNilShape returns whether sh is nil or a nil pointer of a shape type.
func isNilShape(sh Shape) bool {
	switch x := sh.(type) {
	case nil:
		return true
	case *Box:
		return x == nil
	case *Sphere:
		return x == nil
	case *Plane:
		return x == nil
	case *Cylinder:
		return x == nil
	case *Torus:
		return x == nil
	}
	return false
}

// cloneShape returns a deep copy of the given shape.
// Nil shapes are returned unchanged.
func cloneShape(sh Shape) Shape {
	if isNilShape(sh) {
		return sh
	}
	ns, err := NewShape(sh.Kind())
	if err != nil {
		return sh
	}
	if errors.Log(copier.CopyWithOption(ns, sh, copier.Option{CaseSensitive: true, DeepCopy: true})) != nil {
		return sh
	}
	return ns
}

func orDefault[T float32 | int](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}

// buildGeometry generates the geometry for the given shape,
// applying the per-kind defaults. It panics for a shape
// without a geometry, which is a programming error.
func buildGeometry(sh Shape) *render.Geometry {
	if isNilShape(sh) {
		panic(fmt.Errorf("ez3d: geometry must be implemented for shape %T", sh))
	}
	var s shape.Shape
	switch x := sh.(type) {
	case *Box:
		size := orDefault(x.Size, 1)
		s = shape.NewBox(orDefault(x.Width, size), orDefault(x.Height, size), orDefault(x.Depth, size), orDefault(x.Segments, 1))
	case *Sphere:
		s = shape.NewSphere(orDefault(x.Radius, 0.5), orDefault(x.WidthSegments, 32), orDefault(x.HeightSegments, 16))
	case *Plane:
		s = shape.NewPlane(orDefault(x.Width, 1), orDefault(x.Height, 1), orDefault(x.Segments, 1), orDefault(x.Segments, 1))
	case *Cylinder:
		s = shape.NewCylinder(orDefault(x.RadiusTop, 0.5), orDefault(x.RadiusBottom, 0.5), orDefault(x.Height, 1), orDefault(x.RadialSegments, 32))
	case *Torus:
		s = shape.NewTorus(orDefault(x.Radius, 0.5), orDefault(x.Tube, 0.2), orDefault(x.RadialSegments, 16), orDefault(x.TubularSegments, 48))
	default:
		panic(fmt.Errorf("ez3d: geometry must be implemented for shape %T", sh))
	}
	return render.NewGeometry(shape.Build(s))
}
