// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"image/color"
	"testing"

	"github.com/ez3d/ez3d/colors"
	"github.com/ez3d/ez3d/math32"
	"github.com/ez3d/ez3d/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bboxSize returns the extent of the given bounding box.
func bboxSize(bb math32.Box3) math32.Vector3 {
	return bb.Max.Sub(bb.Min)
}

func TestNewObjectConfig(t *testing.T) {
	obj := NewBox(ObjectConfig{
		Name:      "cube",
		Color:     "Red",
		Position:  [3]float32{1, 2, 3},
		Rotation:  [3]float32{90, 0, 180},
		Wireframe: true,
		Material:  render.Phong,
	}, Box{Size: 2})
	assert.Equal(t, "cube", obj.Name())
	assert.Equal(t, "box", obj.Kind())
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, obj.Color())
	assert.Equal(t, math32.Vec3(1, 2, 3), obj.Position())
	assert.InDelta(t, math32.Pi/2, obj.Rotation().X, 1e-6)
	assert.InDelta(t, math32.Pi, obj.Rotation().Z, 1e-6)
	assert.Equal(t, math32.Vec3(1, 1, 1), obj.Scale())
	assert.True(t, obj.Wireframe())
	assert.True(t, obj.Visible())
	assert.Equal(t, render.Phong, obj.Mesh.Material().Kind)
	assert.Equal(t, math32.Vec3(2, 2, 2), bboxSize(obj.Mesh.Geometry.Mesh.BBox))
}

func TestNewObjectDefaults(t *testing.T) {
	obj := NewObject(ObjectConfig{Shape: &Sphere{}})
	assert.Equal(t, colors.Unpack(colors.DefaultHex), obj.Color())
	assert.Equal(t, render.Standard, obj.Mesh.Material().Kind)
	bb := obj.Mesh.Geometry.Mesh.BBox
	assert.InDelta(t, 1, bboxSize(bb).Y, 1e-5)

	// an empty color string gets the default color, not a transparent one
	obj = NewObject(ObjectConfig{Shape: &Box{}, Color: ""})
	assert.Equal(t, colors.Unpack(colors.DefaultHex), obj.Color())

	// unknown material kinds fall back to standard
	obj = NewObject(ObjectConfig{Shape: &Plane{}, Material: render.MaterialKinds(99)})
	assert.Equal(t, render.Standard, obj.Mesh.Material().Kind)
}

func TestBoxDefaults(t *testing.T) {
	obj := NewBox(ObjectConfig{}, Box{Size: 2, Width: 4})
	assert.Equal(t, math32.Vec3(4, 2, 2), bboxSize(obj.Mesh.Geometry.Mesh.BBox))
	obj = NewBox(ObjectConfig{}, Box{})
	assert.Equal(t, math32.Vec3(1, 1, 1), bboxSize(obj.Mesh.Geometry.Mesh.BBox))
}

func TestAllShapes(t *testing.T) {
	for _, sh := range []Shape{&Box{}, &Sphere{}, &Plane{}, &Cylinder{}, &Torus{}} {
		obj := NewObject(ObjectConfig{Shape: sh})
		assert.Equal(t, sh.Kind(), obj.Kind())
		assert.Greater(t, obj.Mesh.Geometry.Mesh.NumTriangles(), 0, sh.Kind())
	}
	_, err := NewShape("teapot")
	assert.Error(t, err)
}

func TestShapeCopied(t *testing.T) {
	box := &Box{Size: 1}
	obj := NewObject(ObjectConfig{Shape: box})
	box.Size = 5
	assert.Equal(t, float32(1), obj.Shape().(*Box).Size)
	assert.NotSame(t, box, obj.Shape())
}

func TestMissingGeometryPanics(t *testing.T) {
	assert.PanicsWithError(t, "ez3d: geometry must be implemented for shape <nil>", func() {
		NewObject(ObjectConfig{Name: "nothing"})
	})
	assert.PanicsWithError(t, "ez3d: geometry must be implemented for shape *ez3d.Box", func() {
		NewObject(ObjectConfig{Name: "nil box", Shape: (*Box)(nil)})
	})
	assert.PanicsWithError(t, "ez3d: geometry must be implemented for shape *ez3d.Torus", func() {
		NewObject(ObjectConfig{Shape: (*Torus)(nil)})
	})
}

func TestSetters(t *testing.T) {
	obj := NewTorus(ObjectConfig{}, Torus{})
	same := obj.SetPosition(1, 2, 3).
		SetRotation(180, 90, 45).
		SetScale(2).
		SetColor(0x00ff00).
		SetWireframe(true).
		SetVisible(false)
	require.Same(t, obj, same)
	assert.Equal(t, math32.Vec3(1, 2, 3), obj.Position())
	assert.InDelta(t, math32.Pi, obj.Rotation().X, 1e-6)
	assert.InDelta(t, math32.Pi/2, obj.Rotation().Y, 1e-6)
	assert.InDelta(t, math32.Pi/4, obj.Rotation().Z, 1e-6)
	assert.Equal(t, math32.Vec3(2, 2, 2), obj.Scale())
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, obj.Color())
	assert.True(t, obj.Wireframe())
	assert.False(t, obj.Visible())

	obj.SetScaleXYZ(1, 2, 3)
	assert.Equal(t, math32.Vec3(1, 2, 3), obj.Scale())
	obj.SetColor(struct{}{})
	assert.Equal(t, colors.Unpack(colors.DefaultHex), obj.Color())
}

func TestRotationDegrees(t *testing.T) {
	obj := NewPlane(ObjectConfig{}, Plane{})
	for _, deg := range []float32{0, 1, 45, 90, 180, 360, -30, 720} {
		obj.SetRotation(deg, deg, deg)
		want := deg * math32.Pi / 180
		assert.InDelta(t, want, obj.Rotation().X, 1e-5)
		assert.InDelta(t, want, obj.Rotation().Y, 1e-5)
		assert.InDelta(t, want, obj.Rotation().Z, 1e-5)
	}
}

func TestDispose(t *testing.T) {
	obj := NewCylinder(ObjectConfig{}, Cylinder{})
	geom := obj.Mesh.Geometry
	obj.Mesh.Materials = append(obj.Mesh.Materials, render.NewMaterial(render.Unlit, color.RGBA{}))
	obj.Dispose()
	assert.Equal(t, 1, geom.Disposed())
	for _, mt := range obj.Mesh.Materials {
		assert.Equal(t, 1, mt.Disposed())
	}
}
