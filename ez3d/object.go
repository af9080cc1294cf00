// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"image/color"

	"github.com/ez3d/ez3d/base/ordmap"
	"github.com/ez3d/ez3d/colors"
	"github.com/ez3d/ez3d/math32"
	"github.com/ez3d/ez3d/render"
)

// ObjectConfig is the configuration of a new [Object].
type ObjectConfig struct {

	// Name is the name of the object, used by [Scene.FindByName].
	Name string

	// Color is any value accepted by [colors.Resolve]. A nil Color is [colors.DefaultHex].
	Color any

	// Position is the initial position.
	Position [3]float32

	// Rotation is the initial rotation in degrees.
	Rotation [3]float32

	// Scale is the initial scale; all zeros means 1, 1, 1.
	Scale [3]float32

	// Wireframe draws only the edges of the triangles.
	Wireframe bool

	// Material is the shading model.
	Material render.MaterialKinds

	// Shape is the geometry of the object. It is copied, so changing it
	// after construction has no effect.
	Shape Shape
}

// UpdateFunc is a function called on every frame with the time in
// seconds since the previous frame and since the engine started.
type UpdateFunc func(obj *Object, delta, elapsed float32)

// Object is a renderable primitive with a transform, a material and
// per-frame animations. Its geometry and material are created once by
// [NewObject] and live until [Object.Dispose].
type Object struct {

	// Mesh is the render node of the object, which holds its
	// transform, visibility, geometry and material.
	Mesh *render.Mesh

	shape      Shape
	animations *ordmap.Map[string, UpdateFunc]
	updates    []UpdateFunc
}

// NewObject returns a new [Object] for the given configuration.
// It panics if the configuration has no [Shape].
func NewObject(cfg ObjectConfig) *Object {
	sh := cloneShape(cfg.Shape)
	geom := buildGeometry(sh)
	mat := render.NewMaterial(cfg.Material, colors.Resolve(cfg.Color).RGBA())
	mat.Wireframe = cfg.Wireframe
	obj := &Object{
		Mesh:       render.NewMesh(cfg.Name, geom, mat),
		shape:      sh,
		animations: ordmap.New[string, UpdateFunc](),
	}
	obj.SetPosition(cfg.Position[0], cfg.Position[1], cfg.Position[2])
	obj.SetRotation(cfg.Rotation[0], cfg.Rotation[1], cfg.Rotation[2])
	if cfg.Scale != [3]float32{} {
		obj.SetScaleXYZ(cfg.Scale[0], cfg.Scale[1], cfg.Scale[2])
	}
	return obj
}

// NewBox returns a new box [Object]; see [Box] for the defaults.
func NewBox(cfg ObjectConfig, box Box) *Object {
	cfg.Shape = &box
	return NewObject(cfg)
}

// NewSphere returns a new sphere [Object]; see [Sphere] for the defaults.
func NewSphere(cfg ObjectConfig, sphere Sphere) *Object {
	cfg.Shape = &sphere
	return NewObject(cfg)
}

// NewPlane returns a new plane [Object]; see [Plane] for the defaults.
func NewPlane(cfg ObjectConfig, plane Plane) *Object {
	cfg.Shape = &plane
	return NewObject(cfg)
}

// NewCylinder returns a new cylinder [Object]; see [Cylinder] for the defaults.
func NewCylinder(cfg ObjectConfig, cylinder Cylinder) *Object {
	cfg.Shape = &cylinder
	return NewObject(cfg)
}

// NewTorus returns a new torus [Object]; see [Torus] for the defaults.
func NewTorus(cfg ObjectConfig, torus Torus) *Object {
	cfg.Shape = &torus
	return NewObject(cfg)
}

// AsNodeBase returns the [render.NodeBase] of the object's mesh.
func (obj *Object) AsNodeBase() *render.NodeBase {
	return &obj.Mesh.NodeBase
}

// Name returns the name of the object.
func (obj *Object) Name() string { return obj.Mesh.Name }

// Kind returns the shape kind of the object, such as "box".
func (obj *Object) Kind() string { return obj.shape.Kind() }

// Shape returns a copy of the shape parameters the object was built with.
func (obj *Object) Shape() Shape { return cloneShape(obj.shape) }

// Position returns the current position.
func (obj *Object) Position() math32.Vector3 { return obj.Mesh.Pos }

// Rotation returns the current rotation in radians.
func (obj *Object) Rotation() math32.Vector3 { return obj.Mesh.Rot }

// Scale returns the current scale.
func (obj *Object) Scale() math32.Vector3 { return obj.Mesh.Scale }

// Visible returns whether the object is drawn.
func (obj *Object) Visible() bool { return obj.Mesh.Visible }

// Color returns the current color of the material.
func (obj *Object) Color() color.RGBA { return obj.Mesh.Material().Color }

// Wireframe returns whether the material draws only edges.
func (obj *Object) Wireframe() bool { return obj.Mesh.Material().Wireframe }

// SetPosition sets the position.
func (obj *Object) SetPosition(x, y, z float32) *Object {
	obj.Mesh.Pos.Set(x, y, z)
	return obj
}

// SetRotation sets the rotation, in degrees.
func (obj *Object) SetRotation(x, y, z float32) *Object {
	obj.Mesh.Rot.Set(math32.DegToRad(x), math32.DegToRad(y), math32.DegToRad(z))
	return obj
}

// SetScale sets a uniform scale on all axes.
func (obj *Object) SetScale(s float32) *Object {
	obj.Mesh.Scale.SetScalar(s)
	return obj
}

// SetScaleXYZ sets the scale of each axis.
func (obj *Object) SetScaleXYZ(x, y, z float32) *Object {
	obj.Mesh.Scale.Set(x, y, z)
	return obj
}

// SetColor sets the color of the material to any value
// accepted by [colors.Resolve].
func (obj *Object) SetColor(v any) *Object {
	clr := colors.Resolve(v).RGBA()
	for _, mt := range obj.Mesh.Materials {
		mt.Color = clr
	}
	return obj
}

// SetWireframe sets whether the material draws only edges.
func (obj *Object) SetWireframe(wireframe bool) *Object {
	for _, mt := range obj.Mesh.Materials {
		mt.Wireframe = wireframe
	}
	return obj
}

// SetVisible sets whether the object is drawn.
func (obj *Object) SetVisible(visible bool) *Object {
	obj.Mesh.Visible = visible
	return obj
}

// Dispose releases the geometry and every material of the object.
// It does not remove the object from its scene. It is not guarded
// against being called more than once.
func (obj *Object) Dispose() {
	obj.Mesh.Geometry.Dispose()
	for _, mt := range obj.Mesh.Materials {
		mt.Dispose()
	}
}
