// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is a small software rendering backend: a render graph of
// mesh and light nodes, a perspective camera, and a [Renderer] that
// rasterizes the graph into an RGBA image.
package render

import (
	"github.com/ez3d/ez3d/math32"
)

// Node is an element of a [Graph].
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node,
	// which provides the core functionality of a node.
	AsNodeBase() *NodeBase
}

// NodeBase provides the core implementation of the [Node] interface.
type NodeBase struct {

	// Name is the name of the node; it need not be unique.
	Name string

	// Pos is the position of the node in world coordinates.
	Pos math32.Vector3

	// Rot is the rotation of the node, as euler angles in radians
	// applied in X, Y, Z order.
	Rot math32.Vector3

	// Scale is the scale factor along each axis.
	Scale math32.Vector3

	// Visible is whether the node is drawn.
	Visible bool
}

// AsNodeBase returns the node base itself, implementing [Node].
func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// Defaults sets unit scale and makes the node visible.
func (nb *NodeBase) Defaults() {
	nb.Scale.Set(1, 1, 1)
	nb.Visible = true
}

// Matrix returns the local-to-world transform of the node.
func (nb *NodeBase) Matrix() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTransform(nb.Pos, nb.Rot, nb.Scale)
	return m
}

// Mesh is a renderable node combining a [Geometry] with one or more
// materials. Only the first material is used for drawing; the rest
// are held so they can be released together.
type Mesh struct {
	NodeBase

	Geometry *Geometry

	Materials []*Material
}

// NewMesh returns a new visible [Mesh] with the given name, geometry and materials.
func NewMesh(name string, geom *Geometry, mats ...*Material) *Mesh {
	ms := &Mesh{Geometry: geom, Materials: mats}
	ms.Defaults()
	ms.Name = name
	return ms
}

// Material returns the primary material of the mesh, or nil if it has none.
func (ms *Mesh) Material() *Material {
	if len(ms.Materials) == 0 {
		return nil
	}
	return ms.Materials[0]
}
