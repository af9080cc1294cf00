// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/ez3d/ez3d/math32"

// Camera is a perspective camera looking from Pos toward Target.
type Camera struct {

	// field of view in degrees, vertically
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane distance
	Near float32

	// far plane distance
	Far float32

	// position of the camera in world coordinates
	Pos math32.Vector3

	// point the camera looks at
	Target math32.Vector3

	// up direction, defaults to the positive Y axis
	UpDir math32.Vector3

	// projection matrix; only valid when not dirty
	PrjnMatrix math32.Matrix4

	dirty bool
}

// NewCamera returns a new [Camera] with default parameters.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 1000
	cm.Pos.Set(0, 0, 5)
	cm.Target = math32.Vector3{}
	cm.UpDir.Set(0, 1, 0)
	cm.dirty = true
}

// SetAspect sets the aspect ratio from the given size and marks the
// projection as needing to be recomputed. Non-positive sizes are ignored.
func (cm *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
	cm.dirty = true
}

// SetDirty marks the projection as needing to be recomputed,
// which must be done after changing FOV, Near or Far.
func (cm *Camera) SetDirty() {
	cm.dirty = true
}

// IsDirty returns whether the projection needs to be recomputed.
func (cm *Camera) IsDirty() bool {
	return cm.dirty
}

// UpdateProjection recomputes the projection matrix.
func (cm *Camera) UpdateProjection() {
	cm.PrjnMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	cm.dirty = false
}

// ViewMatrix returns the world-to-camera transform.
func (cm *Camera) ViewMatrix() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
	return m
}

// ViewProjection returns the combined projection * view matrix,
// updating the projection first if it is dirty.
func (cm *Camera) ViewProjection() *math32.Matrix4 {
	if cm.dirty {
		cm.UpdateProjection()
	}
	return cm.PrjnMatrix.Mul(cm.ViewMatrix())
}
