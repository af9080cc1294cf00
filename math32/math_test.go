// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, Pi/2, DegToRad(90), tol)
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(3, 3, 3), b.Sub(a))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
	assert.InDelta(t, 1, Vec3(3, 4, 0).Normal().Length(), tol)
	assert.Equal(t, Vector3{}, Vector3{}.DivScalar(0))
}

func TestSetTransform(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(1, 2, 3), Vector3{}, Vec3(2, 2, 2))
	p := Vec3(1, 1, 1).MulMatrix4(m)
	assert.Equal(t, Vec3(3, 4, 5), p)

	// 90 degrees around Y maps +X to -Z
	m.SetTransform(Vector3{}, Vec3(0, Pi/2, 0), Vec3(1, 1, 1))
	p = Vec3(1, 0, 0).MulMatrix4(m)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, -1, p.Z, tol)
}

func TestLookAtPerspective(t *testing.T) {
	view := &Matrix4{}
	view.SetLookAt(Vec3(0, 0, 5), Vector3{}, Vec3(0, 1, 0))
	p := Vector3{}.MulMatrix4(view)
	assert.InDelta(t, -5, p.Z, tol)

	proj := &Matrix4{}
	proj.SetPerspective(90, 1, 0.1, 100)
	vp := proj.Mul(view)
	ndc := Vector3{}.MulMatrix4AsVector4(vp, 1).Vector3()
	assert.InDelta(t, 0, ndc.X, tol)
	assert.InDelta(t, 0, ndc.Y, tol)
	assert.True(t, ndc.Z > -1 && ndc.Z < 1)

	// up parallel to view direction does not produce NaNs
	view.SetLookAt(Vec3(0, 5, 0), Vector3{}, Vec3(0, 1, 0))
	for _, v := range view {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.Greater(t, b.Min.X, b.Max.X)
	b.ExpandByPoint(Vec3(-1, 2, -3))
	b.ExpandByPoint(Vec3(1, -2, 3))
	assert.Equal(t, Vec3(-1, -2, -3), b.Min)
	assert.Equal(t, Vec3(1, 2, 3), b.Max)
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](2, 0, 1))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, float32(15), Lerp(10, 20, 0.5))
	assert.Equal(t, float32(30), Lerp(10, 20, 2))
}
