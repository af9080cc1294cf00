// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order:
// element (row, col) is at index col*4 + row.
//
//	| 0  4  8 12 |
//	| 1  5  9 13 |
//	| 2  6 10 14 |
//	| 3  7 11 15 |
type Matrix4 [16]float32

// Mul returns this matrix times other matrix (this * other).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * other[c*4+k]
			}
			nm[c*4+r] = s
		}
	}
	return nm
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width / height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
}

// SetLookAt sets this matrix to the view matrix of an eye at the given
// position looking toward target, with the given up direction.
// It is the inverse of the eye's world transform.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.Length() == 0 {
		z.Z = 1
	}
	z = z.Normal()
	x := up.Cross(z)
	if x.Length() == 0 {
		// up and z are parallel
		z.X += 0.0001
		z = z.Normal()
		x = up.Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)
	*m = Matrix4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// SetTransform sets this matrix to the transform composed of the given
// scale, then rotation by euler angles in radians (applied in X, Y, Z order),
// then translation to the given position.
func (m *Matrix4) SetTransform(pos, rot, scale Vector3) {
	a, b := Cos(rot.X), Sin(rot.X)
	c, d := Cos(rot.Y), Sin(rot.Y)
	e, f := Cos(rot.Z), Sin(rot.Z)
	ae, af, be, bf := a*e, a*f, b*e, b*f

	m[0] = c * e * scale.X
	m[1] = (af + be*d) * scale.X
	m[2] = (bf - ae*d) * scale.X
	m[3] = 0

	m[4] = -c * f * scale.Y
	m[5] = (ae - bf*d) * scale.Y
	m[6] = (be + af*d) * scale.Y
	m[7] = 0

	m[8] = d * scale.Z
	m[9] = -b * c * scale.Z
	m[10] = a * c * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}
