// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"strings"
)

// MaterialKinds are the shading models a [Material] can use.
type MaterialKinds int32

const (
	// Standard is physically-inspired diffuse shading, and the default.
	Standard MaterialKinds = iota

	// Unlit is flat color, unaffected by lights.
	Unlit

	// Phong is legacy diffuse plus specular highlight shading.
	Phong

	MaterialKindsN
)

var materialKindNames = [...]string{"standard", "unlit", "phong"}

// String returns the lowercase name of the kind.
func (mk MaterialKinds) String() string {
	if mk < 0 || mk >= MaterialKindsN {
		return "standard"
	}
	return materialKindNames[mk]
}

// MaterialKindFromString returns the kind with the given name, matched
// case-insensitively. Unknown names are [Standard].
func MaterialKindFromString(s string) MaterialKinds {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range materialKindNames {
		if nm == s {
			return MaterialKinds(i)
		}
	}
	return Standard
}

// MarshalText implements [encoding.TextMarshaler].
func (mk MaterialKinds) MarshalText() ([]byte, error) {
	return []byte(mk.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It never fails: unknown names are [Standard].
func (mk *MaterialKinds) UnmarshalText(text []byte) error {
	*mk = MaterialKindFromString(string(text))
	return nil
}

// Material describes the surface appearance of a [Mesh].
type Material struct {

	// Kind is the shading model.
	Kind MaterialKinds

	// Color is the base surface color.
	Color color.RGBA

	// Wireframe draws only the triangle edges.
	Wireframe bool

	disposed int
}

// NewMaterial returns a new [Material] of the given kind and color.
// Out-of-range kinds are [Standard].
func NewMaterial(kind MaterialKinds, clr color.RGBA) *Material {
	if kind < 0 || kind >= MaterialKindsN {
		kind = Standard
	}
	return &Material{Kind: kind, Color: clr}
}

// Dispose releases the material. Like [Geometry.Dispose] it is counted, not guarded.
func (mt *Material) Dispose() {
	mt.disposed++
}

// Disposed returns the number of times Dispose has been called.
func (mt *Material) Disposed() int {
	return mt.disposed
}
