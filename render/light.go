// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

// LightBase holds the properties shared by all lights.
type LightBase struct {
	NodeBase

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Intensity multiplies the color; 1 is full strength.
	Intensity float32
}

// AmbientLight provides uniform lighting from all directions.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new [AmbientLight] with the given color and intensity.
func NewAmbientLight(name string, clr color.RGBA, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Defaults()
	lt.Name = name
	lt.Color = clr
	lt.Intensity = intensity
	return lt
}

// DirLight is a directional light shining from its position toward
// the origin, with no attenuation, like the Sun.
type DirLight struct {
	LightBase
}

// NewDirLight returns a new [DirLight] at the given position.
func NewDirLight(name string, clr color.RGBA, intensity float32, x, y, z float32) *DirLight {
	lt := &DirLight{}
	lt.Defaults()
	lt.Name = name
	lt.Color = clr
	lt.Intensity = intensity
	lt.Pos.Set(x, y, z)
	return lt
}
