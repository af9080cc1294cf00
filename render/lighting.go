// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"github.com/ez3d/ez3d/base/errors"
	"github.com/ez3d/ez3d/math32"
)

var errDisposed = errors.New("render: renderer is disposed")

const (
	phongShiny      = 30
	phongReflective = 0.5
)

// dirLight is a directional light in world space.
type dirLight struct {
	dir   math32.Vector3 // toward the light
	color math32.Vector3
}

// lighting is the light of a graph, summed over its light nodes.
type lighting struct {
	ambient math32.Vector3
	dirs    []dirLight
}

func lightColor(lb *LightBase) math32.Vector3 {
	return math32.Vec3(float32(lb.Color.R), float32(lb.Color.G), float32(lb.Color.B)).MulScalar(lb.Intensity / 255)
}

func collectLights(nodes []Node) *lighting {
	lt := &lighting{}
	for _, n := range nodes {
		switch l := n.(type) {
		case *AmbientLight:
			if l.Visible {
				lt.ambient.SetAdd(lightColor(&l.LightBase))
			}
		case *DirLight:
			if l.Visible {
				lt.dirs = append(lt.dirs, dirLight{dir: l.Pos.Normal(), color: lightColor(&l.LightBase)})
			}
		}
	}
	return lt
}

// shade returns the color of a surface with the given material and normal,
// viewed from the given direction.
func (lt *lighting) shade(mt *Material, nrm, view math32.Vector3) color.RGBA {
	diff := lt.ambient
	var spec math32.Vector3
	for _, dl := range lt.dirs {
		ndl := nrm.Dot(dl.dir)
		if ndl <= 0 {
			continue
		}
		diff.SetAdd(dl.color.MulScalar(ndl))
		if mt.Kind == Phong {
			hv := dl.dir.Add(view).Normal()
			s := math32.Pow(math32.Max(nrm.Dot(hv), 0), phongShiny) * phongReflective
			spec.SetAdd(dl.color.MulScalar(s))
		}
	}
	ch := func(c uint8, d, s float32) uint8 {
		v := float32(c)*d + 255*s
		return uint8(math32.Clamp(v+0.5, 0, 255))
	}
	c := mt.Color
	return color.RGBA{ch(c.R, diff.X, spec.X), ch(c.G, diff.Y, spec.Y), ch(c.B, diff.Z, spec.Z), c.A}
}
