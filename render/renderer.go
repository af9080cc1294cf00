// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"slices"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/ez3d/ez3d/math32"
	"golang.org/x/image/vector"
)

// Renderer is the render surface: it draws a [Graph] through a [Camera]
// into an RGBA image of its size times its pixel ratio.
type Renderer struct {

	// Width and Height are the logical size of the surface.
	Width, Height int

	// PixelRatio is the number of image pixels per logical pixel.
	PixelRatio float32

	// DrawCalls is the number of times Draw has rendered a frame.
	DrawCalls int

	image *image.RGBA
	ras   *vector.Rasterizer
	tris  []triangle
}

// NewRenderer returns a new [Renderer] with the given logical size and pixel ratio.
func NewRenderer(width, height int, pixelRatio float32) *Renderer {
	rs := &Renderer{ras: &vector.Rasterizer{}}
	rs.PixelRatio = pixelRatio
	rs.SetSize(width, height)
	return rs
}

// PixelSize returns the size of the image in pixels.
func (rs *Renderer) PixelSize() image.Point {
	pr := rs.PixelRatio
	if pr <= 0 {
		pr = 1
	}
	return image.Pt(max(int(math32.Round(float32(rs.Width)*pr)), 1), max(int(math32.Round(float32(rs.Height)*pr)), 1))
}

// SetSize sets the logical size of the surface, reallocating the image.
func (rs *Renderer) SetSize(width, height int) {
	rs.Width, rs.Height = width, height
	rs.image = image.NewRGBA(image.Rectangle{Max: rs.PixelSize()})
}

// SetPixelRatio sets the pixel ratio, reallocating the image.
func (rs *Renderer) SetPixelRatio(pr float32) {
	rs.PixelRatio = pr
	rs.SetSize(rs.Width, rs.Height)
}

// IsDisposed returns whether Dispose has been called.
func (rs *Renderer) IsDisposed() bool {
	return rs.image == nil
}

// Dispose releases the image. Subsequent draws do nothing.
func (rs *Renderer) Dispose() {
	rs.image = nil
	rs.tris = nil
}

// Image returns a copy of the current image, or nil if disposed.
func (rs *Renderer) Image() *image.RGBA {
	if rs.image == nil {
		return nil
	}
	return clone.AsRGBA(rs.image)
}

// Snapshot returns a copy of the current image resized to the given size.
func (rs *Renderer) Snapshot(width, height int) *image.RGBA {
	if rs.image == nil {
		return nil
	}
	return transform.Resize(rs.image, width, height, transform.Linear)
}

// Save saves the current image to the given file as a PNG.
func (rs *Renderer) Save(filename string) error {
	if rs.image == nil {
		return errDisposed
	}
	return imgio.Save(filename, rs.image, imgio.PNGEncoder())
}

// Draw clears the image to the graph background and draws every visible
// mesh of the graph as seen by the given camera, lit by the graph's lights.
func (rs *Renderer) Draw(g *Graph, cam *Camera) {
	if rs.image == nil {
		slog.Debug("render.Draw: renderer is disposed")
		return
	}
	rs.DrawCalls++
	draw.Draw(rs.image, rs.image.Bounds(), image.NewUniform(g.Background), image.Point{}, draw.Src)
	if cam == nil {
		return
	}
	nodes := g.Nodes()
	lt := collectLights(nodes)
	vp := cam.ViewProjection()
	rs.tris = rs.tris[:0]
	for _, n := range nodes {
		ms, ok := n.(*Mesh)
		if !ok || !ms.Visible || ms.Geometry == nil || ms.Geometry.Mesh == nil {
			continue
		}
		mt := ms.Material()
		if mt == nil {
			continue
		}
		rs.addMesh(ms, mt, vp, cam, lt)
	}
	// painter's algorithm: farthest first
	slices.SortStableFunc(rs.tris, func(a, b triangle) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for i := range rs.tris {
		rs.drawTriangle(&rs.tris[i])
	}
}

// triangle is a projected triangle ready to be drawn.
type triangle struct {
	pts       [3]math32.Vector3 // image pixel coordinates, with NDC depth in Z
	depth     float32
	color     color.RGBA
	wireframe bool
}

func (rs *Renderer) addMesh(ms *Mesh, mt *Material, vp *math32.Matrix4, cam *Camera, lt *lighting) {
	model := ms.Matrix()
	mvp := vp.Mul(model)
	geom := ms.Geometry.Mesh
	sz := rs.PixelSize()
	w, h := float32(sz.X), float32(sz.Y)
	for i := 0; i+2 < len(geom.Index); i += 3 {
		var tr triangle
		var world [3]math32.Vector3
		behind := false
		for k := range 3 {
			vi := int(geom.Index[i+k]) * 3
			p := geom.Vertex.Vector3(vi)
			clip := p.MulMatrix4AsVector4(mvp, 1)
			if clip.W <= cam.Near {
				behind = true
				break
			}
			ndc := clip.Vector3()
			tr.pts[k] = math32.Vec3((ndc.X+1)/2*w, (1-ndc.Y)/2*h, ndc.Z)
			world[k] = p.MulMatrix4(model)
		}
		if behind {
			continue
		}
		// counter-clockwise in NDC is clockwise in image space, with Y down
		a, b, c := tr.pts[0], tr.pts[1], tr.pts[2]
		area := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if !mt.Wireframe && area >= 0 {
			continue
		}
		tr.depth = (a.Z + b.Z + c.Z) / 3
		tr.wireframe = mt.Wireframe
		if mt.Kind == Unlit || mt.Wireframe {
			tr.color = mt.Color
		} else {
			nrm := world[1].Sub(world[0]).Cross(world[2].Sub(world[0])).Normal()
			ctr := world[0].Add(world[1]).Add(world[2]).DivScalar(3)
			tr.color = lt.shade(mt, nrm, cam.Pos.Sub(ctr).Normal())
		}
		rs.tris = append(rs.tris, tr)
	}
}

func (rs *Renderer) drawTriangle(tr *triangle) {
	src := image.NewUniform(tr.color)
	if !tr.wireframe {
		rs.fill(src, tr.pts[:]...)
		return
	}
	lw := max(rs.PixelRatio, 1) / 2
	for k := range 3 {
		a, b := tr.pts[k], tr.pts[(k+1)%3]
		d := b.Sub(a)
		d.Z = 0
		d = d.Normal()
		off := math32.Vec3(-d.Y*lw, d.X*lw, 0)
		rs.fill(src, a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}
}

// fill fills the polygon with the given points, limiting the rasterizer
// to the polygon's bounds within the image.
func (rs *Renderer) fill(src image.Image, pts ...math32.Vector3) {
	bb := math32.B3Empty()
	for _, p := range pts {
		bb.ExpandByPoint(p)
	}
	r := image.Rect(int(math32.Floor(bb.Min.X)), int(math32.Floor(bb.Min.Y)), int(math32.Floor(bb.Max.X))+1, int(math32.Floor(bb.Max.Y))+1)
	r = r.Intersect(rs.image.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	rs.ras.Reset(r.Dx(), r.Dy())
	rs.ras.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		rs.ras.LineTo(p.X-ox, p.Y-oy)
	}
	rs.ras.ClosePath()
	rs.ras.Draw(rs.image, r, src, image.Point{})
}
