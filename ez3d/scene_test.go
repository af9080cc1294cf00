// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"image/color"
	"testing"
	"time"

	"github.com/ez3d/ez3d/math32"
	"github.com/ez3d/ez3d/render"
	"github.com/stretchr/testify/assert"
)

func TestNewScene(t *testing.T) {
	sc := NewScene(SceneConfig{})
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, sc.Graph.Background)
	assert.Equal(t, float32(75), sc.Camera.FOV)
	assert.Equal(t, float32(0.1), sc.Camera.Near)
	assert.Equal(t, float32(1000), sc.Camera.Far)
	assert.Equal(t, math32.Vec3(0, 0, 5), sc.Camera.Pos)
	assert.InDelta(t, 800.0/600.0, sc.Camera.Aspect, 1e-6)
	assert.NotNil(t, sc.Ambient)
	assert.NotNil(t, sc.Sun)
	assert.Equal(t, float32(0.5), sc.Ambient.Intensity)
	assert.Equal(t, math32.Vec3(5, 5, 5), sc.Sun.Pos)
	assert.Equal(t, 2, sc.Graph.Len())

	sc = NewScene(SceneConfig{Background: "white", FOV: 50, NoLights: true, CameraPosition: [3]float32{0, 2, 10}})
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, sc.Graph.Background)
	assert.Equal(t, float32(50), sc.Camera.FOV)
	assert.Nil(t, sc.Ambient)
	assert.Equal(t, 0, sc.Graph.Len())
	assert.Equal(t, math32.Vec3(0, 2, 10), sc.Camera.Pos)
}

func TestSceneAddRemove(t *testing.T) {
	sc := NewScene(SceneConfig{NoLights: true})
	a := NewBox(ObjectConfig{Name: "a"}, Box{})
	b := NewSphere(ObjectConfig{Name: "b"}, Sphere{})
	sc.Add(a, b, a)
	assert.Equal(t, []*Object{a, b}, sc.Objects())
	assert.True(t, sc.Graph.Has(a.Mesh))
	assert.True(t, sc.Graph.Has(b.Mesh))
	assert.Same(t, b, sc.FindByName("b"))

	sc.Remove(a).Remove(b)
	assert.Empty(t, sc.Objects())
	assert.Nil(t, sc.FindByName("a"))
	assert.Nil(t, sc.FindByName("b"))
	assert.Equal(t, 0, sc.Graph.Len())

	// removing again is a no-op
	sc.Remove(a)
	assert.Empty(t, sc.Objects())
}

func TestSceneRawNodes(t *testing.T) {
	sc := NewScene(SceneConfig{NoLights: true})
	lt := render.NewAmbientLight("extra", color.RGBA{0xff, 0xff, 0xff, 0xff}, 1)
	sc.Add(lt)
	assert.Empty(t, sc.Objects())
	assert.True(t, sc.Graph.Has(lt))
	sc.Remove(lt)
	assert.False(t, sc.Graph.Has(lt))
}

func TestFindByNameFirstMatch(t *testing.T) {
	sc := NewScene(SceneConfig{})
	first := NewBox(ObjectConfig{Name: "twin"}, Box{})
	second := NewBox(ObjectConfig{Name: "twin"}, Box{})
	sc.Add(first, second)
	assert.Same(t, first, sc.FindByName("twin"))
	assert.Nil(t, sc.FindByName("missing"))
}

func TestSceneUpdate(t *testing.T) {
	sc := NewScene(SceneConfig{})
	a := NewBox(ObjectConfig{Name: "a"}, Box{}).SpinY(1)
	b := NewBox(ObjectConfig{Name: "b"}, Box{}).SpinY(2)
	sc.Add(a, b)
	sc.Update(0.5, 0.5)
	assert.Equal(t, float32(0.5), a.Rotation().Y)
	assert.Equal(t, float32(1), b.Rotation().Y)

	// an object removing another during update does not disturb this frame
	a.OnUpdate(func(o *Object, delta, elapsed float32) { sc.Remove(b) })
	sc.Update(0.5, 1)
	assert.Equal(t, float32(2), b.Rotation().Y)
	assert.Equal(t, []*Object{a}, sc.Objects())
}

func TestSceneResize(t *testing.T) {
	sc := NewScene(SceneConfig{})
	sc.Camera.UpdateProjection()
	sc.HandleResize(1000, 500)
	assert.Equal(t, float32(2), sc.Camera.Aspect)
	assert.True(t, sc.Camera.IsDirty())
}

func TestSceneDispose(t *testing.T) {
	sc := NewScene(SceneConfig{})
	a := NewBox(ObjectConfig{}, Box{})
	sc.Add(a)
	sc.SetBackground("navy")
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xff}, sc.Graph.Background)
	sc.Dispose()
	assert.Empty(t, sc.Objects())
	assert.Equal(t, 1, a.Mesh.Geometry.Disposed())
	// graph membership is kept
	assert.True(t, sc.Graph.Has(a.Mesh))
}

func TestClock(t *testing.T) {
	var cl Clock
	d, e := cl.Tick(100 * time.Millisecond)
	assert.Zero(t, d)
	assert.Zero(t, e)
	d, e = cl.Tick(350 * time.Millisecond)
	assert.InDelta(t, 0.25, d, 1e-6)
	assert.InDelta(t, 0.25, e, 1e-6)
	d, e = cl.Tick(300 * time.Millisecond)
	assert.Zero(t, d)
	assert.InDelta(t, 0.25, e, 1e-6)

	cl = Clock{MaxDelta: 0.1}
	cl.Start(0)
	d, e = cl.Tick(time.Second)
	assert.InDelta(t, 0.1, d, 1e-6)
	assert.InDelta(t, 1, e, 1e-6)
}
