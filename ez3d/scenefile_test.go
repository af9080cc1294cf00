// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ez3d/ez3d/math32"
	"github.com/ez3d/ez3d/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
[scene]
background = "navy"
fov = 60.0
camera_position = [0.0, 1.0, 6.0]

[engine]
max_delta = 0.1

[[objects]]
kind = "box"
name = "cube"
color = "Tomato"
size = 2.0
material = "phong"
spin = [0.0, 1.0, 0.0]

[[objects]]
kind = "torus"
name = "ring"
color = 0x00ff00
position = [2.0, 0.0, 0.0]
radius = 1.0
tube = 0.25
wireframe = true
float = { amplitude = 0.5 }
`

const yamlScene = `
scene:
  background: "#102030"
  no_lights: true
objects:
  - kind: sphere
    name: ball
    radius: 2
    material: unlit
    rotation: [0, 90, 0]
  - kind: Cylinder
    name: can
    height: 3
    scale: [1, 2, 1]
`

func TestSceneFileTOML(t *testing.T) {
	sf, err := ParseSceneFile([]byte(tomlScene), "toml")
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), sf.Engine.MaxDelta)
	require.Len(t, sf.Objects, 2)

	sc, err := sf.Build()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xff}, sc.Graph.Background)
	assert.Equal(t, float32(60), sc.Camera.FOV)
	assert.Equal(t, math32.Vec3(0, 1, 6), sc.Camera.Pos)

	cube := sc.FindByName("cube")
	require.NotNil(t, cube)
	assert.Equal(t, "box", cube.Kind())
	assert.Equal(t, color.RGBA{0xff, 0x63, 0x47, 0xff}, cube.Color())
	assert.Equal(t, render.Phong, cube.Mesh.Material().Kind)
	assert.Equal(t, math32.Vec3(2, 2, 2), bboxSize(cube.Mesh.Geometry.Mesh.BBox))
	assert.True(t, cube.HasAnimation(SpinAnimation))

	ring := sc.FindByName("ring")
	require.NotNil(t, ring)
	assert.Equal(t, float32(1), ring.Shape().(*Torus).Radius)
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, ring.Color())
	assert.True(t, ring.Wireframe())
	assert.Equal(t, math32.Vec3(2, 0, 0), ring.Position())
	assert.True(t, ring.HasAnimation(FloatAnimation))
	ring.Update(0, math32.Pi/2)
	assert.InDelta(t, 0.5, ring.Position().Y, 1e-6)
}

func TestSceneFileYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(yamlScene), 0o644))
	sf, err := OpenSceneFile(fn)
	require.NoError(t, err)
	sc, err := sf.Build()
	require.NoError(t, err)
	assert.Nil(t, sc.Ambient)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, sc.Graph.Background)

	ball := sc.FindByName("ball")
	require.NotNil(t, ball)
	assert.Equal(t, render.Unlit, ball.Mesh.Material().Kind)
	assert.InDelta(t, 4, bboxSize(ball.Mesh.Geometry.Mesh.BBox).Y, 1e-5)
	assert.InDelta(t, math32.Pi/2, ball.Rotation().Y, 1e-6)

	can := sc.FindByName("can")
	require.NotNil(t, can)
	assert.Equal(t, "cylinder", can.Kind())
	assert.Equal(t, math32.Vec3(1, 2, 1), can.Scale())
	assert.InDelta(t, 3, bboxSize(can.Mesh.Geometry.Mesh.BBox).Y, 1e-5)
}

func TestSceneFileErrors(t *testing.T) {
	_, err := ParseSceneFile([]byte("{}"), "json")
	assert.Error(t, err)

	_, err = ParseSceneFile([]byte("[scene"), "toml")
	assert.Error(t, err)

	_, err = OpenSceneFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	sf, err := ParseSceneFile([]byte("[[objects]]\nkind = \"teapot\"\nname = \"tea\"\n"), ".toml")
	require.NoError(t, err)
	sc, err := sf.Build()
	assert.Nil(t, sc)
	assert.ErrorContains(t, err, "teapot")

	// every invalid object is reported
	sf = &SceneFile{Objects: []ObjectSpec{{Kind: "cone", Name: "a"}, {Kind: "box"}, {Kind: "", Name: "c"}}}
	sc, err = sf.Build()
	assert.Nil(t, sc)
	assert.ErrorContains(t, err, `object 0 ("a")`)
	assert.ErrorContains(t, err, `object 2 ("c")`)
	assert.NotContains(t, err.Error(), "object 1")
}
