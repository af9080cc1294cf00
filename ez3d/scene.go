// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"log/slog"
	"slices"

	"github.com/ez3d/ez3d/colors"
	"github.com/ez3d/ez3d/math32"
	"github.com/ez3d/ez3d/render"
)

// SceneConfig is the configuration of a new [Scene].
// Zero values take the defaults set by [SceneConfig.Defaults].
type SceneConfig struct {

	// Background is any value accepted by [colors.Resolve]; the default is black.
	Background any `toml:"background" yaml:"background"`

	// FOV is the vertical field of view of the camera in degrees.
	FOV float32 `toml:"fov" yaml:"fov"`

	// Near and Far are the distances of the camera clipping planes.
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`

	// CameraPosition is the position of the camera, which looks at the origin.
	CameraPosition [3]float32 `toml:"camera_position" yaml:"camera_position"`

	// NoLights turns off the default ambient and directional lights.
	NoLights bool `toml:"no_lights" yaml:"no_lights"`

	// Width and Height give the initial aspect ratio of the camera,
	// until the scene is resized.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// Defaults sets any zero values to their defaults.
func (sc *SceneConfig) Defaults() {
	if sc.Background == nil {
		sc.Background = "black"
	}
	if sc.FOV == 0 {
		sc.FOV = 75
	}
	if sc.Near == 0 {
		sc.Near = 0.1
	}
	if sc.Far == 0 {
		sc.Far = 1000
	}
	if sc.CameraPosition == [3]float32{} {
		sc.CameraPosition = [3]float32{0, 0, 5}
	}
	if sc.Width <= 0 {
		sc.Width = 800
	}
	if sc.Height <= 0 {
		sc.Height = 600
	}
}

// Scene is a set of [Object]s and other render nodes, together with the
// camera and lights they are drawn with.
type Scene struct {

	// Graph is the render graph drawn by the engine.
	Graph *render.Graph

	// Camera is the camera the scene is drawn through.
	Camera *render.Camera

	// Ambient and Sun are the default lights, or nil if turned off.
	Ambient *render.AmbientLight
	Sun     *render.DirLight

	objects []*Object
}

// NewScene returns a new [Scene] for the given configuration.
func NewScene(cfg SceneConfig) *Scene {
	cfg.Defaults()
	sc := &Scene{
		Graph:  render.NewGraph(colors.Resolve(cfg.Background).RGBA()),
		Camera: render.NewCamera(),
	}
	cm := sc.Camera
	cm.FOV = cfg.FOV
	cm.Near = cfg.Near
	cm.Far = cfg.Far
	cm.Pos = math32.Vector3FromArray(cfg.CameraPosition)
	cm.SetAspect(cfg.Width, cfg.Height)
	if !cfg.NoLights {
		sc.Ambient = render.NewAmbientLight("ambient", colors.Unpack(0xffffff), 0.5)
		sc.Sun = render.NewDirLight("directional", colors.Unpack(0xffffff), 1, 5, 5, 5)
		sc.Graph.Add(sc.Ambient)
		sc.Graph.Add(sc.Sun)
	}
	return sc
}

// Add adds the given nodes to the render graph. An [*Object] is also
// tracked by the scene, so that it is updated on every frame; adding
// it again has no effect.
func (sc *Scene) Add(nodes ...render.Node) *Scene {
	for _, n := range nodes {
		switch x := n.(type) {
		case nil:
		case *Object:
			if x == nil {
				continue
			}
			if !slices.Contains(sc.objects, x) {
				sc.objects = append(sc.objects, x)
			}
			sc.Graph.Add(x.Mesh)
		default:
			slog.Debug("ez3d.Scene.Add: untracked node", "name", n.AsNodeBase().Name)
			sc.Graph.Add(n)
		}
	}
	return sc
}

// Remove removes the given nodes from the render graph and, for
// an [*Object], from the tracked objects. Absent nodes are ignored.
// Removing an object does not dispose it.
func (sc *Scene) Remove(nodes ...render.Node) *Scene {
	for _, n := range nodes {
		switch x := n.(type) {
		case nil:
		case *Object:
			if x == nil {
				continue
			}
			if i := slices.Index(sc.objects, x); i >= 0 {
				sc.objects = slices.Delete(sc.objects, i, i+1)
			}
			sc.Graph.Remove(x.Mesh)
		default:
			sc.Graph.Remove(n)
		}
	}
	return sc
}

// Update updates every tracked object, in the order they were added.
func (sc *Scene) Update(delta, elapsed float32) {
	for _, obj := range slices.Clone(sc.objects) {
		if obj == nil {
			continue
		}
		obj.Update(delta, elapsed)
	}
}

// HandleResize sets the camera aspect ratio for the given size;
// the projection is recomputed before the next draw.
func (sc *Scene) HandleResize(width, height int) {
	sc.Camera.SetAspect(width, height)
}

// FindByName returns the first tracked object with the given name, or nil.
func (sc *Scene) FindByName(name string) *Object {
	for _, obj := range sc.objects {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

// Objects returns the tracked objects in the order they were added.
func (sc *Scene) Objects() []*Object {
	return slices.Clone(sc.objects)
}

// SetBackground sets the background color to any value
// accepted by [colors.Resolve].
func (sc *Scene) SetBackground(v any) *Scene {
	sc.Graph.Background = colors.Resolve(v).RGBA()
	return sc
}

// Dispose disposes every tracked object and stops tracking them.
// The render graph is not cleared, so the scene should not be used
// afterwards.
func (sc *Scene) Dispose() {
	for _, obj := range sc.objects {
		obj.Dispose()
	}
	sc.objects = nil
}
