// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ez3d/ez3d/base/errors"
	"github.com/ez3d/ez3d/render"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SceneFile is a declarative description of a [Scene] and its objects,
// as read from a TOML or YAML file by [OpenSceneFile].
type SceneFile struct {
	Scene   SceneConfig  `toml:"scene" yaml:"scene"`
	Engine  EngineConfig `toml:"engine" yaml:"engine"`
	Objects []ObjectSpec `toml:"objects" yaml:"objects"`
}

// ObjectSpec describes one [Object] in a [SceneFile]: its shape kind,
// the [ObjectConfig] fields, the parameters of its [Shape] and its
// built-in animations. Shape parameters that do not apply to the kind
// are ignored.
type ObjectSpec struct {

	// Kind is the shape kind: box, sphere, plane, cylinder or torus.
	Kind string `toml:"kind" yaml:"kind" copier:"-"`

	Name      string               `toml:"name" yaml:"name"`
	Color     any                  `toml:"color" yaml:"color"`
	Position  [3]float32           `toml:"position" yaml:"position"`
	Rotation  [3]float32           `toml:"rotation" yaml:"rotation"`
	Scale     [3]float32           `toml:"scale" yaml:"scale"`
	Wireframe bool                 `toml:"wireframe" yaml:"wireframe"`
	Material  render.MaterialKinds `toml:"material" yaml:"material"`

	Size            float32 `toml:"size" yaml:"size"`
	Width           float32 `toml:"width" yaml:"width"`
	Height          float32 `toml:"height" yaml:"height"`
	Depth           float32 `toml:"depth" yaml:"depth"`
	Segments        int     `toml:"segments" yaml:"segments"`
	Radius          float32 `toml:"radius" yaml:"radius"`
	WidthSegments   int     `toml:"width_segments" yaml:"width_segments"`
	HeightSegments  int     `toml:"height_segments" yaml:"height_segments"`
	RadiusTop       float32 `toml:"radius_top" yaml:"radius_top"`
	RadiusBottom    float32 `toml:"radius_bottom" yaml:"radius_bottom"`
	RadialSegments  int     `toml:"radial_segments" yaml:"radial_segments"`
	Tube            float32 `toml:"tube" yaml:"tube"`
	TubularSegments int     `toml:"tubular_segments" yaml:"tubular_segments"`

	// Spin, if set, is the speed of the "spin" animation around each axis.
	Spin *[3]float32 `toml:"spin" yaml:"spin" copier:"-"`

	// Float, if set, is the "float" animation.
	Float *FloatSpec `toml:"float" yaml:"float" copier:"-"`
}

// FloatSpec is the parameters of the "float" animation.
type FloatSpec struct {
	Amplitude float32 `toml:"amplitude" yaml:"amplitude"`
	Speed     float32 `toml:"speed" yaml:"speed"`
}

// OpenSceneFile reads the scene file at the given path, in TOML for
// a .toml extension or YAML for a .yaml or .yml extension.
func OpenSceneFile(filename string) (*SceneFile, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sf, err := ParseSceneFile(b, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("ez3d.OpenSceneFile %q: %w", filename, err)
	}
	return sf, nil
}

// ParseSceneFile parses the given scene file data in the given format:
// "toml", "yaml" or "yml", with or without a leading dot.
func ParseSceneFile(data []byte, format string) (*SceneFile, error) {
	sf := &SceneFile{}
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		err = toml.Unmarshal(data, sf)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, sf)
	default:
		return nil, fmt.Errorf("unknown scene file format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return sf, nil
}

// Config returns the [ObjectConfig] described by the spec, or an error
// if its kind is unknown.
func (spec *ObjectSpec) Config() (ObjectConfig, error) {
	cfg := ObjectConfig{}
	sh, err := NewShape(strings.ToLower(strings.TrimSpace(spec.Kind)))
	if err != nil {
		return cfg, err
	}
	opt := copier.Option{CaseSensitive: true}
	if err := copier.CopyWithOption(&cfg, spec, opt); err != nil {
		return cfg, err
	}
	if err := copier.CopyWithOption(sh, spec, opt); err != nil {
		return cfg, err
	}
	cfg.Shape = sh
	return cfg, nil
}

// Build returns a new [Scene] with all of the objects of the file added
// to it, with their animations. If any object is invalid, it returns
// no scene and an error listing every invalid object.
func (sf *SceneFile) Build() (*Scene, error) {
	cfgs := make([]ObjectConfig, len(sf.Objects))
	var errs []error
	for i := range sf.Objects {
		spec := &sf.Objects[i]
		cfg, err := spec.Config()
		if err != nil {
			errs = append(errs, fmt.Errorf("object %d (%q): %w", i, spec.Name, err))
			continue
		}
		cfgs[i] = cfg
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	objs := make([]*Object, 0, len(sf.Objects))
	for i := range sf.Objects {
		spec := &sf.Objects[i]
		obj := NewObject(cfgs[i])
		if spec.Spin != nil {
			obj.Spin(spec.Spin[0], spec.Spin[1], spec.Spin[2])
		}
		if fs := spec.Float; fs != nil {
			obj.Float(orDefault(fs.Amplitude, DefaultFloatAmplitude), orDefault(fs.Speed, DefaultFloatSpeed))
		}
		objs = append(objs, obj)
	}
	sc := NewScene(sf.Scene)
	for _, obj := range objs {
		sc.Add(obj)
	}
	return sc, nil
}
