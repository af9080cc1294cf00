// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"github.com/ez3d/ez3d/math32"
)

// Names of the built-in animations.
const (
	SpinAnimation  = "spin"
	FloatAnimation = "float"
)

// Defaults of the built-in animations.
const (
	DefaultSpinSpeed      float32 = 1
	DefaultFloatAmplitude float32 = 0.5
	DefaultFloatSpeed     float32 = 1
)

// OnUpdate adds a function to be called on every frame, after all named
// animations. Functions added this way can only be removed by
// [Object.ClearAnimations].
func (obj *Object) OnUpdate(fn UpdateFunc) *Object {
	obj.updates = append(obj.updates, fn)
	return obj
}

// Animate registers a named animation called on every frame. A previous
// animation with the same name is replaced, keeping its place in the
// order of animations.
func (obj *Object) Animate(name string, fn UpdateFunc) *Object {
	obj.animations.Add(name, fn)
	return obj
}

// Spin registers the "spin" animation, which increases the rotation
// around each axis by the given speed in radians per second.
// The rotation is not wrapped.
func (obj *Object) Spin(speedX, speedY, speedZ float32) *Object {
	return obj.Animate(SpinAnimation, func(o *Object, delta, elapsed float32) {
		o.Mesh.Rot.X += speedX * delta
		o.Mesh.Rot.Y += speedY * delta
		o.Mesh.Rot.Z += speedZ * delta
	})
}

// SpinY registers the "spin" animation around the Y axis only.
func (obj *Object) SpinY(speed float32) *Object {
	return obj.Spin(0, speed, 0)
}

// Float registers the "float" animation, which moves the object up and
// down around its current Y position with the given amplitude, at the
// given speed in radians per second of elapsed time. Calling Float again
// takes the Y position at that moment as the new center, which may be
// anywhere in the previous oscillation; use [Object.FloatFrom] for a
// fixed center.
func (obj *Object) Float(amplitude, speed float32) *Object {
	return obj.FloatFrom(obj.Mesh.Pos.Y, amplitude, speed)
}

// FloatFrom registers the "float" animation around the given Y center.
func (obj *Object) FloatFrom(center, amplitude, speed float32) *Object {
	return obj.Animate(FloatAnimation, func(o *Object, delta, elapsed float32) {
		o.Mesh.Pos.Y = center + math32.Sin(elapsed*speed)*amplitude
	})
}

// StopAnimation removes the named animation, if present.
func (obj *Object) StopAnimation(name string) *Object {
	obj.animations.DeleteKey(name)
	return obj
}

// ClearAnimations removes all named animations and all [Object.OnUpdate] functions.
func (obj *Object) ClearAnimations() *Object {
	obj.animations.Reset()
	obj.updates = nil
	return obj
}

// HasAnimation returns whether the named animation is registered.
func (obj *Object) HasAnimation(name string) bool {
	return obj.animations.Has(name)
}

// Animations returns the names of the registered animations, in the order they run.
func (obj *Object) Animations() []string {
	return obj.animations.Keys()
}

// Update runs all named animations in order, then all [Object.OnUpdate]
// functions in the order they were added. Each one sees the changes
// made by those before it.
func (obj *Object) Update(delta, elapsed float32) {
	for _, fn := range obj.animations.Values() {
		fn(obj, delta, elapsed)
	}
	for _, fn := range obj.updates {
		fn(obj, delta, elapsed)
	}
}
