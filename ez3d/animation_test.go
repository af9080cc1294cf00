// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"testing"

	"github.com/ez3d/ez3d/math32"
	"github.com/stretchr/testify/assert"
)

func newTestBox() *Object {
	return NewBox(ObjectConfig{Name: "box"}, Box{})
}

func TestSpin(t *testing.T) {
	obj := newTestBox().Spin(0, 1, 0)
	obj.Update(1, 0)
	assert.Equal(t, math32.Vec3(0, 1, 0), obj.Rotation())
	obj.Update(0.5, 1)
	assert.Equal(t, math32.Vec3(0, 1.5, 0), obj.Rotation())

	// unbounded
	for range 10 {
		obj.Update(1, 0)
	}
	assert.Greater(t, obj.Rotation().Y, float32(2*math32.Pi))
}

func TestSpinReplacedByNoop(t *testing.T) {
	obj := newTestBox().SpinY(DefaultSpinSpeed)
	obj.Update(1, 0)
	obj.Animate(SpinAnimation, func(*Object, float32, float32) {})
	obj.Update(1, 0)
	assert.Equal(t, float32(1), obj.Rotation().Y)
	assert.Equal(t, []string{SpinAnimation}, obj.Animations())
}

func TestFloat(t *testing.T) {
	obj := newTestBox().SetPosition(0, 2, 0).Float(0.5, 1)
	obj.Update(0, 0)
	assert.Equal(t, float32(2), obj.Position().Y)
	obj.Update(0, math32.Pi/2)
	assert.InDelta(t, 2.5, obj.Position().Y, 1e-6)

	// re-invoking captures the current Y as the new center
	obj.Float(0.5, 1)
	obj.Update(0, 0)
	assert.InDelta(t, 2.5, obj.Position().Y, 1e-6)

	obj.FloatFrom(2, 0.5, 1)
	obj.Update(0, 0)
	assert.InDelta(t, 2, obj.Position().Y, 1e-6)
}

func TestReplaceKeepsSlot(t *testing.T) {
	var order []string
	rec := func(nm string) UpdateFunc {
		return func(*Object, float32, float32) { order = append(order, nm) }
	}
	obj := newTestBox().
		Animate("a", rec("a1")).
		Animate("b", rec("b")).
		Animate("c", rec("c")).
		Animate("a", rec("a2"))
	obj.Update(0, 0)
	assert.Equal(t, []string{"a2", "b", "c"}, order)
	assert.Equal(t, []string{"a", "b", "c"}, obj.Animations())
}

func TestUpdateOrder(t *testing.T) {
	var order []string
	obj := newTestBox().
		OnUpdate(func(*Object, float32, float32) { order = append(order, "custom1") }).
		Animate("named", func(*Object, float32, float32) { order = append(order, "named") }).
		OnUpdate(func(*Object, float32, float32) { order = append(order, "custom2") }).
		OnUpdate(func(*Object, float32, float32) { order = append(order, "custom2") })
	obj.Update(0.1, 0.1)
	assert.Equal(t, []string{"named", "custom1", "custom2", "custom2"}, order)
}

func TestUpdateSequential(t *testing.T) {
	// later callbacks see the changes of earlier ones in the same frame
	obj := newTestBox().Spin(1, 0, 0)
	var seen float32
	obj.OnUpdate(func(o *Object, delta, elapsed float32) {
		seen = o.Rotation().X
	})
	obj.Update(0.25, 0)
	assert.Equal(t, float32(0.25), seen)
}

func TestStopAndClear(t *testing.T) {
	obj := newTestBox().SpinY(1).Float(1, 1)
	called := 0
	obj.OnUpdate(func(*Object, float32, float32) { called++ })
	assert.True(t, obj.HasAnimation(SpinAnimation))

	obj.StopAnimation(SpinAnimation)
	obj.StopAnimation("missing")
	assert.False(t, obj.HasAnimation(SpinAnimation))
	assert.Equal(t, []string{FloatAnimation}, obj.Animations())

	obj.ClearAnimations()
	pos, rot := obj.Position(), obj.Rotation()
	obj.Update(1, 1)
	assert.Equal(t, pos, obj.Position())
	assert.Equal(t, rot, obj.Rotation())
	assert.Equal(t, 0, called)
	assert.Empty(t, obj.Animations())
}

func TestAnimationStopsItself(t *testing.T) {
	obj := newTestBox()
	runs := 0
	obj.Animate("once", func(o *Object, delta, elapsed float32) {
		runs++
		o.StopAnimation("once")
	})
	obj.Update(0, 0)
	obj.Update(0, 0)
	assert.Equal(t, 1, runs)
}
