// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless [ez3d.Host] whose frames are
// stepped manually, for tests and for rendering images without a display.
package offscreen

import (
	"image"
	"slices"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/ez3d/ez3d/base/errors"
	"github.com/ez3d/ez3d/base/ordmap"
	"github.com/ez3d/ez3d/ez3d"
	"github.com/ez3d/ez3d/render"
)

// DefaultFrameInterval is the time between frames, for 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// Host is a headless [ez3d.Host]. Requested frames are only run by
// [Host.Step], with a timestamp that advances by FrameInterval each step.
type Host struct {

	// Width and Height are the logical size of the surface.
	Width, Height int

	// Ratio is the pixel ratio of the surface.
	Ratio float32

	// Now is the timestamp of the last step.
	Now time.Duration

	// FrameInterval is how far Now advances on each step.
	FrameInterval time.Duration

	pending  []ez3d.FrameFunc
	resize   ordmap.Map[int, ez3d.ResizeFunc]
	nextID   int
	attached []*render.Renderer
}

// New returns a new [Host] with the given size and pixel ratio.
func New(width, height int, ratio float32) *Host {
	return &Host{Width: width, Height: height, Ratio: ratio, FrameInterval: DefaultFrameInterval}
}

func (h *Host) Size() (width, height int) { return h.Width, h.Height }

func (h *Host) PixelRatio() float32 { return h.Ratio }

func (h *Host) RequestFrame(fn ez3d.FrameFunc) {
	h.pending = append(h.pending, fn)
}

func (h *Host) OnResize(fn ez3d.ResizeFunc) (cancel func()) {
	id := h.nextID
	h.nextID++
	h.resize.Add(id, fn)
	return func() { h.resize.DeleteKey(id) }
}

func (h *Host) Attach(rs *render.Renderer) {
	if !slices.Contains(h.attached, rs) {
		h.attached = append(h.attached, rs)
	}
}

func (h *Host) Detach(rs *render.Renderer) {
	if i := slices.Index(h.attached, rs); i >= 0 {
		h.attached = slices.Delete(h.attached, i, i+1)
	}
}

// Attached returns the attached renderers.
func (h *Host) Attached() []*render.Renderer {
	return slices.Clone(h.attached)
}

// Pending returns the number of frames requested and not yet run.
func (h *Host) Pending() int {
	return len(h.pending)
}

// Listeners returns the number of registered resize listeners.
func (h *Host) Listeners() int {
	return h.resize.Len()
}

// Step advances Now by FrameInterval and runs the frames requested
// before the step; frames they request run on the next step.
// It returns the number of frames run.
func (h *Host) Step() int {
	return h.StepAt(h.Now + h.FrameInterval)
}

// StepAt is like [Host.Step], with the given timestamp.
func (h *Host) StepAt(now time.Duration) int {
	h.Now = now
	fns := h.pending
	h.pending = nil
	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

// Steps calls [Host.Step] n times, returning the total number of frames run.
func (h *Host) Steps(n int) int {
	total := 0
	for range n {
		total += h.Step()
	}
	return total
}

// Resize sets the size of the surface and calls the resize listeners
// in the order they registered.
func (h *Host) Resize(width, height int) {
	h.Width, h.Height = width, height
	for _, fn := range h.resize.Values() {
		fn(width, height)
	}
}

// Capture returns the image of the most recently attached renderer,
// at the logical size of the surface, or nil if none is attached.
func (h *Host) Capture() *image.RGBA {
	if len(h.attached) == 0 {
		return nil
	}
	return h.attached[len(h.attached)-1].Snapshot(h.Width, h.Height)
}

// Save saves [Host.Capture] to the given file as a PNG.
func (h *Host) Save(filename string) error {
	img := h.Capture()
	if img == nil {
		return errors.New("offscreen.Host.Save: no renderer attached")
	}
	return imgio.Save(filename, img, imgio.PNGEncoder())
}
