// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticker provides a real-time [ez3d.Host] that runs frames
// from a [time.Ticker] on a single goroutine.
package ticker

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ez3d/ez3d/base/ordmap"
	"github.com/ez3d/ez3d/ez3d"
	"github.com/ez3d/ez3d/render"
)

// Host is a real-time [ez3d.Host]. All frame and resize callbacks run on
// the goroutine that calls [Host.Run], one at a time.
type Host struct {

	// Interval is the time between frames.
	Interval time.Duration

	// Present, if set, is called with every attached renderer after
	// each frame, to show or record its image.
	Present func(rs *render.Renderer)

	mu       sync.Mutex
	width    int
	height   int
	ratio    float32
	pending  []ez3d.FrameFunc
	resize   ordmap.Map[int, ez3d.ResizeFunc]
	nextID   int
	attached []*render.Renderer
	resizeCh chan [2]int
}

// New returns a new [Host] with the given size and frames per second.
func New(width, height int, fps float32) *Host {
	if fps <= 0 {
		fps = 60
	}
	return &Host{
		Interval: time.Duration(float64(time.Second) / float64(fps)),
		width:    width,
		height:   height,
		ratio:    1,
		resizeCh: make(chan [2]int, 1),
	}
}

func (h *Host) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *Host) PixelRatio() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ratio
}

// SetPixelRatio sets the pixel ratio, which takes effect on the next resize.
func (h *Host) SetPixelRatio(ratio float32) {
	h.mu.Lock()
	h.ratio = ratio
	h.mu.Unlock()
}

func (h *Host) RequestFrame(fn ez3d.FrameFunc) {
	h.mu.Lock()
	h.pending = append(h.pending, fn)
	h.mu.Unlock()
}

func (h *Host) OnResize(fn ez3d.ResizeFunc) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.resize.Add(id, fn)
	return func() {
		h.mu.Lock()
		h.resize.DeleteKey(id)
		h.mu.Unlock()
	}
}

func (h *Host) Attach(rs *render.Renderer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !slices.Contains(h.attached, rs) {
		h.attached = append(h.attached, rs)
	}
}

func (h *Host) Detach(rs *render.Renderer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i := slices.Index(h.attached, rs); i >= 0 {
		h.attached = slices.Delete(h.attached, i, i+1)
	}
}

// Resize requests a resize of the surface. It may be called from any
// goroutine; the listeners are called on the [Host.Run] goroutine.
// Only the latest of several resizes between frames is delivered.
func (h *Host) Resize(width, height int) {
	for {
		select {
		case h.resizeCh <- [2]int{width, height}:
			return
		default:
		}
		select {
		case <-h.resizeCh:
		default:
		}
	}
}

// Run runs requested frames on every tick until the context is done,
// or until a tick finds no frame requested, which happens once the
// engine has stopped. Frames must be requested before calling Run.
func (h *Host) Run(ctx context.Context) error {
	tk := time.NewTicker(h.Interval)
	defer tk.Stop()
	epoch := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sz := <-h.resizeCh:
			h.mu.Lock()
			h.width, h.height = sz[0], sz[1]
			fns := h.resize.Values()
			h.mu.Unlock()
			for _, fn := range fns {
				fn(sz[0], sz[1])
			}
		case tm := <-tk.C:
			h.mu.Lock()
			fns := h.pending
			h.pending = nil
			h.mu.Unlock()
			if len(fns) == 0 {
				slog.Debug("ticker.Host.Run: no frames requested, stopping")
				return nil
			}
			now := tm.Sub(epoch)
			for _, fn := range fns {
				fn(now)
			}
			h.present()
		}
	}
}

func (h *Host) present() {
	if h.Present == nil {
		return
	}
	h.mu.Lock()
	rss := slices.Clone(h.attached)
	h.mu.Unlock()
	for _, rs := range rss {
		h.Present(rs)
	}
}
