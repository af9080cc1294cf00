// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import (
	"log/slog"
	"time"

	"github.com/ez3d/ez3d/render"
)

// FrameFunc is a frame callback, called with a monotonic timestamp
// since an arbitrary host epoch.
type FrameFunc func(now time.Duration)

// ResizeFunc is called with the new size of the host surface.
type ResizeFunc func(width, height int)

// Host is the environment an [Engine] runs in: it provides the size of
// the surface, shows the renderer's images, and schedules frames.
// All callbacks must be called on one goroutine, one at a time.
type Host interface {

	// Size returns the current logical size of the surface.
	Size() (width, height int)

	// PixelRatio returns the number of image pixels per logical pixel.
	PixelRatio() float32

	// RequestFrame schedules the given function to be called once,
	// on the next display frame.
	RequestFrame(fn FrameFunc)

	// OnResize registers the given function to be called when the
	// surface is resized, returning a function that unregisters it.
	OnResize(fn ResizeFunc) (cancel func())

	// Attach shows the images of the given renderer on the surface.
	Attach(rs *render.Renderer)

	// Detach stops showing the images of the given renderer.
	Detach(rs *render.Renderer)
}

// EngineConfig is the configuration of a new [Engine].
type EngineConfig struct {

	// MaxDelta is the largest frame delta passed to updates, in seconds;
	// 0 means unlimited.
	MaxDelta float32 `toml:"max_delta" yaml:"max_delta"`
}

// Engine runs the frame loop of one active [Scene] at a time:
// on every frame it updates the scene and draws it with its renderer.
type Engine struct {

	// Host is the environment the engine runs in.
	Host Host

	// Renderer is the render surface, attached to the host.
	Renderer *render.Renderer

	// Clock measures the frame times.
	Clock Clock

	scene        *Scene
	running      bool
	pending      bool
	frames       int
	cancelResize func()
}

// NewEngine returns a new [Engine] with a renderer the size of the host
// surface, attached to the host.
func NewEngine(host Host, cfg EngineConfig) *Engine {
	w, h := host.Size()
	en := &Engine{
		Host:     host,
		Renderer: render.NewRenderer(w, h, host.PixelRatio()),
	}
	en.Clock.MaxDelta = cfg.MaxDelta
	host.Attach(en.Renderer)
	en.cancelResize = host.OnResize(en.resize)
	return en
}

// Run makes the given scene the active scene and starts the frame loop.
// If the loop is already running, only the active scene changes.
func (en *Engine) Run(sc *Scene) {
	en.scene = sc
	if sc != nil {
		sc.HandleResize(en.Renderer.Width, en.Renderer.Height)
	}
	if en.running {
		return
	}
	slog.Debug("ez3d.Engine: running")
	en.running = true
	en.requestFrame()
}

// Stop stops the frame loop. A frame already scheduled still fires,
// but does nothing and schedules no further frames.
func (en *Engine) Stop() {
	if en.running {
		slog.Debug("ez3d.Engine: stopped", "frames", en.frames)
	}
	en.running = false
}

// IsRunning returns whether the frame loop is running.
func (en *Engine) IsRunning() bool {
	return en.running
}

// Scene returns the active scene, which may be nil.
func (en *Engine) Scene() *Scene {
	return en.scene
}

// Frames returns the number of frames that have been updated and drawn.
func (en *Engine) Frames() int {
	return en.frames
}

// requestFrame schedules the next frame, unless one is already scheduled.
func (en *Engine) requestFrame() {
	if en.pending {
		return
	}
	en.pending = true
	en.Host.RequestFrame(en.frame)
}

// frame is one step of the frame loop.
func (en *Engine) frame(now time.Duration) {
	en.pending = false
	if !en.running {
		return
	}
	delta, elapsed := en.Clock.Tick(now)
	en.frames++
	if sc := en.scene; sc != nil {
		sc.Update(delta, elapsed)
		en.Renderer.Draw(sc.Graph, sc.Camera)
	}
	en.requestFrame()
}

func (en *Engine) resize(width, height int) {
	en.Renderer.PixelRatio = en.Host.PixelRatio()
	en.Renderer.SetSize(width, height)
	if en.scene != nil {
		en.scene.HandleResize(width, height)
	}
}

// Dispose stops the frame loop, stops listening for resizes,
// detaches the renderer from the host and releases it.
func (en *Engine) Dispose() {
	en.Stop()
	if en.cancelResize != nil {
		en.cancelResize()
		en.cancelResize = nil
	}
	en.Host.Detach(en.Renderer)
	en.Renderer.Dispose()
}
