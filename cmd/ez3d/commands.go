// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ez3d/ez3d/base/errors"
	"github.com/ez3d/ez3d/base/logx"
	"github.com/ez3d/ez3d/ez3d"
	"github.com/ez3d/ez3d/host/offscreen"
	"github.com/ez3d/ez3d/host/ticker"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// renderConfig is the configuration of rendering a scene file to an image.
type renderConfig struct {
	Output string
	Frames int
	Width  int
	Height int
	Ratio  float32
}

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:          "ez3d",
		Short:        "Render and play ez3d scene files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: only show errors")

	root.AddCommand(newRenderCmd(), newPlayCmd(), newWatchCmd())
	return root
}

func addRenderFlags(cmd *cobra.Command, rc *renderConfig) {
	f := cmd.Flags()
	f.StringVarP(&rc.Output, "output", "o", "", "output PNG file (default: scene file name with .png)")
	f.IntVarP(&rc.Frames, "frames", "n", 1, "number of frames to run before capturing")
	f.IntVar(&rc.Width, "width", 800, "image width")
	f.IntVar(&rc.Height, "height", 600, "image height")
	f.Float32Var(&rc.Ratio, "ratio", 1, "pixel ratio")
}

func newRenderCmd() *cobra.Command {
	rc := &renderConfig{}
	cmd := &cobra.Command{
		Use:   "render <scene-file>",
		Short: "Render a scene file to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFile(args[0], rc)
		},
	}
	addRenderFlags(cmd, rc)
	return cmd
}

func outputName(filename string, rc *renderConfig) string {
	if rc.Output != "" {
		return rc.Output
	}
	return filename[:len(filename)-len(filepath.Ext(filename))] + ".png"
}

// renderFile runs the scene in the given file for rc.Frames frames
// on an offscreen host and saves the last frame.
func renderFile(filename string, rc *renderConfig) error {
	sf, err := ez3d.OpenSceneFile(filename)
	if err != nil {
		return err
	}
	sc, err := sf.Build()
	if err != nil {
		return err
	}
	host := offscreen.New(rc.Width, rc.Height, rc.Ratio)
	en := ez3d.NewEngine(host, sf.Engine)
	defer en.Dispose()
	defer sc.Dispose()
	en.Run(sc)
	host.Steps(max(rc.Frames, 1))
	out := outputName(filename, rc)
	if err := host.Save(out); err != nil {
		return err
	}
	slog.Info("rendered", "scene", filename, "output", out, "frames", en.Frames(), "objects", len(sc.Objects()))
	return nil
}

func newPlayCmd() *cobra.Command {
	var duration time.Duration
	var fps float32
	var snapshot string
	cmd := &cobra.Command{
		Use:   "play <scene-file>",
		Short: "Play a scene file in real time, optionally saving the last frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := ez3d.OpenSceneFile(args[0])
			if err != nil {
				return err
			}
			sc, err := sf.Build()
			if err != nil {
				return err
			}
			host := ticker.New(800, 600, fps)
			en := ez3d.NewEngine(host, sf.Engine)
			defer en.Dispose()
			defer sc.Dispose()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			if duration > 0 {
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			start := time.Now()
			en.Run(sc)
			err = host.Run(ctx)
			en.Stop()
			secs := time.Since(start).Seconds()
			slog.Info("played", "scene", args[0], "frames", en.Frames(), "fps", float64(en.Frames())/max(secs, 1e-9))
			if snapshot != "" {
				if err := en.Renderer.Save(snapshot); err != nil {
					return err
				}
			}
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	f := cmd.Flags()
	f.DurationVarP(&duration, "duration", "d", 5*time.Second, "how long to play; 0 plays until interrupted")
	f.Float32Var(&fps, "fps", 60, "frames per second")
	f.StringVar(&snapshot, "snapshot", "", "PNG file to save the last frame to")
	return cmd
}

func newWatchCmd() *cobra.Command {
	rc := &renderConfig{}
	cmd := &cobra.Command{
		Use:   "watch <scene-file>",
		Short: "Render a scene file to a PNG image every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			filename := args[0]
			render := func() {
				errors.Log(renderFile(filename, rc))
			}
			render()
			return watchFile(ctx, filename, render)
		},
	}
	addRenderFlags(cmd, rc)
	return cmd
}

// watchFile calls changed every time the given file is written or
// replaced, until the context is done. It watches the directory of
// the file, so that editors that save by renaming are handled.
func watchFile(ctx context.Context, filename string, changed func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "scene", filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				slog.Debug("watch: changed", "scene", filename, "op", ev.Op.String())
				changed()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
