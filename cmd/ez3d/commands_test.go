// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
[scene]
background = "skyblue"

[[objects]]
kind = "sphere"
name = "ball"
color = "orange"
spin = [0.0, 1.0, 0.0]
`

func writeScene(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(fn, []byte(testScene), 0o644))
	return fn
}

func TestRenderCmd(t *testing.T) {
	fn := writeScene(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", fn, "--width", "40", "--height", "30", "-n", "3", "-q"})
	require.NoError(t, cmd.Execute())

	img, err := imgio.Open(filepath.Join(filepath.Dir(fn), "scene.png"))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestRenderCmdErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.toml"), "-q"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"render"})
	assert.Error(t, cmd.Execute())
}

func TestPlayCmd(t *testing.T) {
	fn := writeScene(t)
	snap := filepath.Join(t.TempDir(), "last.png")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"play", fn, "-d", "100ms", "--fps", "100", "--snapshot", snap, "-q"})
	require.NoError(t, cmd.Execute())
	_, err := os.Stat(snap)
	assert.NoError(t, err)
}

func TestWatchFile(t *testing.T) {
	fn := writeScene(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, fn, func() { changed <- struct{}{} })
	}()

	// the watcher may not be ready yet, so keep writing until it sees a change
	tk := time.NewTicker(50 * time.Millisecond)
	defer tk.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tk.C:
			require.NoError(t, os.WriteFile(fn, []byte(testScene), 0o644))
		case <-ctx.Done():
			t.Fatal("no change seen")
		}
	}
	cancel()
	assert.NoError(t, <-done)
}
