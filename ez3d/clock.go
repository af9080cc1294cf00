// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ez3d

import "time"

// Clock measures frame times from monotonic host timestamps,
// given as durations since an arbitrary host epoch.
// The zero value is ready to use, and starts on the first Tick.
type Clock struct {

	// MaxDelta is the largest delta Tick returns, in seconds;
	// 0 means unlimited.
	MaxDelta float32

	start   time.Duration
	last    time.Duration
	started bool
}

// Start starts the clock at the given time.
func (cl *Clock) Start(now time.Duration) {
	cl.start = now
	cl.last = now
	cl.started = true
}

// IsStarted returns whether the clock has been started.
func (cl *Clock) IsStarted() bool {
	return cl.started
}

// Tick returns the time in seconds since the previous Tick and since
// the clock started. If the clock is not started, it is started at
// now and both are 0. Time going backwards gives a zero delta.
func (cl *Clock) Tick(now time.Duration) (delta, elapsed float32) {
	if !cl.started {
		cl.Start(now)
		return 0, 0
	}
	delta = float32(max(now-cl.last, 0).Seconds())
	cl.last = max(now, cl.last)
	if cl.MaxDelta > 0 {
		delta = min(delta, cl.MaxDelta)
	}
	elapsed = float32((cl.last - cl.start).Seconds())
	return
}
