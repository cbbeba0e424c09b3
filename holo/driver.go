// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/holo/display"
	"cogentcore.org/holo/host"
	"cogentcore.org/holo/xyz"
)

// States are the states of a [Driver].
type States int32

const (
	// Idle is the state before the first frame.
	Idle States = iota

	// Running is the state once frames are being produced;
	// it is never left.
	Running
)

func (s States) String() string {
	if s == Running {
		return "Running"
	}
	return "Idle"
}

// Stats are the frame statistics of a [Driver].
type Stats struct {

	// Frames is the number of frames rendered.
	Frames int

	// Elapsed is the elapsed time of the last frame in seconds.
	Elapsed float32

	// LastPick is the pointer pick of the last frame.
	LastPick Pick
}

// Driver runs the per-frame update on a host loop: request the next
// frame, animate, resolve the pointer, and render.
type Driver struct {
	World   *World
	Loop    *host.Loop
	Backend display.Backend
	Clock   *Clock

	// Sinks receive each rendered frame.
	Sinks []display.Sink

	// OnFrame, if set, is called at the end of each frame.
	OnFrame func(n int, pk Pick)

	state atomic.Int32

	mu    sync.Mutex
	stats Stats
}

// NewDriver returns an idle driver.
func NewDriver(w *World, lp *host.Loop, be display.Backend) *Driver {
	return &Driver{World: w, Loop: lp, Backend: be, Clock: NewClock()}
}

// State returns the current state.
func (dr *Driver) State() States {
	return States(dr.state.Load())
}

// Start moves the driver from Idle to Running and produces the first
// frame, which requests the following ones. It returns whether this
// call did the transition; later calls do nothing. It must be called
// on the loop goroutine.
func (dr *Driver) Start() bool {
	if !dr.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return false
	}
	dr.frame(dr.Clock.Time())
	return true
}

// Stats returns the current frame statistics.
// It is safe to call from any goroutine.
func (dr *Driver) Stats() Stats {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	return dr.stats
}

func (dr *Driver) frame(now time.Time) {
	dr.Loop.RequestFrame(dr.frame)
	delta, elapsed := dr.Clock.Tick(now)
	w := dr.World
	if st, ok := w.Viewpoint.(*xyz.StereoCamera); ok {
		st.SyncPose()
	}
	Animate(w, delta, elapsed)
	pk := ResolvePointer(w)
	errors.Log(dr.Backend.Render(w.Scene, w.Viewpoint))

	dr.mu.Lock()
	n := dr.stats.Frames
	dr.stats.Frames++
	dr.stats.Elapsed = elapsed
	dr.stats.LastPick = pk
	dr.mu.Unlock()

	img := dr.Backend.Frame().RGBA
	for _, sk := range dr.Sinks {
		errors.Log(sk.WriteFrame(n, img))
	}
	if dr.OnFrame != nil {
		dr.OnFrame(n, pk)
	}
}
