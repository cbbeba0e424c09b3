// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides the single-threaded host loop that runs
// animation frame callbacks and posted tasks on one goroutine.
package host

import (
	"context"
	"sync"
	"time"
)

// FuncRun is a function to run on the loop, with an optional channel
// that is signaled when it has run.
type FuncRun struct {
	F    func()
	Done chan struct{}
}

// FrameFunc is an animation frame callback, called with the frame time.
type FrameFunc func(now time.Time)

// Loop runs frame callbacks at a fixed rate and posted tasks as
// they arrive, all on the goroutine calling [Loop.Run]. Frame
// callbacks are one-shot: a callback that wants the next frame
// must request it again.
type Loop struct {

	// FPS is the frame rate of [Loop.Run].
	FPS float64

	mu     sync.Mutex
	posted []FuncRun
	frames []FrameFunc
	wake   chan struct{}
}

// NewLoop returns a loop running at the given frame rate.
func NewLoop(fps float64) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{FPS: fps, wake: make(chan struct{}, 1)}
}

// RequestFrame schedules f to run on the next frame.
// It is safe to call from any goroutine.
func (lp *Loop) RequestFrame(f FrameFunc) {
	lp.mu.Lock()
	lp.frames = append(lp.frames, f)
	lp.mu.Unlock()
}

// Post schedules f to run on the loop goroutine as soon as possible.
// It is safe to call from any goroutine.
func (lp *Loop) Post(f func()) {
	lp.post(FuncRun{F: f})
}

// RunOnLoop runs f on the loop goroutine and waits for it to finish,
// or for ctx to be done.
func (lp *Loop) RunOnLoop(ctx context.Context, f func()) error {
	done := make(chan struct{}, 1)
	lp.post(FuncRun{F: f, Done: done})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (lp *Loop) post(fr FuncRun) {
	lp.mu.Lock()
	lp.posted = append(lp.posted, fr)
	lp.mu.Unlock()
	select {
	case lp.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of requested frame callbacks.
func (lp *Loop) Pending() int {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return len(lp.frames)
}

// Run runs the loop until ctx is done, which is its only way to stop.
// It returns nil when ctx is done.
func (lp *Loop) Run(ctx context.Context) error {
	tick := time.NewTicker(time.Duration(float64(time.Second) / lp.FPS))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-lp.wake:
			if ctx.Err() != nil {
				return nil
			}
			lp.runPosted()
		case now := <-tick.C:
			if ctx.Err() != nil {
				return nil
			}
			lp.Step(now)
		}
	}
}

// Step runs the posted tasks and then the frame callbacks that were
// requested before the step began. Callbacks requested during the
// step run on the next one.
func (lp *Loop) Step(now time.Time) {
	lp.runPosted()
	lp.mu.Lock()
	frames := lp.frames
	lp.frames = nil
	lp.mu.Unlock()
	for _, f := range frames {
		f(now)
	}
}

func (lp *Loop) runPosted() {
	lp.mu.Lock()
	posted := lp.posted
	lp.posted = nil
	lp.mu.Unlock()
	for _, fr := range posted {
		fr.F()
		if fr.Done != nil {
			fr.Done <- struct{}{}
		}
	}
}
