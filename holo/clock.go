// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import "time"

// Clock measures frame times. The first tick starts it, with zero
// delta and elapsed time.
type Clock struct {

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	start   time.Time
	last    time.Time
	running bool
}

// NewClock returns a clock using [time.Now].
func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

// Tick records a frame at now and returns the seconds since the
// previous tick and since the first one. A time before the previous
// tick is taken as the previous tick, so elapsed never decreases.
func (ck *Clock) Tick(now time.Time) (delta, elapsed float32) {
	if !ck.running {
		ck.start = now
		ck.last = now
		ck.running = true
		return 0, 0
	}
	if now.Before(ck.last) {
		now = ck.last
	}
	delta = float32(now.Sub(ck.last).Seconds())
	elapsed = float32(now.Sub(ck.start).Seconds())
	ck.last = now
	return
}

// Time returns the current time from [Clock.Now].
func (ck *Clock) Time() time.Time {
	if ck.Now == nil {
		return time.Now()
	}
	return ck.Now()
}
