// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display provides the backends that present a scene on a
// [Surface]: a flat perspective view or a side-by-side stereo view
// for holographic displays.
package display

import (
	"image"
	"image/color"

	"cogentcore.org/holo/render"
	"cogentcore.org/holo/xyz"
)

// Surface is the drawing surface of the display. It has no margin or
// padding, so the image covers the whole viewport.
type Surface struct {
	*image.RGBA
}

// NewSurface returns a surface of the given size in pixels.
func NewSurface(width, height int) *Surface {
	return &Surface{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the size of the surface in pixels.
func (sf *Surface) Size() image.Point {
	return sf.Bounds().Size()
}

// Backend presents the scene as seen from a viewpoint on its surface.
type Backend interface {

	// Render draws one frame. The scene world matrices must be up to date.
	Render(sc *xyz.Scene, vp xyz.Viewpoint) error

	// Frame returns the surface holding the last rendered frame.
	Frame() *Surface
}

// New returns the [Holographic] backend if holographic is set, and
// [Flat] otherwise, drawing on a new surface of the given size.
func New(holographic bool, width, height int, rd render.Renderer) Backend {
	sf := NewSurface(width, height)
	if holographic {
		return NewHolographic(sf, rd)
	}
	return NewFlat(sf, rd)
}

// aspect returns the width over height of r.
func aspect(r image.Rectangle) float32 {
	if r.Dy() == 0 {
		return 1
	}
	return float32(r.Dx()) / float32(r.Dy())
}

// DividerColor is the default color of the stereo divider line.
var DividerColor = color.RGBA{64, 64, 64, 255}
