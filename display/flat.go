// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image"

	"cogentcore.org/holo/render"
	"cogentcore.org/holo/xyz"
	"golang.org/x/image/draw"
)

// Flat renders the perspective camera into the whole surface.
type Flat struct {
	Surface  *Surface
	Renderer render.Renderer

	// RenderScale renders at this fraction of the surface size and
	// scales the result up; values of 0 or 1 render at full size.
	RenderScale float32

	scaled *image.RGBA
}

// NewFlat returns a flat backend on the given surface.
func NewFlat(sf *Surface, rd render.Renderer) *Flat {
	return &Flat{Surface: sf, Renderer: rd, RenderScale: 1}
}

func (fl *Flat) Frame() *Surface {
	return fl.Surface
}

func (fl *Flat) Render(sc *xyz.Scene, vp xyz.Viewpoint) error {
	cm := vp.AsCamera()
	full := fl.Surface.Bounds()
	cm.Aspect = aspect(full)
	cam := render.CameraFor(cm)
	if fl.RenderScale <= 0 || fl.RenderScale >= 1 {
		fl.Renderer.Render(sc, cam, fl.Surface.RGBA, full)
		return nil
	}
	sz := image.Pt(max(int(float32(full.Dx())*fl.RenderScale), 1), max(int(float32(full.Dy())*fl.RenderScale), 1))
	if fl.scaled == nil || fl.scaled.Bounds().Size() != sz {
		fl.scaled = image.NewRGBA(image.Rectangle{Max: sz})
	}
	fl.Renderer.Render(sc, cam, fl.scaled, fl.scaled.Bounds())
	draw.ApproxBiLinear.Scale(fl.Surface.RGBA, full, fl.scaled, fl.scaled.Bounds(), draw.Src, nil)
	return nil
}
