// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/holo/render"
	"cogentcore.org/holo/xyz"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Holographic renders the left and right eye views of a
// [xyz.StereoCamera] side by side, separated by a divider line.
// A plain [xyz.Camera] is rendered as a single view.
type Holographic struct {
	Surface  *Surface
	Renderer render.Renderer

	// Divider is the color of the line between the eye views.
	Divider color.RGBA

	// DividerWidth is the width of the divider line in pixels;
	// zero disables it.
	DividerWidth float64
}

// NewHolographic returns a holographic backend on the given surface.
func NewHolographic(sf *Surface, rd render.Renderer) *Holographic {
	return &Holographic{Surface: sf, Renderer: rd, Divider: DividerColor, DividerWidth: 2}
}

func (hg *Holographic) Frame() *Surface {
	return hg.Surface
}

// EyeRects returns the left and right halves of the surface.
func (hg *Holographic) EyeRects() (left, right image.Rectangle) {
	b := hg.Surface.Bounds()
	mid := b.Min.X + b.Dx()/2
	left = image.Rect(b.Min.X, b.Min.Y, mid, b.Max.Y)
	right = image.Rect(mid, b.Min.Y, b.Max.X, b.Max.Y)
	return
}

func (hg *Holographic) Render(sc *xyz.Scene, vp xyz.Viewpoint) error {
	st, ok := vp.(*xyz.StereoCamera)
	if !ok {
		cm := vp.AsCamera()
		full := hg.Surface.Bounds()
		cm.Aspect = aspect(full)
		hg.Renderer.Render(sc, render.CameraFor(cm), hg.Surface.RGBA, full)
		return nil
	}
	lr, rr := hg.EyeRects()
	st.Aspect = aspect(lr)
	proj := st.ProjectionMatrix()
	lv, rv := st.EyeViews()
	le, re := st.EyePositions()
	hg.Renderer.Render(sc, render.Camera{View: lv, Projection: proj, Eye: le}, hg.Surface.RGBA, lr)
	hg.Renderer.Render(sc, render.Camera{View: rv, Projection: proj, Eye: re}, hg.Surface.RGBA, rr)
	return hg.drawDivider(float64(rr.Min.X))
}

// drawDivider strokes the vertical line between the eye views.
func (hg *Holographic) drawDivider(x float64) error {
	if hg.DividerWidth <= 0 {
		return nil
	}
	b := hg.Surface.Bounds()
	dc := gg.NewContextForImage(hg.Surface.RGBA)
	defer dc.Close()
	c := hg.Divider
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	dc.SetLineWidth(hg.DividerWidth)
	dc.DrawLine(x, float64(b.Min.Y), x, float64(b.Max.Y))
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("display.Holographic: divider: %w", err)
	}
	draw.Draw(hg.Surface.RGBA, b, dc.Image(), b.Min, draw.Src)
	return nil
}
