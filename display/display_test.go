// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image"
	"image/color"
	"os"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/holo/render"
	"cogentcore.org/holo/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func testScene(vp xyz.Viewpoint) *xyz.Scene {
	sc := xyz.NewScene("sc")
	sld := xyz.NewSolid("box", xyz.NewBox("box", 0.2, 0.2, 0.2), xyz.NewMaterial(xyz.Basic).SetColor(red)).SetPos(0, 0, -1.5)
	sc.Add(sld, vp)
	sc.UpdateWorldMatrix()
	return sc
}

// recorder is a renderer that records the rects it was asked to fill.
type recorder struct {
	rects  []image.Rectangle
	cams   []render.Camera
	raster *render.Raster
}

func (rc *recorder) Render(sc *xyz.Scene, cam render.Camera, dst *image.RGBA, rect image.Rectangle) {
	rc.rects = append(rc.rects, rect)
	rc.cams = append(rc.cams, cam)
	rc.raster.Render(sc, cam, dst, rect)
}

func TestNew(t *testing.T) {
	rd := render.NewRaster()
	_, ok := New(false, 80, 60, rd).(*Flat)
	assert.True(t, ok)
	hg, ok := New(true, 80, 60, rd).(*Holographic)
	require.True(t, ok)
	assert.Equal(t, image.Pt(80, 60), hg.Frame().Size())
}

func TestFlat(t *testing.T) {
	cam := xyz.NewCamera("cam")
	sc := testScene(cam)
	rc := &recorder{raster: render.NewRaster()}
	fl := NewFlat(NewSurface(80, 60), rc)
	require.NoError(t, fl.Render(sc, cam))
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 80, 60)}, rc.rects)
	assert.InDelta(t, 80.0/60.0, cam.Aspect, 1e-6)
	assert.Equal(t, red, fl.Frame().RGBAAt(40, 30))

	fl.RenderScale = 0.5
	require.NoError(t, fl.Render(sc, cam))
	assert.Equal(t, image.Rect(0, 0, 40, 30), rc.rects[1])
	assert.Equal(t, image.Pt(80, 60), fl.Frame().Size())
	assert.Equal(t, red, fl.Frame().RGBAAt(40, 30))
}

func TestHolographic(t *testing.T) {
	st := xyz.NewStereoCamera("cam")
	sc := testScene(st)
	rc := &recorder{raster: render.NewRaster()}
	hg := NewHolographic(NewSurface(160, 60), rc)
	require.NoError(t, hg.Render(sc, st))
	require.Len(t, rc.rects, 2)
	l, r := hg.EyeRects()
	assert.Equal(t, []image.Rectangle{l, r}, rc.rects)
	assert.InDelta(t, 80.0/60.0, st.Aspect, 1e-6)
	assert.InDelta(t, -st.EyeSeparation, rc.cams[0].Eye.X-rc.cams[1].Eye.X, 1e-6)

	fr := hg.Frame()
	assert.Equal(t, red, fr.RGBAAt(40, 30), "left eye")
	assert.Equal(t, red, fr.RGBAAt(120, 30), "right eye")
	div := fr.RGBAAt(80, 5)
	assert.NotEqual(t, sc.Background, div, "divider")
	assert.Equal(t, div.R, div.B)

	// a plain camera is shown as one view
	cam := xyz.NewCamera("flat")
	sc = testScene(cam)
	rc.rects = nil
	require.NoError(t, hg.Render(sc, cam))
	assert.Equal(t, []image.Rectangle{fr.Bounds()}, rc.rects)
}

func TestPNGDir(t *testing.T) {
	dir := t.TempDir() + "/frames"
	pd := NewPNGDir(dir, 2)
	img := NewSurface(8, 8)
	img.SetRGBA(1, 1, red)
	for n := range 4 {
		require.NoError(t, pd.WriteFrame(n, img.RGBA))
	}
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, ents, 2)
	got, _, err := imagex.Open(pd.Filename(2))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 8), got.Bounds().Size())
	_, err = os.Stat(pd.Filename(1))
	assert.True(t, os.IsNotExist(err))
}
