// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/holo/xyz"
)

// minW is the smallest clip w of a rendered vertex; triangles with a
// vertex closer to the eye plane than this are skipped.
const minW = 1e-4

// Raster is a software z-buffer [Renderer]. Solids are drawn by
// render class: opaque first, then transparent back to front, then
// those without depth testing. It is not safe for concurrent use.
type Raster struct {
	depth []float32
}

// NewRaster returns a new software renderer.
func NewRaster() *Raster {
	return &Raster{}
}

// item is one solid queued for drawing.
type item struct {
	sld   *xyz.Solid
	class xyz.RenderClasses
	viewZ float32
}

func (rs *Raster) Render(sc *xyz.Scene, cam Camera, dst *image.RGBA, rect image.Rectangle) {
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	bg := sc.Background
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.SetRGBA(x, y, bg)
		}
	}
	n := rect.Dx() * rect.Dy()
	if cap(rs.depth) < n {
		rs.depth = make([]float32, n)
	}
	rs.depth = rs.depth[:n]
	for i := range rs.depth {
		rs.depth[i] = 1
	}

	var items []item
	for _, sld := range sc.Solids() {
		if sld.Mesh == nil || sld.Material == nil {
			continue
		}
		vz := sld.Pose.WorldPos().MulMatrix4(&cam.View).Z
		items = append(items, item{sld: sld, class: sld.RenderClass(), viewZ: vz})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.class != b.class {
			return a.class < b.class
		}
		if a.class == xyz.RClassOpaque {
			return false
		}
		return a.viewZ < b.viewZ
	})

	ls := gatherLights(sc)
	for _, it := range items {
		rs.drawSolid(it.sld, cam, ls, dst, rect)
	}
}

// vertex is a mesh vertex transformed for drawing.
type vertex struct {
	clip  math32.Vector4
	world math32.Vector3
	norm  math32.Vector3
	color math32.Vector3
	uv    math32.Vector2
	// screen position and depth
	sx, sy, sz float32
}

func (rs *Raster) drawSolid(sld *xyz.Solid, cam Camera, ls *lights, dst *image.RGBA, rect image.Rectangle) {
	ms := sld.Mesh
	mt := sld.Material
	model := &sld.Pose.WorldMatrix
	var normMat math32.Matrix3
	normMat.SetNormalMatrix(model)
	var vp, mvp math32.Matrix4
	vp.MulMatrices(&cam.Projection, &cam.View)
	mvp.MulMatrices(&vp, model)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	useColor := mt.VertexColors && ms.HasColor()

	vs := make([]vertex, len(ms.Pos))
	for i, p := range ms.Pos {
		v := &vs[i]
		v.clip = math32.Vector4FromVector3(p, 1).MulMatrix4(&mvp)
		v.world = p.MulMatrix4(model)
		v.norm = ms.Norm[i].MulMatrix3(&normMat).Normal()
		v.uv = ms.UV[i]
		v.color = math32.Vec3(1, 1, 1)
		if useColor {
			v.color = ms.Color[i]
		}
		if v.clip.W > minW {
			iw := 1 / v.clip.W
			v.sx = float32(rect.Min.X) + (v.clip.X*iw+1)*.5*w
			v.sy = float32(rect.Min.Y) + (1-v.clip.Y*iw)*.5*h
			v.sz = v.clip.Z*iw*.5 + .5
		}
	}

	base := xyz.ColorVec3(mt.Color)
	if mt.Kind == xyz.Shader || mt.Kind == xyz.RawShader {
		if mt.Program != nil {
			if c, ok := mt.Program.UniformColor("color"); ok {
				base = xyz.ColorVec3(c)
			}
		}
	}
	alpha := mt.Alpha()
	for t := 0; t < ms.NumTriangles(); t++ {
		a, b, c := &vs[ms.Index[3*t]], &vs[ms.Index[3*t+1]], &vs[ms.Index[3*t+2]]
		if a.clip.W <= minW || b.clip.W <= minW || c.clip.W <= minW {
			continue
		}
		// counter-clockwise in NDC is clockwise in screen space, where y is down
		area := (b.sx-a.sx)*(c.sy-a.sy) - (c.sx-a.sx)*(b.sy-a.sy)
		if area == 0 {
			continue
		}
		front := area < 0
		switch {
		case mt.Side == xyz.FrontSide && !front:
			continue
		case mt.Side == xyz.BackSide && front:
			continue
		}
		rs.fillTriangle(a, b, c, area, !front, sld, base, alpha, cam, ls, dst, rect)
	}
}

func (rs *Raster) fillTriangle(a, b, c *vertex, area float32, back bool, sld *xyz.Solid, base math32.Vector3, alpha float32, cam Camera, ls *lights, dst *image.RGBA, rect image.Rectangle) {
	mt := sld.Material
	x0 := max(int(math32.Floor(min(a.sx, b.sx, c.sx))), rect.Min.X)
	x1 := min(int(math32.Ceil(max(a.sx, b.sx, c.sx))), rect.Max.X-1)
	y0 := max(int(math32.Floor(min(a.sy, b.sy, c.sy))), rect.Min.Y)
	y1 := min(int(math32.Ceil(max(a.sy, b.sy, c.sy))), rect.Max.Y-1)
	iwa, iwb, iwc := 1/a.clip.W, 1/b.clip.W, 1/c.clip.W
	stride := rect.Dx()
	for y := y0; y <= y1; y++ {
		py := float32(y) + .5
		for x := x0; x <= x1; x++ {
			px := float32(x) + .5
			wa := ((b.sx-px)*(c.sy-py) - (c.sx-px)*(b.sy-py)) / area
			wb := ((c.sx-px)*(a.sy-py) - (a.sx-px)*(c.sy-py)) / area
			wc := 1 - wa - wb
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}
			z := wa*a.sz + wb*b.sz + wc*c.sz
			if z < 0 || z > 1 {
				continue
			}
			di := (y-rect.Min.Y)*stride + (x - rect.Min.X)
			if mt.DepthTest && z >= rs.depth[di] {
				continue
			}
			// perspective-correct weights
			pa, pb, pc := wa*iwa, wb*iwb, wc*iwc
			s := 1 / (pa + pb + pc)
			pa, pb, pc = pa*s, pb*s, pc*s

			fr := fragment{eye: cam.Eye}
			fr.pos = a.world.MulScalar(pa).Add(b.world.MulScalar(pb)).Add(c.world.MulScalar(pc))
			fr.norm = a.norm.MulScalar(pa).Add(b.norm.MulScalar(pb)).Add(c.norm.MulScalar(pc)).Normal()
			if back {
				fr.norm = fr.norm.Negate()
			}
			fr.base = base.Mul(a.color.MulScalar(pa).Add(b.color.MulScalar(pb)).Add(c.color.MulScalar(pc)))
			fa := alpha
			if mt.Texture != nil {
				uv := a.uv.MulScalar(pa).Add(b.uv.MulScalar(pb)).Add(c.uv.MulScalar(pc))
				tc := mt.Texture.Sample(uv.X, uv.Y)
				fr.base = fr.base.Mul(xyz.ColorVec3(tc))
				fa *= float32(tc.A) / 255
			}
			var out math32.Vector3
			if mt.Kind == xyz.Normal {
				vn := fr.norm.MulMatrix4AsVector4(&cam.View, 0).Normal()
				out = vn.MulScalar(.5).AddScalar(.5)
			} else {
				out = shade(mt, ls, &fr)
			}
			if fa < 1 {
				d := xyz.ColorVec3(dst.RGBAAt(x, y))
				out = d.Lerp(out, fa)
			}
			dst.SetRGBA(x, y, toRGBA(out))
			if mt.DepthTest {
				rs.depth[di] = z
			}
		}
	}
}

func toRGBA(c math32.Vector3) color.RGBA {
	return color.RGBA{channel(c.X), channel(c.Y), channel(c.Z), 255}
}

func channel(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}
