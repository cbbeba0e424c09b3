// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/holo/xyz"
)

// lights are the scene lights gathered once per render.
type lights struct {
	ambient math32.Vector3
	dirs    []dirLight
	points  []*xyz.PointLight
}

type dirLight struct {
	toLight  math32.Vector3
	radiance math32.Vector3
}

func gatherLights(sc *xyz.Scene) *lights {
	ls := &lights{}
	for _, lt := range sc.Lights {
		switch l := lt.(type) {
		case *xyz.AmbientLight:
			ls.ambient = ls.ambient.Add(l.Radiance())
		case *xyz.DirLight:
			if l.On {
				ls.dirs = append(ls.dirs, dirLight{toLight: l.ToLight(), radiance: l.Radiance()})
			}
		case *xyz.PointLight:
			if l.On {
				ls.points = append(ls.points, l)
			}
		}
	}
	return ls
}

// fragment is the interpolated surface state at one pixel.
type fragment struct {
	pos  math32.Vector3
	norm math32.Vector3
	base math32.Vector3
	eye  math32.Vector3
}

// each calls fun with the direction to each light and its radiance
// at the fragment.
func (ls *lights) each(fr *fragment, fun func(toLight, radiance math32.Vector3)) {
	for _, dl := range ls.dirs {
		fun(dl.toLight, dl.radiance)
	}
	for _, pl := range ls.points {
		d := pl.Pos.Sub(fr.pos)
		dist := d.Length()
		if dist == 0 {
			continue
		}
		fun(d.DivScalar(dist), pl.Radiance().MulScalar(pl.Attenuation(dist)))
	}
}

// shade returns the lit color of the fragment for the material.
func shade(mt *xyz.Material, ls *lights, fr *fragment) math32.Vector3 {
	switch mt.Kind {
	case xyz.Lambert:
		return fr.base.Mul(ls.ambient.Add(ls.diffuse(fr)))
	case xyz.Phong:
		return fr.base.Mul(ls.ambient.Add(ls.diffuse(fr))).Add(ls.specular(fr, mt.Shiny, math32.Vec3(1, 1, 1)))
	case xyz.Standard, xyz.Physical:
		diff := fr.base.MulScalar(1 - mt.Metalness)
		f0 := math32.Vec3(.04, .04, .04).Lerp(fr.base, mt.Metalness)
		r := math32.Max(mt.Roughness, .05)
		shiny := math32.Max(2/(r*r*r*r)-2, 1)
		c := diff.Mul(ls.ambient.Add(ls.diffuse(fr)))
		c = c.Add(f0.Mul(ls.ambient))
		return c.Add(ls.specular(fr, shiny, f0))
	}
	return fr.base
}

func (ls *lights) diffuse(fr *fragment) math32.Vector3 {
	var sum math32.Vector3
	ls.each(fr, func(toLight, radiance math32.Vector3) {
		if nl := fr.norm.Dot(toLight); nl > 0 {
			sum = sum.Add(radiance.MulScalar(nl))
		}
	})
	return sum
}

// specular is the Blinn-Phong highlight, colored by tint.
func (ls *lights) specular(fr *fragment, shiny float32, tint math32.Vector3) math32.Vector3 {
	toEye := fr.eye.Sub(fr.pos)
	if toEye.Length() == 0 {
		return math32.Vector3{}
	}
	toEye = toEye.Normal()
	var sum math32.Vector3
	ls.each(fr, func(toLight, radiance math32.Vector3) {
		if fr.norm.Dot(toLight) <= 0 {
			return
		}
		h := toLight.Add(toEye)
		if h.Length() == 0 {
			return
		}
		if nh := fr.norm.Dot(h.Normal()); nh > 0 {
			sum = sum.Add(radiance.Mul(tint).MulScalar(math32.Pow(nh, shiny)))
		}
	})
	return sum
}
