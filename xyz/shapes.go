// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// NewBox returns a box mesh centered at the origin with the given
// size. Each face has its own four vertices, so per-face colors can
// be set with [Mesh.SetFaceColors].
func NewBox(name string, width, height, depth float32) *Mesh {
	return NewShapeMesh(name, shape.NewBox(width, height, depth))
}

// SetFaceColors sets one color per box face, in +X, -X, +Y, -Y, +Z, -Z
// order, assigning each vertex the color of the face its normal points
// along. The mesh must have been made by [NewBox].
func (ms *Mesh) SetFaceColors(faces [6]math32.Vector3) error {
	clr := make([]math32.Vector3, len(ms.Norm))
	for i, n := range ms.Norm {
		clr[i] = faces[boxFace(n)]
	}
	return ms.SetColors(clr)
}

// boxFace returns the face index in +X, -X, +Y, -Y, +Z, -Z order
// for the dominant axis of the normal.
func boxFace(n math32.Vector3) int {
	a := n.Abs()
	switch {
	case a.X >= a.Y && a.X >= a.Z:
		if n.X < 0 {
			return 1
		}
		return 0
	case a.Y >= a.Z:
		if n.Y < 0 {
			return 3
		}
		return 2
	default:
		if n.Z < 0 {
			return 5
		}
		return 4
	}
}

// NewSphere returns a UV sphere mesh with the given radius and number
// of segments around (width) and from pole to pole (height).
func NewSphere(name string, radius float32, widthSegs, heightSegs int) *Mesh {
	sp := shape.NewSphere(radius, widthSegs)
	sp.HeightSegs = heightSegs
	return NewShapeMesh(name, sp)
}

// NewCylinder returns a cylinder mesh along the Y axis, centered at the
// origin. A zero top or bottom radius makes a cone, and omits that cap.
func NewCylinder(name string, radiusTop, radiusBottom, height float32, radialSegs, heightSegs int) *Mesh {
	cy := shape.NewCylinder(height, radiusBottom, radialSegs, heightSegs, radiusTop > 0, radiusBottom > 0)
	cy.TopRad = radiusTop
	return NewShapeMesh(name, cy)
}

// NewCone returns a cone mesh along the Y axis with its tip at +Y.
func NewCone(name string, radius, height float32, radialSegs, heightSegs int) *Mesh {
	return NewShapeMesh(name, shape.NewCone(height, radius, radialSegs, heightSegs, true))
}

// NewTorusKnot returns a (p, q) torus knot mesh with the given radius
// and tube radius.
func NewTorusKnot(name string, radius, tube float32, tubularSegs, radialSegs, p, q int) *Mesh {
	ms := &Mesh{Name: name}
	pf, qf := float32(p), float32(q)
	curve := func(u float32) math32.Vector3 {
		qu := qf / pf * u
		cs := math32.Cos(qu)
		return math32.Vec3(
			radius*(2+cs)*.5*math32.Cos(u),
			radius*(2+cs)*.5*math32.Sin(u),
			radius*math32.Sin(qu)*.5,
		)
	}
	for i := 0; i <= tubularSegs; i++ {
		u := float32(i) / float32(tubularSegs) * pf * 2 * math32.Pi
		p1 := curve(u)
		p2 := curve(u + .01)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t).Normal()
		b = b.Normal()
		for j := 0; j <= radialSegs; j++ {
			v := float32(j) / float32(radialSegs) * 2 * math32.Pi
			cx := -tube * math32.Cos(v)
			cy := tube * math32.Sin(v)
			pos := p1.Add(n.MulScalar(cx)).Add(b.MulScalar(cy))
			uv := math32.Vec2(float32(i)/float32(tubularSegs), float32(j)/float32(radialSegs))
			ms.add(pos, normalOr(pos.Sub(p1), n), uv)
		}
	}
	row := uint32(radialSegs + 1)
	for j := uint32(1); j <= uint32(tubularSegs); j++ {
		for i := uint32(1); i <= uint32(radialSegs); i++ {
			a := row*(j-1) + (i - 1)
			b := row*j + (i - 1)
			c := row*j + i
			d := row*(j-1) + i
			ms.Index = append(ms.Index, a, b, d, b, c, d)
		}
	}
	ms.UpdateBBox()
	return ms
}

// NewRing returns a flat ring mesh in the XY plane facing +Z, between
// the inner and outer radius.
func NewRing(name string, inner, outer float32, thetaSegs, phiSegs int) *Mesh {
	ms := &Mesh{Name: name}
	step := (outer - inner) / float32(phiSegs)
	r := inner
	for j := 0; j <= phiSegs; j++ {
		for i := 0; i <= thetaSegs; i++ {
			seg := float32(i) / float32(thetaSegs) * 2 * math32.Pi
			p := math32.Vec3(r*math32.Cos(seg), r*math32.Sin(seg), 0)
			uv := math32.Vec2((p.X/outer+1)/2, (p.Y/outer+1)/2)
			ms.add(p, AxisZ, uv)
		}
		r += step
	}
	row := uint32(thetaSegs + 1)
	for j := uint32(0); j < uint32(phiSegs); j++ {
		level := j * row
		for i := uint32(0); i < uint32(thetaSegs); i++ {
			s := i + level
			a, b, c, d := s, s+row, s+row+1, s+1
			ms.Index = append(ms.Index, a, b, d, b, c, d)
		}
	}
	ms.UpdateBBox()
	return ms
}

// NewTetrahedron returns a regular tetrahedron with the given
// circumscribed radius.
func NewTetrahedron(name string, radius float32) *Mesh {
	verts := []math32.Vector3{math32.Vec3(1, 1, 1), math32.Vec3(-1, -1, 1), math32.Vec3(-1, 1, -1), math32.Vec3(1, -1, -1)}
	faces := []uint32{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1}
	return newPolyhedron(name, verts, faces, radius)
}

// NewDodecahedron returns a regular dodecahedron with the given
// circumscribed radius, with each pentagon split into three triangles.
func NewDodecahedron(name string, radius float32) *Mesh {
	t := (1 + math32.Sqrt(5)) / 2
	r := 1 / t
	verts := []math32.Vector3{
		math32.Vec3(-1, -1, -1), math32.Vec3(-1, -1, 1), math32.Vec3(-1, 1, -1), math32.Vec3(-1, 1, 1),
		math32.Vec3(1, -1, -1), math32.Vec3(1, -1, 1), math32.Vec3(1, 1, -1), math32.Vec3(1, 1, 1),
		math32.Vec3(0, -r, -t), math32.Vec3(0, -r, t), math32.Vec3(0, r, -t), math32.Vec3(0, r, t),
		math32.Vec3(-r, -t, 0), math32.Vec3(-r, t, 0), math32.Vec3(r, -t, 0), math32.Vec3(r, t, 0),
		math32.Vec3(-t, 0, -r), math32.Vec3(t, 0, -r), math32.Vec3(-t, 0, r), math32.Vec3(t, 0, r),
	}
	faces := []uint32{
		3, 11, 7, 3, 7, 15, 3, 15, 13,
		7, 19, 17, 7, 17, 6, 7, 6, 15,
		17, 4, 8, 17, 8, 10, 17, 10, 6,
		8, 0, 16, 8, 16, 2, 8, 2, 10,
		0, 12, 1, 0, 1, 18, 0, 18, 16,
		6, 10, 2, 6, 2, 13, 6, 13, 15,
		2, 16, 18, 2, 18, 3, 2, 3, 13,
		18, 1, 9, 18, 9, 11, 18, 11, 3,
		4, 14, 12, 4, 12, 0, 4, 0, 8,
		11, 9, 5, 11, 5, 19, 11, 19, 7,
		19, 5, 14, 19, 14, 4, 19, 4, 17,
		1, 12, 14, 1, 14, 5, 1, 5, 9,
	}
	return newPolyhedron(name, verts, faces, radius)
}

// newPolyhedron builds a flat-shaded convex polyhedron from unit-scale
// vertices projected onto the given radius. Each triangle gets its own
// vertices, and is wound so that it faces away from the center.
func newPolyhedron(name string, verts []math32.Vector3, faces []uint32, radius float32) *Mesh {
	ms := &Mesh{Name: name}
	for i := 0; i+2 < len(faces); i += 3 {
		a := verts[faces[i]].Normal().MulScalar(radius)
		b := verts[faces[i+1]].Normal().MulScalar(radius)
		c := verts[faces[i+2]].Normal().MulScalar(radius)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(a.Add(b).Add(c)) < 0 {
			b, c = c, b
			n = n.Negate()
		}
		n = n.Normal()
		ia := ms.add(a, n, sphereUV(a))
		ib := ms.add(b, n, sphereUV(b))
		ic := ms.add(c, n, sphereUV(c))
		ms.Index = append(ms.Index, ia, ib, ic)
	}
	ms.UpdateBBox()
	return ms
}

// sphereUV returns spherical texture coordinates for a point.
func sphereUV(p math32.Vector3) math32.Vector2 {
	n := normalOr(p, AxisY)
	u := math32.Atan2(n.Z, -n.X)/(2*math32.Pi) + .5
	v := math32.Asin(math32.Clamp(n.Y, -1, 1))/math32.Pi + .5
	return math32.Vec2(u, v)
}

// normalOr returns v normalized, or def if v has zero length.
func normalOr(v, def math32.Vector3) math32.Vector3 {
	if v.Length() == 0 {
		return def
	}
	return v.Normal()
}
