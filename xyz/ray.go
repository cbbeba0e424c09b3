// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// intersectTriangle returns the point where the ray hits the triangle
// a, b, c, which is front facing when counter-clockwise.
// Faces not selected by side are ignored.
func intersectTriangle(ray *math32.Ray, a, b, c math32.Vector3, side Sides) (math32.Vector3, bool) {
	switch side {
	case BackSide:
		return ray.IntersectTriangle(a, c, b, true)
	case DoubleSide:
		return ray.IntersectTriangle(a, b, c, false)
	default:
		return ray.IntersectTriangle(a, b, c, true)
	}
}

// Intersection is a point where a ray hits a solid.
type Intersection struct {

	// Solid is the solid that was hit.
	Solid *Solid

	// Distance is the world distance from the ray origin.
	Distance float32

	// Point is the world position of the hit.
	Point math32.Vector3

	// FaceNormal is the normal of the hit triangle in the solid's
	// local coordinates.
	FaceNormal math32.Vector3

	// FaceIndex is the index of the hit triangle in the mesh.
	FaceIndex int
}

// WorldNormal returns the face normal transformed into world space.
func (is *Intersection) WorldNormal() math32.Vector3 {
	var nm math32.Matrix3
	nm.SetNormalMatrix(&is.Solid.Pose.WorldMatrix)
	return is.FaceNormal.MulMatrix3(&nm).Normal()
}

// RaySolid returns the nearest intersection of the world ray with the
// solid, using its material Side. World matrices must be up to date.
func RaySolid(ray math32.Ray, sld *Solid) (Intersection, bool) {
	ms := sld.Mesh
	if ms.BBox.IsEmpty() {
		return Intersection{}, false
	}
	inv, err := sld.Pose.WorldMatrix.Inverse()
	if err != nil {
		return Intersection{}, false
	}
	local := ray
	local.ApplyMatrix4(inv)
	if _, ok := local.IntersectBox(ms.BBox); !ok {
		return Intersection{}, false
	}
	best := Intersection{Distance: math32.Inf(1)}
	found := false
	for i := 0; i < ms.NumTriangles(); i++ {
		a, b, c := ms.Triangle(i)
		p, ok := intersectTriangle(&local, a, b, c, sld.Material.Side)
		if !ok {
			continue
		}
		pt := p.MulMatrix4(&sld.Pose.WorldMatrix)
		dist := pt.DistanceTo(ray.Origin)
		if dist >= best.Distance {
			continue
		}
		best = Intersection{Solid: sld, Distance: dist, Point: pt, FaceIndex: i,
			FaceNormal: b.Sub(a).Cross(c.Sub(a)).Normal()}
		found = true
	}
	return best, found
}

// RayIntersections returns the intersections of the world ray with all
// visible, pickable solids, sorted from closest to furthest. World
// matrices must be up to date.
func (sc *Scene) RayIntersections(ray math32.Ray) []Intersection {
	var hits []Intersection
	sc.WalkDown(func(n tree.Node) bool {
		_, nb := AsNode(n)
		if nb == nil || nb.Hidden || nb.NoPick {
			return tree.Break
		}
		sld, ok := n.(*Solid)
		if !ok || sld.Mesh == nil || sld.Material == nil {
			return tree.Continue
		}
		if is, ok := RaySolid(ray, sld); ok {
			hits = append(hits, is)
		}
		return tree.Continue
	})
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
