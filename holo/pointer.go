// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"cogentcore.org/holo/xyz"
)

// Pick is the result of resolving the pointer for one frame.
type Pick struct {

	// Hit is whether the pointer ray hit a solid.
	Hit bool

	// Intersection is the nearest intersection, valid when Hit is set.
	Intersection xyz.Intersection
}

// ResolvePointer casts a ray from the viewpoint along its forward axis
// and moves the cursor onto the nearest solid it hits, facing along
// the hit face normal, or to a fixed distance when nothing is hit.
// It updates the scene world matrices first.
func ResolvePointer(w *World) Pick {
	sc := w.Scene
	sc.UpdateWorldMatrix()
	cm := w.Viewpoint.AsCamera()
	hits := sc.RayIntersections(cm.Ray())

	cur := w.Cursor
	mt := cur.Material
	cur.Pose.SetUniformScale(CursorScale)
	var pk Pick
	if len(hits) > 0 {
		pk = Pick{Hit: true, Intersection: hits[0]}
		mt.Color = CursorHitColor
		mt.Opacity = CursorHitOpacity
		cur.Pose.Pos.Z = -(hits[0].Distance - 0.01)
		cur.Pose.SetWorldFacing(hits[0].WorldNormal(), &cm.Pose.WorldMatrix)
	} else {
		mt.Color = CursorMissColor
		mt.Opacity = CursorMissOpacity
		cur.Pose.Pos.Z = -CursorMissDistance
		cur.Pose.SetWorldFacing(xyz.AxisZ, &cm.Pose.WorldMatrix)
	}
	xyz.UpdateWorldMatrix(cur)
	return pk
}
