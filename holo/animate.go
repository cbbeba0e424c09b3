// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"cogentcore.org/core/math32"
)

// Animate advances the moving objects. delta is the time since the
// previous step and elapsed the time since the first one, both in
// seconds. Everything but the cube and tetrahedron spin is a function
// of elapsed only. A negative delta is treated as zero.
func Animate(w *World, delta, elapsed float32) {
	delta = max(delta, 0)
	spin := w.SpinRate * delta
	if w.FrameSpin {
		spin = FrameSpinStep
	}

	w.PointLight.Pos = math32.Vec3(2*math32.Cos(elapsed*0.5), 0, -1.5+2*math32.Sin(elapsed*0.5))
	w.Cube.Pose.RotateEulerRad(0, spin, 0)
	w.Sphere.Pose.SetUniformScale(math32.Abs(math32.Cos(elapsed*0.3))*0.6 + 1)
	w.Cone.Pose.Pos.Y = math32.Sin(elapsed*0.5) * 0.1
	w.Torus.Pose.Pos.Z = -2 - math32.Abs(math32.Cos(elapsed*0.2))
	w.Tetrahedron.Pose.RotateEulerRad(spin, spin, 0)
}
