// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws an [xyz.Scene] into an image.
package render

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/holo/xyz"
)

// Camera contains the view and projection matrices used for one render,
// and the world position of the eye for specular lighting.
type Camera struct {

	// View transforms world into camera-centered coordinates.
	View math32.Matrix4

	// Projection transforms camera coordinates into clip coordinates.
	Projection math32.Matrix4

	// Eye is the world position of the eye.
	Eye math32.Vector3
}

// CameraFor returns the [Camera] for the given viewpoint camera.
// The scene world matrices must be up to date.
func CameraFor(cm *xyz.Camera) Camera {
	return Camera{View: cm.ViewMatrix(), Projection: cm.ProjectionMatrix(), Eye: cm.Pose.WorldPos()}
}

// Renderer renders a scene as seen by the camera into the given
// rectangle of dst. The scene world matrices must be up to date.
type Renderer interface {
	Render(sc *xyz.Scene, cam Camera, dst *image.RGBA, rect image.Rectangle)
}
