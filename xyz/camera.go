// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Viewpoint is a node that the scene is viewed and picked from.
// Both [Camera] and [StereoCamera] are viewpoints.
type Viewpoint interface {
	Node

	// AsCamera returns the [Camera] for this viewpoint, which has the
	// projection parameters and the pose used for picking.
	AsCamera() *Camera
}

// Camera is a perspective viewpoint looking down its local -Z axis,
// with positive Y up.
type Camera struct {
	NodeBase

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// NewCamera returns a camera with default projection parameters
// (45 degree field of view, near .01, far 1000) at the origin.
func NewCamera(name string) *Camera {
	cm := &Camera{}
	newNode(cm, name)
	cm.Defaults()
	return cm
}

// Defaults sets the default projection parameters.
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.Pose.Defaults()
}

func (cm *Camera) AsCamera() *Camera {
	return cm
}

// ProjectionMatrix returns the perspective projection matrix.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	var pm math32.Matrix4
	pm.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	return pm
}

// ViewMatrix returns the view matrix, the inverse of the world matrix.
// The scene world matrices must be up to date.
func (cm *Camera) ViewMatrix() math32.Matrix4 {
	inv, _ := cm.Pose.WorldMatrix.Inverse()
	return *inv
}

// Ray returns the picking ray from the camera world position along
// its forward axis. The scene world matrices must be up to date.
func (cm *Camera) Ray() math32.Ray {
	return math32.Ray{Origin: cm.Pose.WorldPos(), Dir: cm.Pose.WorldForward()}
}

// PoseSource provides the pose of a display-driven viewpoint,
// such as the head pose reported by a holographic display.
type PoseSource interface {
	ViewerPose() (pos math32.Vector3, rot math32.Quat)
}

// StereoCamera is a viewpoint for stereoscopic displays. It renders
// a left and a right eye view, offset along its local X axis by
// half of EyeSeparation each.
type StereoCamera struct {
	Camera

	// EyeSeparation is the distance between the two eye positions.
	EyeSeparation float32

	// Source, if set, drives the pose of the camera from the display.
	Source PoseSource
}

// NewStereoCamera returns a stereo camera with the default camera
// parameters and an eye separation of 0.064.
func NewStereoCamera(name string) *StereoCamera {
	sc := &StereoCamera{}
	newNode(sc, name)
	sc.Defaults()
	sc.EyeSeparation = 0.064
	return sc
}

// SyncPose copies the pose from the Source, if any.
func (sc *StereoCamera) SyncPose() {
	if sc.Source == nil {
		return
	}
	pos, rot := sc.Source.ViewerPose()
	sc.Pose.Pos = pos
	sc.Pose.Quat = rot
}

// EyeViews returns the view matrices of the left and right eyes.
// The scene world matrices must be up to date.
func (sc *StereoCamera) EyeViews() (left, right math32.Matrix4) {
	h := sc.EyeSeparation / 2
	return sc.eyeView(-h), sc.eyeView(h)
}

// eyeView returns the view matrix for an eye offset by dx along
// the local X axis.
func (sc *StereoCamera) eyeView(dx float32) math32.Matrix4 {
	var off, eye math32.Matrix4
	off.SetTranslation(dx, 0, 0)
	eye.MulMatrices(&sc.Pose.WorldMatrix, &off)
	inv, _ := eye.Inverse()
	return *inv
}

// EyePositions returns the world positions of the left and right eyes.
func (sc *StereoCamera) EyePositions() (left, right math32.Vector3) {
	h := sc.EyeSeparation / 2
	left = math32.Vec3(-h, 0, 0).MulMatrix4(&sc.Pose.WorldMatrix)
	right = math32.Vec3(h, 0, 0).MulMatrix4(&sc.Pose.WorldMatrix)
	return
}

var (
	_ Viewpoint = &Camera{}
	_ Viewpoint = &StereoCamera{}
)
