// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Standard axis vectors.
var (
	AxisX = math32.Vec3(1, 0, 0)
	AxisY = math32.Vec3(0, 1, 0)
	AxisZ = math32.Vec3(0, 0, 1)
)

// Pose contains the full specification of position and orientation,
// always relative to the parent element.
type Pose struct {

	// Pos is the position of the center of the element, relative to the parent.
	Pos math32.Vector3

	// Scale is the scale relative to the parent.
	Scale math32.Vector3

	// Quat is the rotation relative to the parent.
	Quat math32.Quat

	// Euler holds the rotation last set through [Pose.SetEulerRotationRad]
	// or [Pose.RotateEulerRad], in radians, applied in X, Y, Z order.
	// It is reset to zero by [Pose.SetWorldFacing].
	Euler math32.Vector3

	// Matrix is the local matrix, with all position, rotation and scale
	// information relative to the parent.
	Matrix math32.Matrix4

	// WorldMatrix contains all absolute position, rotation and scale information,
	// relative to the scene root.
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its position,
// quaternion, and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	q := ps.Quat
	q.Normalize()
	ps.Matrix.SetTransform(ps.Pos, q, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and
// the parent's world matrix, which is nil for a root.
// It does not call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix.CopyFrom(&ps.Matrix)
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// SetUniformScale sets the same scale on all three axes.
func (ps *Pose) SetUniformScale(s float32) {
	ps.Scale.Set(s, s, s)
}

// SetEulerRotationRad sets the rotation from Euler angles in radians,
// applied in X, Y, Z order.
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Euler.Set(x, y, z)
	ps.Quat = EulerQuat(ps.Euler)
}

// RotateEulerRad adds the given Euler angles (radians) to the current
// Euler rotation.
func (ps *Pose) RotateEulerRad(dx, dy, dz float32) {
	ps.SetEulerRotationRad(ps.Euler.X+dx, ps.Euler.Y+dy, ps.Euler.Z+dz)
}

// EulerQuat returns the quaternion for Euler angles applied in X, Y, Z
// order, as the product of the X, Y and Z axis rotations.
func EulerQuat(e math32.Vector3) math32.Quat {
	q := math32.NewQuatAxisAngle(AxisX, e.X)
	q.SetMul(math32.NewQuatAxisAngle(AxisY, e.Y))
	q.SetMul(math32.NewQuatAxisAngle(AxisZ, e.Z))
	return q
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	var pos math32.Vector3
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}

// WorldQuat returns the current world rotation, with any
// world scale factored out.
func (ps *Pose) WorldQuat() math32.Quat {
	_, q, _ := ps.WorldMatrix.Decompose()
	return q
}

// WorldForward returns the world direction of the local -Z axis,
// which is where cameras look.
func (ps *Pose) WorldForward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulMatrix4AsVector4(&ps.WorldMatrix, 0).Normal()
}

// SetWorldFacing orients the element so that its local +Z axis points
// along the given world direction, given the parent's world matrix.
func (ps *Pose) SetWorldFacing(dir math32.Vector3, parWorld *math32.Matrix4) {
	if dir.Length() == 0 {
		return
	}
	var world math32.Quat
	world.SetFromUnitVectors(AxisZ, dir.Normal())
	_, par, _ := parWorld.Decompose()
	inv := par.Inverse()
	ps.Quat = inv.Mul(world)
	ps.Quat.Normalize()
	ps.Euler = math32.Vector3{}
}

// Facing returns the world direction of the local +Z axis.
func (ps *Pose) Facing() math32.Vector3 {
	return AxisZ.MulMatrix4AsVector4(&ps.WorldMatrix, 0).Normal()
}
