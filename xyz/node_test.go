// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgAndArgs...)
}

func TestAddChild(t *testing.T) {
	sc := NewScene("sc")
	g := NewGroup("g")
	sld := NewSolid("box", NewBox("box", 1, 1, 1), NewMaterial(Basic))
	sc.Add(g)
	g.AddChild(sld)
	assert.Same(t, g, sld.Parent)
	assert.Len(t, g.Children, 1)
	assert.Same(t, g, sc.ChildByName("g"))
	assert.Same(t, sld, g.ChildByName("box"))
	assert.Nil(t, sc.ChildByName("none"))

	assert.Panics(t, func() { sc.Add(sld) }, "already has a parent")
	assert.Panics(t, func() { sld.AddChild(g) }, "already has a parent")
	assert.Panics(t, func() { sld.AddChild(sc) }, "cycle")
	sc2 := NewScene("sc2")
	assert.Panics(t, func() { sc2.AddChild(sc2) }, "self cycle")

	assert.True(t, g.RemoveChild(sld))
	assert.False(t, g.RemoveChild(sld))
	assert.Nil(t, sld.Parent)
	sc.Add(sld)
	assert.Len(t, sc.Children, 2)
	assert.Same(t, sc, sld.Parent)

	var bare NodeBase
	assert.Panics(t, func() { bare.AddChild(NewGroup("x")) }, "not initialized")
}

func TestWorldMatrix(t *testing.T) {
	sc := NewScene("sc")
	g := NewGroup("g")
	g.SetPos(1, 0, 0)
	g.SetScale(2, 2, 2)
	sld := NewSolid("box", NewBox("box", 1, 1, 1), NewMaterial(Basic)).SetPos(0, 2, 0)
	g.AddChild(sld)
	sc.Add(g)
	sc.UpdateWorldMatrix()
	assertVec3(t, math32.Vec3(1, 4, 0), sld.WorldPos())

	g.Pose.SetEulerRotationRad(0, 0, math32.DegToRad(90))
	sc.UpdateWorldMatrix()
	assertVec3(t, math32.Vec3(-3, 0, 0), sld.WorldPos())
}

func TestVisibility(t *testing.T) {
	sc := NewScene("sc")
	g := NewGroup("g")
	sld := NewSolid("box", NewBox("box", 1, 1, 1), NewMaterial(Basic))
	g.AddChild(sld)
	sc.Add(g)
	assert.True(t, sld.IsVisible())
	assert.Len(t, sc.Solids(), 1)
	g.Hidden = true
	assert.False(t, sld.IsVisible())
	assert.Empty(t, sc.Solids())
}

func TestEulerRotation(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.RotateEulerRad(0, 0.25, 0)
	ps.RotateEulerRad(0, 0.25, 0)
	assertVec3(t, math32.Vec3(0, 0.5, 0), ps.Euler)
	ps.UpdateMatrix()
	ps.UpdateWorldMatrix(nil)
	want := math32.NewQuatAxisAngle(AxisY, 0.5)
	got := ps.WorldQuat()
	assert.InDelta(t, 1, float64(math32.Abs(want.Dot(got))), 1e-5)

	// the Y turn maps +Z to +X, which the outer X turn keeps
	ps.SetEulerRotationRad(math32.Pi/2, math32.Pi/2, 0)
	ps.UpdateMatrix()
	ps.UpdateWorldMatrix(nil)
	assertVec3(t, math32.Vec3(1, 0, 0), ps.Facing())
}

func TestSetWorldFacing(t *testing.T) {
	var par math32.Matrix4
	par.SetRotationY(math32.DegToRad(90))
	var ps Pose
	ps.Defaults()
	dir := math32.Vec3(1, 0, 0)
	ps.SetWorldFacing(dir, &par)
	ps.UpdateMatrix()
	ps.UpdateWorldMatrix(&par)
	assertVec3(t, dir, ps.Facing())

	ps.SetWorldFacing(math32.Vector3{}, &par)
	ps.UpdateMatrix()
	ps.UpdateWorldMatrix(&par)
	assertVec3(t, dir, ps.Facing(), "zero direction keeps the rotation")
}

func TestStereoEyes(t *testing.T) {
	sc := NewScene("sc")
	st := NewStereoCamera("cam")
	st.SetPos(0, 1, 0)
	sc.Add(st)
	sc.UpdateWorldMatrix()
	l, r := st.EyePositions()
	assertVec3(t, math32.Vec3(-0.032, 1, 0), l)
	assertVec3(t, math32.Vec3(0.032, 1, 0), r)
	lv, rv := st.EyeViews()
	assertVec3(t, math32.Vector3{}, l.MulMatrix4(&lv))
	assertVec3(t, math32.Vector3{}, r.MulMatrix4(&rv))
	require.Same(t, &st.Camera, st.AsCamera())

	st.Source = fixedPose{pos: math32.Vec3(0, 0, 2), rot: math32.NewQuat(0, 0, 0, 1)}
	st.SyncPose()
	sc.UpdateWorldMatrix()
	assertVec3(t, math32.Vec3(0, 0, 2), st.WorldPos())
}

type fixedPose struct {
	pos math32.Vector3
	rot math32.Quat
}

func (fp fixedPose) ViewerPose() (math32.Vector3, math32.Quat) {
	return fp.pos, fp.rot
}
