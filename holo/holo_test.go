// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/holo/assets"
	"cogentcore.org/holo/config"
	"cogentcore.org/holo/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld(t *testing.T, cfg *config.Config) *World {
	t.Helper()
	if cfg == nil {
		cfg = config.New()
	}
	sh, err := LoadShaders(assets.Shaders())
	require.NoError(t, err)
	w, err := Build(cfg, sh)
	require.NoError(t, err)
	return w
}

func assertVec3(t *testing.T, want, got math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgAndArgs...)
}

func TestBuild(t *testing.T) {
	w := testWorld(t, nil)
	sc := w.Scene
	assert.Len(t, sc.Solids(), 8)
	assert.Len(t, sc.Lights, 3)
	assertVec3(t, math32.Vec3(0, 0, -1.5), w.Cube.WorldPos())
	assertVec3(t, math32.Vec3(0.4, 0, -1.5), w.Sphere.WorldPos())
	assertVec3(t, math32.Vec3(-0.4, 0, -1.5), w.Cone.WorldPos())
	assertVec3(t, math32.Vec3(0.2, 0.3, -1.2), w.Dodeca.WorldPos())
	assertVec3(t, math32.Vec3(-0.2, 0.3, -1.2), w.Cylinder.WorldPos())
	assertVec3(t, math32.Vec3(0, 0, 3.5), w.Tetrahedron.WorldPos())
	assertVec3(t, math32.Vec3(1.5, 1.5, 1.5), w.Torus.Pose.Scale)
	assertVec3(t, math32.Vec3(0, 1, 1), w.DirLight.Pos)

	assert.Equal(t, xyz.Lambert, w.Cube.Material.Kind)
	assert.True(t, w.Cube.Material.VertexColors)
	assert.True(t, w.Cube.Mesh.HasColor())
	assert.Nil(t, w.Cube.Material.Texture)
	assert.Equal(t, float32(200), w.Sphere.Material.Shiny)
	assert.Equal(t, xyz.Normal, w.Cone.Material.Kind)
	assert.Equal(t, float32(0.5), w.Torus.Material.Roughness)
	assert.Equal(t, float32(1), w.Torus.Material.Metalness)
	clr, ok := w.Dodeca.Material.Program.UniformColor("color")
	assert.True(t, ok)
	assert.Equal(t, xyz.HexColor(0x00ffff), clr)
	assert.True(t, w.Cylinder.Material.Program.Raw)

	cur := w.Cursor
	assert.Same(t, w.Viewpoint, cur.Parent)
	assert.True(t, cur.NoPick)
	assert.False(t, cur.Material.DepthTest)
	assert.True(t, cur.Material.Transparent)
	assert.Equal(t, float32(0.5), cur.Material.Opacity)
	assert.Equal(t, xyz.RClassOverlay, cur.RenderClass())

	_, ok = w.Viewpoint.(*xyz.Camera)
	assert.True(t, ok)
	cm := w.Viewpoint.AsCamera()
	assert.Equal(t, float32(45), cm.FOV)
	assert.Equal(t, float32(0.01), cm.Near)
	assert.Equal(t, float32(1000), cm.Far)
}

func TestBuildHolographic(t *testing.T) {
	cfg := config.New()
	cfg.Holographic = true
	cfg.EyeSeparation = 0.07
	w := testWorld(t, cfg)
	st, ok := w.Viewpoint.(*xyz.StereoCamera)
	require.True(t, ok)
	assert.Equal(t, float32(0.07), st.EyeSeparation)
	assert.Same(t, st, w.Cursor.Parent)
}

func TestBuildDeterministic(t *testing.T) {
	a := testWorld(t, nil)
	b := testWorld(t, nil)
	assert.Equal(t, a.Torus.Mesh.Pos, b.Torus.Mesh.Pos)
	assert.Equal(t, a.Cube.Mesh.Color, b.Cube.Mesh.Color)
}

func TestAnimateAtZero(t *testing.T) {
	w := testWorld(t, nil)
	Animate(w, 0, 0)
	assertVec3(t, math32.Vec3(2, 0, -1.5), w.PointLight.Pos)
	assert.InDelta(t, 0, w.Cone.Pose.Pos.Y, 1e-6)
	assert.InDelta(t, -3, w.Torus.Pose.Pos.Z, 1e-6)
	assertVec3(t, math32.Vec3(1.6, 1.6, 1.6), w.Sphere.Pose.Scale)
	assertVec3(t, math32.Vector3{}, w.Cube.Pose.Euler, "no rotation without time")
}

func TestAnimateRanges(t *testing.T) {
	w := testWorld(t, nil)
	for i := range 2000 {
		el := float32(i) * 0.037
		Animate(w, 0.016, el)
		s := w.Sphere.Pose.Scale.X
		assert.GreaterOrEqual(t, s, float32(1)-1e-5)
		assert.LessOrEqual(t, s, float32(1.6)+1e-5)
		z := w.Torus.Pose.Pos.Z
		assert.GreaterOrEqual(t, z, float32(-3)-1e-5)
		assert.LessOrEqual(t, z, float32(-2)+1e-5)
		lp := w.PointLight.Pos
		assert.InDelta(t, 4, lp.X*lp.X+(lp.Z+1.5)*(lp.Z+1.5), 1e-3)
		assert.InDelta(t, 0, lp.Y, 1e-6)
	}
}

func TestAnimateSphereExtremes(t *testing.T) {
	w := testWorld(t, nil)
	// 0.3 t = pi
	Animate(w, 0, math32.Pi/0.3)
	assert.InDelta(t, 1.6, w.Sphere.Pose.Scale.X, 1e-4)
	// 0.3 t = pi/2
	Animate(w, 0, math32.Pi/2/0.3)
	assert.InDelta(t, 1.0, w.Sphere.Pose.Scale.X, 1e-4)
}

func TestAnimateSpin(t *testing.T) {
	w := testWorld(t, nil)
	Animate(w, 0.5, 0.5)
	assert.InDelta(t, 0.3, w.Cube.Pose.Euler.Y, 1e-6)
	assertVec3(t, math32.Vec3(0.3, 0.3, 0), w.Tetrahedron.Pose.Euler)

	Animate(w, -1, 1)
	assert.InDelta(t, 0.3, w.Cube.Pose.Euler.Y, 1e-6, "negative delta is clamped")

	w.FrameSpin = true
	Animate(w, 10, 2)
	assert.InDelta(t, 0.31, w.Cube.Pose.Euler.Y, 1e-6)
	assertVec3(t, math32.Vec3(0.31, 0.31, 0), w.Tetrahedron.Pose.Euler)
}

func TestResolvePointerHit(t *testing.T) {
	w := testWorld(t, nil)
	pk := ResolvePointer(w)
	require.True(t, pk.Hit)
	assert.Same(t, w.Cube, pk.Intersection.Solid)
	assert.InDelta(t, 1.4, pk.Intersection.Distance, 1e-5)

	cur := w.Cursor
	assert.InDelta(t, -1.39, cur.Pose.Pos.Z, 1e-5)
	assert.Equal(t, CursorHitColor, cur.Material.Color)
	assert.Equal(t, float32(CursorHitOpacity), cur.Material.Opacity)
	assertVec3(t, math32.Vec3(5, 5, 5), cur.Pose.Scale)
	assertVec3(t, math32.Vec3(0, 0, 1), cur.Pose.Facing())
	assertVec3(t, math32.Vec3(0, 0, -1.39), cur.WorldPos())
}

func TestResolvePointerRotatedCube(t *testing.T) {
	w := testWorld(t, nil)
	w.Cube.Pose.SetEulerRotationRad(0, math32.Pi/6, 0)
	pk := ResolvePointer(w)
	require.True(t, pk.Hit)
	assert.Same(t, w.Cube, pk.Intersection.Solid)
	// the front face is turned by 30 degrees
	assert.InDelta(t, 1.5-0.1/math32.Cos(math32.Pi/6), pk.Intersection.Distance, 1e-4)
	n := pk.Intersection.WorldNormal()
	assertVec3(t, math32.Vec3(0.5, 0, math32.Cos(math32.Pi / 6)), n)
	assertVec3(t, n, w.Cursor.Pose.Facing())
}

func TestResolvePointerMiss(t *testing.T) {
	w := testWorld(t, nil)
	w.Viewpoint.AsNodeBase().Pose.SetEulerRotationRad(math32.Pi/2, 0, 0)
	pk := ResolvePointer(w)
	assert.False(t, pk.Hit)
	cur := w.Cursor
	assert.Equal(t, CursorMissColor, cur.Material.Color)
	assert.Equal(t, float32(CursorMissOpacity), cur.Material.Opacity)
	assert.Equal(t, float32(-2), cur.Pose.Pos.Z)
	assertVec3(t, math32.Vec3(5, 5, 5), cur.Pose.Scale)
	assertVec3(t, math32.Vec3(0, 0, 1), cur.Pose.Facing())
}

func TestResolvePointerEmptyScene(t *testing.T) {
	w := testWorld(t, nil)
	for _, sld := range w.Scene.Solids() {
		if sld != w.Cursor {
			sld.Hidden = true
		}
	}
	pk := ResolvePointer(w)
	assert.False(t, pk.Hit)
	assert.Equal(t, xyz.HexColor(0xffffff), w.Cursor.Material.Color)
	assert.Equal(t, float32(0.5), w.Cursor.Material.Opacity)
	assert.Equal(t, float32(-2), w.Cursor.Pose.Pos.Z)
	assertVec3(t, math32.Vec3(0, 0, 1), w.Cursor.Pose.Facing())
}

func TestCursorOpacity(t *testing.T) {
	w := testWorld(t, nil)
	for i := range 200 {
		el := float32(i) * 0.1
		Animate(w, 0.1, el)
		w.Viewpoint.AsNodeBase().Pose.SetEulerRotationRad(0, el*0.3, 0)
		pk := ResolvePointer(w)
		op := w.Cursor.Material.Opacity
		if pk.Hit {
			assert.Equal(t, float32(0.8), op)
		} else {
			assert.Equal(t, float32(0.5), op)
		}
	}
}
