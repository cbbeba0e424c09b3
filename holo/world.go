// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package holo builds the demo scene and drives it frame by frame:
// animation, pointer picking from the viewpoint, and display.
package holo

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/holo/config"
	"cogentcore.org/holo/xyz"
)

// Colors of the cursor when it is over a solid and when it is not.
var (
	CursorHitColor  = xyz.HexColor(0xFFFF00)
	CursorMissColor = xyz.HexColor(0xFFFFFF)
)

// Cursor opacities, and the scale the cursor is shown at.
const (
	CursorHitOpacity  = 0.8
	CursorMissOpacity = 0.5
	CursorScale       = 5
)

// CursorMissDistance is how far in front of the viewpoint the cursor
// is placed when the pointer is not over any solid.
const CursorMissDistance = 2

// FrameSpinStep is the rotation per frame used with [config.Config.FrameSpin].
const FrameSpinStep = 0.01

// World is the scene and all of the nodes the frame steps act on.
type World struct {
	Scene *xyz.Scene

	// Viewpoint is the camera the scene is viewed and picked from;
	// it is an [*xyz.StereoCamera] for holographic displays.
	Viewpoint xyz.Viewpoint

	// Cursor is the ring that marks where the pointer ray hits; it is
	// a child of the viewpoint and is not pickable.
	Cursor *xyz.Solid

	Cube        *xyz.Solid
	Sphere      *xyz.Solid
	Cone        *xyz.Solid
	Torus       *xyz.Solid
	Dodeca      *xyz.Solid
	Cylinder    *xyz.Solid
	Tetrahedron *xyz.Solid

	Ambient    *xyz.AmbientLight
	DirLight   *xyz.DirLight
	PointLight *xyz.PointLight

	// SpinRate is the rotation speed of the cube and tetrahedron in
	// radians per second.
	SpinRate float32

	// FrameSpin rotates by [FrameSpinStep] per step regardless of time.
	FrameSpin bool
}

// cubeFaceColors are the colors of the +X, -X, +Y, -Y, +Z and -Z
// faces of the cube.
var cubeFaceColors = [6]math32.Vector3{
	math32.Vec3(1, 0, 0), // right: red
	math32.Vec3(0, 0, 1), // left: blue
	math32.Vec3(0, 1, 0), // top: green
	math32.Vec3(1, 1, 0), // bottom: yellow
	math32.Vec3(0, 1, 1), // back: cyan
	math32.Vec3(1, 0, 1), // front: purple
}

// Build constructs the demo world. The shader programs are used by the
// dodecahedron and the cylinder, and get their color uniforms set.
// It does no I/O and always builds the same scene for the same config.
func Build(cfg *config.Config, sh *Shaders) (*World, error) {
	w := &World{SpinRate: cfg.SpinRate, FrameSpin: cfg.FrameSpin}
	sc := xyz.NewScene("scene")
	w.Scene = sc
	white := color.RGBA{255, 255, 255, 255}

	w.Ambient = xyz.NewAmbientLight(sc, "ambient", 0.5, white)
	w.DirLight = xyz.NewDirLight(sc, "directional", 0.5, white)
	w.DirLight.Pos = math32.Vec3(0, 1, 1)
	w.PointLight = xyz.NewPointLight(sc, "point", 0.5, white)

	box := xyz.NewBox("cube", 0.2, 0.2, 0.2)
	if err := box.SetFaceColors(cubeFaceColors); err != nil {
		return nil, err
	}
	cubeMat := xyz.NewMaterial(xyz.Lambert)
	cubeMat.VertexColors = true
	w.Cube = xyz.NewSolid("cube", box, cubeMat).SetPos(0, 0, -1.5)

	sphereMat := xyz.NewMaterial(xyz.Phong).SetColor(xyz.HexColor(0xff0000))
	sphereMat.Shiny = 200
	w.Sphere = xyz.NewSolid("sphere", xyz.NewSphere("sphere", 0.1, 10, 10), sphereMat).SetPos(0.4, 0, -1.5)

	w.Cone = xyz.NewSolid("cone", xyz.NewCone("cone", 0.1, 0.2, 10, 10), xyz.NewMaterial(xyz.Normal)).SetPos(-0.4, 0, -1.5)

	torusMat := xyz.NewMaterial(xyz.Physical).SetColor(xyz.HexColor(0x00ff00))
	torusMat.Roughness = 0.5
	torusMat.Metalness = 1
	w.Torus = xyz.NewSolid("torus", xyz.NewTorusKnot("torus", 0.2, 0.02, 50, 50, 2, 3), torusMat).SetScale(1.5, 1.5, 1.5)

	sh.Basic.SetUniform("color", xyz.HexColor(0x00ffff))
	dodecaMat := xyz.NewMaterial(xyz.Shader)
	dodecaMat.Program = sh.Basic
	w.Dodeca = xyz.NewSolid("dodecahedron", xyz.NewDodecahedron("dodecahedron", 0.05), dodecaMat).SetPos(0.2, 0.3, -1.2)

	sh.Raw.SetUniform("color", xyz.HexColor(0x0000ff))
	cylMat := xyz.NewMaterial(xyz.RawShader)
	cylMat.Program = sh.Raw
	w.Cylinder = xyz.NewSolid("cylinder", xyz.NewCylinder("cylinder", 0.05, 0.05, 0.1, 20, 1), cylMat).SetPos(-0.2, 0.3, -1.2)

	tetraMat := xyz.NewMaterial(xyz.Standard).SetColor(xyz.HexColor(0xffff00))
	w.Tetrahedron = xyz.NewSolid("tetrahedron", xyz.NewTetrahedron("tetrahedron", 0.15), tetraMat).SetPos(0, 0, 3.5)

	cursorMat := xyz.NewMaterial(xyz.Basic).SetColor(xyz.HexColor(0x00ff00))
	cursorMat.Transparent = true
	cursorMat.Opacity = CursorMissOpacity
	cursorMat.DepthTest = false
	w.Cursor = xyz.NewSolid("cursor", xyz.NewRing("cursor", 0.001, 0.003, 20, 20), cursorMat)
	w.Cursor.NoPick = true

	if cfg.Holographic {
		st := xyz.NewStereoCamera("camera")
		st.EyeSeparation = cfg.EyeSeparation
		w.Viewpoint = st
	} else {
		w.Viewpoint = xyz.NewCamera("camera")
	}
	cm := w.Viewpoint.AsCamera()
	cm.Aspect = float32(cfg.Width) / float32(cfg.Height)
	w.Viewpoint.AsNodeBase().AddChild(w.Cursor)

	sc.Add(w.Cube, w.Sphere, w.Cone, w.Torus, w.Cylinder, w.Dodeca, w.Tetrahedron, w.Viewpoint)
	sc.UpdateWorldMatrix()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// SetTexture applies the loaded texture to the cube; nil removes it.
func (w *World) SetTexture(tex *xyz.Texture) {
	w.Cube.Material.SetTexture(tex)
}
