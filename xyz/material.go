// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// MaterialKinds are the shading models a [Material] can use.
type MaterialKinds int32

const (
	// Basic is unlit: the surface shows its color as is.
	Basic MaterialKinds = iota

	// Lambert is diffuse-only lighting.
	Lambert

	// Phong is diffuse plus specular lighting controlled by Shiny.
	Phong

	// Standard is a metal/roughness model.
	Standard

	// Physical is the metal/roughness model with the same parameters
	// as Standard.
	Physical

	// Normal shows the view-space surface normal as a color.
	Normal

	// Shader uses a [ShaderProgram] with the standard prelude.
	Shader

	// RawShader uses a [ShaderProgram] without any prelude.
	RawShader
)

var kindNames = [...]string{"Basic", "Lambert", "Phong", "Standard", "Physical", "Normal", "Shader", "RawShader"}

func (k MaterialKinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("MaterialKinds(%d)", int32(k))
	}
	return kindNames[k]
}

// IsLit returns whether the kind responds to scene lights.
func (k MaterialKinds) IsLit() bool {
	switch k {
	case Lambert, Phong, Standard, Physical:
		return true
	}
	return false
}

// Sides selects which faces of a surface are rendered and picked.
type Sides int32

const (
	// FrontSide uses only counter-clockwise (front) faces.
	FrontSide Sides = iota

	// BackSide uses only back faces.
	BackSide

	// DoubleSide uses both faces.
	DoubleSide
)

// Material describes the material properties of a surface (colors, shininess, texture).
// Color is used for both ambient and diffuse color, and Opacity applies
// when Transparent is set.
type Material struct {

	// Kind is the shading model.
	Kind MaterialKinds

	// Color is the main color of the surface.
	Color color.RGBA

	// Opacity is the surface opacity in 0-1, used when Transparent is set.
	Opacity float32

	// Transparent enables blending with Opacity.
	Transparent bool

	// DepthTest enables testing against the depth buffer; surfaces without
	// it are drawn over everything else.
	DepthTest bool

	// VertexColors multiplies Color by the mesh per-vertex colors.
	VertexColors bool

	// Shiny is the specular exponent for the Phong kind.
	Shiny float32

	// Roughness is the surface roughness in 0-1 for the Standard and Physical kinds.
	Roughness float32

	// Metalness is the metalness in 0-1 for the Standard and Physical kinds.
	Metalness float32

	// Side selects which faces are rendered and picked.
	Side Sides

	// Texture, if set, multiplies the surface color.
	Texture *Texture

	// Program is the shader program for the Shader and RawShader kinds.
	Program *ShaderProgram
}

// NewMaterial returns a material of the given kind with default settings.
func NewMaterial(kind MaterialKinds) *Material {
	mt := &Material{Kind: kind}
	mt.Defaults()
	return mt
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{255, 255, 255, 255}
	mt.Opacity = 1
	mt.DepthTest = true
	mt.Shiny = 30
	mt.Roughness = 1
	mt.Side = FrontSide
}

// SetColor sets the [Material.Color].
func (mt *Material) SetColor(v color.RGBA) *Material {
	mt.Color = v
	return mt
}

// SetTexture sets the material texture; nil removes it.
func (mt *Material) SetTexture(tex *Texture) *Material {
	mt.Texture = tex
	return mt
}

// IsTransparent returns true if blending applies to this material.
func (mt *Material) IsTransparent() bool {
	if mt.Transparent && mt.Opacity < 1 {
		return true
	}
	return mt.Texture != nil && mt.Texture.Transparent
}

// Alpha returns the opacity used for blending.
func (mt *Material) Alpha() float32 {
	if !mt.Transparent {
		return 1
	}
	return mt.Opacity
}

// Validate checks that the material settings are consistent.
func (mt *Material) Validate() error {
	if (mt.Kind == Shader || mt.Kind == RawShader) && mt.Program == nil {
		return fmt.Errorf("xyz.Material: %v material has no shader program", mt.Kind)
	}
	if mt.Opacity < 0 || mt.Opacity > 1 {
		return fmt.Errorf("xyz.Material: opacity %g out of range", mt.Opacity)
	}
	return nil
}
