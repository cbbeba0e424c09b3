// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the light color times Lumens, as 0-1 RGB.
func (lb *LightBase) Radiance() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	return ColorVec3(lb.Color).MulScalar(lb.Lumens)
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the given scene.
func NewAmbientLight(sc *Scene, name string, lumens float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
type DirLight struct {
	LightBase

	// Pos is the position of the light; it points at the origin,
	// so this only determines the direction.
	Pos math32.Vector3
}

// NewDirLight adds a directional light to the given scene.
// By default it is located overhead and toward the viewer at (0, 1, 1).
func NewDirLight(sc *Scene, name string, lumens float32, clr color.RGBA) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	lt.Pos = math32.Vec3(0, 1, 1)
	sc.AddLight(lt)
	return lt
}

// ToLight returns the unit vector pointing toward the light.
func (dl *DirLight) ToLight() math32.Vector3 {
	return normalOr(dl.Pos, AxisY)
}

// PointLight is an omnidirectional light with a position
// and associated decay factors, which divide the light intensity as a function of
// linear and quadratic distance. A zero decay means no attenuation.
type PointLight struct {
	LightBase

	// Pos is the position of the light in world coordinates.
	Pos math32.Vector3

	// LinDecay is the distance linear decay factor.
	LinDecay float32

	// QuadDecay is the distance quadratic decay factor.
	QuadDecay float32
}

// NewPointLight adds a point light at the origin to the given scene.
func NewPointLight(sc *Scene, name string, lumens float32, clr color.RGBA) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

// Attenuation returns the intensity factor at the given distance.
func (pl *PointLight) Attenuation(dist float32) float32 {
	return 1 / (1 + pl.LinDecay*dist + pl.QuadDecay*dist*dist)
}

// AddLight adds the given light to the scene lights.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the light with the given name, or nil.
func (sc *Scene) LightByName(name string) Light {
	for _, lt := range sc.Lights {
		if lt.AsLightBase().Name == name {
			return lt
		}
	}
	return nil
}

// ColorVec3 converts a color to 0-1 RGB, ignoring alpha.
func ColorVec3(c color.RGBA) math32.Vector3 {
	return math32.Vec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

// HexColor returns the opaque color for a 0xRRGGBB value.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}
