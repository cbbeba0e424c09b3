// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh *Mesh

	// Material contains the material properties of the surface.
	Material *Material
}

// NewSolid returns a solid with the given mesh and material.
func NewSolid(name string, ms *Mesh, mt *Material) *Solid {
	sld := &Solid{Mesh: ms, Material: mt}
	newNode(sld, name)
	return sld
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.NodeBase.SetPos(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.NodeBase.SetScale(x, y, z)
	return sld
}

// Validate checks that solid has valid mesh and material settings.
func (sld *Solid) Validate() error {
	if sld.Mesh == nil {
		return fmt.Errorf("xyz.Solid %q: no mesh", sld.Name)
	}
	if sld.Material == nil {
		return fmt.Errorf("xyz.Solid %q: no material", sld.Name)
	}
	if err := sld.Mesh.Validate(); err != nil {
		return fmt.Errorf("xyz.Solid %q: %w", sld.Name, err)
	}
	if err := sld.Material.Validate(); err != nil {
		return fmt.Errorf("xyz.Solid %q: %w", sld.Name, err)
	}
	return nil
}

// IsTransparent returns whether the solid needs blending.
func (sld *Solid) IsTransparent() bool {
	return sld.Material.IsTransparent()
}

// RenderClasses define the different classes of rendering,
// which are drawn in this order.
type RenderClasses int32

const (
	// RClassOpaque are depth-tested surfaces without blending.
	RClassOpaque RenderClasses = iota

	// RClassTransparent are depth-tested blended surfaces, drawn back to front.
	RClassTransparent

	// RClassOverlay are surfaces drawn without depth testing, last.
	RClassOverlay
)

// RenderClass returns the class of rendering for this solid
// used for organizing the ordering of rendering
func (sld *Solid) RenderClass() RenderClasses {
	switch {
	case !sld.Material.DepthTest:
		return RClassOverlay
	case sld.IsTransparent():
		return RClassTransparent
	default:
		return RClassOpaque
	}
}
