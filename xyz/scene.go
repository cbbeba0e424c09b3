// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small 3D scenegraph: solids with meshes and
// materials composed by transform inheritance, lights, perspective
// and stereo viewpoints, and ray picking.
package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/tree"
)

// Scene is the root of the scenegraph, containing nodes as children.
// Lights are stored on the Scene and not within the tree.
type Scene struct {
	NodeBase

	// Background is the color the frame is cleared to.
	Background color.RGBA

	// Lights are all the lights used in the scene.
	Lights []Light
}

// NewScene creates a new Scene with a black background.
func NewScene(name string) *Scene {
	sc := &Scene{}
	newNode(sc, name)
	sc.Background = color.RGBA{0, 0, 0, 255}
	return sc
}

// Add adds the given nodes as children of the scene root.
func (sc *Scene) Add(nodes ...Node) {
	sc.AddChild(nodes...)
}

// UpdateWorldMatrix updates the world matrices of all nodes.
func (sc *Scene) UpdateWorldMatrix() {
	UpdateWorldMatrix(sc)
}

// Solids returns all visible solids in tree order.
func (sc *Scene) Solids() []*Solid {
	var sl []*Solid
	sc.WalkDown(func(n tree.Node) bool {
		_, nb := AsNode(n)
		if nb == nil || nb.Hidden {
			return tree.Break
		}
		if sld, ok := n.(*Solid); ok {
			sl = append(sl, sld)
		}
		return tree.Continue
	})
	return sl
}

// Validate traverses the scene and validates all the solids; the
// returned error joins all the errors found.
func (sc *Scene) Validate() error {
	var errs []error
	for _, sld := range sc.Solids() {
		errs = append(errs, sld.Validate())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("xyz.Scene %q: %w", sc.Name, err)
	}
	return nil
}
