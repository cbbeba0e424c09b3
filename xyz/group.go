// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own. It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup returns a new empty group.
func NewGroup(name string) *Group {
	gp := &Group{}
	newNode(gp, name)
	return gp
}

// test for impl
var _ Node = &Group{}
