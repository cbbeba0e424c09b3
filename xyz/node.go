// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the interface for all nodes in the scenegraph.
// Each node owns its children: a node has at most one parent,
// and cycles are rejected by [NodeBase.AddChild].
type Node interface {
	tree.Node

	// AsNodeBase returns the [NodeBase] for this node,
	// which holds the pose and visibility flags.
	AsNodeBase() *NodeBase
}

// NodeBase provides the core implementation of the [Node] interface.
type NodeBase struct {
	tree.NodeBase

	// Pose is the position, orientation and scale relative to the parent.
	Pose Pose

	// Hidden excludes the node and its children from rendering and picking.
	Hidden bool

	// NoPick excludes the node and its children from ray picking
	// while still rendering them.
	NoPick bool
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

// AsNode returns the given tree node as a [Node] and its [NodeBase],
// or nil for both if it is not an xyz node.
func AsNode(n tree.Node) (Node, *NodeBase) {
	if n == nil {
		return nil, nil
	}
	nd, ok := n.(Node)
	if !ok {
		return nil, nil
	}
	return nd, nd.AsNodeBase()
}

// newNode sets up a freshly allocated node so that it can be
// added to a tree.
func newNode(n Node, name string) {
	tree.InitNode(n)
	n.AsTree().Name = name
}

// AddChild adds the given nodes as children of this node.
// It panics if a child already has a parent or is an ancestor of
// this node, since either would break tree ownership.
func (nb *NodeBase) AddChild(kids ...Node) {
	if nb.This == nil {
		panic(fmt.Sprintf("xyz.NodeBase.AddChild: %q was not made by a constructor", nb.Name))
	}
	for _, k := range kids {
		kt := k.AsTree()
		if kt.Parent != nil {
			panic(fmt.Sprintf("xyz.NodeBase.AddChild: %q already has parent %q", kt.Name, kt.Parent.AsTree().Name))
		}
		for a := nb.This; a != nil; a = a.AsTree().Parent {
			if a.AsTree() == kt {
				panic(fmt.Sprintf("xyz.NodeBase.AddChild: adding %q to %q would form a cycle", kt.Name, nb.Name))
			}
		}
		nb.NodeBase.AddChild(k)
	}
}

// RemoveChild detaches the given child without destroying it,
// returning false if it is not a child of this node.
func (nb *NodeBase) RemoveChild(k Node) bool {
	i := tree.IndexOf(nb.Children, k)
	if i < 0 {
		return false
	}
	nb.Children = slices.Delete(nb.Children, i, i+1)
	k.AsTree().Parent = nil
	return true
}

// UpdateWorldMatrix updates the local and world matrices of n and
// all of its descendants, composing each node with its parent's
// world matrix.
func UpdateWorldMatrix(n Node) {
	nb := n.AsNodeBase()
	nb.Pose.UpdateMatrix()
	if _, pb := AsNode(nb.Parent); pb != nil {
		nb.Pose.UpdateWorldMatrix(&pb.Pose.WorldMatrix)
	} else {
		nb.Pose.UpdateWorldMatrix(nil)
	}
	for _, k := range nb.Children {
		if kn, _ := AsNode(k); kn != nil {
			UpdateWorldMatrix(kn)
		}
	}
}

// IsVisible returns whether the node and all of its ancestors are not Hidden.
func (nb *NodeBase) IsVisible() bool {
	if nb.Hidden {
		return false
	}
	_, pb := AsNode(nb.Parent)
	return pb == nil || pb.IsVisible()
}

// WorldPos returns the current world position of the node.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}

// SetPos sets the [Pose.Pos] position of the node.
func (nb *NodeBase) SetPos(x, y, z float32) {
	nb.Pose.Pos.Set(x, y, z)
}

// SetScale sets the [Pose.Scale] scale of the node.
func (nb *NodeBase) SetScale(x, y, z float32) {
	nb.Pose.Scale.Set(x, y, z)
}
