// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// Mesh holds indexed triangle geometry in local coordinates.
// Triangles are counter-clockwise when seen from their front side.
// Per-vertex Color is optional.
type Mesh struct {

	// Name is the name of the mesh, for logging.
	Name string

	// Pos are the vertex positions.
	Pos []math32.Vector3

	// Norm are the vertex normals, one per position.
	Norm []math32.Vector3

	// UV are the texture coordinates, one per position.
	UV []math32.Vector2

	// Color are optional per-vertex RGB colors in the 0-1 range.
	Color []math32.Vector3

	// Index holds three vertex indexes per triangle.
	Index []uint32

	// BBox is the local bounding box, computed by [Mesh.UpdateBBox].
	BBox math32.Box3
}

// NewShapeMesh returns a mesh with the geometry generated by the
// given shape, including its colors if it has any.
func NewShapeMesh(name string, sh shape.Mesh) *Mesh {
	md := shape.NewMeshData(sh)
	ms := &Mesh{Name: name}
	ms.Pos = make([]math32.Vector3, md.NumVertex)
	ms.Norm = make([]math32.Vector3, md.NumVertex)
	ms.UV = make([]math32.Vector2, md.NumVertex)
	for i := range md.NumVertex {
		md.Vertex.GetVector3(3*i, &ms.Pos[i])
		md.Normal.GetVector3(3*i, &ms.Norm[i])
		md.TexCoord.GetVector2(2*i, &ms.UV[i])
	}
	if md.HasColor {
		ms.Color = make([]math32.Vector3, md.NumVertex)
		for i := range md.NumVertex {
			var c math32.Vector4
			md.Colors.GetVector4(4*i, &c)
			ms.Color[i] = math32.Vector3FromVector4(c)
		}
	}
	ms.Index = append([]uint32(nil), md.Index...)
	ms.UpdateBBox()
	return ms
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Triangle returns the vertex positions of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	return ms.Pos[ms.Index[3*i]], ms.Pos[ms.Index[3*i+1]], ms.Pos[ms.Index[3*i+2]]
}

// HasColor returns whether the mesh has per-vertex colors.
func (ms *Mesh) HasColor() bool {
	return len(ms.Color) == len(ms.Pos) && len(ms.Color) > 0
}

// SetColors sets the per-vertex colors, which must match the number
// of vertices.
func (ms *Mesh) SetColors(clr []math32.Vector3) error {
	if len(clr) != len(ms.Pos) {
		return fmt.Errorf("xyz.Mesh %q: %d colors for %d vertices", ms.Name, len(clr), len(ms.Pos))
	}
	ms.Color = clr
	return nil
}

// UpdateBBox recomputes the bounding box from the vertex positions.
func (ms *Mesh) UpdateBBox() {
	ms.BBox.SetEmpty()
	for _, p := range ms.Pos {
		ms.BBox.ExpandByPoint(p)
	}
}

// Validate checks that the vertex arrays and indexes are consistent.
func (ms *Mesh) Validate() error {
	n := len(ms.Pos)
	if len(ms.Norm) != n || len(ms.UV) != n {
		return fmt.Errorf("xyz.Mesh %q: %d positions, %d normals, %d uvs", ms.Name, n, len(ms.Norm), len(ms.UV))
	}
	if len(ms.Index)%3 != 0 {
		return fmt.Errorf("xyz.Mesh %q: index count %d is not a multiple of 3", ms.Name, len(ms.Index))
	}
	for _, ix := range ms.Index {
		if int(ix) >= n {
			return fmt.Errorf("xyz.Mesh %q: index %d out of range", ms.Name, ix)
		}
	}
	return nil
}

// add appends a vertex and returns its index.
func (ms *Mesh) add(pos, norm math32.Vector3, uv math32.Vector2) uint32 {
	ms.Pos = append(ms.Pos, pos)
	ms.Norm = append(ms.Norm, norm)
	ms.UV = append(ms.UV, uv)
	return uint32(len(ms.Pos) - 1)
}
